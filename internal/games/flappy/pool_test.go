package flappy

import (
	"testing"

	"github.com/vovakirdan/fapbird/internal/core"
)

// xs returns the left edge of every pair in screen order.
func xs(p *Pool) []int {
	out := make([]int, 0, p.Len())
	for _, pair := range p.Pairs() {
		out = append(out, pair.X())
	}
	return out
}

func newTestPool(n int) *Pool {
	p := NewPool(n)
	for i := range n {
		_, pair := p.At(i)
		pair.Top = core.NewRect(i*10, 0, 5, 5)
	}
	return p
}

func TestPoolInitialOrder(t *testing.T) {
	p := NewPool(4)
	if p.Len() != 4 {
		t.Fatalf("expected 4 pairs, got %d", p.Len())
	}
	for i := range 4 {
		if slot, _ := p.At(i); slot != i {
			t.Errorf("position %d: expected slot %d, got %d", i, i, slot)
		}
	}
}

func TestPoolRecycle(t *testing.T) {
	tests := []struct {
		name      string
		position  int
		wantSlot  int
		wantOrder []int
	}{
		{"head", 0, 0, []int{10, 20, 30, 0}},
		{"middle", 1, 1, []int{0, 20, 30, 10}},
		{"back", 3, 3, []int{0, 10, 20, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPool(4)
			slot := p.Recycle(tt.position)
			if slot != tt.wantSlot {
				t.Errorf("expected slot %d, got %d", tt.wantSlot, slot)
			}
			got := xs(p)
			for i := range got {
				if got[i] != tt.wantOrder[i] {
					t.Fatalf("expected order %v, got %v", tt.wantOrder, got)
				}
			}
			if backSlot, _ := p.Back(); backSlot != slot {
				t.Errorf("recycled slot %d should be at the back, got %d", slot, backSlot)
			}
		})
	}
}

func TestPoolRecycleHeadWraps(t *testing.T) {
	p := newTestPool(3)
	for range 3 {
		p.Recycle(0)
	}
	got := xs(p)
	want := []int{0, 10, 20}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("after a full rotation expected %v, got %v", want, got)
		}
	}
}

func TestPoolRecycleAfterRotation(t *testing.T) {
	p := newTestPool(4)
	p.Recycle(0) // 10 20 30 0
	p.Recycle(2) // 10 20 0 30
	got := xs(p)
	want := []int{10, 20, 0, 30}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestPoolPairsIsCopy(t *testing.T) {
	p := newTestPool(2)
	pairs := p.Pairs()
	pairs[0].Consumed = true
	if p.Slot(0).Consumed {
		t.Error("mutating Pairs() result should not touch the pool")
	}
}

func TestObstaclePairAccessors(t *testing.T) {
	pair := ObstaclePair{
		Top:    core.NewRect(100, 0, 75, 200),
		Bottom: core.NewRect(100, 350, 75, 200),
	}
	if pair.X() != 100 {
		t.Errorf("expected X 100, got %d", pair.X())
	}
	if pair.Right() != 175 {
		t.Errorf("expected Right 175, got %d", pair.Right())
	}
	if pair.GapCenter() != 275 {
		t.Errorf("expected gap centre 275, got %d", pair.GapCenter())
	}
}
