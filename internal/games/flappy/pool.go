package flappy

import "github.com/vovakirdan/fapbird/internal/core"

// ObstaclePair is a top and bottom pipe segment sharing one gap.
type ObstaclePair struct {
	Top      core.Rect
	Bottom   core.Rect
	Consumed bool // Player already scored on this pair
}

// X returns the pair's left edge.
func (p ObstaclePair) X() int {
	return p.Top.X
}

// Right returns the pair's right edge.
func (p ObstaclePair) Right() int {
	return p.Top.Right()
}

// GapCenter returns the vertical centre of the opening.
func (p ObstaclePair) GapCenter() int {
	return (p.Top.Bottom() + p.Bottom.Y) / 2
}

// Pool is a fixed set of obstacle pairs kept in screen order.
//
// Pairs live in an arena addressed by slot and are never reallocated. The
// screen order is a ring of slot indices whose head is the leftmost pair, so
// recycling the head back to the end only advances the head.
type Pool struct {
	pairs []ObstaclePair
	ring  []int
	head  int
}

// NewPool creates a pool of n pairs. Slot i starts at position i.
func NewPool(n int) *Pool {
	p := &Pool{
		pairs: make([]ObstaclePair, n),
		ring:  make([]int, n),
	}
	for i := range p.ring {
		p.ring[i] = i
	}
	return p
}

// Len returns the number of pairs.
func (p *Pool) Len() int {
	return len(p.pairs)
}

// At returns the slot and pair at screen position i (0 = leftmost).
func (p *Pool) At(i int) (int, *ObstaclePair) {
	slot := p.ring[p.index(i)]
	return slot, &p.pairs[slot]
}

// Slot returns the pair stored in slot.
func (p *Pool) Slot(slot int) *ObstaclePair {
	return &p.pairs[slot]
}

// Back returns the slot and pair at the last screen position.
func (p *Pool) Back() (int, *ObstaclePair) {
	return p.At(p.Len() - 1)
}

// Recycle moves the pair at screen position i to the back and returns its slot.
func (p *Pool) Recycle(i int) int {
	n := len(p.ring)
	slot := p.ring[p.index(i)]
	if i == 0 {
		p.head = (p.head + 1) % n
		return slot
	}
	for j := i; j < n-1; j++ {
		p.ring[p.index(j)] = p.ring[p.index(j+1)]
	}
	p.ring[p.index(n-1)] = slot
	return slot
}

// Pairs returns a copy of the pairs in screen order.
func (p *Pool) Pairs() []ObstaclePair {
	out := make([]ObstaclePair, 0, p.Len())
	for i := range p.Len() {
		_, pair := p.At(i)
		out = append(out, *pair)
	}
	return out
}

func (p *Pool) index(i int) int {
	return (p.head + i) % len(p.ring)
}
