package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fapbird/internal/core"
)

// fakeGame records the input frames it is stepped with.
type fakeGame struct {
	frames   []core.InputFrame
	state    core.GameState
	button   core.Rect
	rendered int
}

func (g *fakeGame) Title() string { return "fake" }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	g.frames = append(g.frames, frame)
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	g.rendered++
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState   { return g.state }
func (g *fakeGame) RestartButton() core.Rect { return g.button }

func newTestModel(g *fakeGame) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickInterval: time.Millisecond}, nil)
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func lastFrame(t *testing.T, g *fakeGame) core.InputFrame {
	t.Helper()
	if len(g.frames) == 0 {
		t.Fatal("game was never stepped")
	}
	return g.frames[len(g.frames)-1]
}

func TestModelFlapReachesGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m = update(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(m, TickMsg(time.Now()))

	if !lastFrame(t, g).Has(core.ActionFlap) {
		t.Error("flap not delivered on the next tick")
	}

	update(m, TickMsg(time.Now()))
	if lastFrame(t, g).Has(core.ActionFlap) {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelRestartOnlyWhenOver(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	restart := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
	m = update(m, restart)
	m = update(m, TickMsg(time.Now()))
	if lastFrame(t, g).Has(core.ActionRestart) {
		t.Error("restart should be ignored while running")
	}

	g.state.GameOver = true
	m = update(m, TickMsg(time.Now()))
	m = update(m, restart)
	update(m, TickMsg(time.Now()))
	if !lastFrame(t, g).Has(core.ActionRestart) {
		t.Error("restart should be delivered after game over")
	}
}

func TestModelRestartButtonClick(t *testing.T) {
	g := &fakeGame{state: core.GameState{GameOver: true}, button: core.NewRect(10, 5, 11, 1)}
	m := newTestModel(g)

	tests := []struct {
		name string
		msg  tea.MouseMsg
		want bool
	}{
		{"miss", tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, false},
		{"right button", tea.MouseMsg{X: 12, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, false},
		{"release", tea.MouseMsg{X: 12, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, false},
		{"hit", tea.MouseMsg{X: 12, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := update(m, tt.msg)
			update(next, TickMsg(time.Now()))
			if got := lastFrame(t, g).Has(core.ActionRestart); got != tt.want {
				t.Errorf("restart = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(&fakeGame{})
	m = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("expected 100x29 playfield, got %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	view := m.View()
	if g.rendered != 1 {
		t.Errorf("expected one render, got %d", g.rendered)
	}
	if !strings.Contains(view, "fake") {
		t.Error("view should contain the rendered playfield")
	}
	if !strings.Contains(view, "flap") {
		t.Error("view should contain the help bar")
	}
}
