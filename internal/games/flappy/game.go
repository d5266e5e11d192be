// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must fly through the gaps of pipe pairs
// scrolling in from the right; touching a pipe or the ground ends the run.
package flappy

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fapbird/internal/config"
	"github.com/vovakirdan/fapbird/internal/core"
	"github.com/vovakirdan/fapbird/internal/physics"
)

// Game hosts a Session on top of a physics world and renders it.
type Game struct {
	cfg     config.FlappyConfig
	world   *physics.World
	bodies  *worldBodies
	session *Session
	logger  *log.Logger

	restartButton core.Rect // Screen rect of the popup button, empty when hidden
}

// New creates the physics world and a running session.
// It fails if cfg is invalid or the physics world cannot be initialised.
func New(cfg config.FlappyConfig, seed int64, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	world, err := physics.NewWorld(core.NewRect(0, 0, cfg.World.Width, cfg.World.Height), cfg.Physics.Gravity)
	if err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	bodies := newWorldBodies(cfg, world)
	g := &Game{
		cfg:     cfg,
		world:   world,
		bodies:  bodies,
		session: NewSession(LayoutFromConfig(cfg), cfg.Obstacles.Count, bodies, seed, logger),
		logger:  logger,
	}
	return g, nil
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fap bird"
}

// Step runs one timer period: input events, one physics step, the resulting
// collisions, then the world tick. Restart is only honoured while stopped.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.session.State() == StateStopped {
		g.session.Dispatch(Event{Kind: EventRestart})
	}
	if in.Has(core.ActionFlap) {
		g.session.Dispatch(Event{Kind: EventFlap})
	}

	g.world.Step(g.cfg.TickInterval().Seconds())
	for _, c := range g.bodies.drainContacts() {
		g.session.Dispatch(Event{Kind: EventCollision, Contact: c})
	}

	out := g.session.Dispatch(Event{Kind: EventTick})
	return core.StepResult{
		State:    g.State(),
		Scored:   out.Scored,
		Recycled: out.Recycled,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.State() == StateStopped,
	}
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// RestartButton returns the screen rectangle of the Restart button drawn by
// the last Render, or an empty rect when no popup is shown.
func (g *Game) RestartButton() core.Rect {
	return g.restartButton
}

// Close releases the physics world.
func (g *Game) Close() {
	g.world.Close()
}
