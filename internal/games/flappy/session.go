package flappy

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fapbird/internal/core"
)

// Bodies is the physics side of a session: the pipe bodies and the player.
type Bodies interface {
	// PlaceObstacle moves the collision and visual geometry of the pair in slot.
	PlaceObstacle(slot int, top, bottom core.Rect)
	// PlayerX returns the x a pair's left edge must fall behind to score.
	PlayerX() int
	// Flap kicks the player upward.
	Flap()
	// ResetPlayer puts the player back at its start position, at rest.
	ResetPlayer()
}

// EventKind enumerates the events a session reacts to.
type EventKind int

const (
	EventTick EventKind = iota
	EventFlap
	EventCollision
	EventRestart
)

// Event is a single input to Session.Dispatch.
type Event struct {
	Kind    EventKind
	Contact Contact // For EventCollision
}

// Outcome reports what a dispatched event changed.
type Outcome struct {
	Scored    int  // Pairs passed
	Recycled  bool // A pair was moved back to the right edge
	Slot      int  // Recycled slot, valid when Recycled
	Stopped   bool // Running -> Stopped
	Restarted bool
}

// Session owns all mutable game state. It is not safe for concurrent use;
// the host delivers every event from one goroutine through Dispatch.
type Session struct {
	layout Layout
	pool   *Pool
	bodies Bodies
	rng    *rand.Rand
	logger *log.Logger
	state  State
	score  int
}

// NewSession creates a running session with count pairs laid out to the
// right of the screen.
func NewSession(layout Layout, count int, bodies Bodies, seed int64, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		layout: layout,
		pool:   NewPool(count),
		bodies: bodies,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
		state:  StateRunning,
	}
	s.layoutObstacles()
	return s
}

// Dispatch applies one event.
func (s *Session) Dispatch(ev Event) Outcome {
	switch ev.Kind {
	case EventTick:
		return s.tick()
	case EventFlap:
		if s.state == StateRunning {
			s.bodies.Flap()
		}
	case EventCollision:
		return s.collide(ev.Contact)
	case EventRestart:
		return s.restart()
	}
	return Outcome{}
}

// State returns the run state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Pool returns the obstacle pool. Callers must treat it as read-only.
func (s *Session) Pool() *Pool {
	return s.pool
}

// layoutObstacles places every pair left to right, starting one spacing past
// the right screen edge.
func (s *Session) layoutObstacles() {
	x := s.layout.WorldWidth
	for i := range s.pool.Len() {
		slot, p := s.pool.At(i)
		x = s.layout.Place(p, x, s.rng)
		s.bodies.PlaceObstacle(slot, p.Top, p.Bottom)
	}
}
