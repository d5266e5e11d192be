// Package physics is the rigid-body boundary the game drives.
// It wraps a Chipmunk2D space (github.com/jakecoffman/cp) behind box bodies
// addressed in integer world coordinates with y growing downward.
//
// Collision and update callbacks are queued while the engine steps and are
// delivered after Step's engine pass returns, in order, on the caller's
// goroutine. Callbacks may therefore move, resize or remove bodies freely.
package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/fapbird/internal/core"
)

// collisionBody is the single collision type all boxes share; filtering by
// kind is left to the callbacks.
const collisionBody cp.CollisionType = 1

// World owns the physics space and every body in it.
type World struct {
	space   *cp.Space
	bounds  core.Rect
	bodies  []*Body
	pending []contact
}

type contact struct {
	a, b *Body
}

// NewWorld creates a world covering bounds with a downward gravity.
func NewWorld(bounds core.Rect, gravity float64) (*World, error) {
	if bounds.W <= 0 || bounds.H <= 0 {
		return nil, fmt.Errorf("physics: invalid world bounds %dx%d", bounds.W, bounds.H)
	}
	if math.IsNaN(gravity) || math.IsInf(gravity, 0) {
		return nil, fmt.Errorf("physics: gravity must be finite, got %v", gravity)
	}

	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	w := &World{
		space:  space,
		bounds: bounds,
	}

	handler := space.NewCollisionHandler(collisionBody, collisionBody)
	handler.BeginFunc = w.begin

	return w, nil
}

// Bounds returns the render geometry of the world.
func (w *World) Bounds() core.Rect {
	return w.bounds
}

// NewBox adds a box body with top-left geometry r.
// A mass of MassStatic creates an immovable body that only moves when
// repositioned explicitly.
func (w *World) NewBox(r core.Rect, mass float64, m Material) *Body {
	b := &Body{
		world:    w,
		width:    float64(r.W),
		height:   float64(r.H),
		mass:     mass,
		static:   mass == MassStatic,
		material: m,
	}

	if b.static {
		b.body = cp.NewKinematicBody()
	} else {
		b.body = cp.NewBody(mass, cp.MomentForBox(mass, b.width, b.height))
	}
	b.body.UserData = b
	w.space.AddBody(b.body)
	b.body.SetPosition(centerOf(r))
	b.attachShape()

	w.bodies = append(w.bodies, b)
	return b
}

// Step advances the simulation by dt seconds, then delivers collision
// callbacks followed by update callbacks.
func (w *World) Step(dt float64) {
	w.space.Step(dt)

	pending := w.pending
	for _, c := range pending {
		c.a.collided(c.b)
		c.b.collided(c.a)
	}
	w.pending = pending[:0]

	for _, b := range w.bodies {
		if b.onUpdate != nil {
			b.onUpdate(b)
		}
	}
}

// Close removes every body from the world. The world must not be used afterwards.
func (w *World) Close() {
	for len(w.bodies) > 0 {
		w.bodies[len(w.bodies)-1].Remove()
	}
	w.pending = nil
}

// begin runs inside the engine step; it only records the pair.
func (w *World) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Bodies()
	ba, okA := a.UserData.(*Body)
	bb, okB := b.UserData.(*Body)
	if okA && okB {
		w.pending = append(w.pending, contact{a: ba, b: bb})
	}
	return true
}

func (w *World) remove(b *Body) {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	// Drop queued contacts involving b so it never sees a late callback.
	kept := w.pending[:0]
	for _, c := range w.pending {
		if c.a != b && c.b != b {
			kept = append(kept, c)
		}
	}
	w.pending = kept
}

func centerOf(r core.Rect) cp.Vector {
	return cp.Vector{
		X: float64(r.X) + float64(r.W)/2,
		Y: float64(r.Y) + float64(r.H)/2,
	}
}
