package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/fapbird/internal/core"
)

// MassStatic is the mass sentinel for immovable bodies.
const MassStatic = 0.0

// Body is a box in the world.
type Body struct {
	world    *World
	body     *cp.Body
	shape    *cp.Shape
	width    float64
	height   float64
	mass     float64
	static   bool
	material Material
	tag      string

	onCollision []func(contact *Body)
	onUpdate    func(b *Body)
}

// Tag returns the label set with SetTag.
func (b *Body) Tag() string {
	return b.tag
}

// SetTag labels the body, e.g. "sky" or "pipe".
func (b *Body) SetTag(tag string) {
	b.tag = tag
}

// IsStatic reports whether the body was created with MassStatic.
func (b *Body) IsStatic() bool {
	return b.static
}

// Geometry returns the body's top-left geometry rounded to world units.
func (b *Body) Geometry() core.Rect {
	p := b.body.Position()
	return core.NewRect(
		int(math.Round(p.X-b.width/2)),
		int(math.Round(p.Y-b.height/2)),
		int(b.width),
		int(b.height),
	)
}

// SetGeometry moves and resizes the body. Collision shape and position are
// replaced together, so the next step sees the new box.
func (b *Body) SetGeometry(r core.Rect) {
	w, h := float64(r.W), float64(r.H)
	if w != b.width || h != b.height {
		b.width, b.height = w, h
		b.world.space.RemoveShape(b.shape)
		b.attachShape()
		if !b.static {
			b.body.SetMoment(cp.MomentForBox(b.mass, w, h))
		}
	}
	b.body.SetPosition(centerOf(r))
}

// Move places the body's top-left corner at (x, y), keeping its size.
func (b *Body) Move(x, y int) {
	b.SetGeometry(core.NewRect(x, y, int(b.width), int(b.height)))
}

// Velocity returns the linear velocity in units per second.
func (b *Body) Velocity() (vx, vy float64) {
	v := b.body.Velocity()
	return v.X, v.Y
}

// SetVelocity sets the linear velocity in units per second.
func (b *Body) SetVelocity(vx, vy float64) {
	b.body.SetVelocity(vx, vy)
}

// AngularVelocity returns the angular velocity in radians per second.
func (b *Body) AngularVelocity() float64 {
	return b.body.AngularVelocity()
}

// SetAngularVelocity sets the angular velocity in radians per second.
func (b *Body) SetAngularVelocity(w float64) {
	b.body.SetAngularVelocity(w)
}

// ApplyImpulse applies an impulse through the centre of mass.
// Static bodies are unaffected.
func (b *Body) ApplyImpulse(ix, iy float64) {
	if b.static {
		return
	}
	b.body.ApplyImpulseAtWorldPoint(cp.Vector{X: ix, Y: iy}, b.body.Position())
}

// Rotation returns the body's orientation.
func (b *Body) Rotation() Quaternion {
	return QuaternionFromAngle(b.body.Angle())
}

// SetRotation sets the body's orientation.
func (b *Body) SetRotation(q Quaternion) {
	b.body.SetAngle(q.Angle())
}

// Mass returns the body's mass, MassStatic for immovable bodies.
func (b *Body) Mass() float64 {
	return b.mass
}

// SetMass changes the mass of a dynamic body. Whether a body is static is
// fixed when it is created, so this is a no-op for static bodies.
func (b *Body) SetMass(mass float64) {
	if b.static || mass <= 0 {
		return
	}
	b.mass = mass
	b.body.SetMass(mass)
	b.body.SetMoment(cp.MomentForBox(mass, b.width, b.height))
}

// Material returns the body's surface material.
func (b *Body) Material() Material {
	return b.material
}

// SetMaterial sets restitution and friction.
func (b *Body) SetMaterial(m Material) {
	b.material = m
	b.shape.SetElasticity(m.Restitution)
	b.shape.SetFriction(m.Friction)
}

// OnCollision registers fn to run when another body starts touching b.
func (b *Body) OnCollision(fn func(contact *Body)) {
	b.onCollision = append(b.onCollision, fn)
}

// OnUpdate registers fn to run after every step. Only one update callback is
// kept; a later call replaces the earlier one.
func (b *Body) OnUpdate(fn func(b *Body)) {
	b.onUpdate = fn
}

// Remove deletes the body from its world.
func (b *Body) Remove() {
	b.world.space.RemoveShape(b.shape)
	b.world.space.RemoveBody(b.body)
	b.world.remove(b)
}

func (b *Body) collided(contact *Body) {
	for _, fn := range b.onCollision {
		fn(contact)
	}
}

func (b *Body) attachShape() {
	shape := cp.NewBox(b.body, b.width, b.height, 0)
	shape.SetElasticity(b.material.Restitution)
	shape.SetFriction(b.material.Friction)
	shape.SetCollisionType(collisionBody)
	shape.UserData = b
	b.shape = b.world.space.AddShape(shape)
}
