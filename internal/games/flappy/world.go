package flappy

import (
	"github.com/vovakirdan/fapbird/internal/config"
	"github.com/vovakirdan/fapbird/internal/core"
	"github.com/vovakirdan/fapbird/internal/physics"
)

// Body tags
const (
	tagSky    = "sky"
	tagGround = "ground"
	tagBird   = "bird"
	tagPipe   = "pipe"
)

// worldBodies builds the scene's physics bodies and implements Bodies.
type worldBodies struct {
	cfg    config.FlappyConfig
	world  *physics.World
	sky    *physics.Body
	ground *physics.Body
	bird   *physics.Body
	pipes  [][2]*physics.Body // top, bottom per slot

	defaultRotation physics.Quaternion
	contacts        []Contact
}

func newWorldBodies(cfg config.FlappyConfig, world *physics.World) *worldBodies {
	wb := &worldBodies{
		cfg:             cfg,
		world:           world,
		pipes:           make([][2]*physics.Body, cfg.Obstacles.Count),
		defaultRotation: physics.NewQuaternion(),
	}

	width := cfg.World.Width
	worldH := cfg.WorldHeight()

	wb.sky = world.NewBox(core.NewRect(0, 0, width, 2), physics.MassStatic, physics.MaterialConcrete)
	wb.sky.SetTag(tagSky)

	wb.ground = world.NewBox(core.NewRect(0, worldH, width, cfg.World.GroundHeight), physics.MassStatic, physics.MaterialConcrete)
	wb.ground.SetTag(tagGround)

	wb.bird = world.NewBox(wb.birdStart(), cfg.Player.Mass, physics.MaterialPlastic)
	wb.bird.SetTag(tagBird)
	wb.bird.OnCollision(wb.birdCollided)
	wb.bird.OnUpdate(wb.guardCeiling)

	for i := range wb.pipes {
		for j := range wb.pipes[i] {
			pipe := world.NewBox(core.NewRect(width, 0, cfg.Obstacles.Width, 10), physics.MassStatic, physics.MaterialIron)
			pipe.SetTag(tagPipe)
			wb.pipes[i][j] = pipe
		}
	}

	return wb
}

func (wb *worldBodies) birdStart() core.Rect {
	size := wb.cfg.Player.Size
	return core.NewRect(wb.cfg.World.Width/4, wb.cfg.WorldHeight()/2, size, size)
}

// PlaceObstacle implements Bodies.
func (wb *worldBodies) PlaceObstacle(slot int, top, bottom core.Rect) {
	wb.pipes[slot][0].SetGeometry(top)
	wb.pipes[slot][1].SetGeometry(bottom)
}

// PlayerX implements Bodies. The bird's right edge is what has to clear a pair.
func (wb *worldBodies) PlayerX() int {
	return wb.bird.Geometry().Right()
}

// Flap implements Bodies.
func (wb *worldBodies) Flap() {
	wb.bird.SetVelocity(0, wb.cfg.Player.FlapVelocity)
}

// ResetPlayer implements Bodies.
func (wb *worldBodies) ResetPlayer() {
	wb.bird.SetRotation(wb.defaultRotation)
	wb.bird.SetAngularVelocity(0)
	wb.bird.SetVelocity(0, 0)
	wb.bird.SetGeometry(wb.birdStart())
	wb.contacts = wb.contacts[:0]
}

// Bird returns the player's current geometry.
func (wb *worldBodies) Bird() core.Rect {
	return wb.bird.Geometry()
}

// drainContacts returns the contacts collected since the last call.
func (wb *worldBodies) drainContacts() []Contact {
	out := append([]Contact(nil), wb.contacts...)
	wb.contacts = wb.contacts[:0]
	return out
}

func (wb *worldBodies) birdCollided(contact *physics.Body) {
	wb.contacts = append(wb.contacts, contactOf(contact))
}

// contactOf classifies a body the bird touched by its tag.
func contactOf(b *physics.Body) Contact {
	switch b.Tag() {
	case tagSky:
		return ContactSky
	case tagGround:
		return ContactGround
	default:
		return ContactObstacle
	}
}

// guardCeiling pushes the bird back down when it slips past the sky body at speed.
func (wb *worldBodies) guardCeiling(b *physics.Body) {
	if b.Geometry().Y < wb.cfg.Physics.CeilingGuard {
		b.ApplyImpulse(0, wb.cfg.Physics.CeilingImpulse)
	}
}
