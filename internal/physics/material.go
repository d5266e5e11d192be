package physics

import "math"

// Material describes how a surface bounces and grips.
type Material struct {
	Restitution float64
	Friction    float64
}

// Material presets.
var (
	MaterialConcrete = Material{Restitution: 0.73, Friction: 0.65}
	MaterialIron     = Material{Restitution: 0.43, Friction: 0.8}
	MaterialPlastic  = Material{Restitution: 0.88, Friction: 0.35}
)

// Quaternion is an orientation. The world is planar, so only rotations about
// the Z axis are produced; X and Y stay zero.
type Quaternion struct {
	X, Y, Z, W float64
}

// NewQuaternion returns the identity rotation.
func NewQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionFromAngle returns a rotation of rad radians about Z.
func QuaternionFromAngle(rad float64) Quaternion {
	return Quaternion{Z: math.Sin(rad / 2), W: math.Cos(rad / 2)}
}

// Angle returns the rotation about Z in radians, in (-2π, 2π].
func (q Quaternion) Angle() float64 {
	return 2 * math.Atan2(q.Z, q.W)
}
