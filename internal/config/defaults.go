package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: FlappyWorld{
			Width:          800,
			Height:         600,
			GroundHeight:   50,
			TickIntervalMS: 10,
		},
		Physics: FlappyPhysics{
			Gravity:        294,
			CeilingGuard:   5,
			CeilingImpulse: 200,
		},
		Obstacles: FlappyObstacles{
			Count:     4,
			Distance:  300,
			GapHeight: 150,
			Width:     75,
		},
		Player: FlappyPlayer{
			Size:         50,
			Mass:         1.5,
			FlapVelocity: -170,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
