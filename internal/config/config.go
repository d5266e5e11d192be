// Package config provides YAML/TOML-based game configuration loading and
// difficulty presets for the game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	World     FlappyWorld     `yaml:"world" toml:"world"`
	Physics   FlappyPhysics   `yaml:"physics" toml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles" toml:"obstacles"`
	Player    FlappyPlayer    `yaml:"player" toml:"player"`
}

// FlappyWorld defines the size of the playfield in world units.
type FlappyWorld struct {
	Width          int `yaml:"width" toml:"width"`
	Height         int `yaml:"height" toml:"height"`
	GroundHeight   int `yaml:"ground_height" toml:"ground_height"`
	TickIntervalMS int `yaml:"tick_interval_ms" toml:"tick_interval_ms"`
}

// FlappyPhysics defines physics engine parameters.
type FlappyPhysics struct {
	Gravity        float64 `yaml:"gravity" toml:"gravity"`                 // Downward acceleration, units/s^2
	CeilingGuard   int     `yaml:"ceiling_guard" toml:"ceiling_guard"`     // Bird top above this y gets pushed down
	CeilingImpulse float64 `yaml:"ceiling_impulse" toml:"ceiling_impulse"` // Downward impulse applied by the guard
}

// FlappyObstacles defines obstacle pool parameters.
type FlappyObstacles struct {
	Count     int `yaml:"count" toml:"count"`           // Pairs in the pool
	Distance  int `yaml:"distance" toml:"distance"`     // Horizontal gap between consecutive pairs
	GapHeight int `yaml:"gap_height" toml:"gap_height"` // Height of the opening
	Width     int `yaml:"width" toml:"width"`
}

// FlappyPlayer defines player parameters.
type FlappyPlayer struct {
	Size         int     `yaml:"size" toml:"size"`
	Mass         float64 `yaml:"mass" toml:"mass"`
	FlapVelocity float64 `yaml:"flap_velocity" toml:"flap_velocity"` // Vertical velocity set on flap (negative = up)
}

// WorldHeight returns the playable height above the ground.
func (c FlappyConfig) WorldHeight() int {
	return c.World.Height - c.World.GroundHeight
}

// TickInterval returns the world timer period.
func (c FlappyConfig) TickInterval() time.Duration {
	return time.Duration(c.World.TickIntervalMS) * time.Millisecond
}

// Validate checks that the configuration describes a playable world.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.World.GroundHeight < 0 || c.World.GroundHeight >= c.World.Height {
		errs = append(errs, fmt.Errorf("ground_height %d out of range", c.World.GroundHeight))
	}
	if c.World.TickIntervalMS <= 0 {
		errs = append(errs, errors.New("tick_interval_ms must be positive"))
	}
	if c.Obstacles.Count <= 0 {
		errs = append(errs, errors.New("obstacles.count must be positive"))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Distance <= 0 {
		errs = append(errs, errors.New("obstacles.width and obstacles.distance must be positive"))
	}
	if c.Obstacles.GapHeight <= 0 || 2*c.Obstacles.GapHeight >= c.WorldHeight() {
		errs = append(errs, fmt.Errorf("gap_height %d does not fit world height %d", c.Obstacles.GapHeight, c.WorldHeight()))
	}
	// Recycled pairs re-enter one spacing behind the last pair, so the pool
	// has to span the screen or they would appear on it.
	if c.Obstacles.Count > 0 && c.Obstacles.Count*(c.Obstacles.Distance+c.Obstacles.Width) < c.World.Width {
		errs = append(errs, fmt.Errorf("obstacles.count %d with spacing %d does not span world width %d",
			c.Obstacles.Count, c.Obstacles.Distance+c.Obstacles.Width, c.World.Width))
	}
	if c.Player.Size <= 0 || c.Player.Mass <= 0 {
		errs = append(errs, errors.New("player.size and player.mass must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
