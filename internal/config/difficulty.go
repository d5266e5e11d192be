package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset.
// The empty string means "keep the loaded config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyFlappyPreset modifies the config based on a difficulty preset.
// Easy widens the gap and softens the flap; hard does the opposite.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.GapHeight = cfg.Obstacles.GapHeight * 6 / 5
		cfg.Player.FlapVelocity *= 0.9
	case DifficultyHard:
		cfg.Obstacles.GapHeight = cfg.Obstacles.GapHeight * 4 / 5
		cfg.Player.FlapVelocity *= 1.1
	}
}
