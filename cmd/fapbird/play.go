package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fapbird/internal/core"
	"github.com/vovakirdan/fapbird/internal/games/flappy"
	"github.com/vovakirdan/fapbird/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing in the terminal.

Controls:
  Space/Up   - Flap
  R/Enter    - Restart (after game over), or click [ Restart ]
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Wider gaps, softer flap
  normal - Config as loaded
  hard   - Narrower gaps, stronger flap

Examples:
  fapbird play
  fapbird play --difficulty easy
  fapbird play --config ./my-flappy.toml --log-file fapbird.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The terminal belongs to the UI, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	game, err := flappy.New(cfg, seed(), logger)
	if err != nil {
		return err
	}
	defer game.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: cfg.TickInterval(),
	}

	logger.Info("starting", "width", width, "height", height, "difficulty", flagDifficulty)
	if err := tui.Run(game, rt, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
