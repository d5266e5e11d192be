package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fapbird/internal/core"
	"github.com/vovakirdan/fapbird/internal/games/flappy"
	"github.com/vovakirdan/fapbird/internal/platform/tui"
)

var (
	flagTicks     int
	flagFlapEvery int
	flagRestarts  int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless and print a summary",
	Long: `Run the game without a terminal UI. The bird flaps every --flap-every
ticks; after a game over the game restarts until --restarts is used up.

Examples:
  fapbird sim
  fapbird sim --seed 42 --ticks 20000 --flap-every 25 --restarts 3
  fapbird sim --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Total ticks to simulate")
	simCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 30, "Flap period in ticks (0 = never flap)")
	simCmd.Flags().IntVar(&flagRestarts, "restarts", 0, "Restarts allowed after a game over")
}

// simOptions drives a headless run.
type simOptions struct {
	Ticks     int
	FlapEvery int
	Restarts  int
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s := seed()
	game, err := flappy.New(cfg, s, logger)
	if err != nil {
		return err
	}
	defer game.Close()

	runs := simulate(game, simOptions{Ticks: flagTicks, FlapEvery: flagFlapEvery, Restarts: max(flagRestarts, 0)}, logger)

	fmt.Fprintf(cmd.OutOrStdout(), "seed %d, %d ticks\n", s, flagTicks)
	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderRuns(runs))
	return nil
}

// simulate steps game for opts.Ticks ticks and returns one record per run.
func simulate(game *flappy.Game, opts simOptions, logger *log.Logger) []tui.RunRecord {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	runs := []tui.RunRecord{{Run: 1}}
	restarts := opts.Restarts
	cur := &runs[0]

	for n := range opts.Ticks {
		in := core.NewInputFrame()
		if game.State().GameOver {
			if restarts == 0 {
				break
			}
			restarts--
			in.Set(core.ActionRestart)
			runs = append(runs, tui.RunRecord{Run: len(runs) + 1})
			cur = &runs[len(runs)-1]
		}
		if opts.FlapEvery > 0 && cur.Ticks%opts.FlapEvery == 0 {
			in.Set(core.ActionFlap)
		}

		res := game.Step(in)
		cur.Ticks++
		cur.Score = res.State.Score
		if res.Recycled {
			cur.Recycles++
		}
		if res.State.GameOver && !cur.Stopped {
			cur.Stopped = true
			logger.Debug("run stopped", "run", cur.Run, "tick", n, "score", cur.Score)
		}
	}
	return runs
}
