package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/fapbird/internal/config"
	"github.com/vovakirdan/fapbird/internal/core"
	"github.com/vovakirdan/fapbird/internal/physics"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g, err := New(config.DefaultFlappyConfig(), seed, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(g.Close)
	return g
}

func flapFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionFlap)
	return in
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Obstacles.GapHeight = cfg.WorldHeight()

	if _, err := New(cfg, 1, nil); err == nil {
		t.Error("expected error for a gap taller than the world")
	}
}

func TestNewRejectsNonFiniteGravity(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 1 / zero()

	if _, err := New(cfg, 1, nil); err == nil {
		t.Error("expected error for infinite gravity")
	}
}

func zero() float64 { return 0 }

func TestGameTitle(t *testing.T) {
	g := newTestGame(t, 1)
	if g.Title() != "Fap bird" {
		t.Errorf("unexpected title %q", g.Title())
	}
}

func TestGameBirdFallsOntoGround(t *testing.T) {
	g := newTestGame(t, 1)

	start := g.bodies.Bird()
	if start.X != 200 || start.Y != 275 {
		t.Fatalf("expected bird at (200, 275), got (%d, %d)", start.X, start.Y)
	}

	ticks := 0
	for !g.State().GameOver && ticks < 500 {
		g.Step(core.NewInputFrame())
		ticks++
	}

	if !g.State().GameOver {
		t.Fatal("bird never hit the ground")
	}
	if g.bodies.Bird().Bottom() < g.cfg.WorldHeight()-20 {
		t.Errorf("expected bird near the ground, got %+v", g.bodies.Bird())
	}
}

func TestGameFlapLiftsBird(t *testing.T) {
	g := newTestGame(t, 1)

	before := g.bodies.Bird().Y
	g.Step(flapFrame())
	for range 5 {
		g.Step(core.NewInputFrame())
	}
	if g.bodies.Bird().Y >= before {
		t.Errorf("bird should rise after a flap: %d -> %d", before, g.bodies.Bird().Y)
	}
}

func TestGameCeilingContactKeepsRunning(t *testing.T) {
	g := newTestGame(t, 1)

	minY := g.bodies.Bird().Y
	// Pipes reach the bird after ~925 ticks; stay well before that.
	for n := range 400 {
		g.Step(flapFrame())
		if g.State().GameOver {
			t.Fatalf("flapping into the sky stopped the game at tick %d, bird %+v", n, g.bodies.Bird())
		}
		minY = min(minY, g.bodies.Bird().Y)
	}

	if minY >= g.cfg.Physics.CeilingGuard {
		t.Errorf("bird never reached the ceiling, min y %d", minY)
	}
	if y := g.bodies.Bird().Y; y < -g.cfg.Player.Size {
		t.Errorf("bird escaped through the sky, y=%d", y)
	}
}

// holdBird pins the bird at (x, y) with no velocity before the next step.
func holdBird(g *Game, x, y int) {
	g.bodies.bird.SetVelocity(0, 0)
	g.bodies.bird.Move(x, y)
}

func TestGamePipeSweepStops(t *testing.T) {
	g := newTestGame(t, 1)

	// Put the first gap well above a bird hovering at its start height.
	slot, p := g.Session().Pool().At(0)
	g.session.layout.PlaceAt(p, p.X()-g.session.layout.Spacing(), g.session.layout.GapHeight)
	g.bodies.PlaceObstacle(slot, p.Top, p.Bottom)

	start := g.bodies.birdStart()
	ticks := 0
	for !g.State().GameOver && ticks < 1500 {
		holdBird(g, start.X, start.Y)
		g.Step(core.NewInputFrame())
		ticks++
	}

	if !g.State().GameOver {
		t.Fatal("a pipe sweeping through the bird should stop the game")
	}
	if x := p.X(); x > start.Right() || p.Right() < start.X {
		t.Errorf("stopped with the pipe at x %d, away from the bird %+v", x, start)
	}
	if g.State().Score != 0 {
		t.Errorf("expected no score, got %d", g.State().Score)
	}
}

func TestGamePassThroughGapScores(t *testing.T) {
	g := newTestGame(t, 5)

	start := g.bodies.birdStart()
	for range 2000 {
		// Steer to the first pair the bird has not fully cleared.
		target := g.cfg.WorldHeight() / 2
		for _, p := range g.Session().Pool().Pairs() {
			if p.Right() >= start.X {
				target = p.GapCenter()
				break
			}
		}
		holdBird(g, start.X, target-start.H/2)
		g.Step(core.NewInputFrame())
		if g.State().GameOver {
			t.Fatalf("bird centred in the gap hit something, score %d", g.State().Score)
		}
	}

	// Pairs pass the bird after 926 and 1301 ticks.
	if g.State().Score < 2 {
		t.Errorf("expected at least 2 points, got %d", g.State().Score)
	}
}

func TestContactOf(t *testing.T) {
	g := newTestGame(t, 1)

	tests := []struct {
		name string
		body *physics.Body
		want Contact
	}{
		{"sky", g.bodies.sky, ContactSky},
		{"ground", g.bodies.ground, ContactGround},
		{"top pipe", g.bodies.pipes[0][0], ContactObstacle},
		{"bottom pipe", g.bodies.pipes[3][1], ContactObstacle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contactOf(tt.body); got != tt.want {
				t.Errorf("contactOf = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGameRestartOnlyWhenStopped(t *testing.T) {
	g := newTestGame(t, 3)

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)

	for range 20 {
		g.Step(core.NewInputFrame())
	}
	x := g.Session().Pool().Pairs()[0].X()
	g.Step(restart)
	if got := g.Session().Pool().Pairs()[0].X(); got != x-1 {
		t.Errorf("restart while running should be ignored, x %d -> %d", x, got)
	}

	for !g.State().GameOver {
		g.Step(core.NewInputFrame())
	}
	g.Step(restart)

	if g.State().GameOver {
		t.Error("expected running after restart")
	}
	if g.State().Score != 0 {
		t.Errorf("expected score 0, got %d", g.State().Score)
	}
	bird := g.bodies.Bird()
	if bird.X != 200 || bird.Y > 280 {
		t.Errorf("bird not reset: %+v", bird)
	}
	for _, p := range g.Session().Pool().Pairs() {
		if p.X() < 799 {
			t.Errorf("pair at x %d after restart", p.X())
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (core.GameState, []ObstaclePair, core.Rect) {
		g := newTestGame(t, 12345)
		for i := range 2000 {
			in := core.NewInputFrame()
			if i%30 == 0 {
				in.Set(core.ActionFlap)
			}
			g.Step(in)
		}
		return g.State(), g.Session().Pool().Pairs(), g.bodies.Bird()
	}

	s1, p1, b1 := run()
	s2, p2, b2 := run()

	if s1 != s2 {
		t.Errorf("states differ: %+v vs %+v", s1, s2)
	}
	if b1 != b2 {
		t.Errorf("bird positions differ: %+v vs %+v", b1, b2)
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Errorf("pair %d differs: %+v vs %+v", i, p1[i], p2[i])
		}
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if c := screen.GetCell(0, 23); c.Rune != groundCell.Rune {
		t.Errorf("expected ground at the bottom row, got %q", c.Rune)
	}
	if c := screen.GetCell(0, 5); c.Background != core.ColorBlue {
		t.Errorf("expected sky background, got %v", c.Background)
	}
	// Bird at world (200, 275) scales to column 20, row 11.
	if c := screen.GetCell(20, 11); c.Rune != birdCell.Rune {
		t.Errorf("expected bird at (20, 11), got %q", c.Rune)
	}
	if !g.RestartButton().Empty() {
		t.Error("no restart button while running")
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame(t, 1)
	for !g.State().GameOver {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	btn := g.RestartButton()
	if btn.Empty() {
		t.Fatal("expected a restart button on game over")
	}
	if got := string([]rune(screen.Row(btn.Y))[btn.X : btn.X+btn.W]); got != restartLabel {
		t.Errorf("expected %q at the button rect, got %q", restartLabel, got)
	}
	if !strings.Contains(screen.Row(btn.Y-4), "Game Over") {
		t.Errorf("expected title above the button, got %q", screen.Row(btn.Y-4))
	}
	if !strings.Contains(screen.Row(btn.Y-3), "───") {
		t.Errorf("expected a rule under the title, got %q", screen.Row(btn.Y-3))
	}
}
