package flappy

import (
	"strconv"

	"github.com/vovakirdan/fapbird/internal/core"
)

// Visual cells
var (
	skyCell    = core.Cell{Rune: ' ', Background: core.ColorBlue}
	pipeCell   = core.Cell{Rune: '█', Color: core.ColorRed, Background: core.ColorBlue}
	groundCell = core.Cell{Rune: '▓', Color: core.ColorGreen, Background: core.ColorGreen}
	birdCell   = core.Cell{Rune: '█', Color: core.ColorBrightWhite, Background: core.ColorBlue}
	popupCell  = core.Cell{Rune: ' ', Color: core.ColorBrightWhite, Background: core.ColorGray}
)

const restartLabel = "[ Restart ]"

// Render draws the world scaled to dst.
func (g *Game) Render(dst *core.Screen) {
	bounds := g.world.Bounds()
	sx := float64(dst.Width()) / float64(bounds.W)
	sy := float64(dst.Height()) / float64(bounds.H)
	scale := func(r core.Rect) core.Rect {
		s := r.Scale(sx, sy)
		s.W = core.Max(s.W, 1)
		s.H = core.Max(s.H, 1)
		return s
	}

	dst.Fill(skyCell)

	ground := core.NewRect(0, g.cfg.WorldHeight(), g.cfg.World.Width, g.cfg.World.GroundHeight)
	dst.DrawRect(scale(ground), groundCell)

	for _, p := range g.session.Pool().Pairs() {
		dst.DrawRect(scale(p.Top), pipeCell)
		dst.DrawRect(scale(p.Bottom), pipeCell)
	}

	dst.DrawRect(scale(g.bodies.Bird()), birdCell)

	// Score sits centred near the top of the sky
	scoreY := int(float64(g.cfg.WorldHeight()) * 0.07 * sy)
	score := " " + strconv.Itoa(g.session.Score()) + " "
	dst.DrawTextStyled((dst.Width()-len(score))/2, scoreY, score, core.ColorBrightWhite, core.ColorBlack)

	g.restartButton = core.Rect{}
	if g.session.State() == StateStopped {
		g.drawGameOver(dst)
	}
}

// drawGameOver draws the modal popup and records the button position.
func (g *Game) drawGameOver(dst *core.Screen) {
	title := "Game Over"
	subtitle := "Score: " + strconv.Itoa(g.session.Score())

	boxW := core.Max(len(restartLabel), len(subtitle)) + 6
	boxH := 7
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, popupCell)
	dst.DrawBox(box)

	// The box is centred on screen, so centring on the screen centres in the box.
	dst.DrawTextCentered(box.Y+1, title)
	dst.DrawHLine(box.X+1, box.Y+2, boxW-2, '─')
	dst.DrawTextCentered(box.Y+3, subtitle)

	btn := core.NewRect(box.X+(boxW-len(restartLabel))/2, box.Y+5, len(restartLabel), 1)
	dst.DrawTextStyled(btn.X, btn.Y, restartLabel, core.ColorBlack, core.ColorBrightWhite)
	g.restartButton = btn
}
