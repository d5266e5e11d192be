package flappy

import (
	"math/rand"

	"github.com/vovakirdan/fapbird/internal/config"
	"github.com/vovakirdan/fapbird/internal/core"
)

// Layout is the fixed geometry used to place obstacle pairs.
type Layout struct {
	WorldWidth  int // Right screen edge; the first pair is placed one spacing past it
	WorldHeight int // Playable height above the ground
	Width       int // Pipe width
	Distance    int // Free space between consecutive pairs
	GapHeight   int
}

// LayoutFromConfig extracts the placement geometry from cfg.
func LayoutFromConfig(cfg config.FlappyConfig) Layout {
	return Layout{
		WorldWidth:  cfg.World.Width,
		WorldHeight: cfg.WorldHeight(),
		Width:       cfg.Obstacles.Width,
		Distance:    cfg.Obstacles.Distance,
		GapHeight:   cfg.Obstacles.GapHeight,
	}
}

// Spacing returns the distance between the left edges of neighbouring pairs.
func (l Layout) Spacing() int {
	return l.Distance + l.Width
}

// GapBand returns the inclusive range a gap centre may take.
func (l Layout) GapBand() (lo, hi int) {
	return l.GapHeight, l.WorldHeight - l.GapHeight
}

// Place puts p one spacing to the right of anchor with a random gap and
// returns the pair's new x, which is the anchor for the next pair.
func (l Layout) Place(p *ObstaclePair, anchor int, rng *rand.Rand) int {
	lo, hi := l.GapBand()
	center := core.Clamp(rng.Intn(l.WorldHeight), lo, hi)
	return l.PlaceAt(p, anchor, center)
}

// PlaceAt is Place with a chosen gap centre.
func (l Layout) PlaceAt(p *ObstaclePair, anchor, center int) int {
	x := anchor + l.Spacing()
	half := l.GapHeight / 2

	top := center - half
	p.Top = core.NewRect(x, 0, l.Width, top)

	bottom := center + half
	p.Bottom = core.NewRect(x, bottom, l.Width, l.WorldHeight-bottom)

	p.Consumed = false
	return x
}
