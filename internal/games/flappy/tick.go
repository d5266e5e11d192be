package flappy

// tick advances the world by one distance unit.
//
// Every pair shifts left. The first time the player's x is past a pair it is
// consumed and scores; otherwise the first pair found fully off the left edge
// is recycled to the back, placed one spacing after the last pair. Pair
// spacing guarantees at most one pair leaves the screen per tick.
func (s *Session) tick() Outcome {
	var out Outcome
	if s.state != StateRunning {
		return out
	}

	playerX := s.bodies.PlayerX()
	candidate := -1
	anchor := 0

	for i := range s.pool.Len() {
		slot, p := s.pool.At(i)
		p.Top = p.Top.Translate(-1, 0)
		p.Bottom = p.Bottom.Translate(-1, 0)
		s.bodies.PlaceObstacle(slot, p.Top, p.Bottom)

		anchor = p.X()
		if playerX > p.X() && !p.Consumed {
			p.Consumed = true
			s.score++
			out.Scored++
		} else if candidate < 0 && p.Right() < -1 {
			candidate = i
		}
	}

	if candidate >= 0 {
		slot := s.pool.Recycle(candidate)
		p := s.pool.Slot(slot)
		x := s.layout.Place(p, anchor, s.rng)
		s.bodies.PlaceObstacle(slot, p.Top, p.Bottom)

		out.Recycled = true
		out.Slot = slot
		s.logger.Debug("recycled obstacle", "slot", slot, "x", x, "gap", p.GapCenter())
	}

	return out
}
