package flappy

// State is the session's run state.
type State int

const (
	StateRunning State = iota // World scrolls and scores
	StateStopped              // Waiting for a restart
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Contact identifies what the player touched.
type Contact int

const (
	ContactObstacle Contact = iota
	ContactGround
	ContactSky // Boundary body above the screen; never ends the game
)

// String returns a human-readable name for the contact.
func (c Contact) String() string {
	switch c {
	case ContactObstacle:
		return "obstacle"
	case ContactGround:
		return "ground"
	case ContactSky:
		return "sky"
	default:
		return "unknown"
	}
}

// collide applies a collision notification.
// Only the first non-sky contact of a run stops it.
func (s *Session) collide(c Contact) Outcome {
	if c == ContactSky || s.state != StateRunning {
		return Outcome{}
	}

	s.state = StateStopped
	s.logger.Info("game over", "score", s.score, "contact", c)
	return Outcome{Stopped: true}
}

// restart resets the player, lays every pair out again from the right edge
// and starts a new run with score 0.
func (s *Session) restart() Outcome {
	s.bodies.ResetPlayer()
	s.layoutObstacles()
	s.score = 0
	s.state = StateRunning

	s.logger.Info("restart")
	return Outcome{Restarted: true}
}
