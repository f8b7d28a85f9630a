package chicken

import "github.com/vovakirdan/chicken-arcade/internal/core"

// resolveCrossing applies the static-crocodile rules: landing exactly on a
// crocodile loses, reaching the finish wins, anything else moves forward.
func (c *Controller) resolveCrossing() Resolution {
	s := &c.session
	from := s.Position
	next := from + c.opts.Step

	for _, o := range s.Obstacles {
		if o.Y == next {
			c.lose(c.opts.Messages.Lost)
			return Resolution{Outcome: OutcomeCollided, From: from, To: from, ObstacleID: o.ID}
		}
	}

	if next >= c.opts.Finish {
		c.win()
		return Resolution{Outcome: OutcomeFinished, From: from, To: from, ObstacleID: -1}
	}

	s.Position = next
	if c.opts.Danger > 0 && next > c.opts.Danger {
		s.Message = c.opts.Messages.Danger
	}
	return Resolution{Outcome: OutcomeAdvanced, From: from, To: next, ObstacleID: -1}
}

// resolveHop applies the swinging-crocodile rules: the leap must land on a
// crocodile that is currently within tolerance of the chicken's lane.
func (c *Controller) resolveHop() Resolution {
	s := &c.session
	from := s.Position
	next := from + c.opts.Step

	landing, ok := c.alignedAt(next)
	if !ok {
		c.lose(c.opts.Messages.Missed)
		return Resolution{Outcome: OutcomeMissed, From: from, To: from, ObstacleID: -1}
	}

	s.Position = landing.Y
	if next >= c.opts.Finish {
		c.win()
		return Resolution{Outcome: OutcomeFinished, From: from, To: landing.Y, ObstacleID: landing.ID}
	}
	return Resolution{Outcome: OutcomeAdvanced, From: from, To: landing.Y, ObstacleID: landing.ID}
}

// alignedAt finds the obstacle at position y whose lane is within tolerance.
func (c *Controller) alignedAt(y int) (Obstacle, bool) {
	best := -1
	bestDist := 0
	for i, o := range c.session.Obstacles {
		if o.Y != y {
			continue
		}
		dist := core.Abs(o.X - c.opts.ActorX)
		if dist > c.opts.Tolerance {
			continue
		}
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return Obstacle{}, false
	}
	return c.session.Obstacles[best], true
}
