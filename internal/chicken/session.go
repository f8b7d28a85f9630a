package chicken

// Session is the mutable state of one playthrough.
type Session struct {
	Phase     Phase
	Position  int // Actor position along the course
	Obstacles []Obstacle
	Message   string
	Leaps     int // Leaps attempted while active
}

// Clone returns a deep copy of the session.
func (s Session) Clone() Session {
	clone := s
	if s.Obstacles != nil {
		clone.Obstacles = make([]Obstacle, len(s.Obstacles))
		copy(clone.Obstacles, s.Obstacles)
	}
	return clone
}

// Outcome classifies the result of a leap.
type Outcome int

const (
	OutcomeIgnored  Outcome = iota // Not active, nothing happened
	OutcomeAdvanced                // Moved forward, still playing
	OutcomeCollided                // Landed on a crocodile (crossing)
	OutcomeMissed                  // No crocodile to land on (hop)
	OutcomeFinished                // Reached the finish
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeCollided:
		return "collided"
	case OutcomeMissed:
		return "missed"
	case OutcomeFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Resolution describes what a single Act did.
type Resolution struct {
	Outcome    Outcome
	From, To   int // Actor position before and after
	ObstacleID int // Obstacle involved, -1 if none
}
