// Package chicken implements the session controller of the chicken leaping
// game: phases, obstacle layout, countdown, and leap resolution.
//
// The package is pure game logic. It has no knowledge of terminals or
// timers: the platform calls Start, Act and Reset on input and Tick with
// the elapsed time while Ticking reports that time matters.
package chicken

// Phase is the discrete stage of play.
type Phase int

const (
	PhaseNotStarted Phase = iota // Waiting for Start
	PhaseCountdown               // Start called, countdown messages running
	PhaseActive                  // Leaps are accepted
	PhaseLost                    // Terminal until Reset
	PhaseWon                     // Terminal until Reset
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseCountdown:
		return "countdown"
	case PhaseActive:
		return "active"
	case PhaseLost:
		return "lost"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Over reports whether the phase is terminal.
func (p Phase) Over() bool {
	return p == PhaseLost || p == PhaseWon
}

// Variant selects the resolution rules.
type Variant int

const (
	// VariantCrossing: static crocodiles, landing on one loses.
	VariantCrossing Variant = iota + 1
	// VariantHop: swinging crocodiles, the chicken must land on one.
	VariantHop
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantCrossing:
		return "crossing"
	case VariantHop:
		return "hop"
	default:
		return "unknown"
	}
}
