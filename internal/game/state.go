// Package game provides the Minesweeper session: one field, one stopwatch
// and the action state machine that drives them.
package game

// Status represents the current session state.
type Status int

const (
	// StatusPre is the state after the field has been created but before
	// mines have been placed (placement waits for the first open).
	StatusPre Status = iota
	// StatusOn is an ongoing game.
	StatusOn
	// StatusPause is a paused game; all actions freeze until resumed.
	StatusPause
	// StatusWon is a finished, won game.
	StatusWon
	// StatusLost is a finished, lost game.
	StatusLost
)

// Ended returns true for the two terminal states.
func (s Status) Ended() bool {
	return s == StatusWon || s == StatusLost
}

// Won returns true only for a won, finished game.
func (s Status) Won() bool {
	return s == StatusWon
}

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPre:
		return "pre"
	case StatusOn:
		return "on"
	case StatusPause:
		return "pause"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}
