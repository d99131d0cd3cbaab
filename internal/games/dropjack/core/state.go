package core

// State is the session screen. The set is closed; transitions live in the
// Session mutators.
type State int

const (
	StateStart State = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateQuitConfirm
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "StartScreen"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateQuitConfirm:
		return "QuitConfirm"
	default:
		return "Unknown"
	}
}
