package core

// Event is a semantic notification for audio or other observers.
type Event int

const (
	EventDifficultyChange Event = iota
	EventStartGame
	EventPauseGame
	EventResumeGame
	EventOpenQuitConfirmation
	EventReturnToGame
	EventQuitGame
	EventDropCard
	EventMakeMatch
	EventExplodeCard
	EventForfeitGame
	EventGameOver
	EventMoveLeft
	EventMoveRight
	EventSoftDrop
	EventHardDrop
)

var eventNames = [...]string{
	EventDifficultyChange:     "DifficultyChange",
	EventStartGame:            "StartGame",
	EventPauseGame:            "PauseGame",
	EventResumeGame:           "ResumeGame",
	EventOpenQuitConfirmation: "OpenQuitConfirmation",
	EventReturnToGame:         "ReturnToGame",
	EventQuitGame:             "QuitGame",
	EventDropCard:             "DropCard",
	EventMakeMatch:            "MakeMatch",
	EventExplodeCard:          "ExplodeCard",
	EventForfeitGame:          "ForfeitGame",
	EventGameOver:             "GameOver",
	EventMoveLeft:             "MoveLeft",
	EventMoveRight:            "MoveRight",
	EventSoftDrop:             "SoftDrop",
	EventHardDrop:             "HardDrop",
}

// String returns the event name.
func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "Unknown"
	}
	return eventNames[e]
}
