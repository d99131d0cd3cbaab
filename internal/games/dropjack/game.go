// Package dropjack adapts the DropJack engine to the arcade platform: it maps
// input frames onto session intents, drives the session clock and draws
// snapshots into a screen buffer.
package dropjack

import (
	"time"

	platformcore "github.com/sdeming/dropjack-sub000/internal/core"
	"github.com/sdeming/dropjack-sub000/internal/games/dropjack/core"
)

// Options configures a Game.
type Options struct {
	Config core.Config
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Game is a DropJack session behind the platform game interface.
type Game struct {
	session *core.Session
	clock   func() time.Time

	screenW int
	screenH int
}

// New creates a game on the start screen.
func New(opts Options) (*Game, error) {
	session, err := core.NewSession(opts.Config)
	if err != nil {
		return nil, err
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Game{session: session, clock: clock}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "dropjack"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "DropJack"
}

// Session exposes the engine for inspection.
func (g *Game) Session() *core.Session {
	return g.session
}

// Reset reseeds the session and returns to the start screen.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = g.clock().UnixNano()
	}
	g.screenW, g.screenH = cfg.ScreenW, cfg.ScreenH
	g.session.Reset(seed)
}

// Resize records the terminal size without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
}

// Step applies one frame of input and advances the session to the current
// time.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	now := g.clock()
	g.dispatch(in, now)
	g.session.Tick(now)

	var events []string
	for _, e := range g.session.DrainEvents() {
		events = append(events, e.String())
	}
	return platformcore.StepResult{
		State:  g.State(),
		Quit:   g.session.Quitting(),
		Events: events,
	}
}

func (g *Game) dispatch(in platformcore.InputFrame, now time.Time) {
	s := g.session
	has := in.Has

	switch s.State() {
	case core.StateStart:
		switch {
		case has(platformcore.ActionBack), has(platformcore.ActionQuit):
			s.RequestQuit()
		case has(platformcore.ActionConfirm), has(platformcore.ActionDrop):
			s.StartGame(s.Difficulty(), now)
		case has(platformcore.ActionLeft), has(platformcore.ActionRight),
			has(platformcore.ActionUp), has(platformcore.ActionDown):
			s.ToggleDifficulty()
		}

	case core.StatePlaying:
		if has(platformcore.ActionPause) || has(platformcore.ActionBack) || has(platformcore.ActionQuit) {
			s.Pause()
			return
		}
		if has(platformcore.ActionLeft) {
			s.MoveLeft()
		}
		if has(platformcore.ActionRight) {
			s.MoveRight()
		}
		if has(platformcore.ActionDown) {
			s.SoftDrop(now)
		}
		if has(platformcore.ActionDrop) {
			s.HardDrop(now)
		}

	case core.StatePaused:
		switch {
		case has(platformcore.ActionYes):
			s.Forfeit()
		case has(platformcore.ActionPause), has(platformcore.ActionBack), has(platformcore.ActionNo):
			s.Resume()
		}

	case core.StateGameOver:
		if has(platformcore.ActionErase) {
			s.RemoveInitialChar()
		}
		for _, r := range in.Runes {
			s.AddInitialChar(r)
		}
		if has(platformcore.ActionConfirm) {
			s.SubmitScore()
		}

	case core.StateQuitConfirm:
		switch {
		case has(platformcore.ActionYes), has(platformcore.ActionConfirm):
			s.ConfirmQuit()
		case has(platformcore.ActionNo), has(platformcore.ActionBack):
			s.CancelQuit()
		}
	}
}

// State returns the platform summary of the session.
func (g *Game) State() platformcore.GameState {
	s := g.session
	return platformcore.GameState{
		Score:    s.Score(),
		GameOver: s.State() == core.StateGameOver,
		Paused:   s.State() == core.StatePaused,
	}
}

// Quitting reports whether the player confirmed quitting.
func (g *Game) Quitting() bool {
	return g.session.Quitting()
}
