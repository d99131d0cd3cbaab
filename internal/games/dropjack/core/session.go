package core

import (
	"math/rand"
	"time"
)

// MaxInitials is the length of a leaderboard name.
const MaxInitials = 3

// flight is a hard-dropped piece sliding toward its landing cell.
type flight struct {
	piece     Piece
	startRow  int
	startedAt time.Time
}

// Session owns one game: the board, the deck, the pieces, the score and the
// screen state. It is driven by intents and by Tick, and is not safe for
// concurrent use.
type Session struct {
	cfg   Config
	rng   *rand.Rand
	state State

	difficulty Difficulty
	board      *Board
	deck       *Deck
	next       Card
	scheduler  *Scheduler
	active     *Piece
	flights    []flight
	score      int

	fallInterval time.Duration
	lastFall     time.Time
	lastSpeedUp  time.Time

	// spawnX is the column of the last locked piece.
	spawnX    int
	hasSpawnX bool

	motions    []Motion
	events     []Event
	initials   []rune
	highScores []HighScore
	quitting   bool
}

// NewSession validates cfg and returns a session on the start screen.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.HighScoreLimit <= 0 {
		cfg.HighScoreLimit = DefaultConfig().HighScoreLimit
	}

	s := &Session{
		cfg:        cfg,
		difficulty: cfg.Difficulty,
		scheduler:  NewScheduler(cfg.CombinationDelay, cfg.CascadeBonus),
	}
	s.Reset(cfg.Seed)
	return s, nil
}

// Reset reseeds the session and returns it to the start screen with an
// empty board. The selected difficulty and the event queue are kept.
func (s *Session) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.state = StateStart
	s.board = NewBoard(s.cfg.Width, s.cfg.Height)
	s.deck = NewDeck()
	s.deck.Shuffle(s.rng)
	s.next = s.draw()
	s.scheduler.Reset()
	s.active = nil
	s.flights = nil
	s.score = 0
	s.fallInterval = s.cfg.InitialFallInterval
	s.hasSpawnX = false
	s.motions = nil
	s.initials = nil
	s.quitting = false
	s.RefreshHighScores()
}

// State returns the current screen.
func (s *Session) State() State { return s.state }

// Score returns the score of the current or last game.
func (s *Session) Score() int { return s.score }

// Difficulty returns the selected difficulty.
func (s *Session) Difficulty() Difficulty { return s.difficulty }

// Quitting reports whether the player confirmed quitting.
func (s *Session) Quitting() bool { return s.quitting }

// FallInterval returns the current time between automatic fall steps.
func (s *Session) FallInterval() time.Duration { return s.fallInterval }

// Initials returns the name typed on the game over screen.
func (s *Session) Initials() string { return string(s.initials) }

// Next returns the card that the next spawned piece will carry.
func (s *Session) Next() Card { return s.next }

// Active returns the piece under player control.
func (s *Session) Active() (Piece, bool) {
	if s.active == nil {
		return Piece{}, false
	}
	return *s.active, true
}

// InFlight returns the hard-dropped pieces that have not landed yet.
func (s *Session) InFlight() []Piece {
	out := make([]Piece, len(s.flights))
	for i, f := range s.flights {
		out[i] = f.piece
	}
	return out
}

// HighScores returns the cached leaderboard.
func (s *Session) HighScores() []HighScore {
	out := make([]HighScore, len(s.highScores))
	copy(out, s.highScores)
	return out
}

// DrainEvents returns the queued events and empties the queue.
func (s *Session) DrainEvents() []Event {
	out := s.events
	s.events = nil
	return out
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// RefreshHighScores reloads the leaderboard. On failure the cached list is
// kept.
func (s *Session) RefreshHighScores() {
	if s.cfg.Scores == nil {
		return
	}
	list, err := s.cfg.Scores.TopScores(s.cfg.HighScoreLimit)
	if err != nil {
		return
	}
	s.highScores = list
}

// draw takes the next card, refilling the deck when it runs out.
func (s *Session) draw() Card {
	c, ok := s.deck.Draw()
	if !ok {
		s.deck.Reset(s.rng)
		c, _ = s.deck.Draw()
	}
	return c
}

// Tick advances the simulation to now. It does nothing outside Playing.
func (s *Session) Tick(now time.Time) {
	if s.state != StatePlaying {
		return
	}
	s.motions = s.motions[:0]

	s.resolveRemovals(now)
	s.advanceFlights(now)
	if s.active == nil {
		s.spawn(now)
	}
	s.speedUp(now)
	if now.Sub(s.lastFall) >= s.fallInterval {
		s.lastFall = now
		s.advanceActive(now)
	}
	s.checkGameOver()
}

func (s *Session) resolveRemovals(now time.Time) {
	removed := s.scheduler.Collect(s.board, now)
	if len(removed) > 0 {
		s.score += len(removed) * s.cfg.BaseScore
		for range removed {
			s.emit(EventExplodeCard)
		}
		s.motions = append(s.motions, s.board.Settle()...)
	}

	out := s.scheduler.Advance(s.board, s.difficulty, now)
	if !out.Resolved {
		return
	}
	s.motions = append(s.motions, out.Motions...)
	if out.Next != nil {
		s.score += out.Bonus
		s.emit(EventMakeMatch)
	}
}

func (s *Session) advanceFlights(now time.Time) {
	if len(s.flights) == 0 {
		return
	}

	var landed []Piece
	kept := s.flights[:0]
	for _, f := range s.flights {
		rows := int(now.Sub(f.startedAt) / s.cfg.HardDropRowInterval)
		f.piece.Pos.Y = min(f.startRow+rows, f.piece.DropTarget.Y)
		f.piece.Target = f.piece.Pos
		if f.piece.Pos.Y >= f.piece.DropTarget.Y {
			landed = append(landed, f.piece)
			continue
		}
		kept = append(kept, f)
	}
	s.flights = kept

	for _, p := range landed {
		s.lock(p, now)
	}
}

func (s *Session) spawn(now time.Time) {
	x := s.board.Width() / 2
	if s.hasSpawnX {
		x = s.spawnX
	}
	p := NewPiece(PieceConfig{Card: s.next, Column: x, Width: s.board.Width()})
	s.next = s.draw()
	s.active = &p
	s.lastFall = now
}

func (s *Session) speedUp(now time.Time) {
	if now.Sub(s.lastSpeedUp) < s.cfg.SpeedIncreaseInterval {
		return
	}
	s.lastSpeedUp = now
	faster := time.Duration(float64(s.fallInterval) * s.cfg.SpeedFactor)
	s.fallInterval = max(faster, s.cfg.MinFallInterval)
}

// open reports whether a piece may enter p: on the board, empty, and not the
// landing cell of a hard drop still in flight.
func (s *Session) open(p Pos) bool {
	return s.board.IsEmpty(p.X, p.Y) && !s.reserved(p)
}

func (s *Session) reserved(p Pos) bool {
	for _, f := range s.flights {
		if f.piece.DropTarget == p {
			return true
		}
	}
	return false
}

// advanceActive moves the active piece one row: diagonally toward a pending
// sideways target when both corner cells are free, else straight down, else
// it locks where it is.
func (s *Session) advanceActive(now time.Time) {
	p := s.active
	if p == nil {
		return
	}
	from := p.Pos

	if p.Target.X != from.X {
		dst := P(p.Target.X, from.Y+1)
		if s.open(dst) && s.open(P(p.Target.X, from.Y)) && s.open(P(from.X, from.Y+1)) {
			p.Pos, p.Target = dst, dst
			return
		}
	}

	down := P(from.X, from.Y+1)
	if s.open(down) {
		p.Pos, p.Target = down, down
		return
	}

	s.active = nil
	s.lock(*p, now)
}

// lock puts the piece's card on the board and runs the combination search.
func (s *Session) lock(p Piece, now time.Time) {
	s.spawnX, s.hasSpawnX = p.Pos.X, true

	// Gravity can pull a later card into a hard drop's landing cell while the
	// drop is in flight; the dropped card slides in underneath it. A full
	// column loses the card and the game-over check ends the game.
	s.board.Insert(p.Pos.X, p.Pos.Y, p.Card)
	s.emit(EventDropCard)
	s.motions = append(s.motions, s.board.Settle()...)

	if found := FindCombinations(s.board, s.difficulty); len(found) > 0 {
		s.scheduler.Schedule(s.board, found, now, FirstChain)
		s.emit(EventMakeMatch)
	}
}

func (s *Session) checkGameOver() {
	s.motions = append(s.motions, s.board.Settle()...)
	if !s.board.HasAnyCardInTopRow() {
		return
	}
	s.state = StateGameOver
	s.active = nil
	s.flights = nil
	s.initials = s.initials[:0]
	s.scheduler.Reset()
	s.emit(EventGameOver)
}

// MoveLeft queues a one-column move to the left.
func (s *Session) MoveLeft() bool {
	return s.shift(-1, EventMoveLeft)
}

// MoveRight queues a one-column move to the right.
func (s *Session) MoveRight() bool {
	return s.shift(1, EventMoveRight)
}

// shift accepts a sideways move only when the piece has no move pending and
// the neighbouring cell is free. The piece reaches it on its next advance.
func (s *Session) shift(dx int, e Event) bool {
	if s.state != StatePlaying || s.active == nil || !s.active.AtTarget() {
		return false
	}
	dst := s.active.Pos.Add(P(dx, 0))
	if !s.open(dst) {
		return false
	}
	s.active.Target = dst
	s.emit(e)
	return true
}

// SoftDrop advances the active piece one row immediately and restarts the
// fall timer.
func (s *Session) SoftDrop(now time.Time) {
	if s.state != StatePlaying || s.active == nil {
		return
	}
	s.emit(EventSoftDrop)
	s.lastFall = now
	s.advanceActive(now)
}

// HardDrop commits the active piece to the lowest free cell of its column.
// The piece keeps falling on its own while the next one spawns; a piece that
// cannot descend locks at once.
func (s *Session) HardDrop(now time.Time) {
	if s.state != StatePlaying || s.active == nil {
		return
	}
	p := *s.active
	s.active = nil
	s.emit(EventHardDrop)

	row := p.Pos.Y
	for s.open(P(p.Pos.X, row+1)) {
		row++
	}
	if row == p.Pos.Y {
		s.lock(p, now)
		return
	}

	p.Target = p.Pos
	p.FastFall = true
	p.DropTarget = P(p.Pos.X, row)
	s.flights = append(s.flights, flight{piece: p, startRow: p.Pos.Y, startedAt: now})
	s.spawn(now)
}

// SelectDifficulty picks the difficulty on the start screen.
func (s *Session) SelectDifficulty(d Difficulty) {
	if s.state != StateStart || (d != Easy && d != Hard) {
		return
	}
	s.difficulty = d
	s.emit(EventDifficultyChange)
}

// ToggleDifficulty switches between Easy and Hard on the start screen.
func (s *Session) ToggleDifficulty() {
	s.SelectDifficulty(s.difficulty.Toggle())
}

// StartGame begins a new game from the start or game over screen.
func (s *Session) StartGame(d Difficulty, now time.Time) {
	if s.state != StateStart && s.state != StateGameOver {
		return
	}
	if d == Easy || d == Hard {
		s.difficulty = d
	}

	s.board = NewBoard(s.cfg.Width, s.cfg.Height)
	s.deck.Reset(s.rng)
	s.next = s.draw()
	s.scheduler.Reset()
	s.active = nil
	s.flights = nil
	s.score = 0
	s.fallInterval = s.cfg.InitialFallInterval
	s.lastFall = now
	s.lastSpeedUp = now
	s.hasSpawnX = false
	s.motions = nil
	s.initials = nil
	s.state = StatePlaying
	s.emit(EventStartGame)
}

// Pause stops the simulation. Pending marks keep their deadlines.
func (s *Session) Pause() {
	if s.state != StatePlaying {
		return
	}
	s.state = StatePaused
	s.emit(EventPauseGame)
}

// Resume continues a paused game.
func (s *Session) Resume() {
	if s.state != StatePaused {
		return
	}
	s.state = StatePlaying
	s.emit(EventResumeGame)
}

// Forfeit abandons a paused game and returns to the start screen.
func (s *Session) Forfeit() {
	if s.state != StatePaused {
		return
	}
	s.active = nil
	s.flights = nil
	s.scheduler.Reset()
	s.state = StateStart
	s.emit(EventForfeitGame)
	s.RefreshHighScores()
}

// RequestQuit asks for confirmation before leaving from the start screen.
func (s *Session) RequestQuit() {
	if s.state != StateStart {
		return
	}
	s.state = StateQuitConfirm
	s.emit(EventOpenQuitConfirmation)
}

// ConfirmQuit accepts the quit prompt.
func (s *Session) ConfirmQuit() {
	if s.state != StateQuitConfirm {
		return
	}
	s.quitting = true
	s.emit(EventQuitGame)
}

// CancelQuit dismisses the quit prompt.
func (s *Session) CancelQuit() {
	if s.state != StateQuitConfirm {
		return
	}
	s.state = StateStart
	s.emit(EventReturnToGame)
}

// AddInitialChar appends an ASCII letter, uppercased, to the initials.
func (s *Session) AddInitialChar(r rune) bool {
	if s.state != StateGameOver || len(s.initials) >= MaxInitials {
		return false
	}
	switch {
	case r >= 'a' && r <= 'z':
		r -= 'a' - 'A'
	case r >= 'A' && r <= 'Z':
	default:
		return false
	}
	s.initials = append(s.initials, r)
	return true
}

// RemoveInitialChar deletes the last typed letter.
func (s *Session) RemoveInitialChar() bool {
	if s.state != StateGameOver || len(s.initials) == 0 {
		return false
	}
	s.initials = s.initials[:len(s.initials)-1]
	return true
}

// SubmitScore records the finished game under the typed initials and returns
// to the start screen. Without initials nothing is recorded.
func (s *Session) SubmitScore() {
	if s.state != StateGameOver {
		return
	}
	if len(s.initials) > 0 && s.cfg.Scores != nil {
		// Recording failures are the book's to report.
		_ = s.cfg.Scores.RecordScore(string(s.initials), s.score, s.difficulty)
	}
	s.initials = nil
	s.state = StateStart
	s.RefreshHighScores()
}
