package core

import "time"

// CellView is a read-only view of one board cell.
type CellView struct {
	Card   Card
	Filled bool
	Marked bool
}

// Snapshot is everything a presentation layer needs for one frame.
// It shares no memory with the session.
type Snapshot struct {
	State      State
	Difficulty Difficulty
	Score      int
	Phase      Phase
	Chain      int

	Width  int
	Height int
	Cells  []CellView // row-major

	Motions      []Motion
	Active       *Piece
	InFlight     []Piece
	Next         Card
	FallInterval time.Duration

	Initials   string
	HighScores []HighScore
}

// Cell returns the view at (x, y); out-of-range positions read as empty.
func (s Snapshot) Cell(x, y int) CellView {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return CellView{}
	}
	return s.Cells[y*s.Width+x]
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	b := s.board
	cells := make([]CellView, len(b.cells))
	for i, c := range b.cells {
		cells[i] = CellView{Card: c.Card, Filled: c.Filled, Marked: !b.marks[i].IsZero()}
	}

	snap := Snapshot{
		State:        s.state,
		Difficulty:   s.difficulty,
		Score:        s.score,
		Phase:        s.scheduler.Phase(),
		Chain:        s.scheduler.Chain(),
		Width:        b.width,
		Height:       b.height,
		Cells:        cells,
		Motions:      append([]Motion(nil), s.motions...),
		InFlight:     s.InFlight(),
		Next:         s.next,
		FallInterval: s.fallInterval,
		Initials:     string(s.initials),
		HighScores:   s.HighScores(),
	}
	if s.active != nil {
		p := *s.active
		snap.Active = &p
	}
	return snap
}
