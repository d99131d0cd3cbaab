package core

// Piece is a card under player control or in a committed hard drop.
type Piece struct {
	Card Card
	// Pos is the cell the piece occupies.
	Pos Pos
	// Target is where the piece is heading; a pending sideways move puts it
	// one column beside Pos.
	Target Pos
	// Falling is true while the piece is still in play.
	Falling bool
	// FastFall is set once the piece has been hard dropped.
	FastFall bool
	// DropTarget is the landing cell of a hard drop.
	DropTarget Pos
}

// PieceConfig configures NewPiece. Zero fields take their defaults: the
// piece starts at Column, Row 0, heading nowhere, falling normally.
type PieceConfig struct {
	Card   Card
	Column int
	Row    int
	// Width clamps Column into [0, Width) when positive.
	Width int
}

// NewPiece creates a falling piece from cfg.
func NewPiece(cfg PieceConfig) Piece {
	x := cfg.Column
	if cfg.Width > 0 {
		x = min(max(x, 0), cfg.Width-1)
	}
	pos := P(x, max(cfg.Row, 0))
	return Piece{
		Card:    cfg.Card,
		Pos:     pos,
		Target:  pos,
		Falling: true,
	}
}

// AtTarget reports whether the piece has no pending sideways move.
func (p Piece) AtTarget() bool {
	return p.Pos == p.Target
}
