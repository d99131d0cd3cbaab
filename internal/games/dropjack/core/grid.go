package core

import (
	"strings"
	"time"
)

// Cell is one board slot.
type Cell struct {
	Card   Card
	Filled bool
}

// Removal reports a card taken off the board by a matured mark.
type Removal struct {
	Pos  Pos
	Card Card
}

// Motion records a card moved by a gravity pass.
// Settled is true when the card came to rest on the floor or on a card that
// did not move in the same pass.
type Motion struct {
	Card    Card
	X       int
	FromY   int
	ToY     int
	Settled bool
}

// Board is the fixed-size playing grid.
// Cells and marks are stored in row-major order: index = y*width + x.
// A zero time in marks means the cell carries no removal mark.
type Board struct {
	width   int
	height  int
	cells   []Cell
	marks   []time.Time
	motions []Motion
}

// NewBoard creates an empty board. Dimensions below 1 are raised to 1.
func NewBoard(width, height int) *Board {
	width = max(width, 1)
	height = max(height, 1)
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		marks:  make([]time.Time, width*height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

// IsValid reports whether (x, y) is on the board.
func (b *Board) IsValid(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// IsEmpty reports whether (x, y) is on the board and holds no card.
func (b *Board) IsEmpty(x, y int) bool {
	if !b.IsValid(x, y) {
		return false
	}
	return !b.cells[b.index(x, y)].Filled
}

// Get returns the card at (x, y).
func (b *Board) Get(x, y int) (Card, bool) {
	if !b.IsValid(x, y) {
		return Card{}, false
	}
	c := b.cells[b.index(x, y)]
	return c.Card, c.Filled
}

// Place puts card at (x, y) if the cell is valid and empty.
func (b *Board) Place(x, y int, card Card) bool {
	if !b.IsEmpty(x, y) {
		return false
	}
	b.cells[b.index(x, y)] = Cell{Card: card, Filled: true}
	return true
}

// Insert puts card at (x, y). When the cell is taken, the cards from (x, y)
// up to the first empty cell above are pushed up one row, marks included, so
// card ends up underneath them. It fails when (x, y) is invalid or the column
// has no room above.
func (b *Board) Insert(x, y int, card Card) bool {
	if b.Place(x, y, card) {
		return true
	}
	if !b.IsValid(x, y) {
		return false
	}
	free := y - 1
	for free >= 0 && b.cells[b.index(x, free)].Filled {
		free--
	}
	if free < 0 {
		return false
	}
	for row := free; row < y; row++ {
		dst, src := b.index(x, row), b.index(x, row+1)
		b.cells[dst] = b.cells[src]
		b.marks[dst] = b.marks[src]
	}
	i := b.index(x, y)
	b.cells[i] = Cell{Card: card, Filled: true}
	b.marks[i] = time.Time{}
	return true
}

// Remove clears (x, y) and its mark, returning the card that was there.
func (b *Board) Remove(x, y int) (Card, bool) {
	if !b.IsValid(x, y) {
		return Card{}, false
	}
	i := b.index(x, y)
	c := b.cells[i]
	b.cells[i] = Cell{}
	b.marks[i] = time.Time{}
	return c.Card, c.Filled
}

// MarkForRemoval schedules every occupied position to be removed at fireAt.
// An existing mark is overwritten. Invalid or empty positions are skipped.
func (b *Board) MarkForRemoval(positions []Pos, fireAt time.Time) {
	for _, p := range positions {
		if !b.IsValid(p.X, p.Y) {
			continue
		}
		i := b.index(p.X, p.Y)
		if !b.cells[i].Filled {
			continue
		}
		b.marks[i] = fireAt
	}
}

// IsMarked reports whether (x, y) carries a pending removal mark.
func (b *Board) IsMarked(x, y int) bool {
	_, ok := b.MarkDeadline(x, y)
	return ok
}

// MarkDeadline returns the removal deadline of (x, y).
func (b *Board) MarkDeadline(x, y int) (time.Time, bool) {
	if !b.IsValid(x, y) {
		return time.Time{}, false
	}
	t := b.marks[b.index(x, y)]
	return t, !t.IsZero()
}

// MarkCount returns the number of pending marks.
func (b *Board) MarkCount() int {
	n := 0
	for _, t := range b.marks {
		if !t.IsZero() {
			n++
		}
	}
	return n
}

// CollectMatured removes every card whose mark deadline is at or before now.
// Removals are returned in row-major order.
func (b *Board) CollectMatured(now time.Time) []Removal {
	var out []Removal
	for i, t := range b.marks {
		if t.IsZero() || now.Before(t) {
			continue
		}
		x, y := i%b.width, i/b.width
		card, ok := b.Remove(x, y)
		if ok {
			out = append(out, Removal{Pos: P(x, y), Card: card})
		}
	}
	return out
}

// ApplyGravity compacts every column toward the bottom in a single pass,
// keeping the vertical order of cards. Marks travel with their cards.
// It returns whether any card moved; Motions reports what moved.
func (b *Board) ApplyGravity() bool {
	b.motions = b.motions[:0]
	moved := false

	for x := 0; x < b.width; x++ {
		write := b.height - 1
		belowMoved := false
		for read := b.height - 1; read >= 0; read-- {
			ri := b.index(x, read)
			if !b.cells[ri].Filled {
				continue
			}
			if read != write {
				wi := b.index(x, write)
				b.cells[wi] = b.cells[ri]
				b.marks[wi] = b.marks[ri]
				b.cells[ri] = Cell{}
				b.marks[ri] = time.Time{}
				b.motions = append(b.motions, Motion{
					Card:    b.cells[wi].Card,
					X:       x,
					FromY:   read,
					ToY:     write,
					Settled: !belowMoved,
				})
				moved = true
				belowMoved = true
			} else {
				belowMoved = false
			}
			write--
		}
	}
	return moved
}

// Motions returns the motions recorded by the last ApplyGravity call.
func (b *Board) Motions() []Motion {
	out := make([]Motion, len(b.motions))
	copy(out, b.motions)
	return out
}

// Settle applies gravity until nothing moves and returns every motion made.
func (b *Board) Settle() []Motion {
	var all []Motion
	for b.ApplyGravity() {
		all = append(all, b.motions...)
	}
	return all
}

// HasAnyCardInTopRow reports whether row 0 holds a card.
func (b *Board) HasAnyCardInTopRow() bool {
	for x := 0; x < b.width; x++ {
		if b.cells[x].Filled {
			return true
		}
	}
	return false
}

// Occupied returns every occupied position in row-major order.
func (b *Board) Occupied() []Pos {
	var out []Pos
	for i, c := range b.cells {
		if c.Filled {
			out = append(out, P(i%b.width, i/b.width))
		}
	}
	return out
}

// Count returns the number of cards on the board.
func (b *Board) Count() int {
	n := 0
	for _, c := range b.cells {
		if c.Filled {
			n++
		}
	}
	return n
}

// Reset empties every cell and clears every mark.
func (b *Board) Reset() {
	clear(b.cells)
	clear(b.marks)
	b.motions = b.motions[:0]
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{
		width:  b.width,
		height: b.height,
		cells:  make([]Cell, len(b.cells)),
		marks:  make([]time.Time, len(b.marks)),
	}
	copy(c.cells, b.cells)
	copy(c.marks, b.marks)
	return c
}

// Equal reports whether two boards have the same dimensions, cards and marks.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] || !b.marks[i].Equal(other.marks[i]) {
			return false
		}
	}
	return true
}

// String renders the board one row per line, three runes per cell.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			c := b.cells[b.index(x, y)]
			if !c.Filled {
				sb.WriteString(" . ")
				continue
			}
			label := c.Card.String()
			if len([]rune(label)) < 3 {
				sb.WriteByte(' ')
			}
			sb.WriteString(label)
		}
	}
	return sb.String()
}
