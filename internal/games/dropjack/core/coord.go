package core

import (
	"fmt"
	"slices"
)

// Pos is a cell position on the board. Y grows downward; row 0 is the top.
type Pos struct {
	X, Y int
}

// P is shorthand for Pos{X: x, Y: y}.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// Add returns p offset by d.
func (p Pos) Add(d Pos) Pos {
	return Pos{X: p.X + d.X, Y: p.Y + d.Y}
}

// String returns "(x,y)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// compareRowMajor orders positions top to bottom, then left to right.
func compareRowMajor(a, b Pos) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}

// SortPositions sorts positions in row-major order and drops duplicates.
// The input slice is reused.
func SortPositions(ps []Pos) []Pos {
	slices.SortFunc(ps, compareRowMajor)
	return slices.Compact(ps)
}
