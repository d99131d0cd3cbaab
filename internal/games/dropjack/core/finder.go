package core

import "slices"

// Target is the sum every combination must reach.
const Target = 21

// neighborOffsets is the fixed exploration order: up, down, left, right.
var neighborOffsets = [...]Pos{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// FindCombinations returns every board position that belongs to a connected
// run of cards summing to 21, sorted row-major without duplicates.
func FindCombinations(b *Board, difficulty Difficulty) []Pos {
	var result []Pos
	for _, g := range FindGroups(b, difficulty) {
		result = append(result, g...)
	}
	return SortPositions(result)
}

// FindGroups returns the accepted runs in discovery order, each in path order.
//
// Cells are tried as start points in row-major order. Each start runs its own
// depth-first search and keeps the longest run it discovers (the first one
// wins ties). A start cell already consumed by an accepted run is skipped;
// runs may still pass through consumed cells.
func FindGroups(b *Board, difficulty Difficulty) [][]Pos {
	consumed := make([]bool, b.width*b.height)
	var groups [][]Pos

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			i := b.index(x, y)
			if !b.cells[i].Filled || consumed[i] {
				continue
			}

			s := &search{
				board:    b,
				sameSuit: difficulty.RequiresSameSuit(),
				visited:  make([]bool, b.width*b.height),
			}
			s.visit(P(x, y), 0)

			best := s.longest()
			if len(best) < 2 {
				continue
			}
			for _, p := range best {
				consumed[b.index(p.X, p.Y)] = true
			}
			groups = append(groups, best)
		}
	}
	return groups
}

// search is the state of one depth-first search from a single start cell.
// visited and path only describe the branch currently being explored.
type search struct {
	board    *Board
	sameSuit bool
	visited  []bool
	path     []Pos
	found    [][]Pos
}

func (s *search) visit(p Pos, sum int) {
	i := s.board.index(p.X, p.Y)
	card := s.board.cells[i].Card

	s.visited[i] = true
	s.path = append(s.path, p)

	for _, v := range card.Values() {
		total := sum + v
		switch {
		case total == Target:
			s.found = append(s.found, slices.Clone(s.path))
		case total < Target:
			for _, d := range neighborOffsets {
				n := p.Add(d)
				if !s.board.IsValid(n.X, n.Y) {
					continue
				}
				ni := s.board.index(n.X, n.Y)
				next := s.board.cells[ni]
				if !next.Filled || s.visited[ni] {
					continue
				}
				if s.sameSuit && next.Card.Suit != card.Suit {
					continue
				}
				s.visit(n, total)
			}
		}
	}

	s.path = s.path[:len(s.path)-1]
	s.visited[i] = false
}

func (s *search) longest() []Pos {
	var best []Pos
	for _, c := range s.found {
		if len(c) > len(best) {
			best = c
		}
	}
	return best
}
