// Package core implements the DropJack puzzle engine: cards and the deck, the
// grid board with gravity and removal marks, the 21-combination search, the
// cascade scheduler and the game session that ties them together.
//
// The package has no terminal, storage or clock dependencies. Every timed
// operation takes the current time as an argument so a host samples its
// clock once per tick and the engine stays deterministic under test.
package core

import "strconv"

// Suit is one of the four French suits.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in deck-building order.
var Suits = [...]Suit{Spades, Hearts, Diamonds, Clubs}

// Symbol returns the suit glyph.
func (s Suit) Symbol() rune {
	switch s {
	case Spades:
		return '♠'
	case Hearts:
		return '♥'
	case Diamonds:
		return '♦'
	case Clubs:
		return '♣'
	default:
		return '?'
	}
}

// String returns the suit name.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	default:
		return "Unknown"
	}
}

// IsRed reports whether the suit is printed red.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank is a card rank from Ace (1) to King (13).
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks lists every rank in deck-building order.
var Ranks = [...]Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// rankValues holds the blackjack values per rank. Only the Ace has two.
var rankValues = [...][]int{
	Ace:   {1, 11},
	Two:   {2},
	Three: {3},
	Four:  {4},
	Five:  {5},
	Six:   {6},
	Seven: {7},
	Eight: {8},
	Nine:  {9},
	Ten:   {10},
	Jack:  {10},
	Queen: {10},
	King:  {10},
}

// String returns the short rank label: A, 2..10, J, Q, K.
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		if r >= Two && r <= Ten {
			return strconv.Itoa(int(r))
		}
		return "?"
	}
}

// Value returns the base value of the rank. Face cards count 10, the Ace 1.
func (r Rank) Value() int {
	if !r.valid() {
		return 0
	}
	return rankValues[r][0]
}

// Values returns every blackjack value the rank can take.
// The returned slice is shared and must not be modified.
func (r Rank) Values() []int {
	if !r.valid() {
		return nil
	}
	return rankValues[r]
}

func (r Rank) valid() bool {
	return r >= Ace && r <= King
}

// Card is an immutable playing card.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a card.
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// Values returns the blackjack values the card can contribute to a sum.
func (c Card) Values() []int {
	return c.Rank.Values()
}

// String formats the card as rank followed by suit glyph, e.g. "10♥".
func (c Card) String() string {
	return c.Rank.String() + string(c.Suit.Symbol())
}
