package core

import "math/rand"

// DeckSize is the number of cards in a full deck.
const DeckSize = len(Suits) * len(Ranks)

// Deck is a stack of cards drawn from the end.
type Deck struct {
	cards []Card
}

// NewDeck returns a full 52-card deck in suit-major order, unshuffled.
func NewDeck() *Deck {
	d := &Deck{}
	d.fill()
	return d
}

func (d *Deck) fill() {
	d.cards = d.cards[:0]
	for _, s := range Suits {
		for _, r := range Ranks {
			d.cards = append(d.cards, NewCard(s, r))
		}
	}
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// IsEmpty reports whether the deck has run out.
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards, bottom first.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Shuffle permutes the remaining cards.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, bool) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, false
	}
	c := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return c, true
}

// Reset refills the deck to 52 cards and shuffles it when rng is non-nil.
func (d *Deck) Reset(rng *rand.Rand) {
	d.fill()
	if rng != nil {
		d.Shuffle(rng)
	}
}
