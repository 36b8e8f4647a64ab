package deck

import (
	"math/rand"
)

// Deck represents a deck of cards acting as a draw stack; the front of the
// slice is drawn next.
type Deck []Card

// New creates a full deck of 52 cards in canonical order
func New() Deck {
	cards := Deck{}
	for suit := range suitNames {
		for rank := range rankNames {
			cards = append(cards, Card{Rank: Rank(rank), Suit: Suit(suit)})
		}
	}
	return cards
}

// Shuffle returns a uniformly random permutation of the given cards without
// mutating them (Fisher-Yates). Randomness comes from rng so games can be
// replayed in tests.
func Shuffle(cards Deck, rng *rand.Rand) Deck {
	shuffled := make(Deck, len(cards))
	copy(shuffled, cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Deal removes and returns n cards from the front of the deck, until it is
// empty. The returned cards are copied out so they never share backing
// storage with the deck or with an earlier deal.
func (d *Deck) Deal(n int) []Card {
	if n < 0 {
		return []Card{}
	}
	if n > len(*d) {
		n = len(*d)
	}
	dealt := make([]Card, n)
	copy(dealt, (*d)[:n])
	*d = (*d)[n:]
	return dealt
}
