package deck

import (
	"errors"
	"fmt"
)

// Rank represents a rank in a deck of cards
type Rank int

var rankNames = []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

const (
	Ace Rank = iota
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

func (r Rank) String() string {
	return rankNames[r]
}

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

func (s Suit) String() string {
	return suitNames[s]
}

// Suits lists the four suits in declaration order. The order is relied on as
// a deterministic tie-break, so it must not change.
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// Card represents a playing card. Identity is the (rank, suit) pair; exactly
// one card per pair exists in a deck.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard constructs a card, checking the rank and suit are in range
func NewCard(rank, suit int) (Card, error) {
	if rank < 0 || rank > int(King) || suit < 0 || suit > int(Spades) {
		return Card{}, errors.New("arguments out of range")
	}
	return Card{Rank: Rank(rank), Suit: Suit(suit)}, nil
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
