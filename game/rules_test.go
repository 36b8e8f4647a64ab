package game

import (
	"testing"

	"github.com/ferndraper/eights/deck"
	utils "github.com/ferndraper/eights/internal"
)

func TestIsPlayable(t *testing.T) {
	top := deck.Card{Rank: deck.Ten, Suit: deck.Hearts}
	spades := deck.Spades

	cases := []struct {
		name     string
		card     deck.Card
		top      *deck.Card
		override *deck.Suit
		expected bool
	}{
		{"no top discard", deck.Card{Rank: deck.Ace, Suit: deck.Hearts}, nil, nil, false},
		{"suit match", deck.Card{Rank: deck.Ace, Suit: deck.Hearts}, &top, nil, true},
		{"rank match", deck.Card{Rank: deck.Ten, Suit: deck.Clubs}, &top, nil, true},
		{"no match", deck.Card{Rank: deck.Ace, Suit: deck.Clubs}, &top, nil, false},
		{"override replaces the top suit", deck.Card{Rank: deck.Ace, Suit: deck.Spades}, &top, &spades, true},
		{"top suit no longer matches under an override", deck.Card{Rank: deck.Ace, Suit: deck.Hearts}, &top, &spades, false},
		{"rank match still works under an override", deck.Card{Rank: deck.Ten, Suit: deck.Clubs}, &top, &spades, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			utils.AssertEqual(t, IsPlayable(c.card, c.top, c.override), c.expected)
		})
	}

	t.Run("an Eight is always playable", func(t *testing.T) {
		for _, suit := range deck.Suits() {
			eight := deck.Card{Rank: deck.Eight, Suit: suit}
			utils.AssertTrue(t, IsPlayable(eight, &top, nil))
			utils.AssertTrue(t, IsPlayable(eight, &top, &spades))
		}
	})
}

func TestLegalMoves(t *testing.T) {
	top := deck.Card{Rank: deck.Ten, Suit: deck.Hearts}

	g := doctoredGame(t,
		[]deck.Card{
			{Rank: deck.Ace, Suit: deck.Hearts},  // suit match
			{Rank: deck.Ace, Suit: deck.Clubs},   // no match
			{Rank: deck.Ten, Suit: deck.Spades},  // rank match
			{Rank: deck.Eight, Suit: deck.Clubs}, // wild
		},
		[]deck.Card{{Rank: deck.Three, Suit: deck.Diamonds}},
		top,
	)

	utils.AssertDeepEqual(t, g.LegalMoves(), []int{0, 2, 3})

	t.Run("respects the active suit override", func(t *testing.T) {
		clubs := deck.Clubs
		g.ActiveSuit = &clubs

		utils.AssertDeepEqual(t, g.LegalMoves(), []int{1, 2, 3})
	})
}
