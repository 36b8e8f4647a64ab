package game

import (
	"testing"

	"github.com/ferndraper/eights/deck"
	utils "github.com/ferndraper/eights/internal"
)

func TestDecideOpponentMove(t *testing.T) {
	top := deck.Card{Rank: deck.Ten, Suit: deck.Hearts}

	t.Run("prefers the first playable non-Eight", func(t *testing.T) {
		g := doctoredGame(t,
			[]deck.Card{{Rank: deck.Two, Suit: deck.Clubs}},
			[]deck.Card{
				{Rank: deck.Ace, Suit: deck.Clubs},    // not playable
				{Rank: deck.Eight, Suit: deck.Clubs},  // wild, skipped for the non-Eight
				{Rank: deck.Queen, Suit: deck.Hearts}, // suit match
				{Rank: deck.Ten, Suit: deck.Spades},   // rank match, later in hand
			},
			top,
		)
		g.Turn = OpponentSide

		action := g.DecideOpponentMove()

		utils.AssertEqual(t, action.Kind, PlayAction)
		utils.AssertEqual(t, action.Card, deck.Card{Rank: deck.Queen, Suit: deck.Hearts})
	})

	t.Run("falls back to an Eight when nothing else is playable", func(t *testing.T) {
		g := doctoredGame(t,
			[]deck.Card{{Rank: deck.Two, Suit: deck.Clubs}},
			[]deck.Card{
				{Rank: deck.Ace, Suit: deck.Clubs},
				{Rank: deck.Eight, Suit: deck.Clubs},
				{Rank: deck.Two, Suit: deck.Spades},
				{Rank: deck.Three, Suit: deck.Spades},
			},
			top,
		)
		g.Turn = OpponentSide

		action := g.DecideOpponentMove()

		utils.AssertEqual(t, action.Kind, PlayAction)
		utils.AssertEqual(t, action.Card, deck.Card{Rank: deck.Eight, Suit: deck.Clubs})

		t.Run("suit is the most frequent in the remaining hand", func(t *testing.T) {
			utils.AssertEqual(t, action.Suit, deck.Spades)
		})
	})

	t.Run("suit ties break by declaration order", func(t *testing.T) {
		g := doctoredGame(t,
			[]deck.Card{{Rank: deck.Two, Suit: deck.Clubs}},
			[]deck.Card{
				{Rank: deck.Eight, Suit: deck.Diamonds},
				{Rank: deck.Ace, Suit: deck.Spades},
				{Rank: deck.Four, Suit: deck.Hearts}, // Hearts and Spades tied
			},
			top,
		)
		g.Turn = OpponentSide

		action := g.DecideOpponentMove()

		utils.AssertEqual(t, action.Card, deck.Card{Rank: deck.Eight, Suit: deck.Diamonds})
		utils.AssertEqual(t, action.Suit, deck.Hearts)
	})

	t.Run("draws when nothing is playable", func(t *testing.T) {
		g := doctoredGame(t,
			[]deck.Card{{Rank: deck.Two, Suit: deck.Clubs}},
			[]deck.Card{
				{Rank: deck.Ace, Suit: deck.Clubs},
				{Rank: deck.Two, Suit: deck.Spades},
			},
			top,
		)
		g.Turn = OpponentSide

		action := g.DecideOpponentMove()

		utils.AssertEqual(t, action.Kind, DrawAction)
	})

	t.Run("decision does not mutate the game", func(t *testing.T) {
		g := seededGame(t)
		g.Turn = OpponentSide
		handBefore := len(g.OpponentHand)
		deckBefore := len(g.Deck)

		g.DecideOpponentMove()

		utils.AssertEqual(t, len(g.OpponentHand), handBefore)
		utils.AssertEqual(t, len(g.Deck), deckBefore)
	})
}

func TestApplyOpponentAction(t *testing.T) {
	top := deck.Card{Rank: deck.Ten, Suit: deck.Hearts}

	t.Run("applies a play through the turn engine", func(t *testing.T) {
		card := deck.Card{Rank: deck.Queen, Suit: deck.Hearts}
		g := doctoredGame(t,
			[]deck.Card{{Rank: deck.Two, Suit: deck.Clubs}},
			[]deck.Card{card, {Rank: deck.Ace, Suit: deck.Clubs}},
			top,
		)
		g.Turn = OpponentSide

		utils.AssertNoError(t, g.ApplyOpponentAction(Action{Kind: PlayAction, Card: card}))

		utils.AssertEqual(t, *g.TopDiscard(), card)
		utils.AssertEqual(t, len(g.OpponentHand), 1)
		utils.AssertEqual(t, g.Turn, PlayerSide)
	})

	t.Run("applies a draw exactly once", func(t *testing.T) {
		g := doctoredGame(t,
			[]deck.Card{{Rank: deck.Two, Suit: deck.Clubs}},
			[]deck.Card{{Rank: deck.Ace, Suit: deck.Clubs}},
			top,
		)
		g.Turn = OpponentSide
		deckBefore := len(g.Deck)

		utils.AssertNoError(t, g.ApplyOpponentAction(Action{Kind: DrawAction}))

		utils.AssertEqual(t, len(g.OpponentHand), 2)
		utils.AssertEqual(t, len(g.Deck), deckBefore-1)
		utils.AssertEqual(t, g.Turn, PlayerSide)
	})

	t.Run("rejected when it is not the opponent's turn", func(t *testing.T) {
		g := seededGame(t)

		err := g.ApplyOpponentAction(Action{Kind: DrawAction})

		utils.AssertEqual(t, err, ErrNotYourTurn)
	})
}

func TestMostFrequentSuit(t *testing.T) {
	cases := []struct {
		name     string
		hand     []deck.Card
		expected deck.Suit
	}{
		{
			"clear majority",
			[]deck.Card{
				{Rank: deck.Two, Suit: deck.Spades},
				{Rank: deck.Three, Suit: deck.Spades},
				{Rank: deck.Four, Suit: deck.Hearts},
			},
			deck.Spades,
		},
		{
			"tie goes to declaration order",
			[]deck.Card{
				{Rank: deck.Two, Suit: deck.Spades},
				{Rank: deck.Three, Suit: deck.Diamonds},
			},
			deck.Diamonds,
		},
		{"empty hand", []deck.Card{}, deck.Clubs},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			utils.AssertEqual(t, mostFrequentSuit(c.hand), c.expected)
		})
	}
}
