package game

import (
	"github.com/ferndraper/eights/deck"
)

// ActionKind distinguishes the two moves available to the opponent
type ActionKind int

const (
	PlayAction ActionKind = iota
	DrawAction
)

// Action is a single opponent move. Suit is only meaningful when Card is an
// Eight.
type Action struct {
	Kind ActionKind
	Card deck.Card
	Suit deck.Suit
}

// DecideOpponentMove computes the opponent's move without applying it. The
// caller owns the think-delay and applies the result with ApplyOpponentAction,
// so the decision itself stays testable.
//
// The policy is greedy: play the first playable non-Eight in hand order, fall
// back to an Eight, otherwise draw. An Eight's suit is whichever suit is most
// frequent in the remaining hand, ties going to suit declaration order.
func (g *Game) DecideOpponentMove() Action {
	playable := []deck.Card{}
	for _, c := range g.OpponentHand {
		if IsPlayable(c, g.TopDiscard(), g.ActiveSuit) {
			playable = append(playable, c)
		}
	}

	if len(playable) == 0 {
		return Action{Kind: DrawAction}
	}

	chosen := playable[0]
	for _, c := range playable {
		if c.Rank != deck.Eight {
			chosen = c
			break
		}
	}

	action := Action{Kind: PlayAction, Card: chosen}
	if chosen.Rank == deck.Eight {
		action.Suit = mostFrequentSuit(without(g.OpponentHand, chosen))
	}
	return action
}

// ApplyOpponentAction routes a decided move through the turn engine
func (g *Game) ApplyOpponentAction(action Action) error {
	if action.Kind == DrawAction {
		return g.Draw(OpponentSide)
	}
	return g.Play(OpponentSide, action.Card)
}

// mostFrequentSuit picks the suit with the most cards in hand. Declaration
// order breaks ties, which keeps the choice deterministic.
func mostFrequentSuit(hand []deck.Card) deck.Suit {
	counts := map[deck.Suit]int{}
	for _, c := range hand {
		counts[c.Suit]++
	}

	best := deck.Clubs
	for _, s := range deck.Suits() {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return best
}

func without(hand []deck.Card, card deck.Card) []deck.Card {
	remaining := []deck.Card{}
	for _, c := range hand {
		if c != card {
			remaining = append(remaining, c)
		}
	}
	return remaining
}
