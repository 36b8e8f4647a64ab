package game

import (
	"github.com/ferndraper/eights/deck"
)

// IsPlayable is the single legality authority. Eights are always playable.
// Any other card must match the governing suit (the override when set,
// otherwise the top discard's suit) or the top discard's rank.
func IsPlayable(card deck.Card, top *deck.Card, override *deck.Suit) bool {
	if top == nil {
		return false
	}
	if card.Rank == deck.Eight {
		return true
	}

	targetSuit := top.Suit
	if override != nil {
		targetSuit = *override
	}

	return card.Suit == targetSuit || card.Rank == top.Rank
}

// LegalMoves returns the indices of the player's playable cards, for the
// presentation layer to highlight
func (g *Game) LegalMoves() []int {
	moves := []int{}
	for i, c := range g.PlayerHand {
		if IsPlayable(c, g.TopDiscard(), g.ActiveSuit) {
			moves = append(moves, i)
		}
	}
	return moves
}
