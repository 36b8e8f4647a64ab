package game

import (
	"github.com/ferndraper/eights/deck"
	"github.com/ferndraper/eights/protocol"
)

// Snapshot builds the presentation-layer view of the game. The returned value
// copies the player's hand and never includes the opponent's cards.
func (g *Game) Snapshot(gameID string) protocol.GameState {
	hand := make([]deck.Card, len(g.PlayerHand))
	copy(hand, g.PlayerHand)

	var top *deck.Card
	if t := g.TopDiscard(); t != nil {
		c := *t
		top = &c
	}

	var activeSuit *deck.Suit
	if g.ActiveSuit != nil {
		s := *g.ActiveSuit
		activeSuit = &s
	}

	return protocol.GameState{
		GameID:             gameID,
		Status:             g.Status.String(),
		Turn:               g.Turn.String(),
		Hand:               hand,
		OpponentCardCount:  len(g.OpponentHand),
		DeckCount:          len(g.Deck),
		TopDiscard:         top,
		ActiveSuit:         activeSuit,
		AwaitingSuitChoice: g.awaitingSuitChoice,
		LegalMoves:         g.LegalMoves(),
		Message:            g.Message,
	}
}
