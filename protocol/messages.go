package protocol

import (
	"github.com/ferndraper/eights/deck"
)

// InboundMessage is a message from the presentation layer to the engine.
// Card accompanies PlayCard and Suit accompanies ChooseSuit.
type InboundMessage struct {
	Command Cmd        `json:"command"`
	Card    *deck.Card `json:"card,omitempty"`
	Suit    *deck.Suit `json:"suit,omitempty"`
}

// GameState is the snapshot pushed to the presentation layer after every
// transition. The opponent's hand is exposed as a count only.
type GameState struct {
	GameID             string      `json:"gameID"`
	Status             string      `json:"status"`
	Turn               string      `json:"turn"`
	Hand               []deck.Card `json:"hand"`
	OpponentCardCount  int         `json:"opponentCardCount"`
	DeckCount          int         `json:"deckCount"`
	TopDiscard         *deck.Card  `json:"topDiscard,omitempty"`
	ActiveSuit         *deck.Suit  `json:"activeSuit,omitempty"`
	AwaitingSuitChoice bool        `json:"awaitingSuitChoice"`
	LegalMoves         []int       `json:"legalMoves"`
	Message            string      `json:"message"`
	Error              string      `json:"error,omitempty"`
}
