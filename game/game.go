package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/ferndraper/eights/deck"
)

var (
	ErrNotInProgress      = errors.New("game is not in progress")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrCardNotInHand      = errors.New("card is not in hand")
	ErrIllegalPlay        = errors.New("card cannot be played on the current discard")
	ErrAwaitingSuitChoice = errors.New("awaiting a suit choice for the played Eight")
	ErrNoSuitChoiceDue    = errors.New("no suit choice is due")
)

const handSize = 8

// Side identifies which of the two seats is acting
type Side int

const (
	PlayerSide Side = iota
	OpponentSide
)

var sideNames = []string{"player", "opponent"}

func (s Side) String() string {
	return sideNames[s]
}

func (s Side) other() Side {
	if s == PlayerSide {
		return OpponentSide
	}
	return PlayerSide
}

// Status represents the lifecycle of a game. Once in progress it only ever
// moves forward to a won state.
type Status int

const (
	NotStarted Status = iota
	InProgress
	PlayerWon
	OpponentWon
)

var statusNames = []string{"notStarted", "inProgress", "playerWon", "opponentWon"}

func (gs Status) String() string {
	return statusNames[gs]
}

// Game is a single game of Crazy Eights between the player and the scripted
// opponent. Every card in play is in exactly one of Deck, PlayerHand,
// OpponentHand or Discard.
type Game struct {
	Deck         deck.Deck
	PlayerHand   []deck.Card
	OpponentHand []deck.Card
	Discard      []deck.Card
	ActiveSuit   *deck.Suit
	Turn         Side
	Status       Status
	Message      string

	awaitingSuitChoice bool

	// DrawEndsTurn makes a player draw pass the turn, as a standard ruleset
	// would. Off by default: the player may draw and still attempt a play.
	DrawEndsTurn bool

	rng *rand.Rand
}

// GameOpts allows a game's randomness and rule flags to be fixed, mainly for
// tests
type GameOpts struct {
	Rand         *rand.Rand
	DrawEndsTurn bool
}

// NewGame constructs a game. Call Start to shuffle and deal.
func NewGame(opts GameOpts) *Game {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{
		rng:          rng,
		DrawEndsTurn: opts.DrawEndsTurn,
	}
}

// Start shuffles a fresh deck, deals both hands and seeds the discard pile.
// Restarting an existing game is allowed; any previous state is discarded.
func (g *Game) Start() {
	shuffled := deck.Shuffle(deck.New(), g.rng)

	g.PlayerHand = shuffled.Deal(handSize)
	g.OpponentHand = shuffled.Deal(handSize)

	// Seed the discard with the first non-Eight so the game never opens on a
	// wild card. Any skipped Eights stay at the front of the draw stack.
	for i, c := range shuffled {
		if c.Rank != deck.Eight {
			g.Discard = []deck.Card{c}
			shuffled = append(shuffled[:i:i], shuffled[i+1:]...)
			break
		}
	}

	g.Deck = shuffled
	g.ActiveSuit = nil
	g.awaitingSuitChoice = false
	g.Turn = PlayerSide
	g.Status = InProgress
	g.Message = "New game: your turn."
}

// TopDiscard returns the most recently played card, or nil before the game
// has started
func (g *Game) TopDiscard() *deck.Card {
	if len(g.Discard) == 0 {
		return nil
	}
	return &g.Discard[len(g.Discard)-1]
}

// AwaitingSuitChoice reports whether the game is suspended on the player's
// suit choice for an Eight they just played
func (g *Game) AwaitingSuitChoice() bool {
	return g.awaitingSuitChoice
}

// Play moves card from side's hand to the top of the discard pile. An Eight
// played by the player suspends the game until ChooseSuit is called; an Eight
// played by the opponent has its suit chosen immediately. Any other card
// clears the suit override and passes the turn.
func (g *Game) Play(side Side, card deck.Card) error {
	if g.Status != InProgress {
		return ErrNotInProgress
	}
	if g.awaitingSuitChoice {
		return ErrAwaitingSuitChoice
	}
	if side != g.Turn {
		return ErrNotYourTurn
	}
	if !IsPlayable(card, g.TopDiscard(), g.ActiveSuit) {
		return ErrIllegalPlay
	}

	hand := g.hand(side)
	idx := indexOf(*hand, card)
	if idx < 0 {
		return ErrCardNotInHand
	}

	*hand = append((*hand)[:idx], (*hand)[idx+1:]...)
	g.Discard = append(g.Discard, card)

	if card.Rank == deck.Eight {
		if side == PlayerSide {
			g.awaitingSuitChoice = true
			g.Message = "You played an Eight. Choose a suit."
		} else {
			suit := mostFrequentSuit(g.OpponentHand)
			g.ActiveSuit = &suit
			g.Turn = PlayerSide
			g.Message = fmt.Sprintf("Opponent played an Eight and chose %s.", suit)
		}
	} else {
		g.ActiveSuit = nil
		g.Turn = side.other()
		if side == PlayerSide {
			g.Message = fmt.Sprintf("You played the %s.", card)
		} else {
			g.Message = fmt.Sprintf("Opponent played the %s.", card)
		}
	}

	g.checkWin()
	return nil
}

// ChooseSuit resolves the player's pending Eight by setting the active suit
// override and passing the turn to the opponent
func (g *Game) ChooseSuit(suit deck.Suit) error {
	if g.Status != InProgress {
		return ErrNotInProgress
	}
	if !g.awaitingSuitChoice {
		return ErrNoSuitChoiceDue
	}

	g.ActiveSuit = &suit
	g.awaitingSuitChoice = false
	g.Turn = OpponentSide
	g.Message = fmt.Sprintf("You chose %s.", suit)
	return nil
}

// Draw moves the front card of the deck into side's hand. On an empty deck
// the turn is forfeited with no other effect. An opponent draw passes the
// turn back to the player; a player draw keeps the turn unless DrawEndsTurn
// is set.
func (g *Game) Draw(side Side) error {
	if g.Status != InProgress {
		return ErrNotInProgress
	}
	if g.awaitingSuitChoice {
		return ErrAwaitingSuitChoice
	}
	if side != g.Turn {
		return ErrNotYourTurn
	}

	if len(g.Deck) == 0 {
		g.Turn = side.other()
		if side == PlayerSide {
			g.Message = "The deck is empty. You skip your turn."
		} else {
			g.Message = "The deck is empty. Opponent skips their turn."
		}
		return nil
	}

	card := g.Deck.Deal(1)[0]
	hand := g.hand(side)
	*hand = append(*hand, card)

	if side == OpponentSide {
		g.Turn = PlayerSide
		g.Message = "Opponent drew a card."
	} else {
		if g.DrawEndsTurn {
			g.Turn = OpponentSide
		}
		g.Message = fmt.Sprintf("You drew the %s.", card)
	}

	return nil
}

func (g *Game) hand(side Side) *[]deck.Card {
	if side == PlayerSide {
		return &g.PlayerHand
	}
	return &g.OpponentHand
}

// checkWin runs after every hand-size mutation. The player's hand is checked
// first; both hands cannot empty on the same action.
func (g *Game) checkWin() {
	if g.Status != InProgress {
		return
	}
	if len(g.PlayerHand) == 0 {
		g.Status = PlayerWon
		g.awaitingSuitChoice = false
		g.Message = "You won!"
	} else if len(g.OpponentHand) == 0 {
		g.Status = OpponentWon
		g.Message = "Opponent won."
	}
}

func indexOf(hand []deck.Card, card deck.Card) int {
	for i, c := range hand {
		if c == card {
			return i
		}
	}
	return -1
}
