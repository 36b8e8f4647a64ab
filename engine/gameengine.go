package engine

import (
	"sync"
	"time"

	"github.com/ferndraper/eights/deck"
	"github.com/ferndraper/eights/game"
	"github.com/ferndraper/eights/protocol"
)

// GameEngine wraps a game with the scheduling the presentation layer needs:
// it serialises access to the game, runs the opponent's move after a think
// delay, and notifies listeners after every transition.
//
// The think delay is cosmetic. The game itself decides the opponent's move
// synchronously; the engine only defers applying it, and a restart while the
// delay is pending cancels the scheduled move.
type GameEngine struct {
	id         string
	thinkDelay time.Duration

	mu             sync.Mutex
	game           *game.Game
	listeners      map[int]func(protocol.GameState)
	nextListenerID int
	generation     int
}

// New constructs an engine around a started game
func New(id string, thinkDelay time.Duration, opts game.GameOpts) *GameEngine {
	e := &GameEngine{
		id:         id,
		thinkDelay: thinkDelay,
		game:       game.NewGame(opts),
	}
	e.game.Start()
	return e
}

// ID returns the engine's game ID
func (e *GameEngine) ID() string {
	return e.id
}

// AddListener registers a callback invoked with a fresh snapshot after every
// transition, including the opponent's delayed moves. The returned ID must be
// passed to RemoveListener when the listener goes away.
func (e *GameEngine) AddListener(fn func(protocol.GameState)) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.listeners == nil {
		e.listeners = map[int]func(protocol.GameState){}
	}
	e.nextListenerID++
	e.listeners[e.nextListenerID] = fn
	return e.nextListenerID
}

// RemoveListener deregisters a listener by the ID AddListener returned
func (e *GameEngine) RemoveListener(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.listeners, id)
}

// State returns the current presentation snapshot
func (e *GameEngine) State() protocol.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Snapshot(e.id)
}

// Restart abandons the current game and deals a new one. Any pending
// opponent move is cancelled.
func (e *GameEngine) Restart() protocol.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.generation++
	e.game.Start()
	return e.afterTransition()
}

// PlayCard plays a card on behalf of the player
func (e *GameEngine) PlayCard(card deck.Card) (protocol.GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.game.Play(game.PlayerSide, card); err != nil {
		return e.game.Snapshot(e.id), err
	}
	return e.afterTransition(), nil
}

// DrawCard draws a card on behalf of the player
func (e *GameEngine) DrawCard() (protocol.GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.game.Draw(game.PlayerSide); err != nil {
		return e.game.Snapshot(e.id), err
	}
	return e.afterTransition(), nil
}

// ChooseSuit resolves the player's pending wild-card suit choice
func (e *GameEngine) ChooseSuit(suit deck.Suit) (protocol.GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.game.ChooseSuit(suit); err != nil {
		return e.game.Snapshot(e.id), err
	}
	return e.afterTransition(), nil
}

// afterTransition is called with the lock held after every successful
// mutation. It schedules the opponent when the turn has passed to them and
// hands a snapshot to every listener.
func (e *GameEngine) afterTransition() protocol.GameState {
	if e.game.Status == game.InProgress && e.game.Turn == game.OpponentSide {
		e.scheduleOpponent()
	}

	// Listeners run synchronously so snapshots arrive in transition order.
	state := e.game.Snapshot(e.id)
	for _, fn := range e.listeners {
		fn(state)
	}
	return state
}

func (e *GameEngine) scheduleOpponent() {
	gen := e.generation
	time.AfterFunc(e.thinkDelay, func() {
		e.mu.Lock()
		defer e.mu.Unlock()

		// The game restarted while we were thinking; drop the move.
		if gen != e.generation {
			return
		}
		if e.game.Status != game.InProgress || e.game.Turn != game.OpponentSide {
			return
		}

		if err := e.game.ApplyOpponentAction(e.game.DecideOpponentMove()); err != nil {
			// Preconditions were re-checked above, so this is unreachable.
			return
		}
		e.afterTransition()
	})
}
