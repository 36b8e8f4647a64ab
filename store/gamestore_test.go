package store

import (
	"testing"
	"time"

	"github.com/ferndraper/eights/engine"
	"github.com/ferndraper/eights/game"
	utils "github.com/ferndraper/eights/internal"
)

func newTestEngine(id string) *engine.GameEngine {
	return engine.New(id, time.Millisecond, game.GameOpts{})
}

func TestInMemoryGameStore(t *testing.T) {
	t.Run("finds an added game", func(t *testing.T) {
		s := NewInMemoryGameStore()
		e := newTestEngine("game-1")

		utils.AssertNoError(t, s.AddGame(e))
		utils.AssertEqual(t, s.FindGame("game-1"), e)
	})

	t.Run("returns nil for an unknown game", func(t *testing.T) {
		s := NewInMemoryGameStore()

		if s.FindGame("nope") != nil {
			t.Error("expected nil for unknown game ID")
		}
	})

	t.Run("rejects a duplicate game ID", func(t *testing.T) {
		s := NewInMemoryGameStore()

		utils.AssertNoError(t, s.AddGame(newTestEngine("game-1")))
		utils.AssertEqual(t, s.AddGame(newTestEngine("game-1")), ErrGameAlreadyExists)
	})

	t.Run("removes a game", func(t *testing.T) {
		s := NewInMemoryGameStore()

		utils.AssertNoError(t, s.AddGame(newTestEngine("game-1")))
		s.RemoveGame("game-1")

		if s.FindGame("game-1") != nil {
			t.Error("expected game to be removed")
		}
	})
}
