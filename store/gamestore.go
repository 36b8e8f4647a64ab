package store

import (
	"errors"
	"sync"

	"github.com/ferndraper/eights/engine"
)

var (
	ErrUnknownGameID     = errors.New("unknown game ID")
	ErrGameAlreadyExists = errors.New("a game with this ID already exists")
)

// GameStore holds the games in play, keyed by game ID
type GameStore interface {
	FindGame(gameID string) *engine.GameEngine
	AddGame(game *engine.GameEngine) error
	RemoveGame(gameID string)
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu    sync.Mutex
	games map[string]*engine.GameEngine
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: map[string]*engine.GameEngine{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) *engine.GameEngine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.games[gameID]
}

func (s *InMemoryGameStore) AddGame(game *engine.GameEngine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[game.ID()]; exists {
		return ErrGameAlreadyExists
	}

	s.games[game.ID()] = game
	return nil
}

func (s *InMemoryGameStore) RemoveGame(gameID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.games, gameID)
}
