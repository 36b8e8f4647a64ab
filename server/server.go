package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	uuid "github.com/satori/go.uuid"

	"github.com/ferndraper/eights/engine"
	"github.com/ferndraper/eights/game"
	"github.com/ferndraper/eights/protocol"
	"github.com/ferndraper/eights/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewGameRes is the response to a game creation request
type NewGameRes struct {
	GameID string             `json:"game_id"`
	State  protocol.GameState `json:"state"`
}

// GameServer serves games of Crazy Eights over HTTP and websocket
type GameServer struct {
	store      store.GameStore
	thinkDelay time.Duration
	http.Server
}

// NewID constructs a game ID
func NewID() string {
	return uuid.NewV4().String()
}

// NewServer creates a new GameServer
func NewServer(gameStore store.GameStore, thinkDelay time.Duration) *GameServer {
	s := &GameServer{
		store:      gameStore,
		thinkDelay: thinkDelay,
	}

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(s.HandleNewGame))
	router.Handle("/game/", http.HandlerFunc(s.HandleGame))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	s.Handler = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
	)(router)

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleNewGame handles a request to create a new game
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := NewID()
	e := engine.New(gameID, g.thinkDelay, game.GameOpts{})

	if err := g.store.AddGame(e); err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, NewGameRes{GameID: gameID, State: e.State()})
}

// HandleGame routes game-scoped requests:
//
//	GET  /game/{id}          current snapshot
//	POST /game/{id}/play     play a card
//	POST /game/{id}/draw     draw a card
//	POST /game/{id}/suit     choose the suit for a played Eight
//	POST /game/{id}/restart  abandon and redeal
func (g *GameServer) HandleGame(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/game/")
	parts := strings.SplitN(path, "/", 2)

	gameID := parts[0]
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	e := g.store.FindGame(gameID)
	if e == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(store.ErrUnknownGameID.Error()))
		return
	}

	if len(parts) == 1 {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, e.State())
		return
	}

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var msg protocol.InboundMessage
	switch parts[1] {
	case "play":
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			writeParseError(err, w, r)
			return
		}
		msg.Command = protocol.PlayCard
	case "draw":
		msg.Command = protocol.DrawCard
	case "suit":
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			writeParseError(err, w, r)
			return
		}
		msg.Command = protocol.ChooseSuit
	case "restart":
		msg.Command = protocol.Restart
	default:
		w.WriteHeader(http.StatusNotFound)
		return
	}
	defer r.Body.Close()

	state, err := apply(e, msg)
	if err != nil {
		state.Error = err.Error()
		writeJSON(w, http.StatusConflict, state)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// apply dispatches an inbound command to the engine
func apply(e *engine.GameEngine, msg protocol.InboundMessage) (protocol.GameState, error) {
	switch msg.Command {
	case protocol.Restart:
		return e.Restart(), nil
	case protocol.PlayCard:
		if msg.Card == nil {
			return e.State(), errMissingCard
		}
		return e.PlayCard(*msg.Card)
	case protocol.DrawCard:
		return e.DrawCard()
	case protocol.ChooseSuit:
		if msg.Suit == nil {
			return e.State(), errMissingSuit
		}
		return e.ChooseSuit(*msg.Suit)
	}
	return e.State(), errUnknownCommand
}
