package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/ferndraper/eights/protocol"
	"github.com/ferndraper/eights/store"
)

const writeTimeout = 10 * time.Second

// HandleWS upgrades the connection and speaks the game protocol over it:
// inbound messages are commands from the presentation layer, outbound
// messages are state snapshots pushed after every transition, the opponent's
// delayed moves included.
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
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

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("failed to upgrade request to websocket:", err.Error())
		return
	}
	defer conn.Close()

	// Concurrent writers: the engine's listener callback and the command
	// loop. The deadline stops a stalled client from holding the engine up.
	var writeMu sync.Mutex
	send := func(state protocol.GameState) {
		writeMu.Lock()
		defer writeMu.Unlock()
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(state); err != nil {
			log.Println("websocket write:", err.Error())
		}
	}

	listenerID := e.AddListener(send)
	defer e.RemoveListener(listenerID)

	send(e.State())

	for {
		var msg protocol.InboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			log.Println("websocket closed:", err.Error())
			return
		}

		state, err := apply(e, msg)
		if err != nil {
			state.Error = err.Error()
			send(state)
		}
		// Successful transitions reach the client through the listener.
	}
}
