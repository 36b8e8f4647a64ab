package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

var (
	errMissingCard    = errors.New("play requires a card")
	errMissingSuit    = errors.New("choosing a suit requires a suit")
	errUnknownCommand = errors.New("unknown command")
)

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(bytes)
}

func writeParseError(err error, w http.ResponseWriter, r *http.Request) {
	log.Printf("failed to parse request body from %s: %s", r.RemoteAddr, err.Error())
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte("could not parse request body"))
}
