package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/ferndraper/eights/server"
	"github.com/ferndraper/eights/store"
)

func main() {
	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatal(err.Error())
	}

	s := server.NewServer(store.NewInMemoryGameStore(), cfg.ThinkDelay)

	log.Printf("Listening on port %d...", cfg.Port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), s))
}
