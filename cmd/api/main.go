package main

import (
	"log"

	"assessment-backend/internal/bootstrap"
	"assessment-backend/internal/shared/config"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	addr := bootstrap.Addr(cfg.Port)
	log.Printf("Starting assessment server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
