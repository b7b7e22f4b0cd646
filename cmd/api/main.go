package main

import (
	"log"

	"github.com/rromanowicz/task-list/internal/auth"
	"github.com/rromanowicz/task-list/internal/config"
	"github.com/rromanowicz/task-list/internal/handlers"
	"github.com/rromanowicz/task-list/internal/service"
	"github.com/rromanowicz/task-list/internal/store"
)

func main() {
	cfg := config.Load()

	db, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(); err != nil {
		log.Fatalf("creating schema: %v", err)
	}

	gate := auth.NewGate(db.Tokens)
	svc := service.New(db.Users, db.Lists, db.Tasks)
	router := handlers.Router(handlers.New(svc), gate)

	if cfg.Port != "" {
		log.Fatal(router.Run(":" + cfg.Port))
	}
	log.Fatal(router.Run())
}
