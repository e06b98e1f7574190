package main

import (
	"fmt"
	"log"

	"gridops/internal/config"
	"gridops/internal/database"
	"gridops/internal/server"
	"gridops/internal/store"
)

func main() {
	cfg := config.Load()

	var st store.Store
	if cfg.DBDSN != "" {
		st = store.NewGormStore(database.Open(cfg.DBDSN))
	} else {
		log.Println("DB_DSN is not set, running on the in-memory store")
		st = store.NewMemStore()
	}

	if cfg.SeedDemo {
		database.SeedDemo(st)
	}

	r := server.NewRouter(cfg, st)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
