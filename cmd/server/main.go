package main

import (
	"fmt"
	"log"

	"rentdesk/internal/config"
	"rentdesk/internal/database"
	"rentdesk/internal/server"
)

func main() {
	cfg := config.Load()
	db := database.Init(cfg)

	r := server.NewRouter(cfg, db)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
