package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/muratdeveli03/kelime-uygulama/internal/config"
	"github.com/muratdeveli03/kelime-uygulama/internal/database"
	"github.com/muratdeveli03/kelime-uygulama/internal/server"
)

func main() {
	cfg := config.Load()

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	srv := server.New(cfg)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		if err := srv.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("Listening on %s. Press Ctrl+C to stop.", cfg.ListenAddr)
	if err := srv.Listen(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped successfully")
}
