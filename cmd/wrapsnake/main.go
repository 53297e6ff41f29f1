// Package main is the entry point for wrapsnake.
package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/wrapsnake/internal/game"
	"github.com/samdwyer/wrapsnake/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	// Telemetry only runs with an API key; the exporter would otherwise
	// report failed exports onto the game screen.
	tcfg := telemetry.ConfigFromEnv()
	if tcfg.Enabled() {
		tcfg.ApplyEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	result, err := g.Run(ctx)
	if err != nil {
		log.Fatalf("Game error: %v", err)
	}

	fmt.Printf("%s: length %d, ate %d\n", result.State, result.Length, result.Eaten)
}
