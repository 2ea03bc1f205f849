// Package main is the entry point for Office Crawl.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/samdwyer/officecrawl/internal/config"
	"github.com/samdwyer/officecrawl/internal/game"
	"github.com/samdwyer/officecrawl/internal/logger"
	"github.com/samdwyer/officecrawl/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "officecrawl.yaml", "path to YAML config")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	closer, err := logger.Initialize(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer closer.Close()
	logger.Info("config loaded", "path", *configPath, "mode", string(cfg.Mode), "map_file", cfg.MapFile)

	ctx := context.Background()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warning("telemetry setup failed, running without tracing", "error", err)
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error("telemetry shutdown failed", "error", err)
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	session, err := game.NewSession(ctx, cfg)
	if err != nil {
		logger.Error("session failed to start", "error", err)
		log.Fatalf("Failed to start: %v", err)
	}

	g, err := game.New(session)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
	logger.Info("session ended", "session", session.ID)
}
