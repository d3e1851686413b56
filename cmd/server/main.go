package main

import (
	"log"

	"github.com/alkime/gradients/internal/config"
	"github.com/alkime/gradients/internal/logger"
	"github.com/alkime/gradients/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup structured logging
	slogger := logger.SetupLogger(cfg)

	// Log startup information
	slogger.Info("Starting gradients server",
		"env", cfg.Env,
		"port", cfg.Port,
		"static_dir", cfg.StaticDir,
		"defer_sort", cfg.DeferSort,
		"clamp_opacity", cfg.ClampOpacity,
	)

	srv := server.New(cfg, slogger)
	if err := server.Run(srv); err != nil {
		slogger.Error("Failed to start server", "error", err)
		log.Fatalf("Fatal: %v", err)
	}
}
