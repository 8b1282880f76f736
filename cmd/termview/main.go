// Command termview runs a crossroads level in the terminal.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/milk9111/crossroads/config"
	"github.com/milk9111/crossroads/telemetry"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", envOr("CROSSROADS_CONFIG", "config/world.yaml"), "world config (.yaml or .toml)")
	seed := flag.String("seed", os.Getenv("CROSSROADS_SEED"), "level seed, overrides the config")
	filterPath := flag.String("filter", "", "tengo spawn filter script")
	logPath := flag.String("log", "", "write logs to this file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != "" {
		cfg.Seed = *seed
	}

	// The terminal owns stdout; logs go to a file or nowhere.
	logger := zap.NewNop()
	if *logPath != "" {
		logger, err = telemetry.NewLogger(cfg.Logging.Level, cfg.Logging.Format, *logPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
	} else {
		defer func() { _ = shutdown(ctx) }()
	}

	g, err := NewGame(ctx, cfg, *configPath, *filterPath, logger)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	if err := g.Run(); err != nil {
		log.Fatalf("game error: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
