package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
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
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != "" {
		cfg.Seed = *seed
	}

	level := cfg.Logging.Level
	if *debug {
		level = "debug"
	}
	logger, err := telemetry.NewLogger(level, cfg.Logging.Format)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
	} else {
		defer func() { _ = shutdown(ctx) }()
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Camera.ViewWidth*2, cfg.Camera.ViewHeight*2)
	ebiten.SetWindowTitle("crossroads")

	game, err := NewGame(ctx, cfg, GameOptions{
		ConfigPath: *configPath,
		FilterPath: *filterPath,
		Debug:      *debug,
		Log:        logger,
	})
	if err != nil {
		logger.Fatal("failed to start", zap.Error(err))
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
