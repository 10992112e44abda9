package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"runtime"

	"HexTerrain/internal/config"
	"HexTerrain/internal/engine"
	"HexTerrain/internal/logger"

	"go.uber.org/zap"
)

func main() {
	runtime.LockOSThread()

	configPath := flag.String("config", "hexterrain.yaml", "path to the YAML config file")
	watch := flag.Bool("watch", true, "reload the config file when it changes")
	flag.Parse()

	logger.Init()
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Log.Info("No config file found, using defaults", zap.String("path", *configPath))
		cfg = config.Default()
	case err != nil:
		logger.Log.Fatal("Failed to load config", zap.String("path", *configPath), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gameEngine := engine.NewGopher(cfg)

	if *watch {
		updates, err := config.Watch(ctx, *configPath)
		if err != nil {
			logger.Log.Warn("Config reload disabled", zap.Error(err))
		} else {
			gameEngine.WatchConfig(updates)
		}
	}

	if err := gameEngine.Render(ctx); err != nil {
		logger.Log.Fatal("Engine stopped", zap.Error(err))
	}
}
