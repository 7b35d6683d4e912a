// Package main is the entry point for Tilewalk.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/tilewalk/internal/app"
	"github.com/Faultbox/tilewalk/internal/assets"
	"github.com/Faultbox/tilewalk/internal/config"
	"github.com/Faultbox/tilewalk/internal/engine/tilemap"
	"github.com/Faultbox/tilewalk/internal/game"
	"github.com/Faultbox/tilewalk/internal/logger"
)

var (
	flagExportMap   = flag.String("export-map", "", "Write the active level as a YAML map file and exit")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config to a file and exit")
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Error("fatal", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(cfg *config.Config) error {
	logger.Info("=== Tilewalk ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	am := assets.NewManager()
	defer am.Close()
	for _, dir := range cfg.Data.AssetPaths {
		if err := am.AddDir(dir); err != nil {
			logger.Warn("skipping asset path", zap.Error(err))
		}
	}

	if *flagWriteConfig != "" {
		if err := cfg.SaveTo(*flagWriteConfig); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		logger.Info("config written", zap.String("path", *flagWriteConfig))
		return nil
	}

	if *flagExportMap != "" {
		return exportMap(cfg, am, *flagExportMap)
	}

	// Create and run game
	g, err := app.New(cfg, am)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		return fmt.Errorf("game error: %w", err)
	}

	logger.Info("game closed normally")
	return nil
}

func exportMap(cfg *config.Config, am *assets.Manager, path string) error {
	layer := game.BuiltinLevel()
	if cfg.Map.File != "" {
		var err error
		layer, err = game.LoadLayer(am, cfg.Map.File)
		if err != nil {
			return err
		}
	}

	data, err := tilemap.MarshalMap(layer)
	if err != nil {
		return fmt.Errorf("encoding map: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing map: %w", err)
	}

	logger.Info("map exported",
		zap.String("path", path),
		zap.Int("width", layer.Width),
		zap.Int("height", layer.Height),
	)
	return nil
}
