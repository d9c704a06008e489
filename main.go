package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"macrolog/catalog"
	"macrolog/config"
	"macrolog/logging"
	"macrolog/sound"
	"macrolog/ui"
)

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logging.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		return err
	}
	defer logging.Sync()

	// Catalog must load before any screen renders; an unreadable file is fatal.
	foods, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	logging.Info("catalog loaded",
		zap.String("path", cfg.CatalogPath),
		zap.Int("foods", len(foods)),
	)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	// Fini restores the terminal (raw mode off, screen cleared, cursor back)
	// on every exit path.
	defer screen.Fini()

	var chime ui.Chimer
	if cfg.Sound {
		player, err := sound.NewPlayer()
		if err != nil {
			// Non-fatal, the program runs silent
			logging.Warn("audio initialization failed", zap.Error(err))
		} else {
			defer player.Close()
			chime = player
		}
	}

	app := ui.NewApp(screen, foods, chime)

	watcher, err := catalog.NewWatcher(cfg.CatalogPath, app.PostCatalog)
	if err != nil {
		logging.Warn("catalog watcher unavailable", zap.Error(err))
	} else {
		defer watcher.Close()
		go watcher.Watch()
	}

	app.Run()
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "macrolog: %v\n", err)
		os.Exit(1)
	}
}
