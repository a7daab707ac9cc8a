package main

import (
	"errors"
	"os"
	"time"

	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/game"
	"github.com/golangdaddy/roadrush/pkg/logging"
	"github.com/golangdaddy/roadrush/pkg/scoreboard"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load(".")
	log := logging.New(settings.LogLevel, os.Stdout)
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		log.Info().Msg("no config file, using defaults")
	case err != nil:
		log.Warn().Err(err).Msg("failed to load config, using defaults")
	}

	levels, err := config.LoadLevels(settings.Levels.File)
	if err != nil {
		log.Warn().Err(err).Str("file", settings.Levels.File).Msg("using built-in levels")
		levels = config.DefaultLevels()
	}

	var store *scoreboard.Store
	if settings.Scoreboard.Enabled {
		store, err = scoreboard.Open(settings.Scoreboard.Path, log)
		if err != nil {
			log.Warn().Err(err).Msg("scores will not be kept")
		} else {
			defer store.Close()
		}
	}

	ebiten.SetWindowSize(settings.Screen.Width/2, settings.Screen.Height/2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Roadrush")

	start := time.Now()
	if err := ebiten.RunGame(game.NewGame(settings, levels, store, log)); err != nil {
		log.Error().Err(err).Msg("game stopped")
		return err
	}
	log.Info().Dur("played", time.Since(start)).Msg("bye")
	return nil
}
