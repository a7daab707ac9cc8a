package game

import (
	"time"

	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/scoreboard"
	"github.com/golangdaddy/roadrush/pkg/session"
	"github.com/golangdaddy/roadrush/pkg/sprites"
	"github.com/golangdaddy/roadrush/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	settings config.Settings
	levels   []config.Level
	store    *scoreboard.Store // nil when scores are not kept
	assets   *Assets
	log      zerolog.Logger

	currentScreen Screen
}

// NewGame creates a new game instance starting on the title screen
func NewGame(settings config.Settings, levels []config.Level, store *scoreboard.Store, log zerolog.Logger) *Game {
	g := &Game{
		settings: settings,
		levels:   levels,
		store:    store,
		assets:   NewAssets(settings.Screen.Width, settings.Screen.Height),
		log:      log,
	}

	g.currentScreen = ui.NewTitleScreen(g.showLevelSelect)
	return g
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the configured screen size; the window scales it to fit
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.settings.Screen.Width, g.settings.Screen.Height
}

// showLevelSelect switches to the level menu with fresh best scores
func (g *Game) showLevelSelect() {
	g.currentScreen = ui.NewLevelSelectScreen(g.levels, g.bestScores(), g.startGameplay)
}

// bestScores looks up the best score per level, skipping levels that fail
func (g *Game) bestScores() map[string]int {
	if g.store == nil {
		return nil
	}
	best := make(map[string]int, len(g.levels))
	for _, level := range g.levels {
		r, ok, err := g.store.Best(level.Name)
		if err != nil {
			g.log.Warn().Err(err).Str("level", level.Name).Msg("failed to load best score")
			continue
		}
		if ok {
			best[level.Name] = r.Score
		}
	}
	return best
}

// seed returns the configured seed, or a clock based one when none is set
func (g *Game) seed() int64 {
	if g.settings.Session.Seed != 0 {
		return g.settings.Session.Seed
	}
	return time.Now().UnixNano()
}

// startGameplay transitions to a new session for the chosen level
func (g *Game) startGameplay(level config.Level) {
	s, err := session.New(g.settings, level, sprites.Sizes(), g.seed(), g.log)
	if err != nil {
		g.log.Error().Err(err).Str("level", level.Name).Msg("failed to start session")
		return
	}
	g.currentScreen = NewGameplayScreen(s, g.assets, g.store, g.log, g.showLevelSelect)
}
