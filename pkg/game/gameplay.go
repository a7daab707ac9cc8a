package game

import (
	"github.com/golangdaddy/roadrush/pkg/scoreboard"
	"github.com/golangdaddy/roadrush/pkg/session"
	"github.com/golangdaddy/roadrush/pkg/ui"
	"github.com/golangdaddy/roadrush/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

// GameplayScreen drives one session and draws it
type GameplayScreen struct {
	session    *session.Session
	assets     *Assets
	rasterizer *Rasterizer
	store      *scoreboard.Store // nil when scores are not kept
	log        zerolog.Logger

	paused   bool
	recorded bool
	onExit   func() // Callback when the player leaves for the menu
}

// NewGameplayScreen creates a gameplay screen for a ready session
func NewGameplayScreen(s *session.Session, assets *Assets, store *scoreboard.Store, log zerolog.Logger, onExit func()) *GameplayScreen {
	return &GameplayScreen{
		session:    s,
		assets:     assets,
		rasterizer: NewRasterizer(assets.white),
		store:      store,
		log:        log,
		onExit:     onExit,
	}
}

// readInput maps the arrow keys onto the pedals and steering
func readInput() vehicle.Input {
	return vehicle.Input{
		Throttle: ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Brake:    ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:     ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
}

// Update handles input and steps the session by one tick
func (gs *GameplayScreen) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		gs.log.Debug().Str("status", gs.session.Status().String()).Msg("back to menu")
		if gs.onExit != nil {
			gs.onExit()
		}
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return gs.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if !gs.session.Status().Finished() {
			gs.paused = !gs.paused
			gs.log.Debug().Bool("paused", gs.paused).Msg("pause toggled")
		}
	}

	if gs.paused {
		return nil
	}

	status := gs.session.Step(1/float64(ebiten.TPS()), readInput())
	if status.Finished() && !gs.recorded {
		gs.record()
	}
	return nil
}

func (gs *GameplayScreen) restart() error {
	gs.paused = false
	gs.recorded = false
	return gs.session.Restart()
}

// record stores a finished run once
func (gs *GameplayScreen) record() {
	gs.recorded = true
	if gs.store == nil {
		return
	}
	if err := gs.store.Record(gs.session.Result()); err != nil {
		gs.log.Error().Err(err).Msg("failed to record run")
	}
}

// Draw renders the gameplay screen
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	screen.DrawImage(gs.assets.Sky, nil)

	// The skyline stands on the horizon
	skyline := &ebiten.DrawImageOptions{}
	skyline.GeoM.Translate(0, float64(height/2-gs.assets.Skyline.Bounds().Dy()))
	screen.DrawImage(gs.assets.Skyline, skyline)

	frame := gs.session.Frame()
	gs.rasterizer.DrawQuads(screen, frame.Quads)
	gs.rasterizer.DrawSprites(screen, frame.Sprites, gs.assets.Obstacles)

	gs.drawPlayer(screen, width, height)
	gs.drawUI(screen)
}

// drawPlayer draws the player's car centred at the bottom of the screen
func (gs *GameplayScreen) drawPlayer(screen *ebiten.Image, width, height int) {
	b := gs.assets.Player.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	anchorY := float64(height) - h/2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(width)/2-w/2, anchorY-h)
	screen.DrawImage(gs.assets.Player, op)
}

// drawUI renders the HUD and whichever overlay the session calls for
func (gs *GameplayScreen) drawUI(screen *ebiten.Image) {
	player := gs.session.Player()
	ui.DrawHUD(screen, ui.HUD{
		Score:    gs.session.Score(),
		Seconds:  int(gs.session.Elapsed().Seconds()),
		Speed:    player.Speed,
		MaxSpeed: gs.session.Level.MaxSpeed,
	})

	switch gs.session.Status() {
	case session.StatusCountdown:
		ui.DrawCountdown(screen, gs.session.Countdown())
	case session.StatusCrashed:
		ui.DrawGameOver(screen)
	case session.StatusWon:
		ui.DrawWon(screen)
	}
	if gs.paused {
		ui.DrawPaused(screen)
	}
}
