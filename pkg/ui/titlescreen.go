package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()

	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Title pulses between 1.0 and 1.1 of its size
	size := 128 * (1 + 0.1*sinWave(elapsed*2))
	brightness := math.Min(1, 1+0.2*sinWave(elapsed*1.5))
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	drawText(screen, "ROADRUSH", centerX, centerY, size, titleColor)
	drawText(screen, "Pseudo-3D Highway Racing", centerX, centerY+120, 32, color.RGBA{180, 180, 200, 255})

	// Blink every half second
	if int(elapsed*2)%2 == 0 {
		drawText(screen, "Press ENTER or SPACE to Start", centerX, float64(height)-100, 24, color.RGBA{150, 200, 255, 255})
	}

	drawDecorativeElements(screen, width, height)
}

// sinWave returns a sine wave value between -1 and 1
func sinWave(t float64) float64 {
	return math.Sin(t)
}

// drawDecorativeElements frames the title with two horizontal rules
func drawDecorativeElements(screen *ebiten.Image, width, height int) {
	lineColor := color.RGBA{50, 60, 80, 100}
	for _, y := range []float64{float64(height) / 6, float64(height) * 5 / 6} {
		vector.DrawFilledRect(screen, 0, float32(y), float32(width), 2, lineColor, false)
	}
}
