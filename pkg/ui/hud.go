package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay messages
const (
	MessagePaused   = "PAUSED"
	MessageGameOver = "GAME OVER"
	MessageWon      = "YOU WON!"
)

var (
	hudTextColor  = color.RGBA{255, 255, 255, 255}
	gameOverColor = color.RGBA{255, 0, 0, 255}
	wonColor      = color.RGBA{0, 255, 0, 255}
)

// HUD is what the heads-up display shows for a frame
type HUD struct {
	Score    int
	Seconds  int
	Speed    float64
	MaxSpeed float64
}

// ScoreLine is the top-left status text
func ScoreLine(score, seconds int) string {
	return fmt.Sprintf("Score: %d Time: %ds", score, seconds)
}

// DrawHUD draws the score line and the speedometer
func DrawHUD(screen *ebiten.Image, hud HUD) {
	drawTextAt(screen, ScoreLine(hud.Score, hud.Seconds), 10, 10, 36, hudTextColor)

	width := float64(screen.Bounds().Dx())
	drawSpeedometer(screen, width-200, 20, hud.Speed, hud.MaxSpeed)
}

// DrawPaused centres the pause message
func DrawPaused(screen *ebiten.Image) {
	drawCentered(screen, MessagePaused, hudTextColor)
}

// DrawGameOver shows the crash message with the ways out
func DrawGameOver(screen *ebiten.Image) {
	drawCentered(screen, MessageGameOver, gameOverColor)
	drawHint(screen, "R: Restart | Esc: Menu")
}

// DrawWon shows the win message with the ways out
func DrawWon(screen *ebiten.Image) {
	drawCentered(screen, MessageWon, wonColor)
	drawHint(screen, "R: Restart | Esc: Menu")
}

// DrawCountdown shows the seconds left before the start
func DrawCountdown(screen *ebiten.Image, count int) {
	if count <= 0 {
		return
	}
	drawCentered(screen, fmt.Sprint(count), hudTextColor)
}

func drawCentered(screen *ebiten.Image, msg string, clr color.Color) {
	b := screen.Bounds()
	drawText(screen, msg, float64(b.Dx())/2, float64(b.Dy())/2, 72, clr)
}

func drawHint(screen *ebiten.Image, msg string) {
	b := screen.Bounds()
	drawText(screen, msg, float64(b.Dx())/2, float64(b.Dy())/2+80, 24, hintColor)
}

// drawSpeedometer draws the current speed as a percentage of the level's top speed
func drawSpeedometer(screen *ebiten.Image, x, y, speed, maxSpeed float64) {
	width := 180.0
	height := 120.0

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{20, 20, 30, 200}, false)
	vector.StrokeRect(screen, float32(x)+1, float32(y)+1, float32(width)-2, float32(height)-2, 2, color.RGBA{100, 100, 120, 255}, false)

	percent := SpeedPercent(speed, maxSpeed)
	drawText(screen, fmt.Sprintf("%.0f", speed), x+width/2, y+45, 48, GaugeColor(percent))
	drawText(screen, "SPEED", x+width/2, y+80, 24, color.RGBA{200, 200, 200, 255})

	drawSpeedGauge(screen, x+10, y+height-25, width-20, 15, percent)
}

// drawSpeedGauge draws a horizontal bar filled to percent
func drawSpeedGauge(screen *ebiten.Image, x, y, width, height, percent float64) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{40, 40, 40, 255}, false)

	if filled := width * percent; filled > 0 {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(filled), float32(height), GaugeColor(percent), false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 1, color.RGBA{150, 150, 150, 255}, false)
}

// SpeedPercent returns speed as a 0..1 fraction of maxSpeed
func SpeedPercent(speed, maxSpeed float64) float64 {
	if maxSpeed <= 0 {
		return 0
	}
	return math.Max(0, math.Min(speed/maxSpeed, 1))
}

// GaugeColor runs green to yellow over the first half of the gauge, then yellow to red
func GaugeColor(percent float64) color.RGBA {
	if percent < 0.5 {
		ratio := percent / 0.5
		return color.RGBA{uint8(100 + ratio*155), 255, 100, 255}
	}
	ratio := (percent - 0.5) / 0.5
	return color.RGBA{255, uint8(255 - ratio*155), uint8(100 - ratio*100), 255}
}
