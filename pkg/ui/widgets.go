package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// glyphHeight is the natural height of the bitmap font
const glyphHeight = 16.0

var face = text.NewGoXFace(bitmapfont.Face)

var (
	buttonColor         = color.RGBA{40, 40, 60, 255}
	buttonSelectedColor = color.RGBA{60, 100, 140, 255}
	buttonBorderColor   = color.RGBA{80, 80, 100, 255}
	labelColor          = color.RGBA{255, 255, 255, 255}
	labelSelectedColor  = color.RGBA{200, 240, 255, 255}
	hintColor           = color.RGBA{150, 150, 150, 255}
)

// drawButton draws a button with background and text
func drawButton(screen *ebiten.Image, label string, x, y, width, height float64, bgColor, textColor color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bgColor, false)
	vector.StrokeRect(screen, float32(x)+1, float32(y)+1, float32(width)-2, float32(height)-2, 2, buttonBorderColor, false)

	textWidth := text.Advance(label, face)

	// Baseline sits half a glyph above the centre
	textX := x + width/2 - textWidth/2
	textY := y + height/2 - glyphHeight/2

	op := &text.DrawOptions{}
	op.GeoM.Translate(textX, textY)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, label, face, op)
}

// drawText draws text centred on (centerX, centerY) at the given pixel size
func drawText(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	scale := size / glyphHeight
	textX := centerX - text.Advance(str, face)*scale/2
	textY := centerY - size/2

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(textX, textY)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawTextAt draws text with its top-left corner at (x, y)
func drawTextAt(screen *ebiten.Image, str string, x, y float64, size float64, clr color.Color) {
	scale := size / glyphHeight

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
