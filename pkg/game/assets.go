package game

import (
	"image"
	"image/color"

	"github.com/golangdaddy/roadrush/pkg/background"
	"github.com/golangdaddy/roadrush/pkg/sprites"
	"github.com/golangdaddy/roadrush/pkg/traffic"
	"github.com/hajimehoshi/ebiten/v2"
)

// backdropSeed keeps the sky and skyline the same between runs
const backdropSeed = 1987

// Assets are the GPU images shared by every session
type Assets struct {
	Sky       *ebiten.Image
	Skyline   *ebiten.Image
	Player    *ebiten.Image
	Obstacles map[traffic.Kind]*ebiten.Image

	// white is a single opaque pixel used as the source for coloured triangles
	white *ebiten.Image
}

// NewAssets paints the backdrops and vehicle sprites for a screen size
func NewAssets(width, height int) *Assets {
	sky := background.NewGenerator(width, height).GenerateSky(backdropSeed)
	skyline := background.NewGenerator(width, height/4).GenerateSkyline(backdropSeed)
	sheet := sprites.Generate()

	base := ebiten.NewImage(3, 3)
	base.Fill(color.White)

	return &Assets{
		Sky:     ebiten.NewImageFromImage(sky),
		Skyline: ebiten.NewImageFromImage(skyline),
		Player:  ebiten.NewImageFromImage(sheet.Player),
		Obstacles: map[traffic.Kind]*ebiten.Image{
			traffic.KindCar:   ebiten.NewImageFromImage(sheet.Car),
			traffic.KindTruck: ebiten.NewImageFromImage(sheet.Truck),
		},
		white: base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}
