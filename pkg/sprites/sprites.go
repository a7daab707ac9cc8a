// Package sprites paints the rear-view vehicle sprites at their native size.
package sprites

import (
	"image"
	"image/color"

	"github.com/golangdaddy/roadrush/pkg/render"
	"github.com/golangdaddy/roadrush/pkg/traffic"
)

// Native sprite sizes in pixels
const (
	CarWidth    = 320
	CarHeight   = 160
	TruckWidth  = 360
	TruckHeight = 260
)

var (
	outlineColor = color.RGBA{20, 20, 20, 255}
	glassColor   = color.RGBA{150, 200, 255, 255}
	tyreColor    = color.RGBA{30, 30, 30, 255}
	lightColor   = color.RGBA{230, 30, 30, 255}
	plateColor   = color.RGBA{240, 240, 200, 255}

	// Body colours
	PlayerColor = color.RGBA{200, 30, 40, 255}
	CarColor    = color.RGBA{40, 90, 200, 255}
	TruckColor  = color.RGBA{230, 180, 40, 255}
)

// Sheet holds one image per vehicle kind
type Sheet struct {
	Player *image.RGBA
	Car    *image.RGBA
	Truck  *image.RGBA
}

// Generate paints every sprite
func Generate() *Sheet {
	return &Sheet{
		Player: Car(PlayerColor),
		Car:    Car(CarColor),
		Truck:  Truck(TruckColor),
	}
}

// Image returns the sprite for an obstacle kind, or nil for unknown kinds
func (s *Sheet) Image(kind traffic.Kind) *image.RGBA {
	switch kind {
	case traffic.KindCar:
		return s.Car
	case traffic.KindTruck:
		return s.Truck
	default:
		return nil
	}
}

// Sizes returns the native size of each obstacle sprite for the renderer
func Sizes() map[traffic.Kind]render.SpriteSize {
	return map[traffic.Kind]render.SpriteSize{
		traffic.KindCar:   {Width: CarWidth, Height: CarHeight},
		traffic.KindTruck: {Width: TruckWidth, Height: TruckHeight},
	}
}

// Car paints a car seen from behind
func Car(body color.RGBA) *image.RGBA {
	w, h := CarWidth, CarHeight
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	// Tyres poke out below the body
	fillRect(img, 20, h-40, 70, h, tyreColor)
	fillRect(img, w-70, h-40, w-20, h, tyreColor)

	// Cabin and rear window
	fillRect(img, 60, 10, w-60, 60, outlineColor)
	fillRect(img, 66, 16, w-66, 56, glassColor)

	// Body with outline
	fillRect(img, 0, 55, w, h-20, outlineColor)
	fillRect(img, 4, 59, w-4, h-24, body)

	// Tail lights and plate
	fillRect(img, 14, 75, 74, 95, lightColor)
	fillRect(img, w-74, 75, w-14, 95, lightColor)
	fillRect(img, w/2-40, 100, w/2+40, 122, plateColor)

	return img
}

// Truck paints a box truck seen from behind
func Truck(body color.RGBA) *image.RGBA {
	w, h := TruckWidth, TruckHeight
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	fillRect(img, 24, h-44, 84, h, tyreColor)
	fillRect(img, w-84, h-44, w-24, h, tyreColor)

	// Cargo box
	fillRect(img, 0, 0, w, h-30, outlineColor)
	fillRect(img, 5, 5, w-5, h-35, body)

	// Rear doors
	fillRect(img, w/2-2, 10, w/2+2, h-40, outlineColor)
	for _, x := range []int{w/2 - 30, w/2 + 22} {
		fillRect(img, x, h/2-20, x+8, h/2+20, outlineColor)
	}

	// Bumper with lights
	fillRect(img, 0, h-40, w, h-28, outlineColor)
	fillRect(img, 10, h-38, 60, h-30, lightColor)
	fillRect(img, w-60, h-38, w-10, h-30, lightColor)

	return img
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	b := img.Bounds()
	x0, y0 = max(x0, b.Min.X), max(y0, b.Min.Y)
	x1, y1 = min(x1, b.Max.X), min(y1, b.Max.Y)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}
