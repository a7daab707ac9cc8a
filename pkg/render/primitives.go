package render

import (
	"image/color"

	"github.com/golangdaddy/roadrush/pkg/traffic"
)

// Layer says what part of the scene a quad belongs to
type Layer int

const (
	LayerGrass Layer = iota
	LayerRoad
	LayerRumble
	LayerLane
)

// Point is a screen-space position
type Point struct {
	X, Y float64
}

// Quad is a filled four-sided polygon, listed near-left, near-right, far-right, far-left
type Quad struct {
	Points [4]Point
	Color  color.RGBA
	Layer  Layer
}

// Sprite places a vehicle image on screen
type Sprite struct {
	Kind     traffic.Kind
	X, Y     float64 // Top-left corner
	Width    float64
	Height   float64
	Scale    float64 // Fraction of the native sprite size
	Distance float64 // Depth in front of the camera
}

// DrawList is one frame of primitives in painting order: quads first, then sprites
type DrawList struct {
	Quads   []Quad
	Sprites []Sprite
}

func (d *DrawList) reset() {
	d.Quads = d.Quads[:0]
	d.Sprites = d.Sprites[:0]
}

func (d *DrawList) quad(layer Layer, c color.RGBA, p0, p1, p2, p3 Point) {
	d.Quads = append(d.Quads, Quad{Points: [4]Point{p0, p1, p2, p3}, Color: c, Layer: layer})
}
