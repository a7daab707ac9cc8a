// Package render turns the track, camera and traffic into screen-space draw primitives.
// It never touches pixels; a rasterizer consumes the DrawList it produces.
package render

import "github.com/golangdaddy/roadrush/pkg/camera"

// MinScale is the perspective scale used for points level with or behind the camera
const MinScale = 0.001

// Screen is the size of the drawing surface in pixels
type Screen struct {
	Width  float64
	Height float64
}

// CX returns the horizontal centre of the screen
func (s Screen) CX() float64 { return s.Width / 2 }

// CY returns the vertical centre of the screen
func (s Screen) CY() float64 { return s.Height / 2 }

// Point3 is a point in world space
type Point3 struct {
	X, Y, Z float64
}

// Projection is a world point mapped onto the screen
type Projection struct {
	X     float64 // Screen x of the road centre line
	Y     float64 // Screen y, growing downwards
	W     float64 // Screen half-width of the road at this depth
	Scale float64 // Perspective scale, planeDistance / depth
}

// Project maps a world point onto the screen by similar triangles.
// Road segments and obstacles both go through here so they scale identically.
func Project(p Point3, cam camera.Pose, planeDistance, roadWidth float64, screen Screen) Projection {
	tx := p.X - cam.X
	ty := p.Y - cam.Y
	tz := p.Z - cam.Z

	scale := MinScale
	if tz > 0 {
		scale = planeDistance / tz
	}

	cx, cy := screen.CX(), screen.CY()
	return Projection{
		X:     (1 + scale*tx) * cx,
		Y:     (1 - scale*ty) * cy,
		W:     scale * roadWidth * cx,
		Scale: scale,
	}
}
