package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Generator paints the backdrops drawn behind the road
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// Sky gradient stops
var (
	skyTop     = color.RGBA{40, 90, 180, 255}
	skyHorizon = color.RGBA{170, 210, 240, 255}
	cloudColor = color.RGBA{245, 245, 250, 255}
)

// GenerateSky creates a full-screen sky fading towards the horizon, with a few clouds
func (g *Generator) GenerateSky(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	// The horizon sits at mid screen, below it the road covers the sky
	horizon := g.Height / 2
	for y := 0; y < g.Height; y++ {
		t := math.Min(1, float64(y)/float64(max(horizon, 1)))
		c := lerp(skyTop, skyHorizon, t)
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	clouds := 4 + rng.Intn(4)
	for i := 0; i < clouds; i++ {
		x := rng.Intn(max(g.Width, 1))
		y := rng.Intn(max(horizon/2, 1))
		g.drawCloud(img, x, y, rng)
	}

	return img
}

// drawCloud draws a cluster of overlapping puffs
func (g *Generator) drawCloud(img *image.RGBA, x, y int, rng *rand.Rand) {
	puffs := 3 + rng.Intn(3)
	for p := 0; p < puffs; p++ {
		radius := 15 + rng.Intn(20)
		cx := x + p*radius
		cy := y + rng.Intn(10) - 5
		g.fillCircle(img, cx, cy, radius, cloudColor)
	}
}

// GenerateSkyline creates the city silhouette that sits on the horizon.
// The image is transparent above the buildings.
func (g *Generator) GenerateSkyline(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	for x := 0; x < g.Width; {
		width := 40 + rng.Intn(80)
		height := g.Height/4 + rng.Intn(max(g.Height*3/4, 1))
		shade := uint8(30 + rng.Intn(30))
		g.drawBuilding(img, x, width, height, color.RGBA{shade, shade, shade + 15, 255}, rng)
		x += width + rng.Intn(6)
	}

	return img
}

// drawBuilding draws a block standing on the bottom edge with lit windows
func (g *Generator) drawBuilding(img *image.RGBA, x, width, height int, c color.RGBA, rng *rand.Rand) {
	top := g.Height - height
	g.fillRect(img, x, top, x+width, g.Height, c)

	lit := color.RGBA{250, 220, 120, 255}
	for wy := top + 6; wy+6 < g.Height; wy += 12 {
		for wx := x + 5; wx+5 < x+width; wx += 10 {
			if rng.Float64() < 0.35 {
				g.fillRect(img, wx, wy, wx+4, wy+6, lit)
			}
		}
	}
}

func (g *Generator) fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, g.Width), min(y1, g.Height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func (g *Generator) fillCircle(img *image.RGBA, cx, cy, radius int, c color.RGBA) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				px, py := cx+dx, cy+dy
				if px >= 0 && px < g.Width && py >= 0 && py < g.Height {
					img.SetRGBA(px, py, c)
				}
			}
		}
	}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}
