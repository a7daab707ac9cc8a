package road

import "image/color"

// Default road parameters
const (
	DefaultSegmentLength   = 100.0
	DefaultSegmentCount    = 1000
	DefaultRumbleSegments  = 5
	DefaultRoadWidth       = 1000.0
	DefaultLanes           = 3
	DefaultVisibleSegments = 200
)

// Start and finish line road tints
var (
	StartTint  = color.RGBA{255, 255, 255, 255}
	FinishTint = color.RGBA{34, 34, 34, 255}
)

// Palette is the colour scheme of one segment
type Palette struct {
	Road    color.RGBA
	Grass   color.RGBA
	Rumble  color.RGBA
	Lane    color.RGBA
	HasLane bool // Only dark bands paint lane dividers
}

// Light and Dark alternate in bands of rumble segments
var (
	Light = Palette{
		Road:   color.RGBA{136, 136, 136, 255},
		Grass:  color.RGBA{66, 147, 82, 255},
		Rumble: color.RGBA{184, 49, 46, 255},
	}
	Dark = Palette{
		Road:    color.RGBA{102, 102, 102, 255},
		Grass:   color.RGBA{57, 125, 70, 255},
		Rumble:  color.RGBA{221, 221, 221, 255},
		Lane:    color.RGBA{255, 255, 255, 255},
		HasLane: true,
	}
)

// BandPalette returns the base palette for the segment at index
func BandPalette(index, rumbleSegments int) Palette {
	if (index/rumbleSegments)%2 == 1 {
		return Dark
	}
	return Light
}
