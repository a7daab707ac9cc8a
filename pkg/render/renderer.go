package render

import (
	"cmp"
	"math"
	"slices"

	"github.com/golangdaddy/roadrush/pkg/camera"
	"github.com/golangdaddy/roadrush/pkg/road"
	"github.com/golangdaddy/roadrush/pkg/traffic"
)

// Sprite sizing
const (
	SpriteScaleFactor = 0.8 // Obstacles at the player's depth draw at this fraction of native size
	MinSpriteScale    = 0.1 // Obstacles smaller than this are not drawn
	MinSpritePixels   = 1.0
)

// Rumble strips and lane lines are sized relative to the projected road half-width
const (
	rumbleRatio   = 5.0
	laneLineRatio = 40.0
)

// SpriteSize is the native pixel size of a sprite
type SpriteSize struct {
	Width  float64
	Height float64
}

// Renderer builds the DrawList for a frame
type Renderer struct {
	Screen      Screen
	SpriteSizes map[traffic.Kind]SpriteSize

	list DrawList
}

// NewRenderer creates a renderer for a screen
func NewRenderer(screen Screen, sizes map[traffic.Kind]SpriteSize) *Renderer {
	return &Renderer{
		Screen:      screen,
		SpriteSizes: sizes,
	}
}

// Render projects the visible road and obstacles.
// The returned DrawList is reused by the next call.
func (r *Renderer) Render(track *road.Track, cam *camera.Camera, obstacles []traffic.Obstacle) DrawList {
	r.list.reset()
	r.renderRoad(track, cam)
	r.renderObstacles(track, cam, obstacles)
	return r.list
}

// renderRoad walks the visible segments nearest first. A segment is only drawn when it
// rises above everything drawn so far, so nearer road is never painted over.
func (r *Renderer) renderRoad(track *road.Track, cam *camera.Camera) {
	baseIndex := track.IndexAt(cam.Z)
	clipBottom := r.Screen.Height

	var prev Projection
	for n := 0; n < track.VisibleSegments; n++ {
		segment := track.SegmentAt(baseIndex + n)
		index := segment.Index

		p := Project(Point3{Z: segment.Z}, r.loopedPose(track, cam, index, baseIndex), cam.PlaneDistance, track.RoadWidth, r.Screen)

		if n > 0 && p.Y < clipBottom {
			r.segment(prev, p, segment.Palette, track.Lanes)
			clipBottom = p.Y
		}
		prev = p
	}
}

// loopedPose pulls the camera back one lap for segments that wrapped past the end of the track
func (r *Renderer) loopedPose(track *road.Track, cam *camera.Camera, index, baseIndex int) camera.Pose {
	pose := cam.Pose
	if index < baseIndex {
		pose.Z -= track.Length()
	}
	return pose
}

func (r *Renderer) segment(p1, p2 Projection, palette road.Palette, lanes int) {
	x1, y1, w1 := p1.X, p1.Y, p1.W
	x2, y2, w2 := p2.X, p2.Y, p2.W

	r.list.quad(LayerGrass, palette.Grass,
		Point{0, y1}, Point{r.Screen.Width, y1}, Point{r.Screen.Width, y2}, Point{0, y2})

	r.list.quad(LayerRoad, palette.Road,
		Point{x1 - w1, y1}, Point{x1 + w1, y1}, Point{x2 + w2, y2}, Point{x2 - w2, y2})

	rumble1 := w1 / rumbleRatio
	rumble2 := w2 / rumbleRatio
	r.list.quad(LayerRumble, palette.Rumble,
		Point{x1 - w1 - rumble1, y1}, Point{x1 - w1, y1}, Point{x2 - w2, y2}, Point{x2 - w2 - rumble2, y2})
	r.list.quad(LayerRumble, palette.Rumble,
		Point{x1 + w1, y1}, Point{x1 + w1 + rumble1, y1}, Point{x2 + w2 + rumble2, y2}, Point{x2 + w2, y2})

	if !palette.HasLane || lanes < 2 {
		return
	}

	line1 := w1 / laneLineRatio
	line2 := w2 / laneLineRatio
	laneWidth1 := 2 * w1 / float64(lanes)
	laneWidth2 := 2 * w2 / float64(lanes)
	laneX1 := x1 - w1
	laneX2 := x2 - w2
	for i := 1; i < lanes; i++ {
		laneX1 += laneWidth1
		laneX2 += laneWidth2
		r.list.quad(LayerLane, palette.Lane,
			Point{laneX1 - line1, y1}, Point{laneX1 + line1, y1}, Point{laneX2 + line2, y2}, Point{laneX2 - line2, y2})
	}
}

// renderObstacles places a sprite for each active obstacle in view, farthest first
func (r *Renderer) renderObstacles(track *road.Track, cam *camera.Camera, obstacles []traffic.Obstacle) {
	baseIndex := track.IndexAt(cam.Z)
	maxDepth := float64(track.VisibleSegments) * track.SegmentLength
	// Scale of a point at the player's depth; sprites are sized relative to it
	playerScale := cam.PlaneDistance / cam.Distance

	for _, o := range obstacles {
		if !o.Active {
			continue
		}

		depth := track.ForwardDistance(cam.Z, o.Z)
		if depth <= 0 || depth > maxDepth {
			continue
		}

		world := Point3{X: float64(o.Lane) * track.RoadWidth / 3, Z: o.Z}
		pose := r.loopedPose(track, cam, track.IndexAt(o.Z), baseIndex)
		p := Project(world, pose, cam.PlaneDistance, track.RoadWidth, r.Screen)

		scale := math.Min(1, SpriteScaleFactor*(p.Scale/playerScale))
		if scale <= MinSpriteScale {
			continue
		}

		size, ok := r.SpriteSizes[o.Kind]
		if !ok {
			continue
		}
		width := math.Floor(size.Width * scale)
		height := math.Floor(size.Height * scale)
		if width <= MinSpritePixels || height <= MinSpritePixels {
			continue
		}

		x := p.X - width/2
		y := p.Y - height
		if x < 0 || x >= r.Screen.Width || y < 0 || y >= r.Screen.Height {
			continue
		}

		r.list.Sprites = append(r.list.Sprites, Sprite{
			Kind:     o.Kind,
			X:        x,
			Y:        y,
			Width:    width,
			Height:   height,
			Scale:    scale,
			Distance: depth,
		})
	}

	slices.SortStableFunc(r.list.Sprites, func(a, b Sprite) int {
		return cmp.Compare(b.Distance, a.Distance)
	})
}
