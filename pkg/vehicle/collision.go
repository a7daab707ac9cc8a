package vehicle

import "github.com/golangdaddy/roadrush/pkg/traffic"

const (
	// CollisionLookahead is how far ahead of the vehicle obstacles are tested
	CollisionLookahead = 200.0
	// CollisionThreshold is the lane-fraction separation below which two cars touch
	CollisionThreshold = 0.25
)

// LaneFraction maps a lateral position in -1..1 onto 0..1
func LaneFraction(x float64) float64 {
	return x*0.5 + 0.5
}

// CheckCollision reports whether any obstacle just ahead shares the vehicle's lane space.
// The lookahead is measured around the loop, so an obstacle just past the start line
// is found while the vehicle is still crossing the finish.
func (v *Vehicle) CheckCollision(m *traffic.Manager) bool {
	track := m.Track()
	player := LaneFraction(v.X)

	for _, o := range m.Obstacles() {
		ahead := track.ForwardDistance(v.Z, o.Z)
		if ahead <= 0 || ahead >= CollisionLookahead {
			continue
		}
		separation := player - LaneFraction(float64(o.Lane))
		if separation < 0 {
			separation = -separation
		}
		if separation < CollisionThreshold {
			return true
		}
	}
	return false
}
