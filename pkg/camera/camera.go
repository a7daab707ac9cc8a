package camera

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/roadrush/pkg/road"
	"github.com/golangdaddy/roadrush/pkg/vehicle"
)

var ErrInvalidCamera = errors.New("camera height and distance must be positive")

// Default camera rig
const (
	DefaultHeight   = 1000.0 // Eye height above the road
	DefaultDistance = 500.0  // How far the camera trails the player
)

// Pose is the camera position in world space
type Pose struct {
	X, Y, Z float64
}

// Camera trails the player at a fixed height and distance
type Camera struct {
	Pose
	Distance      float64 // Trailing distance behind the player
	PlaneDistance float64 // Distance to the normalised projection plane
}

// New creates a camera and fixes its projection plane
func New(height, distance float64) (*Camera, error) {
	if height <= 0 || distance <= 0 {
		return nil, fmt.Errorf("create camera at height %v distance %v: %w", height, distance, ErrInvalidCamera)
	}
	return &Camera{
		Pose:          Pose{Y: height},
		Distance:      distance,
		PlaneDistance: 1 / (height / distance),
	}, nil
}

// Update moves the camera behind the player, keeping Z on the loop even when it trails by more than a lap
func (c *Camera) Update(state vehicle.State, track *road.Track) {
	c.X = state.X * track.RoadWidth
	c.Z = track.Wrap(state.Z - c.Distance)
}
