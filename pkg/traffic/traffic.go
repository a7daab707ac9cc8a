// Package traffic owns the obstacle cars that share the road with the player.
package traffic

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/golangdaddy/roadrush/pkg/road"
)

var (
	ErrInvalidDensity = errors.New("obstacle density must be between 0 and 100 percent")
	ErrNoObstacles    = errors.New("obstacle density produces no obstacles")
)

// Placement and behaviour tunables
const (
	SafeZoneFraction = 0.2  // Leading fraction of the track kept clear at session start
	PlacementJitter  = 5    // Max segments an obstacle is nudged from its even slot
	TruckChance      = 0.25 // Probability an obstacle is a truck
	MinSpeedFactor   = 0.5
	MaxSpeedFactor   = 0.8
	TrailSegments    = 50 // Segments behind the player where obstacles stay active
)

// Kind is the class of an obstacle vehicle
type Kind int

const (
	KindCar Kind = iota
	KindTruck
)

func (k Kind) String() string {
	switch k {
	case KindCar:
		return "car"
	case KindTruck:
		return "truck"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Obstacle is a traffic car driving at a constant fraction of the player's top speed
type Obstacle struct {
	Z           float64 // Longitudinal position, wraps around the track
	Lane        int     // -1 left, 0 centre, 1 right
	Kind        Kind
	SpeedFactor float64 // Fraction of the player's max speed
	Active      bool    // Near enough to the player to be drawn
}

// Manager places and advances the obstacles of one session
type Manager struct {
	track     *road.Track
	rng       *rand.Rand
	obstacles []Obstacle
}

// NewManager creates an empty manager for a track
func NewManager(track *road.Track, rng *rand.Rand) *Manager {
	return &Manager{
		track:     track,
		rng:       rng,
		obstacles: []Obstacle{},
	}
}

// Populate replaces all obstacles with a fresh spread beyond the safe zone.
// Obstacles sit at even intervals over the rest of the track, nudged by a few segments.
func (m *Manager) Populate(densityPercent int) error {
	if densityPercent < 0 || densityPercent > 100 {
		return fmt.Errorf("populate with density %d%%: %w", densityPercent, ErrInvalidDensity)
	}

	total := m.track.Total()
	count := total * densityPercent / 100
	if count == 0 {
		return fmt.Errorf("populate %d segments at %d%%: %w", total, densityPercent, ErrNoObstacles)
	}

	safeZone := int(float64(total) * SafeZoneFraction)
	remaining := total - safeZone

	obstacles := make([]Obstacle, 0, count)
	for i := 0; i < count; i++ {
		index := safeZone + remaining*i/count
		index += m.rng.Intn(2*PlacementJitter+1) - PlacementJitter
		index = max(safeZone, min(index, total-1))

		kind := KindCar
		if m.rng.Float64() < TruckChance {
			kind = KindTruck
		}

		obstacles = append(obstacles, Obstacle{
			Z:           float64(index) * m.track.SegmentLength,
			Lane:        m.rng.Intn(3) - 1,
			Kind:        kind,
			SpeedFactor: MinSpeedFactor + m.rng.Float64()*(MaxSpeedFactor-MinSpeedFactor),
			Active:      true,
		})
	}

	m.obstacles = obstacles
	return nil
}

// Add places a single obstacle on the track
func (m *Manager) Add(o Obstacle) {
	o.Z = m.track.Wrap(o.Z)
	m.obstacles = append(m.obstacles, o)
}

// Tick advances every obstacle and refreshes which ones are near the player
func (m *Manager) Tick(dt, playerZ, playerMaxSpeed float64) {
	total := m.track.Total()
	playerSegment := m.track.IndexAt(playerZ)

	for i := range m.obstacles {
		o := &m.obstacles[i]

		if dt > 0 {
			o.Z = m.track.Wrap(o.Z + o.SpeedFactor*playerMaxSpeed*dt)
		}

		ahead := m.track.SegmentsAhead(playerSegment, m.track.IndexAt(o.Z))
		o.Active = ahead < m.track.VisibleSegments || ahead > total-TrailSegments
	}
}

// Obstacles returns the obstacles; callers must not modify them
func (m *Manager) Obstacles() []Obstacle {
	return m.obstacles
}

// ActiveCount returns how many obstacles are currently near the player
func (m *Manager) ActiveCount() int {
	n := 0
	for _, o := range m.obstacles {
		if o.Active {
			n++
		}
	}
	return n
}

// Track returns the track the obstacles drive on
func (m *Manager) Track() *road.Track {
	return m.track
}
