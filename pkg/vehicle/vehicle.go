package vehicle

import (
	"errors"
	"fmt"
	"math"

	"github.com/golangdaddy/roadrush/pkg/road"
)

var ErrInvalidMaxSpeed = errors.New("max speed must be positive")

// Default handling of the controlled vehicle
const (
	DefaultAcceleration = 0.1 // Fraction of max speed gained per second on throttle
	DefaultDeceleration = 0.3 // Fraction of max speed lost per second on brake
	DefaultTurningSpeed = 3.0 // Road half-widths per second at max speed
)

// Input is the driver's intent for one tick
type Input struct {
	Throttle bool
	Brake    bool
	Left     bool
	Right    bool
}

// State is the kinematic state the camera and renderer follow
type State struct {
	X     float64 // Lateral position as a fraction of the road half-width, -1..1
	Z     float64 // Longitudinal position, 0..road length
	Speed float64 // World units per second, 0..MaxSpeed
}

// Vehicle is the player's car
type Vehicle struct {
	State
	MaxSpeed     float64
	Acceleration float64
	Deceleration float64
	TurningSpeed float64
	Odometer     float64 // Total distance driven this session, never wraps
}

// Option tunes the handling of a vehicle
type Option func(*Vehicle)

// WithAcceleration overrides the throttle rate
func WithAcceleration(a float64) Option {
	return func(v *Vehicle) { v.Acceleration = a }
}

// WithDeceleration overrides the brake rate
func WithDeceleration(d float64) Option {
	return func(v *Vehicle) { v.Deceleration = d }
}

// WithTurningSpeed overrides the steering rate
func WithTurningSpeed(s float64) Option {
	return func(v *Vehicle) { v.TurningSpeed = s }
}

// New creates a vehicle parked on the start line
func New(maxSpeed float64, opts ...Option) (*Vehicle, error) {
	if maxSpeed <= 0 || math.IsNaN(maxSpeed) || math.IsInf(maxSpeed, 0) {
		return nil, fmt.Errorf("create vehicle with max speed %v: %w", maxSpeed, ErrInvalidMaxSpeed)
	}
	v := &Vehicle{
		MaxSpeed:     maxSpeed,
		Acceleration: DefaultAcceleration,
		Deceleration: DefaultDeceleration,
		TurningSpeed: DefaultTurningSpeed,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Restart puts the vehicle back on the start line at half speed
func (v *Vehicle) Restart() {
	v.State = State{Speed: v.MaxSpeed / 2}
	v.Odometer = 0
}

// Update integrates one tick of driving and returns the new state
func (v *Vehicle) Update(dt float64, in Input, track *road.Track) State {
	if dt <= 0 {
		return v.State
	}

	// Throttle wins when both pedals are held
	if in.Throttle {
		v.Speed += v.Acceleration * v.MaxSpeed * dt
	} else if in.Brake {
		v.Speed -= v.Deceleration * v.MaxSpeed * dt
	}
	v.Speed = clamp(v.Speed, 0, v.MaxSpeed)

	steer := dt * v.TurningSpeed * (v.Speed / v.MaxSpeed)
	if in.Left {
		v.X -= steer
	} else if in.Right {
		v.X += steer
	}
	v.X = clamp(v.X, -1, 1)

	travelled := v.Speed * dt
	v.Odometer += travelled
	v.Z = track.Wrap(v.Z + travelled)

	return v.State
}

func clamp(value, lo, hi float64) float64 {
	return math.Max(lo, math.Min(value, hi))
}
