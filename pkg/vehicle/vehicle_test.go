package vehicle

import (
	"math/rand"
	"testing"

	"github.com/golangdaddy/roadrush/pkg/road"
	"github.com/golangdaddy/roadrush/pkg/traffic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

func newTrack(t *testing.T) *road.Track {
	t.Helper()
	track, err := road.Build(1000, 100, 5)
	require.NoError(t, err)
	return track
}

func newVehicle(t *testing.T, maxSpeed float64) *Vehicle {
	t.Helper()
	v, err := New(maxSpeed)
	require.NoError(t, err)
	return v
}

func TestNew(t *testing.T) {
	v, err := New(1000, WithAcceleration(0.2), WithDeceleration(0.4), WithTurningSpeed(2))
	require.NoError(t, err)
	assert.Equal(t, 0.2, v.Acceleration)
	assert.Equal(t, 0.4, v.Deceleration)
	assert.Equal(t, 2.0, v.TurningSpeed)

	_, err = New(0)
	assert.ErrorIs(t, err, ErrInvalidMaxSpeed)
	_, err = New(-10)
	assert.ErrorIs(t, err, ErrInvalidMaxSpeed)
}

func TestRestart(t *testing.T) {
	v := newVehicle(t, 1000)
	v.State = State{X: 0.7, Z: 500, Speed: 10}
	v.Odometer = 12345

	v.Restart()

	assert.Equal(t, State{X: 0, Z: 0, Speed: 500}, v.State)
	assert.Zero(t, v.Odometer)
}

func TestUpdate_Throttle(t *testing.T) {
	track := newTrack(t)
	v := newVehicle(t, 1000)
	v.Speed = 500

	state := v.Update(0.5, Input{Throttle: true}, track)
	assert.InDelta(t, 550.0, state.Speed, 1e-9)
	assert.InDelta(t, 275.0, state.Z, 1e-9)
}

func TestUpdate_BrakeAndThrottleExclusive(t *testing.T) {
	track := newTrack(t)
	v := newVehicle(t, 1000)
	v.Speed = 500

	state := v.Update(0.5, Input{Throttle: true, Brake: true}, track)
	assert.InDelta(t, 550.0, state.Speed, 1e-9)

	state = v.Update(0.5, Input{Brake: true}, track)
	assert.InDelta(t, 400.0, state.Speed, 1e-9)
}

func TestUpdate_SpeedClamped(t *testing.T) {
	track := newTrack(t)
	v := newVehicle(t, 1000)
	v.Speed = 990
	v.Update(1, Input{Throttle: true}, track)
	assert.Equal(t, 1000.0, v.Speed)

	v.Speed = 10
	v.Update(1, Input{Brake: true}, track)
	assert.Equal(t, 0.0, v.Speed)
}

func TestUpdate_Steering(t *testing.T) {
	track := newTrack(t)
	v := newVehicle(t, 1000)
	v.Speed = 500

	v.Update(0.1, Input{Left: true}, track)
	assert.InDelta(t, -0.15, v.X, 1e-9)

	v.Update(0.1, Input{Right: true}, track)
	assert.InDelta(t, 0.0, v.X, 1e-9)

	for i := 0; i < 100; i++ {
		v.Update(dt, Input{Right: true}, track)
	}
	assert.Equal(t, 1.0, v.X)

	for i := 0; i < 200; i++ {
		v.Update(dt, Input{Left: true}, track)
	}
	assert.Equal(t, -1.0, v.X)
}

func TestUpdate_NoSteeringWhenStopped(t *testing.T) {
	track := newTrack(t)
	v := newVehicle(t, 1000)
	v.Update(1, Input{Left: true}, track)
	assert.Zero(t, v.X)
}

func TestUpdate_WrapsAroundTrack(t *testing.T) {
	track := newTrack(t)
	v := newVehicle(t, 1500)
	v.Speed = 1500

	// Two and a bit laps
	for i := 0; i < 9000; i++ {
		state := v.Update(dt, Input{Throttle: true}, track)
		require.GreaterOrEqual(t, state.Z, 0.0)
		require.Less(t, state.Z, track.Length())
	}
	assert.InDelta(t, 1500.0*9000*dt, v.Odometer, 1e-6)
}

func TestUpdate_IgnoresNonPositiveDt(t *testing.T) {
	track := newTrack(t)
	v := newVehicle(t, 1000)
	v.Speed = 500
	before := v.State
	v.Update(0, Input{Throttle: true, Left: true}, track)
	v.Update(-1, Input{Throttle: true, Left: true}, track)
	assert.Equal(t, before, v.State)
}

func TestLaneFraction(t *testing.T) {
	assert.Equal(t, 0.0, LaneFraction(-1))
	assert.Equal(t, 0.5, LaneFraction(0))
	assert.Equal(t, 1.0, LaneFraction(1))
}

func TestCheckCollision(t *testing.T) {
	tests := []struct {
		name     string
		vehicleX float64
		vehicleZ float64
		obstacle traffic.Obstacle
		want     bool
	}{
		{name: "same lane ahead", vehicleX: 0, vehicleZ: 1000, obstacle: traffic.Obstacle{Lane: 0, Z: 1050}, want: true},
		{name: "opposite edges", vehicleX: -1, vehicleZ: 1000, obstacle: traffic.Obstacle{Lane: 1, Z: 1050}, want: false},
		{name: "exactly at threshold", vehicleX: 0.5, vehicleZ: 1000, obstacle: traffic.Obstacle{Lane: 1, Z: 1050}, want: false},
		{name: "just inside threshold", vehicleX: 0.51, vehicleZ: 1000, obstacle: traffic.Obstacle{Lane: 1, Z: 1050}, want: true},
		{name: "behind", vehicleX: 0, vehicleZ: 1000, obstacle: traffic.Obstacle{Lane: 0, Z: 950}, want: false},
		{name: "level with vehicle", vehicleX: 0, vehicleZ: 1000, obstacle: traffic.Obstacle{Lane: 0, Z: 1000}, want: false},
		{name: "beyond lookahead", vehicleX: 0, vehicleZ: 1000, obstacle: traffic.Obstacle{Lane: 0, Z: 1200}, want: false},
		{name: "across the finish line", vehicleX: 0, vehicleZ: 99950, obstacle: traffic.Obstacle{Lane: 0, Z: 50}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := traffic.NewManager(newTrack(t), rand.New(rand.NewSource(1)))
			m.Add(tt.obstacle)

			v := newVehicle(t, 1000)
			v.X = tt.vehicleX
			v.Z = tt.vehicleZ

			assert.Equal(t, tt.want, v.CheckCollision(m))
		})
	}
}

func TestCheckCollision_Empty(t *testing.T) {
	m := traffic.NewManager(newTrack(t), rand.New(rand.NewSource(1)))
	v := newVehicle(t, 1000)
	assert.False(t, v.CheckCollision(m))
}
