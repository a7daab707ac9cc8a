package session

import (
	"testing"
	"time"

	"github.com/golangdaddy/roadrush/pkg/camera"
	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/render"
	"github.com/golangdaddy/roadrush/pkg/road"
	"github.com/golangdaddy/roadrush/pkg/scoreboard"
	"github.com/golangdaddy/roadrush/pkg/traffic"
	"github.com/golangdaddy/roadrush/pkg/vehicle"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

var (
	easy  = config.Level{Name: "Easy", MaxSpeed: 500, Density: 10}
	sizes = map[traffic.Kind]render.SpriteSize{
		traffic.KindCar:   {Width: 320, Height: 160},
		traffic.KindTruck: {Width: 360, Height: 260},
	}
)

func newSession(t *testing.T, mutate func(*config.Settings)) *Session {
	t.Helper()
	settings := config.Default()
	if mutate != nil {
		mutate(&settings)
	}
	s, err := New(settings, easy, sizes, 42, zerolog.Nop())
	require.NoError(t, err)
	return s
}

func noCountdown(s *config.Settings) { s.Session.Countdown = 0 }

func TestNew(t *testing.T) {
	s := newSession(t, nil)

	assert.Equal(t, StatusCountdown, s.Status())
	assert.Equal(t, 3, s.Countdown())
	assert.Equal(t, vehicle.State{Speed: 250}, s.Player())
	assert.Len(t, s.Traffic().Obstacles(), 100)
	assert.Equal(t, 1000, s.track.Total())
	assert.Zero(t, s.Score())
	assert.Zero(t, s.Elapsed())
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Settings)
		level   config.Level
		wantErr error
	}{
		{name: "no segments", mutate: func(s *config.Settings) { s.Road.SegmentCount = 0 }, level: easy, wantErr: road.ErrInvalidSegmentCount},
		{name: "flat camera", mutate: func(s *config.Settings) { s.Camera.Height = 0 }, level: easy, wantErr: camera.ErrInvalidCamera},
		{name: "stalled level", level: config.Level{Name: "Stall", Density: 10}, wantErr: config.ErrInvalidLevel},
		{name: "too sparse", mutate: func(s *config.Settings) { s.Road.SegmentCount = 5 }, level: easy, wantErr: traffic.ErrNoObstacles},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := config.Default()
			if tt.mutate != nil {
				tt.mutate(&settings)
			}
			_, err := New(settings, tt.level, sizes, 1, zerolog.Nop())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStep_Countdown(t *testing.T) {
	s := newSession(t, nil)

	assert.Equal(t, StatusCountdown, s.Step(0.5, vehicle.Input{Throttle: true}))
	assert.Equal(t, 3, s.Countdown())
	assert.Equal(t, StatusCountdown, s.Step(0.5, vehicle.Input{Throttle: true}))
	assert.Equal(t, 2, s.Countdown())
	s.Step(1, vehicle.Input{})
	assert.Equal(t, 1, s.Countdown())

	// the player does not move before the start
	assert.Equal(t, vehicle.State{Speed: 250}, s.Player())
	assert.Zero(t, s.Elapsed())

	assert.Equal(t, StatusRunning, s.Step(1, vehicle.Input{}))
	assert.Zero(t, s.Countdown())
}

func TestStep_Driving(t *testing.T) {
	s := newSession(t, noCountdown)
	require.Equal(t, StatusRunning, s.Status())

	for i := 0; i < 60; i++ {
		require.Equal(t, StatusRunning, s.Step(dt, vehicle.Input{Throttle: true}))
	}

	p := s.Player()
	assert.Greater(t, p.Speed, 250.0)
	assert.Greater(t, p.Z, 250.0)
	assert.Equal(t, int(p.Z/100), s.Score())
	assert.InDelta(t, time.Second, s.Elapsed(), float64(time.Millisecond))
}

func TestStep_IgnoresNonPositiveDt(t *testing.T) {
	s := newSession(t, noCountdown)

	s.Step(0, vehicle.Input{Throttle: true})
	s.Step(-1, vehicle.Input{Throttle: true})

	assert.Equal(t, vehicle.State{Speed: 250}, s.Player())
	assert.Zero(t, s.Elapsed())
}

func TestStep_Crash(t *testing.T) {
	s := newSession(t, noCountdown)
	s.Traffic().Add(traffic.Obstacle{Z: 150, Lane: 0, SpeedFactor: 0.5, Active: true})

	require.Equal(t, StatusCrashed, s.Step(dt, vehicle.Input{}))
	stopped := s.Elapsed()
	z := s.Player().Z

	// a crashed session is frozen
	assert.Equal(t, StatusCrashed, s.Step(dt, vehicle.Input{Throttle: true}))
	assert.Equal(t, stopped, s.Elapsed())
	assert.Equal(t, z, s.Player().Z)

	r := s.Result()
	assert.Equal(t, scoreboard.OutcomeCrashed, r.Outcome)
	assert.Equal(t, "Easy", r.Level)
	assert.Equal(t, int64(42), r.Seed)
}

func TestStep_Win(t *testing.T) {
	s := newSession(t, func(c *config.Settings) {
		c.Session.Countdown = 0
		c.Session.Duration = time.Second
	})

	status := StatusRunning
	for i := 0; i < 120 && status == StatusRunning; i++ {
		status = s.Step(0.25, vehicle.Input{})
	}

	assert.Equal(t, StatusWon, status)
	assert.Equal(t, time.Second, s.Elapsed())
	assert.Equal(t, scoreboard.OutcomeWon, s.Result().Outcome)
	assert.Equal(t, 2, s.Result().Score, "250 units per second for one second")
}

func TestRestart(t *testing.T) {
	s := newSession(t, noCountdown)
	s.Traffic().Add(traffic.Obstacle{Z: 150, Lane: 0, SpeedFactor: 0.5, Active: true})
	require.Equal(t, StatusCrashed, s.Step(dt, vehicle.Input{}))

	require.NoError(t, s.Restart())

	assert.Equal(t, StatusRunning, s.Status())
	assert.Zero(t, s.Elapsed())
	assert.Zero(t, s.Score())
	assert.Equal(t, vehicle.State{Speed: 250}, s.Player())
	assert.Len(t, s.Traffic().Obstacles(), 100, "added obstacle is cleared")
	assert.Equal(t, scoreboard.OutcomeQuit, s.Result().Outcome)
}

func TestNew_SameSeedSameTraffic(t *testing.T) {
	a := newSession(t, nil)
	b := newSession(t, nil)

	assert.Equal(t, a.Traffic().Obstacles(), b.Traffic().Obstacles())
}

func TestFrame(t *testing.T) {
	s := newSession(t, noCountdown)

	list := s.Frame()
	assert.NotEmpty(t, list.Quads)
	assert.Empty(t, list.Sprites, "traffic starts beyond the view")
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "countdown", StatusCountdown.String())
	assert.Equal(t, "running", StatusRunning.String())
	assert.Equal(t, "crashed", StatusCrashed.String())
	assert.Equal(t, "won", StatusWon.String())
	assert.Equal(t, "status(9)", Status(9).String())
	assert.True(t, StatusWon.Finished())
	assert.False(t, StatusRunning.Finished())
}
