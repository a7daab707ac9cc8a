// Package session runs one level: it owns the track, camera, player vehicle,
// traffic and renderer, and steps them together each tick.
package session

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/golangdaddy/roadrush/pkg/camera"
	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/render"
	"github.com/golangdaddy/roadrush/pkg/road"
	"github.com/golangdaddy/roadrush/pkg/scoreboard"
	"github.com/golangdaddy/roadrush/pkg/traffic"
	"github.com/golangdaddy/roadrush/pkg/vehicle"
	"github.com/rs/zerolog"
)

// ScoreDivisor converts travelled distance into points
const ScoreDivisor = 100.0

// Status is the phase a session is in
type Status int

const (
	StatusCountdown Status = iota
	StatusRunning
	StatusCrashed
	StatusWon
)

func (s Status) String() string {
	switch s {
	case StatusCountdown:
		return "countdown"
	case StatusRunning:
		return "running"
	case StatusCrashed:
		return "crashed"
	case StatusWon:
		return "won"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Finished reports whether the session can no longer be stepped
func (s Status) Finished() bool {
	return s == StatusCrashed || s == StatusWon
}

type Session struct {
	Level config.Level
	Seed  int64

	track    *road.Track
	camera   *camera.Camera
	player   *vehicle.Vehicle
	traffic  *traffic.Manager
	renderer *render.Renderer

	duration  float64
	countdown int

	remaining float64 // countdown seconds left
	elapsed   float64
	status    Status

	log zerolog.Logger
}

// New builds every component for a level. The same seed always yields the same traffic.
func New(settings config.Settings, level config.Level, sizes map[traffic.Kind]render.SpriteSize, seed int64, log zerolog.Logger) (*Session, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}

	track, err := road.Build(
		settings.Road.SegmentCount,
		settings.Road.SegmentLength,
		settings.Road.RumbleSegments,
		road.WithRoadWidth(settings.Road.Width),
		road.WithLanes(settings.Road.Lanes),
		road.WithVisibleSegments(settings.Road.VisibleSegments),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build track: %w", err)
	}

	cam, err := camera.New(settings.Camera.Height, settings.Camera.Distance)
	if err != nil {
		return nil, fmt.Errorf("failed to create camera: %w", err)
	}

	player, err := vehicle.New(level.MaxSpeed,
		vehicle.WithAcceleration(settings.Player.Acceleration),
		vehicle.WithDeceleration(settings.Player.Deceleration),
		vehicle.WithTurningSpeed(settings.Player.TurningSpeed),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	screen := render.Screen{
		Width:  float64(settings.Screen.Width),
		Height: float64(settings.Screen.Height),
	}

	s := &Session{
		Level:     level,
		Seed:      seed,
		track:     track,
		camera:    cam,
		player:    player,
		traffic:   traffic.NewManager(track, rand.New(rand.NewSource(seed))),
		renderer:  render.NewRenderer(screen, sizes),
		duration:  settings.Session.Duration.Seconds(),
		countdown: max(settings.Session.Countdown, 0),
		log:       log.With().Str("level", level.Name).Logger(),
	}

	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart puts the player back on the start line with fresh traffic and a new countdown.
func (s *Session) Restart() error {
	if err := s.traffic.Populate(s.Level.Density); err != nil {
		return fmt.Errorf("failed to populate traffic: %w", err)
	}
	s.player.Restart()
	s.camera.Update(s.player.State, s.track)
	s.traffic.Tick(0, s.player.Z, s.player.MaxSpeed)

	s.elapsed = 0
	s.remaining = float64(s.countdown)
	s.status = StatusCountdown
	if s.countdown == 0 {
		s.status = StatusRunning
	}

	s.log.Info().
		Int64("seed", s.Seed).
		Float64("maxSpeed", s.Level.MaxSpeed).
		Int("obstacles", len(s.traffic.Obstacles())).
		Int("active", s.traffic.ActiveCount()).
		Msg("session started")
	return nil
}

// Step advances the session by dt seconds and returns the resulting status.
func (s *Session) Step(dt float64, in vehicle.Input) Status {
	if dt <= 0 || s.status.Finished() {
		return s.status
	}

	if s.status == StatusCountdown {
		s.remaining -= dt
		if s.remaining <= 0 {
			s.remaining = 0
			s.status = StatusRunning
			s.log.Debug().Msg("go")
		}
		return s.status
	}

	state := s.player.Update(dt, in, s.track)
	s.camera.Update(state, s.track)
	s.traffic.Tick(dt, state.Z, s.player.MaxSpeed)
	s.elapsed += dt

	if s.player.CheckCollision(s.traffic) {
		s.status = StatusCrashed
		s.log.Info().
			Int("score", s.Score()).
			Float64("seconds", s.elapsed).
			Float64("z", state.Z).
			Msg("collision")
		return s.status
	}

	if s.elapsed >= s.duration {
		s.elapsed = s.duration
		s.status = StatusWon
		s.log.Info().Int("score", s.Score()).Msg("session won")
	}
	return s.status
}

// Frame projects the current view. The returned list is reused by the next call.
func (s *Session) Frame() render.DrawList {
	return s.renderer.Render(s.track, s.camera, s.traffic.Obstacles())
}

func (s *Session) Status() Status {
	return s.status
}

// Score is the distance travelled this run in points
func (s *Session) Score() int {
	return int(s.player.Odometer / ScoreDivisor)
}

// Elapsed returns the simulated driving time; it stops on a crash.
func (s *Session) Elapsed() time.Duration {
	return time.Duration(s.elapsed * float64(time.Second))
}

// Countdown returns the whole seconds left before the start, counting 3, 2, 1.
func (s *Session) Countdown() int {
	if s.status != StatusCountdown {
		return 0
	}
	return int(math.Ceil(s.remaining))
}

// Player returns the player's current state
func (s *Session) Player() vehicle.State {
	return s.player.State
}

// Traffic returns the obstacle manager
func (s *Session) Traffic() *traffic.Manager {
	return s.traffic
}

// Result summarises the run for the scoreboard.
func (s *Session) Result() scoreboard.Result {
	outcome := scoreboard.OutcomeQuit
	switch s.status {
	case StatusCrashed:
		outcome = scoreboard.OutcomeCrashed
	case StatusWon:
		outcome = scoreboard.OutcomeWon
	}
	return scoreboard.Result{
		Level:   s.Level.Name,
		Score:   s.Score(),
		Seconds: s.elapsed,
		Outcome: outcome,
		Seed:    s.Seed,
	}
}
