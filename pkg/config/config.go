// Package config loads the tunable session parameters and the difficulty tiers.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// FileName is the settings file looked up in the config directory
const FileName = "roadrush.cfg.json"

var ErrConfigNotFound = errors.New("config file not found")

// Settings holds everything a session is built from
type Settings struct {
	LogLevel   string           `mapstructure:"logLevel"`
	Screen     ScreenConfig     `mapstructure:"screen"`
	Road       RoadConfig       `mapstructure:"road"`
	Camera     CameraConfig     `mapstructure:"camera"`
	Player     PlayerConfig     `mapstructure:"player"`
	Session    SessionConfig    `mapstructure:"session"`
	Levels     LevelsConfig     `mapstructure:"levels"`
	Scoreboard ScoreboardConfig `mapstructure:"scoreboard"`
}

type ScreenConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type RoadConfig struct {
	SegmentLength   float64 `mapstructure:"segmentLength"`
	SegmentCount    int     `mapstructure:"segmentCount"`
	RumbleSegments  int     `mapstructure:"rumbleSegments"`
	Width           float64 `mapstructure:"width"`
	Lanes           int     `mapstructure:"lanes"`
	VisibleSegments int     `mapstructure:"visibleSegments"`
}

type CameraConfig struct {
	Height   float64 `mapstructure:"height"`
	Distance float64 `mapstructure:"distance"`
}

type PlayerConfig struct {
	Acceleration float64 `mapstructure:"acceleration"`
	Deceleration float64 `mapstructure:"deceleration"`
	TurningSpeed float64 `mapstructure:"turningSpeed"`
}

type SessionConfig struct {
	Duration  time.Duration `mapstructure:"duration"`
	Countdown int           `mapstructure:"countdown"`
	Seed      int64         `mapstructure:"seed"` // 0 picks a seed from the clock
}

type LevelsConfig struct {
	File string `mapstructure:"file"`
}

type ScoreboardConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")

	v.SetDefault("screen.width", 1920)
	v.SetDefault("screen.height", 1080)

	v.SetDefault("road.segmentLength", 100.0)
	v.SetDefault("road.segmentCount", 1000)
	v.SetDefault("road.rumbleSegments", 5)
	v.SetDefault("road.width", 1000.0)
	v.SetDefault("road.lanes", 3)
	v.SetDefault("road.visibleSegments", 200)

	v.SetDefault("camera.height", 1000.0)
	v.SetDefault("camera.distance", 500.0)

	v.SetDefault("player.acceleration", 0.1)
	v.SetDefault("player.deceleration", 0.3)
	v.SetDefault("player.turningSpeed", 3.0)

	v.SetDefault("session.duration", "90s")
	v.SetDefault("session.countdown", 3)
	v.SetDefault("session.seed", 0)

	v.SetDefault("levels.file", "assets/levels.yaml")

	v.SetDefault("scoreboard.enabled", true)
	v.SetDefault("scoreboard.path", "roadrush.db")
}

// Default returns the built-in settings
func Default() Settings {
	v := viper.New()
	setDefaults(v)
	var s Settings
	// Defaults always decode
	_ = v.Unmarshal(&s)
	return s
}

// Load reads the settings file from configDir on top of the defaults.
// A missing file yields the defaults together with an error wrapping ErrConfigNotFound.
func Load(configDir string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	var readErr error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Default(), fmt.Errorf("error reading config file: %w", err)
		}
		readErr = fmt.Errorf("%s in %s: %w", FileName, configDir, ErrConfigNotFound)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Default(), fmt.Errorf("error decoding config: %w", err)
	}
	return s, readErr
}
