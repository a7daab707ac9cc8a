package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidLevel = errors.New("invalid level")

// Level is one difficulty tier offered in the menu
type Level struct {
	Name     string  `yaml:"name"`
	MaxSpeed float64 `yaml:"max_speed"`
	Density  int     `yaml:"density"`
}

type levelFile struct {
	Levels []Level `yaml:"levels"`
}

// DefaultLevels are used when no level file is available.
func DefaultLevels() []Level {
	return []Level{
		{Name: "Easy", MaxSpeed: 500, Density: 10},
		{Name: "Medium", MaxSpeed: 1000, Density: 20},
		{Name: "Hard", MaxSpeed: 1500, Density: 30},
	}
}

// Validate reports the first problem with the tier, if any.
func (l Level) Validate() error {
	switch {
	case l.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalidLevel)
	case l.MaxSpeed <= 0:
		return fmt.Errorf("%w: %s: max_speed must be positive, got %v", ErrInvalidLevel, l.Name, l.MaxSpeed)
	case l.Density <= 0 || l.Density > 100:
		return fmt.Errorf("%w: %s: density must be in (0, 100], got %d", ErrInvalidLevel, l.Name, l.Density)
	}
	return nil
}

// LoadLevels reads the difficulty tiers from a YAML file.
func LoadLevels(path string) ([]Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level file: %w", err)
	}

	var file levelFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing level YAML: %w", err)
	}
	if len(file.Levels) == 0 {
		return nil, fmt.Errorf("%w: %s defines no levels", ErrInvalidLevel, path)
	}

	for _, l := range file.Levels {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}
	return file.Levels, nil
}
