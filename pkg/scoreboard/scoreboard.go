// Package scoreboard persists finished runs to a local SQLite file.
package scoreboard

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrInvalidResult = errors.New("invalid result")

// Outcome is how a run ended
type Outcome string

const (
	OutcomeWon     Outcome = "won"
	OutcomeCrashed Outcome = "crashed"
	OutcomeQuit    Outcome = "quit"
)

// Result is one finished run
type Result struct {
	gorm.Model
	Level    string    `json:"level" gorm:"size:64;index"`
	Score    int       `json:"score"`
	Seconds  float64   `json:"seconds"`
	Outcome  Outcome   `json:"outcome" gorm:"size:16"`
	Seed     int64     `json:"seed"`
	Finished time.Time `json:"finished"`
}

// Store wraps the gorm handle
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open opens (or creates) the scoreboard at path and migrates the schema.
func Open(path string, log zerolog.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open scoreboard %s: %w", path, err)
	}

	if err := db.AutoMigrate(&Result{}); err != nil {
		return nil, fmt.Errorf("failed to migrate scoreboard: %w", err)
	}

	log.Debug().Str("path", path).Msg("scoreboard ready")
	return &Store{db: db, log: log}, nil
}

// Record stores a finished run.
func (s *Store) Record(r Result) error {
	if r.Level == "" {
		return fmt.Errorf("%w: missing level", ErrInvalidResult)
	}
	if r.Score < 0 {
		return fmt.Errorf("%w: negative score %d", ErrInvalidResult, r.Score)
	}
	if r.Finished.IsZero() {
		r.Finished = time.Now().UTC()
	}

	if err := s.db.Create(&r).Error; err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	s.log.Info().
		Str("level", r.Level).
		Int("score", r.Score).
		Float64("seconds", r.Seconds).
		Str("outcome", string(r.Outcome)).
		Msg("run recorded")
	return nil
}

// Best returns the highest score for a level, and false when none is recorded.
func (s *Store) Best(level string) (Result, bool, error) {
	top, err := s.Top(level, 1)
	if err != nil {
		return Result{}, false, err
	}
	if len(top) == 0 {
		return Result{}, false, nil
	}
	return top[0], true, nil
}

// Top returns up to limit results for a level, best first.
func (s *Store) Top(level string, limit int) ([]Result, error) {
	var results []Result
	err := s.db.Where("level = ?", level).
		Order("score desc").
		Order("id asc").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query top scores: %w", err)
	}
	return results, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
