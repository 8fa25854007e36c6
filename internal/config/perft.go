package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/legalmoves-go/internal/errors"
)

// MaxPerftDepth bounds the perft depth accepted from the command line.
const MaxPerftDepth = 10

// PerftConfig holds settings for perft runs.
type PerftConfig struct {
	// Depth is the number of plies to count
	Depth int

	// Divide prints the count below each root move
	Divide bool

	// Workers is the number of goroutines splitting the root moves
	Workers int

	// Verify cross-checks the total against an independent generator
	Verify bool

	// CacheDir holds the persistent result cache. Empty disables it.
	CacheDir string

	// HashEntries sizes the in-memory transposition table. Zero disables it.
	HashEntries int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   1,
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 1 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("depth %d not in 1..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) must be positive: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.HashEntries < 0 {
		return fmt.Errorf("hash entries (%d) must not be negative: %w", p.HashEntries, errors.ErrInvalidConfig)
	}
	return nil
}
