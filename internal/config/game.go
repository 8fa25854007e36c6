package config

import (
	"fmt"

	"github.com/lgbarn/legalmoves-go/internal/errors"
)

// DefaultMaxPlies is the random game length used when none is given.
const DefaultMaxPlies = 300

// GameConfig holds settings for playing random games.
type GameConfig struct {
	// MaxPlies stops the game after this many half-moves
	MaxPlies int

	// Seed for the move picker. Zero picks a time-based seed.
	Seed int64

	// ShowBoard prints the board after every ply
	ShowBoard bool

	// Games is the number of games to play
	Games int

	// JSON writes the game records as JSON instead of PGN
	JSON bool
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		MaxPlies:  DefaultMaxPlies,
		ShowBoard: true,
		Games:     1,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.MaxPlies < 1 {
		return fmt.Errorf("max plies (%d) must be positive: %w", g.MaxPlies, errors.ErrInvalidConfig)
	}
	if g.Games < 1 {
		return fmt.Errorf("games (%d) must be positive: %w", g.Games, errors.ErrInvalidConfig)
	}
	if g.JSON && g.ShowBoard {
		return fmt.Errorf("board display cannot be mixed with JSON output: %w", errors.ErrInvalidConfig)
	}
	return nil
}
