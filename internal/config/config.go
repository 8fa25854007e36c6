// Package config provides configuration for the move generator tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/legalmoves-go/internal/engine"
	"github.com/lgbarn/legalmoves-go/internal/errors"
)

// Verbosity levels for Logf.
const (
	Silent  = 0 // Nothing but results
	Summary = 1 // Totals and timings
	Verbose = 2 // Running commentary
)

// Config holds all program configuration.
type Config struct {
	// Verbosity is 0=nothing, 1=summary, 2=running commentary
	Verbosity int

	// FEN is the starting position. Empty means the standard start.
	FEN string

	// Sub-configs for each tool
	Game  *GameConfig
	Perft *PerftConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Game:       NewGameConfig(),
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// StartFEN returns the configured starting position, falling back to the
// standard one.
func (c *Config) StartFEN() string {
	if c.FEN == "" {
		return engine.InitialFEN
	}
	return c.FEN
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Verbose {
		return fmt.Errorf("verbosity %d out of range: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}

// Logf writes a line to LogFile when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
