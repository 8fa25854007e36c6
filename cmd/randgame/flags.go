// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/legalmoves-go/internal/config"
)

var (
	// Game options
	fenString = flag.String("fen", "", "Starting position in FEN (default: standard start)")
	maxPlies  = flag.Int("plies", config.DefaultMaxPlies, "Stop after this many half-moves")
	seed      = flag.Int64("seed", 0, "Random seed (0 = time based)")
	noBoard   = flag.Bool("noboard", false, "Write the game record only, without the board trace")
	numGames  = flag.Int("games", 1, "Number of games to play")
	jsonOut   = flag.Bool("json", false, "Write game records as JSON (implies -noboard)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write log to file")
	appendLog  = flag.String("L", "", "Append log to file")
	quiet      = flag.Bool("s", false, "Silent mode (no log output)")
	verbose    = flag.Bool("v", false, "Verbose log output")

	// Help
	help = flag.Bool("h", false, "Show help")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.FEN = *fenString
	applyGameFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *verbose:
		cfg.Verbosity = config.Verbose
	}
}

// applyGameFlags configures the random game settings.
func applyGameFlags(cfg *config.Config) {
	cfg.Game.MaxPlies = *maxPlies
	cfg.Game.Seed = *seed
	cfg.Game.Games = *numGames
	cfg.Game.JSON = *jsonOut
	cfg.Game.ShowBoard = !*noBoard && !*jsonOut
}
