// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/legalmoves-go/internal/config"
)

var (
	// Perft options
	fenString = flag.String("fen", "", "Position in FEN (default: standard start)")
	depth     = flag.Int("depth", 1, "Perft depth")
	divide    = flag.Bool("divide", false, "Print per-move node counts at root")
	workers   = flag.Int("workers", runtime.NumCPU(), "Goroutines splitting the root moves")
	verify    = flag.Bool("verify", false, "Cross-check the total against a reference generator")
	cacheDir  = flag.String("cache", "", "Directory of the persistent result cache (default: none)")
	hashSize  = flag.Int("hash", 0, "Transposition table entries (0 = no table)")

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
	applyPerftFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *verbose:
		cfg.Verbosity = config.Verbose
	}
}

// applyPerftFlags configures the perft run.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
	cfg.Perft.Verify = *verify
	cfg.Perft.CacheDir = *cacheDir
	cfg.Perft.HashEntries = *hashSize
}
