// perft counts the leaf nodes of the legal move tree below a position,
// optionally per root move, and can check the result against a reference
// generator.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dustin/go-humanize"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/legalmoves-go/internal/chess"
	"github.com/lgbarn/legalmoves-go/internal/config"
	"github.com/lgbarn/legalmoves-go/internal/engine"
	"github.com/lgbarn/legalmoves-go/internal/errors"
	"github.com/lgbarn/legalmoves-go/internal/hashing"
	"github.com/lgbarn/legalmoves-go/internal/perftcache"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := runPerft(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runPerft counts the position in cfg, consulting and filling the cache
// when one is configured, and writes the counts to cfg.OutputFile.
func runPerft(cfg *config.Config) error {
	board, err := engine.NewBoardFromFEN(cfg.StartFEN())
	if err != nil {
		return err
	}
	fen := engine.BoardToFEN(board)
	depth := cfg.Perft.Depth

	var cache *perftcache.Cache
	if cfg.Perft.CacheDir != "" {
		cache, err = perftcache.Open(cfg.Perft.CacheDir)
		if err != nil {
			return err
		}
		defer cache.Close()
	}

	entry, err := lookup(cache, fen, depth)
	if err != nil {
		return err
	}
	if entry != nil {
		cfg.Logf(config.Summary, "depth %d: cached", depth)
	} else {
		start := time.Now()
		entry = count(cfg, board)
		elapsed := time.Since(start)
		cfg.Logf(config.Summary, "depth %d: %s nodes in %s (%s nps)",
			depth, humanize.Comma(int64(entry.Nodes)), elapsed, humanize.Comma(int64(float64(entry.Nodes)/elapsed.Seconds())))

		if cache != nil {
			if err := cache.Put(fen, depth, entry); err != nil {
				return errors.Wrap(err, "storing perft result")
			}
		}
	}

	if cfg.Perft.Verify {
		if err := verifyNodes(fen, depth, entry.Nodes); err != nil {
			return err
		}
		cfg.Logf(config.Summary, "verified against reference generator")
	}

	writeResult(cfg, entry)
	return nil
}

// lookup returns the cached entry, or nil on a miss or without a cache.
func lookup(cache *perftcache.Cache, fen string, depth int) (*perftcache.Entry, error) {
	if cache == nil {
		return nil, nil
	}
	entry, ok, err := cache.Get(fen, depth)
	if err != nil {
		return nil, errors.Wrap(err, "reading perft cache")
	}
	if !ok {
		return nil, nil
	}
	return entry, nil
}

// count walks the tree, splitting the root moves over the configured
// workers and sharing a transposition table between them when one is
// configured.
func count(cfg *config.Config, board *chess.Board) *perftcache.Entry {
	var div map[string]uint64
	switch {
	case cfg.Perft.HashEntries > 0:
		table := hashing.NewThreadSafeTable(cfg.Perft.HashEntries)
		div = engine.HashedDivide(board, cfg.Perft.Depth, cfg.Perft.Workers, table)
		hits, misses := table.Stats()
		cfg.Logf(config.Verbose, "table: %d entries, %d hits, %d misses", table.Len(), hits, misses)
	case cfg.Perft.Workers > 1:
		div = engine.ParallelDivide(board, cfg.Perft.Depth, cfg.Perft.Workers)
	default:
		div = engine.Divide(board, cfg.Perft.Depth)
	}

	entry := &perftcache.Entry{Divide: div}
	for _, n := range div {
		entry.Nodes += n
	}
	return entry
}

// verifyNodes recounts with an independent bitboard generator.
func verifyNodes(fen string, depth int, nodes uint64) error {
	ref, err := goosemg.ParseFEN(fen)
	if err != nil {
		return errors.Wrapf(err, "reference generator rejected %q", fen)
	}
	if want := goosemg.Perft(ref, depth); want != nodes {
		return fmt.Errorf("depth %d: got %d, reference %d: %w", depth, nodes, want, errors.ErrPerftMismatch)
	}
	return nil
}

// writeResult prints the divide lines in move order, then the total.
func writeResult(cfg *config.Config, entry *perftcache.Entry) {
	out := cfg.OutputFile
	if cfg.Perft.Divide {
		moves := maps.Keys(entry.Divide)
		slices.Sort(moves)
		for _, m := range moves {
			fmt.Fprintf(out, "%s: %d\n", m, entry.Divide[m])
		}
	}
	fmt.Fprintf(out, "Total: %d\n", entry.Nodes)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts the legal move tree below a position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
