// randgame plays random legal moves from a position until the game ends
// or a ply limit is reached, then writes the game as PGN or JSON.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/lgbarn/legalmoves-go/internal/chess"
	"github.com/lgbarn/legalmoves-go/internal/config"
	"github.com/lgbarn/legalmoves-go/internal/engine"
	"github.com/lgbarn/legalmoves-go/internal/errors"
	"github.com/lgbarn/legalmoves-go/internal/output"
	"github.com/lgbarn/legalmoves-go/internal/processing"
)

// outcome is how a random game stopped.
type outcome int

const (
	plyLimit outcome = iota
	checkmate
	stalemate
)

// String returns the line printed when the game stops.
func (o outcome) String() string {
	switch o {
	case checkmate:
		return "Mate!"
	case stalemate:
		return "Stalemate!"
	default:
		return "Ply limit reached."
	}
}

// result returns the PGN result token when the game stops with toMove on
// move.
func (o outcome) result(toMove chess.Colour) string {
	switch o {
	case checkmate:
		if toMove == chess.White {
			return "0-1"
		}
		return "1-0"
	case stalemate:
		return "1/2-1/2"
	default:
		return "*"
	}
}

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

	gameSeed := cfg.Game.Seed
	if gameSeed == 0 {
		gameSeed = time.Now().UnixNano()
	}
	cfg.Logf(config.Verbose, "seed %d", gameSeed)

	if err := run(cfg, rand.New(rand.NewSource(gameSeed))); err != nil { //nolint:gosec // G404: move choice needs no cryptographic randomness
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run plays the configured number of games and writes their records.
func run(cfg *config.Config, rng *rand.Rand) error {
	writer := newGameWriter(cfg)
	for i := 0; i < cfg.Game.Games; i++ {
		game, err := playGame(cfg, rng)
		if err != nil {
			return err
		}
		if v := processing.ValidateGame(game); !v.Valid {
			return errors.Wrapf(v.Err, "game %d failed replay", i+1)
		}
		if err := writer.WriteGame(game); err != nil {
			return err
		}
		cfg.Logf(config.Summary, "game %d: %s %s after %d plies, final position %s",
			i+1, game.Result, game.Termination, len(game.Moves), game.FinalFEN)

		if cfg.Verbosity >= config.Verbose {
			a, err := processing.AnalyzeGame(game)
			if err != nil {
				return err
			}
			cfg.Logf(config.Verbose, "captures %d, checks %d, castles %d, en passant %d, promotions %d",
				a.Captures, a.Checks, a.Castles, a.EnPassant, a.Promotions)
		}
	}
	return writer.Close()
}

func newGameWriter(cfg *config.Config) output.GameWriter {
	if cfg.Game.JSON {
		return output.NewJSONWriter(cfg.OutputFile)
	}
	return output.NewPGNWriter(cfg.OutputFile, output.DefaultLineLength)
}

// playGame plays uniformly random legal moves from cfg's starting position.
// With ShowBoard set it also traces the board and each move as it goes.
func playGame(cfg *config.Config, rng *rand.Rand) (*output.GameRecord, error) {
	board, err := engine.NewBoardFromFEN(cfg.StartFEN())
	if err != nil {
		return nil, err
	}
	node := engine.NewSearchNode(board)
	rec := output.NewRecorder(node)
	out := cfg.OutputFile

	for {
		if cfg.Game.ShowBoard {
			fmt.Fprintln(out, board)
		}

		var end outcome
		switch {
		case node.IsCheckmate():
			end = checkmate
		case node.IsStalemate():
			end = stalemate
		case rec.Plies() >= cfg.Game.MaxPlies:
			end = plyLimit
		default:
			moves := node.LegalMoves()
			m := moves[rng.Intn(len(moves))]
			if cfg.Game.ShowBoard {
				writeMove(out, board, m)
			}
			if err := rec.Commit(m); err != nil {
				return nil, err
			}
			cfg.Logf(config.Verbose, "ply %d: %s", rec.Plies(), m.UCI())
			continue
		}

		if cfg.Game.ShowBoard {
			fmt.Fprintln(out, end)
		}
		return rec.Finish(end.result(board.ToMove), end.String()), nil
	}
}

// writeMove prints m numbered the way a score sheet would: "1. e4" for
// White and "1... e5" for Black.
func writeMove(w io.Writer, board *chess.Board, m *engine.Move) {
	if board.ToMove == chess.White {
		fmt.Fprintf(w, "%d. %s\n", board.MoveNumber, m)
	} else {
		fmt.Fprintf(w, "%d... %s\n", board.MoveNumber, m)
	}
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
	fmt.Fprintf(os.Stderr, "Usage: randgame [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays random legal moves until mate, stalemate or the ply limit.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
