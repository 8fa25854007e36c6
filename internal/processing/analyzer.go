// Package processing replays recorded games to check and summarise them.
package processing

import (
	"fmt"

	"github.com/lgbarn/legalmoves-go/internal/chess"
	"github.com/lgbarn/legalmoves-go/internal/engine"
	"github.com/lgbarn/legalmoves-go/internal/errors"
	"github.com/lgbarn/legalmoves-go/internal/output"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	FinalBoard *chess.Board

	Plies      int
	Captures   int
	Checks     int
	Castles    int
	EnPassant  int
	Promotions int

	HasUnderpromotion bool

	// Longest stretch without a pawn move or capture, in plies
	MaxHalfmoveClock int
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// ValidationResult holds the result of game validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int   // 1-based ply of the first problem, 0 for the setup or the result
	Err      error // Wraps one of the sentinel errors
}

// visitFunc is called after each replayed move is committed.
type visitFunc func(ply int, m *engine.Move, rec output.MoveRecord, node *engine.SearchNode) error

// replay plays game's moves by UCI on a fresh node.
func replay(game *output.GameRecord, visit visitFunc) (*engine.SearchNode, error) {
	board, err := engine.NewBoardFromFEN(game.InitialFEN)
	if err != nil {
		return nil, err
	}
	node := engine.NewSearchNode(board)

	for i, rec := range game.Moves {
		ply := i + 1
		m, err := node.FindMove(rec.UCI)
		if err != nil {
			return node, &plyError{ply, err}
		}
		if err := node.Commit(m); err != nil {
			return node, &plyError{ply, err}
		}
		if visit != nil {
			if err := visit(ply, m, rec, node); err != nil {
				return node, &plyError{ply, err}
			}
		}
	}
	return node, nil
}

// plyError ties a replay failure to the ply where it happened.
type plyError struct {
	ply int
	err error
}

func (e *plyError) Error() string { return fmt.Sprintf("ply %d: %v", e.ply, e.err) }

func (e *plyError) Unwrap() error { return e.err }

// AnalyzeGame replays a game and counts its notable moves.
func AnalyzeGame(game *output.GameRecord) (*GameAnalysis, error) {
	analysis := &GameAnalysis{}

	node, err := replay(game, func(ply int, m *engine.Move, _ output.MoveRecord, node *engine.SearchNode) error {
		analysis.Plies = ply
		if m.IsCapture() {
			analysis.Captures++
		}
		if m.GivesCheck {
			analysis.Checks++
		}
		switch m.Kind {
		case engine.KingsideCastle, engine.QueensideCastle:
			analysis.Castles++
		case engine.PawnEnPassantCapture:
			analysis.EnPassant++
		case engine.PawnPromotion:
			analysis.Promotions++
			if m.Promotion != chess.Queen {
				analysis.HasUnderpromotion = true
			}
		}
		if clock := node.Board().HalfmoveClock; clock > analysis.MaxHalfmoveClock {
			analysis.MaxHalfmoveClock = clock
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	analysis.FinalBoard = node.Board()
	return analysis, nil
}

// ValidateGame replays a game and checks that every recorded move is legal,
// that the recorded notation and positions match the replay, and that the
// result fits the final position.
func ValidateGame(game *output.GameRecord) *ValidationResult {
	node, err := replay(game, func(_ int, m *engine.Move, rec output.MoveRecord, node *engine.SearchNode) error {
		if san := m.String(); san != rec.SAN {
			return fmt.Errorf("notation %q, replay gives %q: %w", rec.SAN, san, errors.ErrInvalidPosition)
		}
		if fen := engine.BoardToFEN(node.Board()); fen != rec.FEN {
			return fmt.Errorf("position %q, replay gives %q: %w", rec.FEN, fen, errors.ErrInvalidPosition)
		}
		return nil
	})
	if err != nil {
		result := &ValidationResult{Err: err}
		if pe, ok := err.(*plyError); ok {
			result.ErrorPly = pe.ply
		}
		return result
	}

	if game.FinalFEN != "" {
		if fen := engine.BoardToFEN(node.Board()); fen != game.FinalFEN {
			return &ValidationResult{Err: fmt.Errorf("final position %q, replay gives %q: %w", game.FinalFEN, fen, errors.ErrInvalidPosition)}
		}
	}

	if !isValidResult(game.Result) {
		return &ValidationResult{Err: fmt.Errorf("invalid result %q: %w", game.Result, errors.ErrInvalidPosition)}
	}
	if want := expectedResult(node); want != game.Result {
		return &ValidationResult{Err: fmt.Errorf("result %s, position gives %s: %w", game.Result, want, errors.ErrInvalidPosition)}
	}

	return &ValidationResult{Valid: true}
}

// expectedResult returns the result forced by the final position, or "*"
// when the game is not over.
func expectedResult(node *engine.SearchNode) string {
	switch {
	case node.IsCheckmate():
		if node.Board().ToMove == chess.White {
			return "0-1"
		}
		return "1-0"
	case node.IsStalemate():
		return "1/2-1/2"
	default:
		return "*"
	}
}

// isValidResult checks if a result string is a valid PGN result.
func isValidResult(result string) bool {
	switch result {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	default:
		return false
	}
}
