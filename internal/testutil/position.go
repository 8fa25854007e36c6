package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/legalmoves-go/internal/chess"
	"github.com/lgbarn/legalmoves-go/internal/engine"
)

// MustBoard builds a board from eight rank strings (rank 8 first).
// It calls t.Fatal if the position is rejected.
func MustBoard(t *testing.T, toMove chess.Colour, ranks ...string) *chess.Board {
	t.Helper()
	b, err := chess.FromStrings(ranks, toMove)
	if err != nil {
		t.Fatalf("FromStrings(%q): %v", ranks, err)
	}
	return b
}

// MustFEN builds a board from a FEN string.
// It calls t.Fatal if the FEN is rejected.
func MustFEN(t *testing.T, fen string) *chess.Board {
	t.Helper()
	b, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return b
}

// boardView is the readable form boards are compared in, so that a diff
// shows ranks rather than 144 raw array cells.
type boardView struct {
	Diagram   string
	FEN       string
	Castling  [chess.NumColours][2]int
	Kings     [chess.NumColours]string
	InCheck   bool
	EnPassant string
}

var boardTransformer = cmp.Transformer("Board", func(b *chess.Board) boardView {
	return boardView{
		Diagram:   b.String(),
		FEN:       engine.BoardToFEN(b),
		Castling:  b.Castling,
		Kings:     [chess.NumColours]string{b.KingSquare[chess.White].String(), b.KingSquare[chess.Black].String()},
		InCheck:   b.InCheck,
		EnPassant: b.EnPassant.String(),
	}
})

// AssertBoardEqual fails with a rank-by-rank diff if the boards differ in
// any state, including castling counters and the check flag.
func AssertBoardEqual(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if got.Equal(want) {
		return
	}
	diff := cmp.Diff(want, got, boardTransformer)
	msg := formatMessage(msgAndArgs...)
	if msg != "" {
		t.Errorf("%s: board mismatch (-want +got):\n%s", msg, diff)
	} else {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}
}

// MoveTexts returns the notation of each move, in order.
func MoveTexts(moves []*engine.Move) []string {
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	return texts
}
