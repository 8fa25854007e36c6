package engine_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/legalmoves-go/internal/chess"
	"github.com/lgbarn/legalmoves-go/internal/engine"
	chesserrors "github.com/lgbarn/legalmoves-go/internal/errors"
	"github.com/lgbarn/legalmoves-go/internal/testutil"
)

func uciMoves(moves []*engine.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	return out
}

func hasMove(moves []*engine.Move, uci string) bool {
	for _, m := range moves {
		if m.UCI() == uci {
			return true
		}
	}
	return false
}

func TestStartPosition(t *testing.T) {
	b := chess.NewGame()
	before := b.Clone()
	node := engine.NewSearchNode(b)

	want := []string{
		"a2a3", "a2a4", "b2b3", "b2b4", "c2c3", "c2c4", "d2d3", "d2d4",
		"e2e3", "e2e4", "f2f3", "f2f4", "g2g3", "g2g4", "h2h3", "h2h4",
		"b1a3", "b1c3", "g1f3", "g1h3",
	}
	if diff := cmp.Diff(want, uciMoves(node.LegalMoves()), cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Errorf("legal moves mismatch (-want +got):\n%s", diff)
	}
	testutil.AssertFalse(t, node.IsCheckmate(), "IsCheckmate")
	testutil.AssertFalse(t, node.IsStalemate(), "IsStalemate")
	testutil.AssertBoardEqual(t, b, before, "generation left the board changed")
}

func TestGeneratedMovesAreLegal(t *testing.T) {
	for name, fen := range roundTripFENs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			b := testutil.MustFEN(t, fen)
			for _, m := range engine.NewSearchNode(b).LegalMoves() {
				mover := b.ToMove
				m.Apply(b)
				if b.IsKingInCheck(mover) {
					t.Errorf("%s leaves the %v king in check", m.UCI(), mover)
				}
				if got := b.IsKingInCheck(b.ToMove); got != m.GivesCheck {
					t.Errorf("%s: GivesCheck = %v; opponent in check = %v", m.UCI(), m.GivesCheck, got)
				}
				m.Rollback(b)
			}
		})
	}
}

func TestCastlingGates(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		wantKingside  bool
		wantQueenside bool
	}{
		{"both wings open", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", true, true},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", false, false},
		{"pieces in the way", "4k3/8/8/8/8/8/8/RN2K1NR w KQ - 0 1", false, false},
		{"king in check", "4k3/8/8/8/4r3/8/8/R3K2R w KQ - 0 1", false, false},
		{"pass-through square attacked", "4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1", false, true},
		{"pass-through attack removed", "4k3/5r2/8/8/8/8/5P2/R3K2R w KQ - 0 1", true, true},
		{"destination attacked", "4k1r1/8/8/8/8/8/8/R3K2R w KQ - 0 1", false, true},
		{"queenside destination attacked", "2r1k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", true, false},
		{"rook path square attacked", "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", true, true},
		{"black castles", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := testutil.MustFEN(t, tt.fen)
			moves := engine.NewSearchNode(b).LegalMoves()
			kingsideUCI, queensideUCI := "e1g1", "e1c1"
			if b.ToMove == chess.Black {
				kingsideUCI, queensideUCI = "e8g8", "e8c8"
			}
			kingside := hasMove(moves, kingsideUCI)
			queenside := hasMove(moves, queensideUCI)
			if kingside != tt.wantKingside {
				t.Errorf("kingside castle = %v; want %v (moves %v)", kingside, tt.wantKingside, testutil.MoveTexts(moves))
			}
			if queenside != tt.wantQueenside {
				t.Errorf("queenside castle = %v; want %v (moves %v)", queenside, tt.wantQueenside, testutil.MoveTexts(moves))
			}
		})
	}
}

func TestEnPassantWindow(t *testing.T) {
	b := testutil.MustFEN(t, "4k3/8/8/8/5p2/8/4P3/4K3 w - - 0 1")
	node := engine.NewSearchNode(b)

	testutil.AssertNoError(t, node.Commit(mustMove(t, node, "e2e4")))
	ep := mustMove(t, node, "f4e3")
	testutil.AssertEqual(t, ep.Kind, engine.PawnEnPassantCapture)
	testutil.AssertEqual(t, ep.String(), "fxe3e.p.")

	// A waiting move on each side closes the window.
	testutil.AssertNoError(t, node.Commit(mustMove(t, node, "e8d8")))
	testutil.AssertNoError(t, node.Commit(mustMove(t, node, "e1d1")))
	testutil.AssertFalse(t, hasMove(node.LegalMoves(), "f4e3"), "en passant still offered a move later")
	testutil.AssertTrue(t, hasMove(node.LegalMoves(), "f4f3"), "plain push missing")

	// Taking the waiting moves back reopens it.
	testutil.AssertNoError(t, node.Undo())
	testutil.AssertNoError(t, node.Undo())
	testutil.AssertTrue(t, hasMove(node.LegalMoves(), "f4e3"), "en passant missing after undo")
}

func TestEnPassantExposingKing(t *testing.T) {
	b := testutil.MustFEN(t, "8/8/8/KPp4r/8/8/8/4k3 w - c6 0 2")
	moves := engine.NewSearchNode(b).LegalMoves()
	testutil.AssertFalse(t, hasMove(moves, "b5c6"), "en passant that opens the rank must be rejected")
	testutil.AssertTrue(t, hasMove(moves, "b5b6"), "plain push missing")
}

func TestPromotions(t *testing.T) {
	b := testutil.MustFEN(t, "n1n1k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	node := engine.NewSearchNode(b)

	var got []string
	for _, m := range node.LegalMoves() {
		if m.Kind == engine.PawnPromotion {
			got = append(got, m.String())
		}
	}
	want := []string{
		"b8=Q", "b8=R", "b8=B", "b8=N",
		"bxa8=Q", "bxa8=R", "bxa8=B", "bxa8=N",
		"bxc8=Q+", "bxc8=R+", "bxc8=B", "bxc8=N",
	}
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Errorf("promotions mismatch (-want +got):\n%s", diff)
	}

	testutil.AssertFalse(t, hasMove(node.LegalMoves(), "b7b8"), "promotion without a piece")
}

func TestMateAndStalemate(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		wantCheckmate bool
		wantStalemate bool
	}{
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", true, false},
		{"smothered mate", "6rk/5Npp/8/8/8/8/8/6K1 b - - 0 1", true, false},
		{"queen stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", false, true},
		{"rook and king stalemate", "k7/1R6/1K6/8/8/8/8/8 b - - 0 1", false, true},
		{"check with escape", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			node := engine.NewSearchNode(testutil.MustFEN(t, tt.fen))
			testutil.AssertEqual(t, node.IsCheckmate(), tt.wantCheckmate, "IsCheckmate")
			testutil.AssertEqual(t, node.IsStalemate(), tt.wantStalemate, "IsStalemate")
		})
	}
}

func TestNotation(t *testing.T) {
	tests := []struct {
		fen  string
		move string
		want string
	}{
		{engine.InitialFEN, "e2e4", "e4"},
		{engine.InitialFEN, "g1f3", "Nf3"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", "O-O"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", "O-O-O"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "a1a8", "Rxa8+"},
		{"4k3/8/8/3p4/4B3/8/8/4K3 w - - 0 1", "e4d5", "Bxd5"},
		{"4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4d5", "exd5"},
		{"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", "a1a8", "Ra8+"},
		{"4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", "e1d2", "Kxd2"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			node := engine.NewSearchNode(testutil.MustFEN(t, tt.fen))
			testutil.AssertEqual(t, mustMove(t, node, tt.move).String(), tt.want)
		})
	}
}

func TestCommitAndUndo(t *testing.T) {
	b := testutil.MustFEN(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	before := b.Clone()
	node := engine.NewSearchNode(b)
	count := len(node.LegalMoves())

	m := mustMove(t, node, "Ra8+")
	testutil.AssertNoError(t, node.Commit(m))
	testutil.AssertTrue(t, node.IsCheckmate(), "Ra8 should mate")
	testutil.AssertEqual(t, len(node.History()), 1)
	testutil.AssertEqual(t, node.Board().ToMove, chess.Black)

	testutil.AssertNoError(t, node.Undo())
	testutil.AssertBoardEqual(t, b, before)
	testutil.AssertEqual(t, len(node.LegalMoves()), count)
	testutil.AssertEqual(t, len(node.History()), 0)

	if err := node.Undo(); !errors.Is(err, chesserrors.ErrNoHistory) {
		t.Errorf("Undo() on empty history = %v; want ErrNoHistory", err)
	}
}

func TestCommitRejectsForeignMove(t *testing.T) {
	node := engine.NewSearchNode(chess.NewGame())
	other := engine.NewSearchNode(chess.NewGame())

	err := node.Commit(mustMove(t, other, "e2e4"))
	if !errors.Is(err, chesserrors.ErrIllegalMove) {
		t.Errorf("Commit(foreign move) = %v; want ErrIllegalMove", err)
	}
}

func TestFindMove(t *testing.T) {
	node := engine.NewSearchNode(chess.NewGame())

	tests := []struct {
		text    string
		want    string
		wantErr bool
	}{
		{"e2e4", "e2e4", false},
		{"e4", "e2e4", false},
		{"Nc3", "b1c3", false},
		{"Nc3+", "b1c3", false},
		{"e5", "", true},
		{"Ke2", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			m, err := node.FindMove(tt.text)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrIllegalMove) {
					t.Errorf("FindMove(%q) error = %v; want ErrIllegalMove", tt.text, err)
				}
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, m.UCI(), tt.want)
		})
	}
}
