package engine

import (
	"testing"

	"github.com/lgbarn/legalmoves-go/internal/chess"
	"github.com/lgbarn/legalmoves-go/internal/hashing"
)

var benchFENs = map[string]string{
	"Initial":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkNewBoardFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewBoardFromFEN(fen)
			}
		})
	}
}

func BenchmarkBoardToFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				BoardToFEN(board)
			}
		})
	}
}

func BenchmarkApplyRollback(b *testing.B) {
	cases := []struct {
		name string
		fen  string
		uci  string
	}{
		{"PawnMove", benchFENs["Initial"], "e2e4"},
		{"PieceMove", benchFENs["Initial"], "g1f3"},
		{"KingsideCastle", benchFENs["Castling"], "e1g1"},
		{"QueensideCastle", benchFENs["Castling"], "e1c1"},
		{"EnPassant", benchFENs["EnPassant"], "f5e6"},
		{"Promotion", "8/P7/8/8/8/8/8/4K2k w - - 0 1", "a7a8q"},
	}

	for _, tt := range cases {
		b.Run(tt.name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(tt.fen)
			m, err := NewSearchNode(board).FindMove(tt.uci)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m.Apply(board)
				m.Rollback(board)
			}
		})
	}
}

func BenchmarkIsKingInCheck(b *testing.B) {
	checkFEN := "rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR w KQkq - 1 3"

	b.Run("NoCheck", func(b *testing.B) {
		board, _ := NewBoardFromFEN(benchFENs["Initial"])
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			board.IsKingInCheck(chess.White)
		}
	})

	b.Run("InCheck", func(b *testing.B) {
		board, _ := NewBoardFromFEN(checkFEN)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			board.IsKingInCheck(chess.White)
		}
	})
}

func BenchmarkNewSearchNode(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				NewSearchNode(board)
			}
		})
	}
}

func BenchmarkPerft(b *testing.B) {
	board, _ := NewBoardFromFEN(benchFENs["Complex"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Perft(board, 2)
	}
}

func BenchmarkHashedPerft(b *testing.B) {
	board, _ := NewBoardFromFEN(benchFENs["Complex"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		HashedPerft(board, 3, hashing.NewTable(0))
	}
}

func BenchmarkBoardClone(b *testing.B) {
	board, _ := NewBoardFromFEN(benchFENs["Midgame"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Clone()
	}
}
