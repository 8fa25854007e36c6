package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/legalmoves-go/internal/chess"
	chesserrors "github.com/lgbarn/legalmoves-go/internal/errors"
)

func mustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return sq
}

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*testing.T, *chess.Board)
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(t *testing.T, b *chess.Board) {
				if !b.Equal(chess.NewGame()) {
					t.Errorf("board differs from NewGame:\n%s", b)
				}
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(t *testing.T, b *chess.Board) {
				if b.PieceAt(mustSquare(t, "e4")) != chess.W(chess.Pawn) || !b.IsEmpty(mustSquare(t, "e2")) {
					t.Errorf("pawn not on e4:\n%s", b)
				}
				if b.ToMove != chess.Black {
					t.Errorf("ToMove = %v; want Black", b.ToMove)
				}
				if b.EnPassant != mustSquare(t, "e3") {
					t.Errorf("EnPassant = %v; want e3", b.EnPassant)
				}
			},
		},
		{
			name: "clocks",
			fen:  "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 7",
			checkFn: func(t *testing.T, b *chess.Board) {
				if b.HalfmoveClock != 1 || b.MoveNumber != 7 {
					t.Errorf("clocks = %d/%d; want 1/7", b.HalfmoveClock, b.MoveNumber)
				}
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(t *testing.T, b *chess.Board) {
				for c := chess.White; c < chess.NumColours; c++ {
					if b.CanCastle(c, chess.Kingside) || b.CanCastle(c, chess.Queenside) {
						t.Errorf("%v holds a castling right", c)
					}
				}
			},
		},
		{
			name: "castling flag without a rook is dropped",
			fen:  "r3k3/8/8/8/8/8/8/4K2R w KQkq - 0 1",
			checkFn: func(t *testing.T, b *chess.Board) {
				if !b.CanCastle(chess.White, chess.Kingside) || b.CanCastle(chess.White, chess.Queenside) {
					t.Errorf("White rights = K:%v Q:%v; want K only",
						b.CanCastle(chess.White, chess.Kingside), b.CanCastle(chess.White, chess.Queenside))
				}
				if b.CanCastle(chess.Black, chess.Kingside) || !b.CanCastle(chess.Black, chess.Queenside) {
					t.Errorf("Black rights = k:%v q:%v; want q only",
						b.CanCastle(chess.Black, chess.Kingside), b.CanCastle(chess.Black, chess.Queenside))
				}
			},
		},
		{
			name: "piece placement only",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R",
			checkFn: func(t *testing.T, b *chess.Board) {
				if BoardToFEN(b) != "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1" {
					t.Errorf("defaults not applied: %s", BoardToFEN(b))
				}
			},
		},
		{
			name: "side to move in check",
			fen:  "4k3/8/8/8/8/8/8/r3K3 w - - 0 1",
			checkFn: func(t *testing.T, b *chess.Board) {
				if !b.InCheck {
					t.Error("InCheck = false; want true")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
			}
			tt.checkFn(t, board)
		})
	}
}

func TestNewBoardFromFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty string", ""},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"too many ranks", "rnbqkbnr/pppppppp/8/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1"},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{"bad castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KZkq - 0 1"},
		{"bad en passant", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1"},
		{"bad clock", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1"},
		{"zero move number", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0"},
		{"missing king", "rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQ - 0 1"},
		{"two kings", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBKKBNR w kq - 0 1"},
		{"opponent in check", "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewBoardFromFEN(tt.fen)
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("NewBoardFromFEN(%q) error = %v; want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

func TestBoardToFEN(t *testing.T) {
	tests := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 12 40",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			board, err := NewBoardFromFEN(fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			if got := BoardToFEN(board); got != fen {
				t.Errorf("BoardToFEN() = %q; want %q", got, fen)
			}
		})
	}
}

func TestNewInitialBoard(t *testing.T) {
	if got := BoardToFEN(NewInitialBoard()); got != InitialFEN {
		t.Errorf("BoardToFEN(NewInitialBoard()) = %q; want %q", got, InitialFEN)
	}
}
