package chess

import (
	"fmt"

	"github.com/lgbarn/legalmoves-go/internal/errors"
)

// Square is an index into the padded board array.
//
// The 8x8 board sits inside a 12x12 array with a hedge of two cells on
// every edge, so any single step or knight jump from an on-board square
// stays inside the array and never wraps onto the opposite edge. Moving in
// a direction is plain integer addition.
type Square int

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	Hedge      = 2 // Hedge size for knight move calculations
	RowWidth   = Hedge + BoardSize + Hedge
	NumSquares = RowWidth * RowWidth

	// NoSquare marks an absent square (no en passant target, no king).
	NoSquare Square = -1
)

// Direction offsets.
const (
	North Square = RowWidth
	South Square = -RowWidth
	East  Square = 1
	West  Square = -1

	NorthEast = North + East
	NorthWest = North + West
	SouthEast = South + East
	SouthWest = South + West
)

var (
	OrthogonalOffsets = [4]Square{North, East, South, West}
	DiagonalOffsets   = [4]Square{NorthEast, SouthEast, SouthWest, NorthWest}
	QueenOffsets      = [8]Square{North, East, South, West, NorthEast, SouthEast, SouthWest, NorthWest}
	KingOffsets       = QueenOffsets
	KnightOffsets     = [8]Square{
		North + North + East, North + North + West,
		South + South + East, South + South + West,
		East + East + North, East + East + South,
		West + West + North, West + West + South,
	}
)

// onBoard answers "is this index one of the 64 real squares".
var onBoard [NumSquares]bool

func init() {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			onBoard[SquareOf(file, rank)] = true
		}
	}
}

// SquareOf returns the square for a zero-based file (a=0) and rank (1=0).
func SquareOf(file, rank int) Square {
	return Square((rank+Hedge)*RowWidth + file + Hedge)
}

// OnBoard reports whether sq is one of the 64 playable squares.
func (sq Square) OnBoard() bool {
	return sq >= 0 && sq < NumSquares && onBoard[sq]
}

// File returns the zero-based file of the square.
func (sq Square) File() int {
	return int(sq)%RowWidth - Hedge
}

// Rank returns the zero-based rank of the square.
func (sq Square) Rank() int {
	return int(sq)/RowWidth - Hedge
}

// FileChar returns the file letter 'a'-'h'.
func (sq Square) FileChar() byte {
	return byte('a' + sq.File())
}

// RankChar returns the rank digit '1'-'8'.
func (sq Square) RankChar() byte {
	return byte('1' + sq.Rank())
}

// String returns the algebraic name of the square, or "-" when off the board.
func (sq Square) String() string {
	if !sq.OnBoard() {
		return "-"
	}
	return string([]byte{sq.FileChar(), sq.RankChar()})
}

// ParseSquare converts an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		return NoSquare, fmt.Errorf("bad square %q: %w", name, errors.ErrInvalidPosition)
	}
	return SquareOf(int(name[0]-'a'), int(name[1]-'1')), nil
}

// SideConfig holds the per-colour constants that let pawn and castling
// logic be written once for both sides.
type SideConfig struct {
	HomeRankStart           Square // a1 or a8
	PawnHomeRankStart       Square // a2 or a7
	AboutToPromoteRankStart Square // a7 or a2
	PawnDirection           Square
}

// Sides is indexed by Colour.
var Sides = [NumColours]SideConfig{
	White: {
		HomeRankStart:           SquareOf(0, 0),
		PawnHomeRankStart:       SquareOf(0, 1),
		AboutToPromoteRankStart: SquareOf(0, 6),
		PawnDirection:           North,
	},
	Black: {
		HomeRankStart:           SquareOf(0, 7),
		PawnHomeRankStart:       SquareOf(0, 6),
		AboutToPromoteRankStart: SquareOf(0, 1),
		PawnDirection:           South,
	},
}

func onRank(sq, start Square) bool {
	return sq >= start && sq < start+BoardSize
}

// IsHomeRank reports whether sq is on the side's back rank.
func (s SideConfig) IsHomeRank(sq Square) bool {
	return onRank(sq, s.HomeRankStart)
}

// IsPawnHomeRank reports whether a pawn on sq may still make a double step.
func (s SideConfig) IsPawnHomeRank(sq Square) bool {
	return onRank(sq, s.PawnHomeRankStart)
}

// IsAboutToPromote reports whether a pawn on sq promotes with its next step.
func (s SideConfig) IsAboutToPromote(sq Square) bool {
	return onRank(sq, s.AboutToPromoteRankStart)
}

// KingStart is the e-file square on the home rank.
func (s SideConfig) KingStart() Square { return s.HomeRankStart + 4 }

// RookStart is the corner rook square for the given wing.
func (s SideConfig) RookStart(side CastleSide) Square {
	if side == Kingside {
		return s.HomeRankStart + 7
	}
	return s.HomeRankStart
}

// CastleSquares returns the king and rook destinations for a castle.
func (s SideConfig) CastleSquares(side CastleSide) (kingTo, rookTo Square) {
	if side == Kingside {
		return s.HomeRankStart + 6, s.HomeRankStart + 5
	}
	return s.HomeRankStart + 2, s.HomeRankStart + 3
}
