package chess

import (
	"github.com/lgbarn/legalmoves-go/internal/errors"
)

// Board represents a chess board with all state needed for move generation.
//
// A single Board is mutated in place by applying and rolling back moves.
// Every field is an array or scalar, so a Board value can be copied and
// compared with ==.
type Board struct {
	// The board squares with a hedge of 2 around for knight move calculation.
	// Hedge squares always hold NoPiece.
	Squares [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// The current move number, counted as in FEN: it starts at 1 and
	// advances after each Black move, so White and Black share a number
	// within one move pair.
	MoveNumber int

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// Keep track of where the two kings are for check detection.
	KingSquare [NumColours]Square

	// The square a pawn skipped over on the previous ply, or NoSquare.
	EnPassant Square

	// Castling forfeit counters, indexed by colour and wing. A right is
	// held while its counter is zero. Forfeits increment and rollbacks
	// decrement, so nested forfeits of the same right undo independently.
	Castling [NumColours][2]int

	// Whether the side to move is in check.
	InCheck bool
}

// NewBoard creates a new empty board with White to move and no castling rights.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		MoveNumber: 1,
		KingSquare: [NumColours]Square{NoSquare, NoSquare},
		EnPassant:  NoSquare,
	}
	for c := White; c < NumColours; c++ {
		b.Castling[c] = [2]int{1, 1}
	}
	return b
}

// PieceAt returns the piece on sq. Hedge squares and indices outside the
// array return NoPiece.
func (b *Board) PieceAt(sq Square) Piece {
	if sq < 0 || sq >= NumSquares {
		return NoPiece
	}
	return b.Squares[sq]
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.PieceAt(sq) == NoPiece
}

// SetPiece places piece (or NoPiece) on sq, keeping the king squares current.
func (b *Board) SetPiece(sq Square, piece Piece) {
	if !sq.OnBoard() {
		panic(&errors.InvariantError{Err: errors.ErrOffBoard, Op: "set piece", Square: int(sq)})
	}
	b.Squares[sq] = piece
	if piece.Type() == King {
		b.KingSquare[piece.Colour()] = sq
	}
}

// MovePiece relocates the piece on from to to without any legality check.
// Whatever stood on to is overwritten.
func (b *Board) MovePiece(from, to Square) {
	piece := b.Squares[from]
	if piece == NoPiece {
		panic(&errors.InvariantError{Err: errors.ErrEmptySquare, Op: "move piece", Square: int(from)})
	}
	if !to.OnBoard() {
		panic(&errors.InvariantError{Err: errors.ErrOffBoard, Op: "move piece", Square: int(to)})
	}
	b.Squares[from] = NoPiece
	b.SetPiece(to, piece)
}

// PiecesOf returns the squares holding pieces of the given colour, in a1..h8 order.
func (b *Board) PiecesOf(colour Colour) []Square {
	squares := make([]Square, 0, 16)
	for rank := 0; rank < BoardSize; rank++ {
		for sq := SquareOf(0, rank); sq < SquareOf(0, rank)+BoardSize; sq++ {
			if p := b.Squares[sq]; p != NoPiece && p.Colour() == colour {
				squares = append(squares, sq)
			}
		}
	}
	return squares
}

// CanCastle reports whether colour still holds the castling right on side.
func (b *Board) CanCastle(colour Colour, side CastleSide) bool {
	return b.Castling[colour][side] == 0
}

// ForfeitCastling removes a castling right. It nests: each forfeit needs
// its own RestoreCastling.
func (b *Board) ForfeitCastling(colour Colour, side CastleSide) {
	b.Castling[colour][side]++
}

// RestoreCastling undoes one ForfeitCastling.
func (b *Board) RestoreCastling(colour Colour, side CastleSide) {
	if b.Castling[colour][side] == 0 {
		panic(&errors.InvariantError{Err: errors.ErrCastlingUnderflow, Op: colour.String() + " " + side.String()})
	}
	b.Castling[colour][side]--
}

// IsKingInCheck reports whether the king of colour is attacked.
func (b *Board) IsKingInCheck(colour Colour) bool {
	sq := b.KingSquare[colour]
	if sq == NoSquare {
		return false
	}
	return b.IsAttacked(sq, colour.Opposite())
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Equal reports whether two boards hold identical state.
func (b *Board) Equal(other *Board) bool {
	return *b == *other
}
