package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/legalmoves-go/internal/errors"
)

// InitialRanks is the standard starting position, rank 8 first.
var InitialRanks = []string{
	"rnbqkbnr",
	"pppppppp",
	"        ",
	"        ",
	"        ",
	"        ",
	"PPPPPPPP",
	"RNBQKBNR",
}

// NewGame returns a board set up in the starting position with White to move.
func NewGame() *Board {
	b, err := FromStrings(InitialRanks, White)
	if err != nil {
		panic(err)
	}
	return b
}

// FromStrings builds a board from eight rank strings, rank 8 first.
// Uppercase letters are White, lowercase Black, and ' ' or '.' is empty.
// A castling right is granted when the king and the matching rook both
// stand on their home squares.
func FromStrings(ranks []string, toMove Colour) (*Board, error) {
	if len(ranks) != BoardSize {
		return nil, &errors.PositionError{Err: errors.ErrInvalidPosition, Rank: -1,
			Detail: fmt.Sprintf("want %d ranks, got %d", BoardSize, len(ranks))}
	}

	b := NewBoard()
	b.ToMove = toMove
	for i, row := range ranks {
		rank := BoardSize - 1 - i
		if len(row) != BoardSize {
			return nil, &errors.PositionError{Err: errors.ErrInvalidPosition, Rank: rank,
				Detail: fmt.Sprintf("want %d squares, got %d", BoardSize, len(row))}
		}
		for file := 0; file < BoardSize; file++ {
			c := row[file]
			if c == ' ' || c == '.' {
				continue
			}
			piece, ok := PieceFromLetter(c)
			if !ok {
				return nil, &errors.PositionError{Err: errors.ErrInvalidPosition, Rank: rank,
					File: file, Detail: fmt.Sprintf("unknown piece %q", c)}
			}
			if piece.Type() == King && b.KingSquare[piece.Colour()] != NoSquare {
				return nil, &errors.PositionError{Err: errors.ErrInvalidPosition, Rank: rank,
					File: file, Detail: "second " + piece.Colour().String() + " king"}
			}
			b.SetPiece(SquareOf(file, rank), piece)
		}
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	b.InferCastling()
	b.InCheck = b.IsKingInCheck(b.ToMove)
	return b, nil
}

// Validate checks the structural invariants a position must satisfy
// before moves can be generated from it.
func (b *Board) Validate() error {
	for c := White; c < NumColours; c++ {
		sq := b.KingSquare[c]
		if sq == NoSquare || !b.Squares[sq].Is(c, King) {
			return &errors.PositionError{Err: errors.ErrInvalidPosition, Rank: -1,
				Detail: "missing " + c.String() + " king"}
		}
	}
	if b.IsKingInCheck(b.ToMove.Opposite()) {
		return &errors.PositionError{Err: errors.ErrInvalidPosition, Rank: -1,
			Detail: b.ToMove.Opposite().String() + " king can be captured"}
	}
	return nil
}

// InferCastling grants each right whose king and rook are on their home
// squares and forfeits the rest.
func (b *Board) InferCastling() {
	for c := White; c < NumColours; c++ {
		side := Sides[c]
		for _, wing := range []CastleSide{Kingside, Queenside} {
			if b.Squares[side.KingStart()].Is(c, King) && b.Squares[side.RookStart(wing)].Is(c, Rook) {
				b.Castling[c][wing] = 0
			} else {
				b.Castling[c][wing] = 1
			}
		}
	}
}

// String renders the board one rank per line, rank 8 first. Empty squares
// alternate between '.' (the a1 colour) and ' '. A trailer line names the
// side to move.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			piece := b.Squares[SquareOf(file, rank)]
			switch {
			case piece != NoPiece:
				sb.WriteByte(piece.Letter())
			case (file+rank)%2 == 0:
				sb.WriteByte('.')
			default:
				sb.WriteByte(' ')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(b.ToMove.String())
	sb.WriteString(" to move")
	return sb.String()
}
