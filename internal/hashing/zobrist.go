// Package hashing computes Zobrist keys for positions and keeps a table of
// perft counts keyed by them.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/legalmoves-go/internal/chess"
)

// numPieceCodes covers every Piece value up to a black king.
const numPieceCodes = int(chess.King)<<chess.PieceShift | int(chess.Black) + 1

var (
	pieceKeys     [numPieceCodes][chess.NumSquares]uint64
	castlingKeys  [16]uint64
	enPassantKeys [chess.BoardSize]uint64
	blackToMove   uint64
)

func init() {
	// A fixed seed keeps keys stable between runs.
	rnd := rand.New(rand.NewSource(0xC0DE)) //nolint:gosec // G404: hash keys need no cryptographic randomness

	for p := range pieceKeys {
		for rank := 0; rank < chess.BoardSize; rank++ {
			for file := 0; file < chess.BoardSize; file++ {
				pieceKeys[p][chess.SquareOf(file, rank)] = rnd.Uint64()
			}
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = rnd.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = rnd.Uint64()
	}
	blackToMove = rnd.Uint64()
}

// Zobrist returns the hash of the position on b. Pieces, side to move,
// castling rights and the en passant file take part; the clocks and the
// check flag do not.
func Zobrist(b *chess.Board) uint64 {
	var key uint64

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.SquareOf(file, rank)
			if p := b.Squares[sq]; p != chess.NoPiece {
				key ^= pieceKeys[p][sq]
			}
		}
	}

	if b.ToMove == chess.Black {
		key ^= blackToMove
	}
	key ^= castlingKeys[castlingIndex(b)]
	if b.EnPassant != chess.NoSquare {
		key ^= enPassantKeys[b.EnPassant.File()]
	}
	return key
}

// castlingIndex packs the four held rights into a 4-bit index.
func castlingIndex(b *chess.Board) int {
	idx := 0
	bit := 1
	for c := chess.White; c < chess.NumColours; c++ {
		for _, side := range [2]chess.CastleSide{chess.Kingside, chess.Queenside} {
			if b.CanCastle(c, side) {
				idx |= bit
			}
			bit <<= 1
		}
	}
	return idx
}
