package chess

// IsAttacked returns true if a piece of byColour could capture on sq with
// its next move. Whose turn it is and pins are ignored, so this serves
// both check detection and castling path tests.
func (b *Board) IsAttacked(sq Square, byColour Colour) bool {
	return b.attackedBySlider(sq, byColour, OrthogonalOffsets[:], Rook) ||
		b.attackedBySlider(sq, byColour, DiagonalOffsets[:], Bishop) ||
		b.attackedByStep(sq, MakePiece(byColour, Knight), KnightOffsets[:]) ||
		b.attackedByPawn(sq, byColour) ||
		b.attackedByStep(sq, MakePiece(byColour, King), KingOffsets[:])
}

// attackedBySlider walks each ray until the first occupied square and
// checks it for the slider or a queen.
func (b *Board) attackedBySlider(sq Square, byColour Colour, offsets []Square, slider PieceType) bool {
	piece := MakePiece(byColour, slider)
	queen := MakePiece(byColour, Queen)
	for _, offset := range offsets {
		to := sq + offset
		for onBoard[to] && b.Squares[to] == NoPiece {
			to += offset
		}
		if onBoard[to] {
			if p := b.Squares[to]; p == piece || p == queen {
				return true
			}
		}
	}
	return false
}

// attackedByStep checks a fixed offset table for one piece.
func (b *Board) attackedByStep(sq Square, piece Piece, offsets []Square) bool {
	for _, offset := range offsets {
		if b.Squares[sq+offset] == piece {
			return true
		}
	}
	return false
}

// attackedByPawn checks the two squares diagonally behind sq, as seen
// from the attacker's direction of travel.
func (b *Board) attackedByPawn(sq Square, byColour Colour) bool {
	pawn := MakePiece(byColour, Pawn)
	behind := sq - Sides[byColour].PawnDirection
	return b.Squares[behind+East] == pawn || b.Squares[behind+West] == pawn
}
