// Package chess provides the board representation used by the move generator.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
	NumColours
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType is the kind of a piece, independent of its colour.
type PieceType int

const (
	NoType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (t PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if t >= 0 && int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// PromotionTypes lists the piece types a pawn may promote to, in generation order.
var PromotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// Piece is a coloured piece. The zero value is NoPiece, which is also what
// every hedge square holds.
type Piece uint8

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

const NoPiece Piece = 0

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, t PieceType) Piece {
	return Piece(int(t)<<PieceShift | int(colour))
}

// W creates a white piece.
func W(t PieceType) Piece {
	return MakePiece(White, t)
}

// B creates a black piece.
func B(t PieceType) Piece {
	return MakePiece(Black, t)
}

// Colour extracts the colour of the piece. Undefined for NoPiece.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// Type extracts the piece type.
func (p Piece) Type() PieceType {
	return PieceType(p >> PieceShift)
}

// Is reports whether p is a piece of the given colour and type.
func (p Piece) Is(colour Colour, t PieceType) bool {
	return p == MakePiece(colour, t)
}

// Letter returns the board letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p == NoPiece {
		return ' '
	}
	letter := p.Type().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns the board letter of the piece.
func (p Piece) String() string {
	return string(p.Letter())
}

// PieceFromLetter converts a board letter to a piece. Unknown letters
// return NoPiece and false.
func PieceFromLetter(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return MakePiece(colour, Pawn), true
	case 'N':
		return MakePiece(colour, Knight), true
	case 'B':
		return MakePiece(colour, Bishop), true
	case 'R':
		return MakePiece(colour, Rook), true
	case 'Q':
		return MakePiece(colour, Queen), true
	case 'K':
		return MakePiece(colour, King), true
	}
	return NoPiece, false
}

// CastleSide selects the wing of a castling right.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// String returns the string representation of a castling side.
func (s CastleSide) String() string {
	if s == Kingside {
		return "kingside"
	}
	return "queenside"
}
