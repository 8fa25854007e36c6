package engine

import (
	"strings"

	"github.com/lgbarn/legalmoves-go/internal/chess"
)

// String renders the move in simplified algebraic notation: the piece
// letter (none for pawns, the from-file for pawn captures), "x" for a
// capture, the destination, "e.p." for en passant, "=Q" style promotion
// and "+" for check. Castles render as O-O and O-O-O.
//
// Two pieces of the same type that can reach the same square are not
// disambiguated, so the text is not always unique within a move list.
func (m *Move) String() string {
	var sb strings.Builder

	switch m.Kind {
	case KingsideCastle:
		sb.WriteString("O-O")
	case QueensideCastle:
		sb.WriteString("O-O-O")
	default:
		pawn := m.Piece.Type() == chess.Pawn
		switch {
		case !pawn:
			sb.WriteByte(m.Piece.Type().Letter())
		case m.IsCapture():
			sb.WriteByte(m.From.FileChar())
		}
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.Kind == PawnEnPassantCapture {
			sb.WriteString("e.p.")
		}
		if m.Kind == PawnPromotion {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
	}

	if m.GivesCheck {
		sb.WriteByte('+')
	}
	return sb.String()
}

// UCI renders the move in long algebraic form as used by UCI engines,
// for example "e2e4", "e1g1" or "e7e8q".
func (m *Move) UCI() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.Kind == PawnPromotion {
		sb.WriteByte(m.Promotion.Letter() + 'a' - 'A')
	}
	return sb.String()
}
