package engine

import (
	"github.com/lgbarn/legalmoves-go/internal/chess"
	"github.com/lgbarn/legalmoves-go/internal/errors"
)

// MoveKind selects how a Move changes the board.
type MoveKind int

const (
	StandardMove MoveKind = iota
	StandardCapture
	KingMove
	KingCapture
	RookMove
	RookCapture
	KingsideCastle
	QueensideCastle
	PawnInitialMove
	PawnEnPassantCapture
	PawnPromotion
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	names := []string{
		"StandardMove", "StandardCapture", "KingMove", "KingCapture", "RookMove", "RookCapture",
		"KingsideCastle", "QueensideCastle", "PawnInitialMove", "PawnEnPassantCapture", "PawnPromotion",
	}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Move is one ply that can be applied to a board and rolled back.
//
// A Move is single use: Apply and Rollback must alternate strictly,
// starting with Apply. It stores only the state needed to undo itself.
type Move struct {
	Kind      MoveKind
	From      chess.Square
	To        chess.Square
	Piece     chess.Piece     // The moving piece
	Captured  chess.Piece     // Piece removed by a capture, NoPiece otherwise
	Promotion chess.PieceType // Promotion piece type, NoType otherwise

	// GivesCheck is set by the generator when the move checks the opponent.
	GivesCheck bool

	applied       bool
	capturedOn    chess.Square
	prevEnPassant chess.Square
	prevInCheck   bool
	prevHalfmove  int
}

// IsCapture reports whether the move removes an enemy piece.
func (m *Move) IsCapture() bool {
	return m.Captured != chess.NoPiece
}

// IsApplied reports whether the move is currently applied to a board.
func (m *Move) IsApplied() bool {
	return m.applied
}

// Apply performs the move on b. The piece-specific effects run first,
// then the bookkeeping common to all moves.
func (m *Move) Apply(b *chess.Board) {
	if m.applied {
		panic(&errors.InvariantError{Err: errors.ErrMoveAlreadyApplied, Op: "apply " + m.Kind.String(), Square: int(m.From)})
	}
	m.Piece = b.PieceAt(m.From)
	if m.Piece == chess.NoPiece {
		panic(&errors.InvariantError{Err: errors.ErrEmptySquare, Op: "apply " + m.Kind.String(), Square: int(m.From)})
	}
	mover := b.ToMove
	side := chess.Sides[mover]

	switch m.Kind {
	case StandardMove:
		b.MovePiece(m.From, m.To)

	case StandardCapture:
		m.capture(b, m.To)
		b.MovePiece(m.From, m.To)

	case KingMove:
		forfeitBoth(b, mover)
		b.MovePiece(m.From, m.To)

	case KingCapture:
		forfeitBoth(b, mover)
		m.capture(b, m.To)
		b.MovePiece(m.From, m.To)

	case RookMove:
		forfeitRookCorner(b, mover, m.From)
		b.MovePiece(m.From, m.To)

	case RookCapture:
		forfeitRookCorner(b, mover, m.From)
		m.capture(b, m.To)
		b.MovePiece(m.From, m.To)

	case KingsideCastle, QueensideCastle:
		wing := m.wing()
		_, rookTo := side.CastleSquares(wing)
		b.MovePiece(m.From, m.To)
		b.MovePiece(side.RookStart(wing), rookTo)
		forfeitBoth(b, mover)

	case PawnInitialMove:
		b.MovePiece(m.From, m.To)

	case PawnEnPassantCapture:
		m.capture(b, m.To-side.PawnDirection)
		b.MovePiece(m.From, m.To)

	case PawnPromotion:
		m.Captured = chess.NoPiece
		if b.PieceAt(m.To) != chess.NoPiece {
			m.capture(b, m.To)
		}
		b.SetPiece(m.From, chess.NoPiece)
		b.SetPiece(m.To, chess.MakePiece(mover, m.Promotion))

	default:
		panic(&errors.InvariantError{Err: errors.ErrIllegalMove, Op: "apply " + m.Kind.String()})
	}

	m.applyCommon(b)

	if m.Kind == PawnInitialMove {
		b.EnPassant = m.From + side.PawnDirection
	}
}

// Rollback undoes Apply, restoring b exactly.
func (m *Move) Rollback(b *chess.Board) {
	if !m.applied {
		panic(&errors.InvariantError{Err: errors.ErrRollbackWithoutApply, Op: "rollback " + m.Kind.String(), Square: int(m.From)})
	}

	m.rollbackCommon(b)

	mover := b.ToMove
	side := chess.Sides[mover]

	switch m.Kind {
	case StandardMove, PawnInitialMove:
		b.MovePiece(m.To, m.From)

	case StandardCapture:
		b.MovePiece(m.To, m.From)
		m.uncapture(b)

	case KingMove:
		b.MovePiece(m.To, m.From)
		restoreBoth(b, mover)

	case KingCapture:
		b.MovePiece(m.To, m.From)
		m.uncapture(b)
		restoreBoth(b, mover)

	case RookMove:
		b.MovePiece(m.To, m.From)
		restoreRookCorner(b, mover, m.From)

	case RookCapture:
		b.MovePiece(m.To, m.From)
		m.uncapture(b)
		restoreRookCorner(b, mover, m.From)

	case KingsideCastle, QueensideCastle:
		wing := m.wing()
		_, rookTo := side.CastleSquares(wing)
		restoreBoth(b, mover)
		b.MovePiece(rookTo, side.RookStart(wing))
		b.MovePiece(m.To, m.From)

	case PawnEnPassantCapture:
		b.MovePiece(m.To, m.From)
		m.uncapture(b)

	case PawnPromotion:
		b.SetPiece(m.To, chess.NoPiece)
		b.SetPiece(m.From, m.Piece)
		if m.Captured != chess.NoPiece {
			m.uncapture(b)
		}
	}
}

// applyCommon is the bookkeeping shared by every move kind.
func (m *Move) applyCommon(b *chess.Board) {
	m.prevEnPassant = b.EnPassant
	m.prevInCheck = b.InCheck
	m.prevHalfmove = b.HalfmoveClock

	b.EnPassant = chess.NoSquare
	if m.Piece.Type() == chess.Pawn || m.Captured != chess.NoPiece {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}
	if b.ToMove == chess.Black {
		b.MoveNumber++
	}
	b.ToMove = b.ToMove.Opposite()
	m.applied = true
}

// rollbackCommon reverses applyCommon.
func (m *Move) rollbackCommon(b *chess.Board) {
	b.ToMove = b.ToMove.Opposite()
	if b.ToMove == chess.Black {
		b.MoveNumber--
	}
	b.HalfmoveClock = m.prevHalfmove
	b.InCheck = m.prevInCheck
	b.EnPassant = m.prevEnPassant
	m.applied = false
}

// capture removes the piece on sq and remembers it. Taking a rook on its
// home corner also takes away the opponent's castling right on that wing.
func (m *Move) capture(b *chess.Board, sq chess.Square) {
	victim := b.PieceAt(sq)
	if victim == chess.NoPiece {
		panic(&errors.InvariantError{Err: errors.ErrEmptySquare, Op: "capture", Square: int(sq)})
	}
	m.Captured = victim
	m.capturedOn = sq
	b.SetPiece(sq, chess.NoPiece)
	forfeitRookCorner(b, victim.Colour(), sq)
}

// uncapture puts the captured piece back and returns the castling right
// that capture took.
func (m *Move) uncapture(b *chess.Board) {
	restoreRookCorner(b, m.Captured.Colour(), m.capturedOn)
	b.SetPiece(m.capturedOn, m.Captured)
}

func (m *Move) wing() chess.CastleSide {
	if m.Kind == KingsideCastle {
		return chess.Kingside
	}
	return chess.Queenside
}

func forfeitBoth(b *chess.Board, colour chess.Colour) {
	b.ForfeitCastling(colour, chess.Kingside)
	b.ForfeitCastling(colour, chess.Queenside)
}

func restoreBoth(b *chess.Board, colour chess.Colour) {
	b.RestoreCastling(colour, chess.Kingside)
	b.RestoreCastling(colour, chess.Queenside)
}

// forfeitRookCorner forfeits colour's right on the wing whose rook starts on sq.
func forfeitRookCorner(b *chess.Board, colour chess.Colour, sq chess.Square) {
	side := chess.Sides[colour]
	switch sq {
	case side.RookStart(chess.Queenside):
		b.ForfeitCastling(colour, chess.Queenside)
	case side.RookStart(chess.Kingside):
		b.ForfeitCastling(colour, chess.Kingside)
	}
}

func restoreRookCorner(b *chess.Board, colour chess.Colour, sq chess.Square) {
	side := chess.Sides[colour]
	switch sq {
	case side.RookStart(chess.Queenside):
		b.RestoreCastling(colour, chess.Queenside)
	case side.RookStart(chess.Kingside):
		b.RestoreCastling(colour, chess.Kingside)
	}
}

// withMove applies m, runs fn, and rolls m back even if fn panics.
func withMove(b *chess.Board, m *Move, fn func()) {
	m.Apply(b)
	defer m.Rollback(b)
	fn()
}
