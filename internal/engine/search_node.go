// Package engine provides legal move generation and move application on a chess.Board.
package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/legalmoves-go/internal/chess"
	"github.com/lgbarn/legalmoves-go/internal/errors"
)

// SearchNode generates the legal moves of the side to move on a live board.
//
// Every candidate is applied to the board, tested and rolled back, so the
// board is never copied during generation. After NewSearchNode returns the
// board is exactly as it was, apart from the refreshed check flag.
type SearchNode struct {
	board   *chess.Board
	moves   []*Move
	history []*Move
}

// NewSearchNode generates the legal moves for the position on board.
func NewSearchNode(board *chess.Board) *SearchNode {
	n := &SearchNode{board: board}
	n.generate()
	return n
}

// Board returns the live board the node works on.
func (n *SearchNode) Board() *chess.Board {
	return n.board
}

// LegalMoves returns the legal moves of the side to move. Generation order
// is board scan order but is not part of the contract.
func (n *SearchNode) LegalMoves() []*Move {
	return n.moves
}

// IsCheckmate reports whether the side to move is in check with no legal move.
func (n *SearchNode) IsCheckmate() bool {
	return len(n.moves) == 0 && n.board.InCheck
}

// IsStalemate reports whether the side to move has no legal move and is not in check.
func (n *SearchNode) IsStalemate() bool {
	return len(n.moves) == 0 && !n.board.InCheck
}

// History returns the moves committed so far, oldest first.
func (n *SearchNode) History() []*Move {
	return n.history
}

// Commit plays m permanently and regenerates the legal moves for the new
// position. m must come from LegalMoves.
func (n *SearchNode) Commit(m *Move) error {
	if !n.contains(m) {
		return fmt.Errorf("%s: %w", m, errors.ErrIllegalMove)
	}
	m.Apply(n.board)
	n.history = append(n.history, m)
	n.generate()
	return nil
}

// Undo takes back the last committed move.
func (n *SearchNode) Undo() error {
	if len(n.history) == 0 {
		return errors.ErrNoHistory
	}
	last := n.history[len(n.history)-1]
	n.history = n.history[:len(n.history)-1]
	last.Rollback(n.board)
	n.generate()
	return nil
}

// FindMove looks up a legal move by UCI text ("e2e4") or by its notation
// with or without a trailing "+". Ambiguous notation matches the first
// move in generation order.
func (n *SearchNode) FindMove(text string) (*Move, error) {
	for _, m := range n.moves {
		if m.UCI() == text {
			return m, nil
		}
	}
	want := strings.TrimSuffix(text, "+")
	for _, m := range n.moves {
		if strings.TrimSuffix(m.String(), "+") == want {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", text, errors.ErrIllegalMove)
}

func (n *SearchNode) contains(m *Move) bool {
	for _, legal := range n.moves {
		if legal == m {
			return true
		}
	}
	return false
}

// generate rebuilds the legal move list for the side to move.
func (n *SearchNode) generate() {
	b := n.board
	b.InCheck = b.IsKingInCheck(b.ToMove)
	n.moves = make([]*Move, 0, 48)

	for _, sq := range b.PiecesOf(b.ToMove) {
		switch b.Squares[sq].Type() {
		case chess.Pawn:
			n.findPawnMoves(sq)
		case chess.Knight:
			n.findStepMoves(sq, chess.KnightOffsets[:], StandardMove, StandardCapture)
		case chess.Bishop:
			n.findSlidingMoves(sq, chess.DiagonalOffsets[:], StandardMove, StandardCapture)
		case chess.Rook:
			n.findSlidingMoves(sq, chess.OrthogonalOffsets[:], RookMove, RookCapture)
		case chess.Queen:
			n.findSlidingMoves(sq, chess.QueenOffsets[:], StandardMove, StandardCapture)
		case chess.King:
			n.findStepMoves(sq, chess.KingOffsets[:], KingMove, KingCapture)
			n.findCastles(sq)
		}
	}
}

// maybeAddMove applies m, keeps it if the mover's king is safe afterwards,
// and always rolls it back.
func (n *SearchNode) maybeAddMove(m *Move) {
	b := n.board
	mover := b.ToMove
	withMove(b, m, func() {
		if b.IsKingInCheck(mover) {
			return
		}
		b.InCheck = b.IsKingInCheck(b.ToMove)
		m.GivesCheck = b.InCheck
		n.moves = append(n.moves, m)
	})
}

func (n *SearchNode) newMove(kind MoveKind, from, to chess.Square) *Move {
	return &Move{
		Kind:     kind,
		From:     from,
		To:       to,
		Piece:    n.board.Squares[from],
		Captured: n.board.Squares[to],
	}
}

// isEnemy reports whether sq holds a piece of the side not to move.
func (n *SearchNode) isEnemy(sq chess.Square) bool {
	p := n.board.Squares[sq]
	return p != chess.NoPiece && p.Colour() != n.board.ToMove
}

// findStepMoves handles knights and kings: one step per offset.
func (n *SearchNode) findStepMoves(from chess.Square, offsets []chess.Square, quiet, capture MoveKind) {
	for _, offset := range offsets {
		to := from + offset
		switch {
		case !to.OnBoard():
		case n.board.IsEmpty(to):
			n.maybeAddMove(n.newMove(quiet, from, to))
		case n.isEnemy(to):
			n.maybeAddMove(n.newMove(capture, from, to))
		}
	}
}

// findSlidingMoves walks each ray until blocked, adding a quiet move per
// empty square and a single capture if the blocker is an enemy.
func (n *SearchNode) findSlidingMoves(from chess.Square, offsets []chess.Square, quiet, capture MoveKind) {
	for _, offset := range offsets {
		to := from + offset
		for to.OnBoard() && n.board.IsEmpty(to) {
			n.maybeAddMove(n.newMove(quiet, from, to))
			to += offset
		}
		if to.OnBoard() && n.isEnemy(to) {
			n.maybeAddMove(n.newMove(capture, from, to))
		}
	}
}

func (n *SearchNode) findPawnMoves(from chess.Square) {
	b := n.board
	side := chess.Sides[b.ToMove]
	promoting := side.IsAboutToPromote(from)

	// Can the pawn move forward one?
	one := from + side.PawnDirection
	if !one.OnBoard() {
		return
	}
	if b.IsEmpty(one) {
		if promoting {
			n.addPromotions(from, one)
		} else {
			n.maybeAddMove(n.newMove(StandardMove, from, one))
		}

		// Can the pawn move forward two?
		if two := one + side.PawnDirection; side.IsPawnHomeRank(from) && b.IsEmpty(two) {
			n.maybeAddMove(n.newMove(PawnInitialMove, from, two))
		}
	}

	// Pawn captures.
	for _, diag := range [2]chess.Square{one + chess.West, one + chess.East} {
		if !diag.OnBoard() {
			continue
		}
		switch {
		case n.isEnemy(diag):
			if promoting {
				n.addPromotions(from, diag)
			} else {
				n.maybeAddMove(n.newMove(StandardCapture, from, diag))
			}
		case diag == b.EnPassant && n.isEnemy(diag-side.PawnDirection):
			m := n.newMove(PawnEnPassantCapture, from, diag)
			m.Captured = b.Squares[diag-side.PawnDirection]
			n.maybeAddMove(m)
		}
	}
}

// addPromotions adds one promotion per promotion piece type.
func (n *SearchNode) addPromotions(from, to chess.Square) {
	for _, t := range chess.PromotionTypes {
		m := n.newMove(PawnPromotion, from, to)
		m.Promotion = t
		n.maybeAddMove(m)
	}
}

func (n *SearchNode) findCastles(from chess.Square) {
	side := chess.Sides[n.board.ToMove]
	if from != side.KingStart() {
		return
	}
	if n.canCastle(chess.Queenside) {
		kingTo, _ := side.CastleSquares(chess.Queenside)
		n.maybeAddMove(n.newMove(QueensideCastle, from, kingTo))
	}
	if n.canCastle(chess.Kingside) {
		kingTo, _ := side.CastleSquares(chess.Kingside)
		n.maybeAddMove(n.newMove(KingsideCastle, from, kingTo))
	}
}

// canCastle checks the right, the rook, the empty squares between king and
// rook, and that the king's start, pass-through and destination squares
// are not attacked.
func (n *SearchNode) canCastle(wing chess.CastleSide) bool {
	b := n.board
	us := b.ToMove
	side := chess.Sides[us]
	king := side.KingStart()
	rook := side.RookStart(wing)

	if b.InCheck || !b.CanCastle(us, wing) || !b.Squares[rook].Is(us, chess.Rook) {
		return false
	}

	step := chess.East
	if rook < king {
		step = chess.West
	}
	for sq := king + step; sq != rook; sq += step {
		if !b.IsEmpty(sq) {
			return false
		}
	}

	kingTo, _ := side.CastleSquares(wing)
	for sq := king; ; sq += step {
		if b.IsAttacked(sq, us.Opposite()) {
			return false
		}
		if sq == kingTo {
			return true
		}
	}
}
