package output

import (
	"strings"

	"github.com/lgbarn/legalmoves-go/internal/chess"
	"github.com/lgbarn/legalmoves-go/internal/engine"
)

// GameRecord is a finished game ready to be written.
type GameRecord struct {
	InitialFEN  string
	Moves       []MoveRecord
	Result      string // "1-0", "0-1", "1/2-1/2" or "*"
	Termination string
	FinalFEN    string
}

// MoveRecord describes one committed ply.
type MoveRecord struct {
	MoveNumber int
	Colour     chess.Colour
	SAN        string
	UCI        string
	From       string
	To         string
	Piece      string
	Captured   string // Empty unless the move captures
	Promotion  string // Empty unless the move promotes
	FEN        string // Position after the move
}

// Recorder commits moves on a SearchNode and keeps a record of them.
type Recorder struct {
	node *engine.SearchNode
	game *GameRecord
}

// NewRecorder starts a record at node's current position.
func NewRecorder(node *engine.SearchNode) *Recorder {
	return &Recorder{
		node: node,
		game: &GameRecord{InitialFEN: engine.BoardToFEN(node.Board())},
	}
}

// Commit plays m on the node and appends it to the record.
func (r *Recorder) Commit(m *engine.Move) error {
	b := r.node.Board()
	rec := MoveRecord{
		MoveNumber: b.MoveNumber,
		Colour:     b.ToMove,
		SAN:        m.String(),
		UCI:        m.UCI(),
		From:       m.From.String(),
		To:         m.To.String(),
		Piece:      pieceTypeName(m.Piece.Type()),
	}
	if m.IsCapture() {
		rec.Captured = pieceTypeName(m.Captured.Type())
	}
	if m.Promotion != chess.NoType {
		rec.Promotion = pieceTypeName(m.Promotion)
	}

	if err := r.node.Commit(m); err != nil {
		return err
	}
	rec.FEN = engine.BoardToFEN(b)
	r.game.Moves = append(r.game.Moves, rec)
	return nil
}

// Plies returns the number of moves recorded so far.
func (r *Recorder) Plies() int {
	return len(r.game.Moves)
}

// Finish closes the record with its result and returns it.
func (r *Recorder) Finish(result, termination string) *GameRecord {
	r.game.Result = result
	r.game.Termination = termination
	r.game.FinalFEN = engine.BoardToFEN(r.node.Board())
	return r.game
}

func pieceTypeName(t chess.PieceType) string {
	return strings.ToLower(t.String())
}
