// Package output writes recorded games as PGN or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/legalmoves-go/internal/chess"
	"github.com/lgbarn/legalmoves-go/internal/engine"
)

// DefaultLineLength is the movetext width used when none is given.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WritePGN writes game as a PGN tag section followed by its movetext.
func WritePGN(w io.Writer, game *GameRecord, maxLineLength int) {
	writeTags(w, game)
	fmt.Fprintln(w)
	writeMovetext(w, game, maxLineLength)
	fmt.Fprintln(w)
}

// writeTags outputs the tags describing how the game was set up and ended.
func writeTags(w io.Writer, game *GameRecord) {
	if game.InitialFEN != engine.InitialFEN {
		writeTag(w, "SetUp", "1")
		writeTag(w, "FEN", game.InitialFEN)
	}
	writeTag(w, "PlyCount", fmt.Sprint(len(game.Moves)))
	if game.Termination != "" {
		writeTag(w, "Termination", game.Termination)
	}
	writeTag(w, "Result", resultOrUnknown(game.Result))
}

func writeTag(w io.Writer, name, value string) {
	fmt.Fprintf(w, "[%s \"%s\"]\n", name, escapeTagValue(value))
}

// escapeTagValue escapes backslashes and quotes for PGN tag values.
func escapeTagValue(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// writeMovetext outputs the numbered moves and the result, wrapped at
// maxLineLength.
func writeMovetext(w io.Writer, game *GameRecord, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)

	for i, m := range game.Moves {
		if m.Colour == chess.White {
			ow.Write(fmt.Sprintf("%d.", m.MoveNumber))
		} else if i == 0 {
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", m.MoveNumber))
		}
		ow.Write(m.SAN)
	}

	ow.Write(resultOrUnknown(game.Result))
	ow.NewLine()
}

func resultOrUnknown(result string) string {
	if result == "" {
		return "*"
	}
	return result
}
