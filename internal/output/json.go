package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/legalmoves-go/internal/chess"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	InitialFEN  string     `json:"initialFEN"`
	Moves       []JSONMove `json:"moves,omitempty"`
	Result      string     `json:"result"`
	Termination string     `json:"termination,omitempty"`
	PlyCount    int        `json:"plyCount"`
	FinalFEN    string     `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// WriteGameJSON writes a single game as indented JSON.
func WriteGameJSON(w io.Writer, game *GameRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(game))
}

// GameToJSON converts a game record to its JSON form.
func GameToJSON(game *GameRecord) *JSONGame {
	jg := &JSONGame{
		InitialFEN:  game.InitialFEN,
		Moves:       make([]JSONMove, 0, len(game.Moves)),
		Result:      resultOrUnknown(game.Result),
		Termination: game.Termination,
		PlyCount:    len(game.Moves),
		FinalFEN:    game.FinalFEN,
	}
	for _, m := range game.Moves {
		jg.Moves = append(jg.Moves, JSONMove{
			MoveNumber: m.MoveNumber,
			Color:      colorName(m.Colour),
			SAN:        m.SAN,
			UCI:        m.UCI,
			From:       m.From,
			To:         m.To,
			Piece:      m.Piece,
			Captured:   m.Captured,
			Promotion:  m.Promotion,
			FEN:        m.FEN,
		})
	}
	return jg
}

func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}
