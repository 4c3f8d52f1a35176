package model

type KingState struct {
	InCheck     bool `json:"inCheck"`
	InCheckmate bool `json:"inCheckmate"`
}

// Snapshot is the JSON-ready view of a game handed to clients.
type Snapshot struct {
	Board   [8][8]*Cell `json:"board"`
	Turn    Team        `json:"turn"`
	White   KingState   `json:"white"`
	Black   KingState   `json:"black"`
	Outcome Outcome     `json:"outcome"`
	History []Ply       `json:"history"`
	FEN     string      `json:"fen"`
}

func (g *Game) Snapshot() Snapshot {
	white, black := g.King(White), g.King(Black)
	return Snapshot{
		Board:   g.Cells(),
		Turn:    g.turn,
		White:   KingState{InCheck: white.InCheck, InCheckmate: white.InCheckmate},
		Black:   KingState{InCheck: black.InCheck, InCheckmate: black.InCheckmate},
		Outcome: g.Outcome(),
		History: g.History(),
		FEN:     g.FEN(),
	}
}
