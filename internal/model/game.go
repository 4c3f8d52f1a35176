package model

import "fmt"

const (
	kingSlot = 8 + 4
)

// Game is the complete state of one chess game. Every piece, including the
// sixteen dormant reserve queens, is allocated once by NewGame and reused
// for the lifetime of the game. A Game is not safe for concurrent use.
type Game struct {
	// pieces[team][file] are the pawns, pieces[team][8+file] the back rank.
	pieces  [2][16]Piece
	reserve [2][8]Piece

	board    Board
	turn     Team
	fullmove int
	history  []Ply
}

func NewGame() *Game {
	g := &Game{}
	for _, t := range teams {
		for f := 0; f < 8; f++ {
			g.pieces[t][f].ID = PieceID{Team: t, Kind: Pawn, File: f}
			g.pieces[t][8+f].ID = PieceID{Team: t, Kind: backRank[f], File: f}
			g.reserve[t][f].ID = PieceID{Team: t, Kind: Queen, File: f, Reserve: true}
		}
	}
	g.Reset()
	return g
}

// Reset returns every main piece to its starting square with cleared flags
// and puts all reserve queens back in the dormant state.
func (g *Game) Reset() {
	for _, t := range teams {
		for i := range g.pieces[t] {
			p := &g.pieces[t][i]
			p.revive()
			p.Square = p.ID.startSquare()
			p.HasMoved = false
			p.InCheck = false
			p.InCheckmate = false
		}
		for i := range g.reserve[t] {
			q := &g.reserve[t][i]
			q.kill()
			q.HasMoved = false
		}
	}
	g.turn = White
	g.fullmove = 1
	g.history = nil
	g.rebuild()
}

// Clear takes every piece off the board. Used to set up positions.
func (g *Game) Clear() {
	for _, p := range g.all() {
		p.kill()
		p.HasMoved = false
		p.InCheck = false
		p.InCheckmate = false
	}
	g.turn = White
	g.fullmove = 1
	g.history = nil
	g.rebuild()
}

// Place puts the piece on sq, reviving it if needed.
func (g *Game) Place(id PieceID, sq Square) (err error) {
	defer recoverInvariant(&err)
	if !sq.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidNotation, sq)
	}
	p, err := g.Piece(id)
	if err != nil {
		return err
	}
	if occupant := g.board.At(sq); occupant != nil && occupant != p {
		return fmt.Errorf("%w: %s holds %s", ErrOccupied, sq, occupant.ID)
	}
	p.revive()
	p.Square = sq
	p.HasMoved = sq != id.startSquare()
	g.rebuild()
	return nil
}

// Kill takes a single piece off the board.
func (g *Game) Kill(id PieceID) (err error) {
	defer recoverInvariant(&err)
	p, err := g.Piece(id)
	if err != nil {
		return err
	}
	p.kill()
	g.rebuild()
	return nil
}

func (g *Game) SetTurn(t Team) {
	g.turn = t
}

func (g *Game) Turn() Team {
	return g.turn
}

// Piece resolves an identifier to the game's piece, alive or not.
func (g *Game) Piece(id PieceID) (*Piece, error) {
	if id.Team > Black || id.File < 0 || id.File > 7 {
		return nil, fmt.Errorf("%w: %+v", ErrUnknownPiece, id)
	}
	switch {
	case id.Reserve:
		if id.Kind != Queen {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPiece, id)
		}
		return &g.reserve[id.Team][id.File], nil
	case id.Kind == Pawn:
		return &g.pieces[id.Team][id.File], nil
	case backRank[id.File] == id.Kind:
		return &g.pieces[id.Team][8+id.File], nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPiece, id)
}

func (g *Game) King(t Team) *Piece {
	return &g.pieces[t][kingSlot]
}

// PieceAt returns the alive piece on sq, or nil.
func (g *Game) PieceAt(sq Square) *Piece {
	return g.board.At(sq)
}

// Pieces lists the alive pieces of a team in a stable order: pawns, back
// rank, then any promoted queens.
func (g *Game) Pieces(t Team) []*Piece {
	var out []*Piece
	for i := range g.pieces[t] {
		if g.pieces[t][i].Alive {
			out = append(out, &g.pieces[t][i])
		}
	}
	for i := range g.reserve[t] {
		if g.reserve[t][i].Alive {
			out = append(out, &g.reserve[t][i])
		}
	}
	return out
}

// Board returns a copy of the current board view.
func (g *Game) Board() Board {
	return g.board
}

func (g *Game) Cells() [8][8]*Cell {
	return g.board.Cells()
}

func (g *Game) History() []Ply {
	out := make([]Ply, len(g.history))
	copy(out, g.history)
	return out
}

func (g *Game) all() []*Piece {
	out := make([]*Piece, 0, 48)
	for _, t := range teams {
		for i := range g.pieces[t] {
			out = append(out, &g.pieces[t][i])
		}
		for i := range g.reserve[t] {
			out = append(out, &g.reserve[t][i])
		}
	}
	return out
}

// rebuild re-derives the board view. It panics with an *InvariantError if
// two pieces share a square; exported mutators recover that into an error.
func (g *Game) rebuild() {
	b, err := BuildBoard(g.all())
	if err != nil {
		panic(err)
	}
	g.board = b
}
