package model

import "fmt"

// Board is an index of alive pieces by square, [rank][file]. It is always
// derived from the pieces' own positions and never edited directly.
type Board [8][8]*Piece

// BuildBoard derives the board view from a piece list. Dead pieces are
// skipped. Two alive pieces on one square, or an alive piece off the board,
// is reported as an *InvariantError.
func BuildBoard(pieces []*Piece) (Board, error) {
	var b Board
	for _, p := range pieces {
		if p == nil || !p.Alive {
			continue
		}
		if !p.Square.Valid() {
			return Board{}, &InvariantError{Msg: fmt.Sprintf("alive piece %s has no square", p.ID)}
		}
		if other := b[p.Square.Rank][p.Square.File]; other != nil {
			return Board{}, &InvariantError{Msg: fmt.Sprintf("%s and %s both on %s", other.ID, p.ID, p.Square)}
		}
		b[p.Square.Rank][p.Square.File] = p
	}
	return b, nil
}

func (b *Board) At(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b[sq.Rank][sq.File]
}

// Cell is the render-facing view of an occupied square.
type Cell struct {
	Team   Team    `json:"team"`
	Symbol string  `json:"symbol"`
	Piece  PieceID `json:"piece"`
}

// Cells returns the occupied squares for an external renderer; empty
// squares are nil.
func (b *Board) Cells() [8][8]*Cell {
	var cells [8][8]*Cell
	for rank := range b {
		for file, p := range b[rank] {
			if p == nil {
				continue
			}
			cells[rank][file] = &Cell{Team: p.ID.Team, Symbol: p.ID.Kind.Symbol(), Piece: p.ID}
		}
	}
	return cells
}
