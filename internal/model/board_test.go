package model

import (
	"errors"
	"testing"
)

func TestBuildBoardRejectsSharedSquare(t *testing.T) {
	e4 := Square{Rank: 3, File: 4}
	a := &Piece{ID: PieceID{Team: White, Kind: Pawn, File: 4}, Square: e4, Alive: true}
	b := &Piece{ID: PieceID{Team: Black, Kind: Knight, File: 1}, Square: e4, Alive: true}

	_, err := BuildBoard([]*Piece{a, b})
	if !errors.Is(err, ErrInvariant) {
		t.Fatalf("BuildBoard() error = %v; want ErrInvariant", err)
	}
	var ie *InvariantError
	if !errors.As(err, &ie) {
		t.Fatalf("BuildBoard() error %T is not *InvariantError", err)
	}
}

func TestBuildBoardSkipsDeadPieces(t *testing.T) {
	e4 := Square{Rank: 3, File: 4}
	alive := &Piece{ID: PieceID{Team: White, Kind: Pawn, File: 4}, Square: e4, Alive: true}
	dead := &Piece{ID: PieceID{Team: Black, Kind: Queen, File: 4, Reserve: true}, Square: NoSquare}

	b, err := BuildBoard([]*Piece{alive, dead, nil})
	if err != nil {
		t.Fatalf("BuildBoard() error: %v", err)
	}
	if b.At(e4) != alive {
		t.Errorf("At(e4) = %v; want %v", b.At(e4), alive)
	}
}

func TestBuildBoardRejectsAlivePieceWithoutSquare(t *testing.T) {
	p := &Piece{ID: PieceID{Team: White, Kind: King, File: 4}, Square: NoSquare, Alive: true}
	if _, err := BuildBoard([]*Piece{p}); !errors.Is(err, ErrInvariant) {
		t.Errorf("BuildBoard() error = %v; want ErrInvariant", err)
	}
}

func TestBoardCells(t *testing.T) {
	g := NewGame()
	b := g.Board()
	cells := b.Cells()

	e1 := cells[0][4]
	if e1 == nil || e1.Team != White || e1.Symbol != "K" || e1.Piece.String() != "W_Ke" {
		t.Errorf("cell e1 = %+v; want white king", e1)
	}
	d8 := cells[7][3]
	if d8 == nil || d8.Team != Black || d8.Symbol != "Q" {
		t.Errorf("cell d8 = %+v; want black queen", d8)
	}
	if cells[3][4] != nil {
		t.Errorf("cell e4 = %+v; want empty", cells[3][4])
	}
}

func TestBoardMatchesPiecesAfterSetup(t *testing.T) {
	assertBoardConsistent(t, NewGame())
	assertBoardConsistent(t, mustGame(t, "4k3/8/8/3p1p2/4P3/8/8/4K3 w - - 0 1"))
}
