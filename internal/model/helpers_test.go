package model

import "testing"

func mustGame(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return g
}

func mustSquare(t *testing.T, s string) Square {
	t.Helper()
	sq, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", s, err)
	}
	return sq
}

func mustPieceAt(t *testing.T, g *Game, s string) *Piece {
	t.Helper()
	p := g.PieceAt(mustSquare(t, s))
	if p == nil {
		t.Fatalf("no piece on %s", s)
	}
	return p
}

// assertBoardConsistent checks the board view against the pieces' own
// positions in both directions.
func assertBoardConsistent(t *testing.T, g *Game) {
	t.Helper()
	alive := 0
	for _, p := range g.all() {
		if !p.Alive {
			if p.Square != NoSquare {
				t.Errorf("dead piece %s still has square %s", p.ID, p.Square)
			}
			continue
		}
		alive++
		if got := g.board.At(p.Square); got != p {
			t.Errorf("board at %s = %v; want %s", p.Square, got, p.ID)
		}
	}
	occupied := 0
	for rank := range g.board {
		for file, p := range g.board[rank] {
			if p == nil {
				continue
			}
			occupied++
			if p.Square != (Square{Rank: rank, File: file}) {
				t.Errorf("board cell %s holds %s which thinks it is on %s",
					Square{Rank: rank, File: file}, p.ID, p.Square)
			}
		}
	}
	if occupied != alive {
		t.Errorf("board has %d occupied squares; %d pieces alive", occupied, alive)
	}
}
