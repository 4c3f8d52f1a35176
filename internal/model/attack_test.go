package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPawnAttacksDiagonalsNotAdvance(t *testing.T) {
	g := mustGame(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	set := g.AttackSet(White)

	for _, s := range []string{"d3", "f3"} {
		if !set.Has(mustSquare(t, s)) {
			t.Errorf("empty diagonal %s not in attack set", s)
		}
	}
	for _, s := range []string{"e3", "e4"} {
		if set.Has(mustSquare(t, s)) {
			t.Errorf("pawn advance square %s in attack set", s)
		}
	}
}

func TestKingMayStepInFrontOfPawn(t *testing.T) {
	g := mustGame(t, "8/8/8/8/4k3/8/4P3/4K3 b - - 0 1")
	got := Notations(g.LegalMoves(mustPieceAt(t, g, "e4")))
	want := []string{"d4", "d5", "e3", "e5", "f4", "f5"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("king moves mismatch (-want +got):\n%s", diff)
	}
}

func TestKingsKeepTheirDistance(t *testing.T) {
	g := mustGame(t, "8/8/8/8/8/3k4/8/4K3 w - - 0 1")
	got := Notations(g.LegalMoves(mustPieceAt(t, g, "e1")))
	want := []string{"d1", "f1", "f2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("king moves mismatch (-want +got):\n%s", diff)
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		team Team
		want bool
	}{
		{"start position", InitialFEN, White, false},
		{"rook on open file", "4k3/8/8/8/8/8/8/4RK2 b - - 0 1", Black, true},
		{"rook blocked", "4k3/8/8/4p3/8/8/8/4RK2 b - - 0 1", Black, false},
		{"knight", "4k3/8/3N4/8/8/8/8/4K3 b - - 0 1", Black, true},
		{"pawn", "4k3/3P4/8/8/8/8/8/4K3 b - - 0 1", Black, true},
		{"pawn in front", "4k3/4P3/8/8/8/8/8/4K3 b - - 0 1", Black, false},
		{"bishop", "4k3/8/8/8/B7/8/8/4K3 b - - 0 1", Black, true},
		{"black queen", "4k3/8/8/8/8/8/8/q3K3 w - - 0 1", White, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen)
			if got := g.IsInCheck(tt.team); got != tt.want {
				t.Errorf("IsInCheck(%s) = %v; want %v", tt.team, got, tt.want)
			}
			if got := g.King(tt.team).InCheck; got != tt.want {
				t.Errorf("King(%s).InCheck = %v; want %v", tt.team, got, tt.want)
			}
		})
	}
}

func TestSliderAttackStopsAtFirstPiece(t *testing.T) {
	g := mustGame(t, "4k3/8/8/4p3/8/8/8/4RK2 b - - 0 1")
	set := g.AttackSet(White)
	if !set.Has(mustSquare(t, "e5")) {
		t.Error("blocking piece on e5 not attacked")
	}
	if set.Has(mustSquare(t, "e6")) {
		t.Error("square behind blocker attacked")
	}
}

func TestIsInCheckWithoutKing(t *testing.T) {
	g := NewGame()
	g.Clear()
	if g.IsInCheck(White) {
		t.Error("IsInCheck() = true with no king on the board")
	}
}
