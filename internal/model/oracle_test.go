package model

import (
	"math/rand"
	"testing"

	chess "github.com/corentings/chess/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/exp/slices"
)

// Without castling and en passant rights the rule subset implemented here
// coincides with standard chess, so an established move generator can
// vouch for every position reached in random play.
func TestLegalMovesMatchReferenceGenerator(t *testing.T) {
	for _, seed := range []int64{5, 6, 7} {
		rng := rand.New(rand.NewSource(seed))
		g := NewGame()
		for ply := 0; ply < 120 && !g.IsOver(); ply++ {
			fen := g.FEN()
			want := referenceMoves(t, fen)
			got := ourMoves(g)
			if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("seed %d, %s: legal moves mismatch (-reference +ours):\n%s", seed, fen, diff)
			}
			if _, err := g.RandomMove(g.Turn(), rng); err != nil {
				t.Fatalf("seed %d: RandomMove() error: %v", seed, err)
			}
		}
	}
}

func referenceMoves(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := chess.FEN(fen)
	if err != nil {
		t.Fatalf("reference rejected %q: %v", fen, err)
	}
	game := chess.NewGame(opt)
	var out []string
	for _, m := range game.ValidMoves() {
		mv := m.S1().String() + m.S2().String()
		if !slices.Contains(out, mv) {
			out = append(out, mv)
		}
	}
	slices.Sort(out)
	return out
}

func ourMoves(g *Game) []string {
	var out []string
	for _, p := range g.Pieces(g.Turn()) {
		for _, to := range g.LegalMoves(p) {
			out = append(out, p.Square.String()+to.String())
		}
	}
	slices.Sort(out)
	return out
}
