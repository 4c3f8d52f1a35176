package model

import "fmt"

// Rand is the random source used by RandomMove; *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// RandomMove samples alive pieces of the team uniformly until it finds one
// with a legal move, picks one of that piece's legal destinations
// uniformly and plays it.
func (g *Game) RandomMove(t Team, rng Rand) (ply Ply, err error) {
	defer recoverInvariant(&err)
	if g.IsOver() {
		return Ply{}, ErrGameOver
	}
	if t != g.turn {
		return Ply{}, fmt.Errorf("%w: %s to move", ErrNotYourTurn, g.turn)
	}
	// Guard the sampling loop below, which never ends without a legal move.
	if !g.HasLegalMoves(t) {
		return Ply{}, ErrNoLegalMoves
	}

	pieces := g.Pieces(t)
	var (
		piece *Piece
		moves []Square
	)
	for len(moves) == 0 {
		piece = pieces[rng.Intn(len(pieces))]
		moves = g.LegalMoves(piece)
	}
	return g.apply(piece, moves[rng.Intn(len(moves))])
}
