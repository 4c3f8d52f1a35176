package model

import "fmt"

// Promote replaces every pawn standing on its promotion rank with one of
// its team's reserve queens on the same square. The reserve queen of the
// pawn's file is used when dormant, otherwise the nearest dormant one.
// Reserves are matched to every pawn before anything changes, so a
// failure leaves the game untouched.
func (g *Game) Promote() ([]PieceID, error) {
	type promotion struct{ pawn, queen *Piece }
	var pending []promotion
	claimed := make(map[*Piece]bool)
	for _, t := range teams {
		for f := 0; f < 8; f++ {
			pawn := &g.pieces[t][f]
			if !pawn.Alive || pawn.Square.Rank != t.promotionRank() {
				continue
			}
			queen := g.dormantReserve(t, pawn.Square.File, claimed)
			if queen == nil {
				return nil, fmt.Errorf("%w: %s on %s", ErrReserveExhausted, pawn.ID, pawn.Square)
			}
			claimed[queen] = true
			pending = append(pending, promotion{pawn: pawn, queen: queen})
		}
	}
	if len(pending) == 0 {
		return nil, nil
	}

	promoted := make([]PieceID, 0, len(pending))
	for _, pr := range pending {
		sq := pr.pawn.Square
		pr.pawn.kill()
		pr.queen.revive()
		pr.queen.Square = sq
		pr.queen.HasMoved = true
		promoted = append(promoted, pr.queen.ID)
	}
	g.rebuild()
	return promoted, nil
}

// dormantReserve finds the unused reserve queen nearest to file, ignoring
// those in skip.
func (g *Game) dormantReserve(t Team, file int, skip map[*Piece]bool) *Piece {
	for d := 0; d < 8; d++ {
		for _, f := range []int{file - d, file + d} {
			if f < 0 || f > 7 {
				continue
			}
			if q := &g.reserve[t][f]; !q.Alive && !skip[q] {
				return q
			}
		}
	}
	return nil
}
