package model

// AttackSet is every square the team threatens: the union of its pieces'
// pseudo-legal destinations, except that pawns contribute their diagonal
// squares (occupied or not) instead of their forward advances.
func (g *Game) AttackSet(t Team) SquareSet {
	var set SquareSet
	for _, p := range g.Pieces(t) {
		if p.ID.Kind == Pawn {
			for _, sq := range pawnAttacks(p) {
				set.Add(sq)
			}
			continue
		}
		for _, sq := range g.PseudoLegalMoves(p) {
			set.Add(sq)
		}
	}
	return set
}

// IsInCheck reports whether the team's king stands on a square the other
// team attacks. It is computed from scratch on every call.
func (g *Game) IsInCheck(t Team) bool {
	king := g.King(t)
	if !king.Alive {
		return false
	}
	return g.AttackSet(t.Opponent()).Has(king.Square)
}
