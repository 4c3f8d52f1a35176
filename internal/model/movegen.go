package model

type direction struct {
	dRank, dFile int
}

var (
	rookDirs   = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs  = append(append([]direction{}, rookDirs...), bishopDirs...)
	knightDirs = []direction{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingDirs   = queenDirs
)

// PseudoLegalMoves returns the destinations allowed by the piece's movement
// rule, without regard to the safety of its own king. Dead pieces have none.
func (g *Game) PseudoLegalMoves(p *Piece) []Square {
	if p == nil || !p.Alive {
		return nil
	}
	switch p.ID.Kind {
	case Pawn:
		return g.pawnMoves(p)
	case Rook:
		return g.slideMoves(p, rookDirs)
	case Bishop:
		return g.slideMoves(p, bishopDirs)
	case Queen:
		return g.slideMoves(p, queenDirs)
	case Knight:
		return g.stepMoves(p, knightDirs)
	case King:
		return g.stepMoves(p, kingDirs)
	}
	return nil
}

func (g *Game) pawnMoves(p *Piece) []Square {
	var moves []Square
	dir := p.ID.Team.forward()
	one := p.Square.offset(dir, 0)
	if one.Valid() && g.board.At(one) == nil {
		moves = append(moves, one)
		two := p.Square.offset(2*dir, 0)
		if p.Square.Rank == p.ID.Team.pawnRank() && g.board.At(two) == nil {
			moves = append(moves, two)
		}
	}
	for _, target := range pawnAttacks(p) {
		if occupant := g.board.At(target); occupant != nil && occupant.ID.Team != p.ID.Team {
			moves = append(moves, target)
		}
	}
	return moves
}

// pawnAttacks are the two forward diagonals, whatever stands on them.
func pawnAttacks(p *Piece) []Square {
	var out []Square
	dir := p.ID.Team.forward()
	for _, dFile := range []int{-1, 1} {
		if target := p.Square.offset(dir, dFile); target.Valid() {
			out = append(out, target)
		}
	}
	return out
}

func (g *Game) slideMoves(p *Piece, dirs []direction) []Square {
	var moves []Square
	for _, dir := range dirs {
		target := p.Square.offset(dir.dRank, dir.dFile)
		for target.Valid() {
			occupant := g.board.At(target)
			if occupant == nil {
				moves = append(moves, target)
			} else {
				if occupant.ID.Team != p.ID.Team {
					moves = append(moves, target)
				}
				break
			}
			target = target.offset(dir.dRank, dir.dFile)
		}
	}
	return moves
}

func (g *Game) stepMoves(p *Piece, dirs []direction) []Square {
	var moves []Square
	for _, dir := range dirs {
		target := p.Square.offset(dir.dRank, dir.dFile)
		if !target.Valid() {
			continue
		}
		if occupant := g.board.At(target); occupant == nil || occupant.ID.Team != p.ID.Team {
			moves = append(moves, target)
		}
	}
	return moves
}
