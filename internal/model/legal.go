package model

// LegalMoves filters the piece's pseudo-legal moves down to those that do
// not leave its own king in check. A king is never captured.
func (g *Game) LegalMoves(p *Piece) []Square {
	if p == nil || !p.Alive {
		return nil
	}
	var legal []Square
	for _, to := range g.PseudoLegalMoves(p) {
		if target := g.board.At(to); target != nil && target.ID.Kind == King {
			continue
		}
		if !g.exposesKing(p, to) {
			legal = append(legal, to)
		}
	}
	return legal
}

// LegalMovesFrom is LegalMoves for whatever stands on sq.
func (g *Game) LegalMovesFrom(sq Square) ([]Square, error) {
	p := g.board.At(sq)
	if p == nil {
		return nil, ErrNoPiece
	}
	return g.LegalMoves(p), nil
}

// exposesKing plays p to the target square, asks whether p's king is in
// check in the resulting position, and restores the position exactly.
func (g *Game) exposesKing(p *Piece, to Square) bool {
	from := p.Square
	captured := g.board.At(to)
	if captured != nil {
		captured.kill()
	}
	p.Square = to
	g.rebuild()

	defer func() {
		p.Square = from
		if captured != nil {
			captured.revive()
			captured.Square = to
		}
		g.rebuild()
	}()

	return g.IsInCheck(p.ID.Team)
}
