package model

type Outcome string

const (
	Ongoing   Outcome = "ongoing"
	Checkmate Outcome = "checkmate"
	Stalemate Outcome = "stalemate"
)

func (g *Game) LegalMoveCount(t Team) int {
	n := 0
	for _, p := range g.Pieces(t) {
		n += len(g.LegalMoves(p))
	}
	return n
}

func (g *Game) HasLegalMoves(t Team) bool {
	for _, p := range g.Pieces(t) {
		if len(g.LegalMoves(p)) > 0 {
			return true
		}
	}
	return false
}

// UpdateCheck recomputes the check flag of both kings.
func (g *Game) UpdateCheck() {
	for _, t := range teams {
		king := g.King(t)
		king.InCheck = king.Alive && g.IsInCheck(t)
	}
}

// DetectMate sets the team's checkmate flag when it has no legal move,
// whether or not its king is in check. The flag is only cleared by Reset.
// Move and NewGameFromFEN evaluate it for the side to move only; a team
// left without moves after its own turn is flagged once its turn comes.
func (g *Game) DetectMate(t Team) {
	king := g.King(t)
	if king.Alive && !king.InCheckmate && !g.HasLegalMoves(t) {
		king.InCheckmate = true
	}
}

func (g *Game) IsOver() bool {
	return g.King(White).InCheckmate || g.King(Black).InCheckmate
}

// Outcome separates the mate flag into checkmate and stalemate using the
// check flag of the side that is stuck.
func (g *Game) Outcome() Outcome {
	for _, t := range []Team{g.turn, g.turn.Opponent()} {
		king := g.King(t)
		if !king.InCheckmate {
			continue
		}
		if king.InCheck {
			return Checkmate
		}
		return Stalemate
	}
	return Ongoing
}

// Winner is the side that delivered checkmate. ok is false otherwise.
func (g *Game) Winner() (winner Team, ok bool) {
	for _, t := range teams {
		king := g.King(t)
		if king.InCheckmate && king.InCheck {
			return t.Opponent(), true
		}
	}
	return White, false
}
