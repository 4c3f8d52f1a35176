package model

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Ply is one executed move.
type Ply struct {
	Piece    PieceID  `json:"piece"`
	From     Square   `json:"from"`
	To       Square   `json:"to"`
	Captured *PieceID `json:"captured,omitempty"`
	Promoted *PieceID `json:"promoted,omitempty"`
	Check    bool     `json:"check"`
	Mate     bool     `json:"mate"`
	Notation string   `json:"notation"`
}

// Move plays the piece on from to the square to for the side to move.
func (g *Game) Move(from, to Square) (ply Ply, err error) {
	defer recoverInvariant(&err)
	if !from.Valid() || !to.Valid() {
		return Ply{}, fmt.Errorf("%w: %s-%s", ErrInvalidNotation, from, to)
	}
	p := g.board.At(from)
	if p == nil {
		return Ply{}, fmt.Errorf("%w: %s", ErrNoPiece, from)
	}
	return g.play(p, to)
}

// MovePiece plays the identified piece to the square to.
func (g *Game) MovePiece(id PieceID, to Square) (ply Ply, err error) {
	defer recoverInvariant(&err)
	p, err := g.Piece(id)
	if err != nil {
		return Ply{}, err
	}
	if !p.Alive {
		return Ply{}, fmt.Errorf("%w: %s", ErrDeadPiece, id)
	}
	return g.play(p, to)
}

func (g *Game) play(p *Piece, to Square) (Ply, error) {
	if g.IsOver() {
		return Ply{}, ErrGameOver
	}
	if p.ID.Team != g.turn {
		return Ply{}, fmt.Errorf("%w: %s to move", ErrNotYourTurn, g.turn)
	}
	if !slices.Contains(g.LegalMoves(p), to) {
		return Ply{}, fmt.Errorf("%w: %s to %s", ErrIllegalMove, p.ID, to)
	}
	return g.apply(p, to)
}

// apply executes an already validated move, then runs promotion, flips the
// turn and refreshes check and mate state.
func (g *Game) apply(p *Piece, to Square) (Ply, error) {
	ply := Ply{Piece: p.ID, From: p.Square, To: to}
	hadMoved := p.HasMoved
	occupant := g.board.At(to)
	if occupant != nil {
		id := occupant.ID
		ply.Captured = &id
		occupant.kill()
	}
	p.Square = to
	p.HasMoved = true
	g.rebuild()

	promoted, err := g.Promote()
	if err != nil {
		// Take the move back; Promote changed nothing.
		p.Square = ply.From
		p.HasMoved = hadMoved
		if occupant != nil {
			occupant.revive()
			occupant.Square = to
		}
		g.rebuild()
		return Ply{}, err
	}
	if len(promoted) > 0 {
		ply.Promoted = &promoted[0]
	}

	if g.turn == Black {
		g.fullmove++
	}
	g.turn = g.turn.Opponent()
	g.UpdateCheck()
	g.DetectMate(g.turn)

	king := g.King(g.turn)
	ply.Check = king.InCheck
	ply.Mate = king.InCheckmate && king.InCheck
	ply.Notation = notation(p.ID.Kind, ply)
	g.history = append(g.history, ply)
	return ply, nil
}

// notation renders long algebraic form: "Ng1-f3", "Qd1xd7+", "e7-e8=Q#".
func notation(kind PieceKind, ply Ply) string {
	var sb strings.Builder
	if kind != Pawn {
		sb.WriteString(kind.Symbol())
	}
	sb.WriteString(ply.From.String())
	if ply.Captured != nil {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(ply.To.String())
	if ply.Promoted != nil {
		sb.WriteString("=Q")
	}
	switch {
	case ply.Mate:
		sb.WriteByte('#')
	case ply.Check:
		sb.WriteByte('+')
	}
	return sb.String()
}
