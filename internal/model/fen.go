package model

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// NewGameFromFEN sets up a game from the placement, side-to-move and
// fullmove fields of a FEN string. Castling and en passant fields are
// accepted and ignored. Each piece on the board is matched to one of the
// game's fixed identities; a placement that cannot be matched is rejected.
func NewGameFromFEN(fen string) (_ *Game, err error) {
	defer recoverInvariant(&err)
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty FEN string: %w", ErrInvalidFEN)
	}

	g := NewGame()
	g.Clear()
	if err := g.parsePlacement(fields[0]); err != nil {
		return nil, err
	}
	for _, t := range teams {
		if !g.King(t).Alive {
			return nil, fmt.Errorf("missing %s king: %w", t, ErrInvalidFEN)
		}
	}

	if len(fields) > 1 {
		switch fields[1] {
		case "w":
			g.turn = White
		case "b":
			g.turn = Black
		default:
			return nil, fmt.Errorf("bad side to move %q: %w", fields[1], ErrInvalidFEN)
		}
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("bad fullmove number %q: %w", fields[5], ErrInvalidFEN)
		}
		g.fullmove = n
	}

	g.rebuild()
	g.UpdateCheck()
	if g.King(g.turn.Opponent()).InCheck {
		return nil, fmt.Errorf("%s is in check with %s to move: %w", g.turn.Opponent(), g.turn, ErrInvalidFEN)
	}
	g.DetectMate(g.turn)
	return g, nil
}

func (g *Game) parsePlacement(placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return fmt.Errorf("want 8 ranks, got %d: %w", len(rows), ErrInvalidFEN)
	}
	for i, row := range rows {
		rank := 7 - i
		file := 0
		for _, c := range row {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind, ok := kindFromLetter(unicode.ToUpper(c))
			if !ok {
				return fmt.Errorf("invalid piece character %q: %w", c, ErrInvalidFEN)
			}
			if file > 7 {
				return fmt.Errorf("rank %d overflows: %w", rank+1, ErrInvalidFEN)
			}
			team := White
			if unicode.IsLower(c) {
				team = Black
			}
			if kind == Pawn && (rank == 0 || rank == 7) {
				return fmt.Errorf("pawn on rank %d: %w", rank+1, ErrInvalidFEN)
			}
			p := g.freeSlot(team, kind, file)
			if p == nil {
				return fmt.Errorf("too many %s %ss: %w", team, kind, ErrInvalidFEN)
			}
			sq := Square{Rank: rank, File: file}
			p.revive()
			p.Square = sq
			p.HasMoved = sq != p.ID.startSquare()
			file++
		}
		if file != 8 {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, ErrInvalidFEN)
		}
	}
	return nil
}

// freeSlot picks a dormant identity for a piece found on the given file,
// preferring the slot whose origin file is closest. Queens beyond the
// starting one come from the reserve.
func (g *Game) freeSlot(t Team, kind PieceKind, file int) *Piece {
	if kind == King {
		if k := g.King(t); !k.Alive {
			return k
		}
		return nil
	}
	for d := 0; d < 8; d++ {
		for _, f := range []int{file - d, file + d} {
			if f < 0 || f > 7 {
				continue
			}
			if kind == Pawn {
				if p := &g.pieces[t][f]; !p.Alive {
					return p
				}
				continue
			}
			if p := &g.pieces[t][8+f]; backRank[f] == kind && !p.Alive {
				return p
			}
		}
	}
	if kind == Queen {
		return g.dormantReserve(t, file, nil)
	}
	return nil
}

// FEN exports the position. Castling and en passant never apply.
func (g *Game) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := g.board[rank][file]
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := p.ID.Kind.Symbol()
			if p.ID.Team == Black {
				letter = strings.ToLower(letter)
			}
			sb.WriteString(letter)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	side := "w"
	if g.turn == Black {
		side = "b"
	}
	fmt.Fprintf(&sb, " %s - - 0 %d", side, g.fullmove)
	return sb.String()
}
