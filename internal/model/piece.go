package model

import "fmt"

type PieceKind uint8

const (
	Pawn PieceKind = iota
	Rook
	Knight
	Bishop
	Queen
	King
)

// Symbol is the letter used for rendering and notation.
func (k PieceKind) Symbol() string {
	switch k {
	case Pawn:
		return "P"
	case Rook:
		return "R"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return "?"
}

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return fmt.Sprintf("PieceKind(%d)", uint8(k))
}

func (k PieceKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func kindFromLetter(c rune) (PieceKind, bool) {
	switch c {
	case 'P':
		return Pawn, true
	case 'R':
		return Rook, true
	case 'N':
		return Knight, true
	case 'B':
		return Bishop, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	}
	return Pawn, false
}

// backRank is the starting layout of the non-pawn pieces, by file.
var backRank = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// PieceID identifies a piece for the whole game. File is the origin file:
// the starting file for main pieces, the reserve slot for promotion queens.
type PieceID struct {
	Team    Team
	Kind    PieceKind
	File    int
	Reserve bool
}

// String renders the conventional name: "W_a" for the a-file pawn, "B_Ke"
// for the black king, "W_dPQ" for white's d-file reserve queen.
func (id PieceID) String() string {
	file := string(rune('a' + id.File))
	switch {
	case id.Reserve:
		return id.Team.prefix() + "_" + file + "PQ"
	case id.Kind == Pawn:
		return id.Team.prefix() + "_" + file
	default:
		return id.Team.prefix() + "_" + id.Kind.Symbol() + file
	}
}

func (id PieceID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *PieceID) UnmarshalText(text []byte) error {
	parsed, err := ParsePieceID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParsePieceID is the inverse of PieceID.String.
func ParsePieceID(s string) (PieceID, error) {
	bad := fmt.Errorf("%w: %q", ErrUnknownPiece, s)
	if len(s) < 3 || s[1] != '_' {
		return PieceID{}, bad
	}
	var id PieceID
	switch s[0] {
	case 'W':
		id.Team = White
	case 'B':
		id.Team = Black
	default:
		return PieceID{}, bad
	}

	rest := s[2:]
	fileOf := func(c byte) (int, bool) {
		return int(c - 'a'), c >= 'a' && c <= 'h'
	}
	switch len(rest) {
	case 1:
		file, ok := fileOf(rest[0])
		if !ok {
			return PieceID{}, bad
		}
		id.Kind, id.File = Pawn, file
	case 2:
		kind, ok := kindFromLetter(rune(rest[0]))
		file, okFile := fileOf(rest[1])
		if !ok || !okFile || kind == Pawn || backRank[file] != kind {
			return PieceID{}, bad
		}
		id.Kind, id.File = kind, file
	case 3:
		file, ok := fileOf(rest[0])
		if !ok || rest[1:] != "PQ" {
			return PieceID{}, bad
		}
		id.Kind, id.File, id.Reserve = Queen, file, true
	default:
		return PieceID{}, bad
	}
	return id, nil
}

// startSquare is where the piece stands after a reset. Reserve queens have
// no start square.
func (id PieceID) startSquare() Square {
	switch {
	case id.Reserve:
		return NoSquare
	case id.Kind == Pawn:
		return Square{Rank: id.Team.pawnRank(), File: id.File}
	default:
		return Square{Rank: id.Team.homeRank(), File: id.File}
	}
}

type Piece struct {
	ID       PieceID
	Square   Square
	Alive    bool
	HasMoved bool

	// King only.
	InCheck     bool
	InCheckmate bool
}

func (p *Piece) Team() Team {
	return p.ID.Team
}

func (p *Piece) Kind() PieceKind {
	return p.ID.Kind
}

func (p *Piece) kill() {
	p.Alive = false
	p.Square = NoSquare
}

func (p *Piece) revive() {
	p.Alive = true
}

func (p *Piece) String() string {
	return p.ID.String() + " " + p.Square.String()
}
