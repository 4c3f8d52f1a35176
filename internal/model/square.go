package model

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/slices"
)

// Square is a zero-based grid coordinate. Rank 0 is White's home rank,
// file 0 is the a-file.
type Square struct {
	Rank int
	File int
}

// NoSquare is the position of a piece that is not on the board.
var NoSquare = Square{Rank: -1, File: -1}

func (s Square) Valid() bool {
	return s.Rank >= 0 && s.Rank < 8 && s.File >= 0 && s.File < 8
}

func (s Square) offset(dRank, dFile int) Square {
	return Square{Rank: s.Rank + dRank, File: s.File + dFile}
}

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

func (s Square) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Square) UnmarshalText(text []byte) error {
	sq, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}

// ToNotation maps grid indices to algebraic notation, e.g. (0, 4) -> "e1".
func ToNotation(rank, file int) (string, error) {
	sq := Square{Rank: rank, File: file}
	if !sq.Valid() {
		return "", fmt.Errorf("%w: rank %d, file %d", ErrInvalidNotation, rank, file)
	}
	return sq.String(), nil
}

// FromNotation maps algebraic notation back to grid indices.
func FromNotation(s string) (rank, file int, err error) {
	sq, err := ParseSquare(s)
	if err != nil {
		return 0, 0, err
	}
	return sq.Rank, sq.File, nil
}

// ParseSquare parses a two character square name. The file letter may be
// upper or lower case.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	f, r := s[0], s[1]
	if f >= 'A' && f <= 'H' {
		f += 'a' - 'A'
	}
	if f < 'a' || f > 'h' {
		return NoSquare, fmt.Errorf("%w: unknown file %q", ErrInvalidNotation, s[:1])
	}
	if r < '1' || r > '8' {
		return NoSquare, fmt.Errorf("%w: rank out of range in %q", ErrInvalidNotation, s)
	}
	return Square{Rank: int(r - '1'), File: int(f - 'a')}, nil
}

// Notations renders squares as sorted algebraic names.
func Notations(squares []Square) []string {
	out := make([]string, 0, len(squares))
	for _, sq := range squares {
		out = append(out, sq.String())
	}
	slices.Sort(out)
	return out
}

// SquareSet is a bitset over the 64 board squares.
type SquareSet uint64

func squareBit(sq Square) SquareSet {
	return 1 << uint(sq.Rank*8+sq.File)
}

func (s *SquareSet) Add(sq Square) {
	if sq.Valid() {
		*s |= squareBit(sq)
	}
}

func (s SquareSet) Has(sq Square) bool {
	return sq.Valid() && s&squareBit(sq) != 0
}

func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Squares lists the members ordered by rank, then file.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		i := bits.TrailingZeros64(rest)
		out = append(out, Square{Rank: i / 8, File: i % 8})
	}
	return out
}
