package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNotationRoundTrip(t *testing.T) {
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			s, err := ToNotation(r, f)
			if err != nil {
				t.Fatalf("ToNotation(%d, %d) error: %v", r, f, err)
			}
			gotR, gotF, err := FromNotation(s)
			if err != nil {
				t.Fatalf("FromNotation(%q) error: %v", s, err)
			}
			if gotR != r || gotF != f {
				t.Errorf("FromNotation(ToNotation(%d, %d)) = (%d, %d)", r, f, gotR, gotF)
			}
		}
	}
}

func TestToNotation(t *testing.T) {
	tests := []struct {
		rank, file int
		want       string
	}{
		{0, 0, "a1"},
		{0, 4, "e1"},
		{7, 7, "h8"},
		{3, 3, "d4"},
	}
	for _, tt := range tests {
		got, err := ToNotation(tt.rank, tt.file)
		if err != nil || got != tt.want {
			t.Errorf("ToNotation(%d, %d) = %q, %v; want %q", tt.rank, tt.file, got, err, tt.want)
		}
	}
	if _, err := ToNotation(8, 0); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("ToNotation(8, 0) error = %v; want ErrInvalidNotation", err)
	}
	if _, err := ToNotation(0, -1); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("ToNotation(0, -1) error = %v; want ErrInvalidNotation", err)
	}
}

func TestParseSquareRejects(t *testing.T) {
	for _, in := range []string{"", "e", "i1", "a9", "a0", "e44", "11", "zz"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseSquare(in); !errors.Is(err, ErrInvalidNotation) {
				t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidNotation", in, err)
			}
		})
	}
}

func TestParseSquareUpperCaseFile(t *testing.T) {
	sq, err := ParseSquare("E4")
	if err != nil {
		t.Fatal(err)
	}
	if sq != (Square{Rank: 3, File: 4}) {
		t.Errorf("ParseSquare(E4) = %+v", sq)
	}
}

func TestSquareSet(t *testing.T) {
	var set SquareSet
	for _, s := range []string{"h8", "e4", "a1", "e4"} {
		set.Add(mustSquare(t, s))
	}
	set.Add(NoSquare)

	if set.Len() != 3 {
		t.Errorf("Len() = %d; want 3", set.Len())
	}
	if !set.Has(mustSquare(t, "e4")) || set.Has(mustSquare(t, "e5")) || set.Has(NoSquare) {
		t.Error("Has() disagrees with added squares")
	}
	want := []string{"a1", "e4", "h8"}
	var got []string
	for _, sq := range set.Squares() {
		got = append(got, sq.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Squares() mismatch (-want +got):\n%s", diff)
	}
}
