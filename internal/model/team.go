package model

import "fmt"

type Team uint8

const (
	White Team = iota
	Black
)

var teams = [2]Team{White, Black}

func (t Team) Opponent() Team {
	return t ^ 1
}

func (t Team) String() string {
	if t == White {
		return "white"
	}
	return "black"
}

// prefix is the single letter used in piece names, "W_a", "B_Ke".
func (t Team) prefix() string {
	if t == White {
		return "W"
	}
	return "B"
}

func (t Team) forward() int {
	if t == White {
		return 1
	}
	return -1
}

func (t Team) homeRank() int {
	if t == White {
		return 0
	}
	return 7
}

func (t Team) pawnRank() int {
	return t.homeRank() + t.forward()
}

func (t Team) promotionRank() int {
	return t.Opponent().homeRank()
}

func (t Team) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Team) UnmarshalText(text []byte) error {
	team, err := ParseTeam(string(text))
	if err != nil {
		return err
	}
	*t = team
	return nil
}

func ParseTeam(s string) (Team, error) {
	switch s {
	case "white", "w", "W":
		return White, nil
	case "black", "b", "B":
		return Black, nil
	}
	return White, fmt.Errorf("unknown team %q", s)
}
