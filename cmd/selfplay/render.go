package main

import (
	"strings"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

// render draws the board with rank 8 on top. Pieces are shown as team
// letter plus symbol ("WP", "BK"), empty squares as "[]".
func render(cells [8][8]*model.Cell) string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte('1' + rank))
		for _, c := range cells[rank] {
			b.WriteByte(' ')
			if c == nil {
				b.WriteString("[]")
				continue
			}
			if c.Team == model.White {
				b.WriteByte('W')
			} else {
				b.WriteByte('B')
			}
			b.WriteString(c.Symbol)
		}
		b.WriteByte('\n')
	}
	b.WriteString("  a  b  c  d  e  f  g  h")
	return b.String()
}
