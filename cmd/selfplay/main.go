// Command selfplay plays random moves for both sides from the starting
// position and prints every ply with the resulting board.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/benbeisheim/chessrules-backend/internal/config"
	"github.com/benbeisheim/chessrules-backend/internal/model"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := model.NewGame()
	rng := rand.New(rand.NewSource(seed))
	fmt.Printf("seed %d\n%s\n", seed, render(g.Cells()))

	for ply := 0; ply < cfg.MaxPlies && !g.IsOver(); ply++ {
		p, err := g.RandomMove(g.Turn(), rng)
		if err != nil {
			log.Fatalf("ply %d: %v", ply+1, err)
		}
		fmt.Printf("%d. %s %s\n%s\n", ply/2+1, p.Piece.Team, p.Notation, render(g.Cells()))
		if cfg.SelfPlayDelay > 0 {
			time.Sleep(cfg.SelfPlayDelay)
		}
	}

	switch g.Outcome() {
	case model.Checkmate:
		winner, _ := g.Winner()
		fmt.Printf("checkmate, %s wins\n", winner)
	case model.Stalemate:
		fmt.Printf("%s has no legal move\n", g.Turn())
	default:
		fmt.Printf("stopped after %d plies\n", len(g.History()))
	}
	fmt.Println(g.FEN())
}
