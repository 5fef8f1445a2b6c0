// ai-arena pits two CPU difficulty tiers against each other over a batch of
// games and reports the win/draw tally. Useful for sanity-checking search
// depth and heuristic changes.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/oathompsonjones/MiniGames/board"
	"github.com/oathompsonjones/MiniGames/game"
)

func main() {
	variant := flag.String("variant", game.VariantTicTacToe, "variant to play (tictactoe, connect4)")
	games := flag.Int("games", 20, "number of games per side")
	first := flag.String("first", "hard", "difficulty of the player opening game 1")
	second := flag.String("second", "easy", "difficulty of the other player")
	parallel := flag.Bool("parallel", false, "enable parallel root search")
	flag.Parse()

	firstTier, err := game.ParseDifficulty(*first)
	if err != nil {
		log.Fatalf("[arena] %v", err)
	}
	secondTier, err := game.ParseDifficulty(*second)
	if err != nil {
		log.Fatalf("[arena] %v", err)
	}

	config := game.GetConfig()
	config.ParallelRoot = *parallel
	game.SetConfig(config)

	var winsFirst, winsSecond, draws int
	start := time.Now()
	for i := 0; i < *games; i++ {
		// Alternate who opens so neither tier keeps the first-move edge.
		opener := i % 2
		winner, status, err := playOne(*variant, firstTier, secondTier, opener)
		if err != nil {
			log.Fatalf("[arena] game %d failed: %v", i+1, err)
		}
		switch {
		case status == board.StatusDraw:
			draws++
		case winner == 0:
			winsFirst++
		default:
			winsSecond++
		}
	}

	log.Printf("[arena] %s over %d games: %s %d, %s %d, draws %d (%.1fs)",
		*variant, *games, firstTier, winsFirst, secondTier, winsSecond, draws,
		time.Since(start).Seconds())
}

// playOne runs a single CPU-vs-CPU game. Player 0 always holds firstTier;
// opener picks who moves first.
func playOne(variant string, firstTier, secondTier game.Difficulty, opener int) (int, board.Status, error) {
	settings := game.Settings{
		Variant:     variant,
		FirstPlayer: opener,
		Player0Type: game.PlayerCPU,
		Player1Type: game.PlayerCPU,
		Difficulty:  firstTier,
	}
	g, err := game.NewGame(settings)
	if err != nil {
		return board.NoPlayer, board.StatusInProgress, err
	}
	v, err := game.VariantByName(variant)
	if err != nil {
		return board.NoPlayer, board.StatusInProgress, err
	}
	g.SetPlayer(1, game.NewCPUPlayer(secondTier, v))
	winner, status := g.Play()
	return winner, status, nil
}
