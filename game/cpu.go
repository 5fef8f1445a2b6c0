package game

import (
	"log"

	"github.com/oathompsonjones/MiniGames/board"
	"github.com/oathompsonjones/MiniGames/search"
)

// findOptimalMove runs the configured engine for player at the given depth.
// Alpha-beta is the default; the parallel root split kicks in when enabled,
// working on clones so the live board is never mutated off the caller's
// goroutine.
func findOptimalMove(b *board.Board, player, depth int) search.Result {
	config := GetConfig()
	opponent := (player + 1) % b.Players()

	if config.ParallelRoot {
		engine := search.NewParallelRoot(b, player, opponent)
		return engine.Search(depth, true)
	}

	engine := search.NewAlphaBeta(b, player, opponent)
	if config.LogSearchStats {
		engine.Stats = search.NewStats()
	}
	result := engine.Search(depth, true)
	if engine.Stats != nil {
		log.Printf("[game] search depth=%d player=%d move=(%d,%d) score=%.2f %s",
			depth, player, result.Move.X, result.Move.Y, result.Score, engine.Stats)
	}
	return result
}
