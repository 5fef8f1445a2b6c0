package search

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/oathompsonjones/MiniGames/board"
)

// ParallelRoot splits the root moves across goroutines, giving each worker a
// private clone of the board; the shared-mutation design of the serial
// engines is not thread-safe, so nothing below the root is shared. Each
// subtree is searched with a full alpha-beta window, which keeps the result
// identical to the serial engines.
type ParallelRoot struct {
	Board     *board.Board
	MaxPlayer int
	MinPlayer int

	// Workers caps concurrent subtree searches; zero means GOMAXPROCS.
	Workers int
}

// NewParallelRoot builds a root-splitting engine over b.
func NewParallelRoot(b *board.Board, maxPlayer, minPlayer int) *ParallelRoot {
	return &ParallelRoot{Board: b, MaxPlayer: maxPlayer, MinPlayer: minPlayer}
}

func (e *ParallelRoot) Search(depth int, maximizing bool) Result {
	if _, status := e.Board.Winner(); status != board.StatusInProgress || depth == 0 {
		return Result{Move: NoMove, Score: e.Board.Heuristic(e.MaxPlayer)}
	}

	player := e.MinPlayer
	if maximizing {
		player = e.MaxPlayer
	}
	cells := e.Board.EmptyCells()
	scores := make([]float64, len(cells))

	group := new(errgroup.Group)
	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	group.SetLimit(workers)
	for i, cell := range cells {
		i, cell := i, cell
		clone := e.Board.Clone()
		group.Go(func() error {
			clone.MakeMove(cell, player)
			sub := &AlphaBeta{Board: clone, MaxPlayer: e.MaxPlayer, MinPlayer: e.MinPlayer}
			child := sub.Search(depth-1, !maximizing)
			scores[i] = float64(clone.CountEmpty()) * child.Score
			return nil
		})
	}
	// Subtree searches never fail; the group is only used for joining.
	_ = group.Wait()

	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	bestMove := NoMove
	for i, cell := range cells {
		if maximizing {
			if scores[i] > best {
				best = scores[i]
				bestMove = cell
			}
		} else if scores[i] < best {
			best = scores[i]
			bestMove = cell
		}
	}
	return Result{Move: bestMove, Score: best}
}
