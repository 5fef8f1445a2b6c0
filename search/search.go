// Package search finds optimal moves over a board by depth-bounded
// adversarial look-ahead. Both engines mutate the shared board in place and
// rely on the strict make/undo discipline of the board's move stack: every
// MakeMove along a recursive path is undone, in reverse order, before the
// call returns.
package search

import (
	"math"

	"github.com/oathompsonjones/MiniGames/board"
)

// NoMove is returned when a search has no real cell to offer, i.e. the board
// was already terminal. Callers check Winner/IsFull before trusting the
// returned coordinates.
var NoMove = board.Move{X: -1, Y: -1}

// Result pairs a candidate move with its score.
type Result struct {
	Move  board.Move
	Score float64
}

// Engine is the shared contract of the interchangeable search algorithms.
// Search explores to the given depth, with maximizing selecting which of the
// engine's two players is to move at the root.
type Engine interface {
	Search(depth int, maximizing bool) Result
}

// Minimax is the plain exhaustive engine.
//
// Interior scores are scaled by the number of empty cells remaining after
// the candidate move, so a win found in fewer plies outscores the same win
// found later. The scale factor is identical for every sibling, which keeps
// the ordering of candidates intact. Ties on the scaled score keep the first
// candidate in EmptyCells order.
type Minimax struct {
	Board     *board.Board
	MaxPlayer int
	MinPlayer int
	Stats     *Stats
}

// NewMinimax builds a minimax engine over b, maximizing for maxPlayer.
func NewMinimax(b *board.Board, maxPlayer, minPlayer int) *Minimax {
	return &Minimax{Board: b, MaxPlayer: maxPlayer, MinPlayer: minPlayer}
}

func (e *Minimax) Search(depth int, maximizing bool) Result {
	e.Stats.countNode()
	if _, status := e.Board.Winner(); status != board.StatusInProgress || depth == 0 {
		e.Stats.countLeaf()
		return Result{Move: NoMove, Score: e.Board.Heuristic(e.MaxPlayer)}
	}

	player := e.MinPlayer
	best := math.Inf(1)
	if maximizing {
		player = e.MaxPlayer
		best = math.Inf(-1)
	}
	bestMove := NoMove
	for _, cell := range e.Board.EmptyCells() {
		e.Board.MakeMove(cell, player)
		child := e.Search(depth-1, !maximizing)
		scale := float64(e.Board.CountEmpty())
		e.Board.UndoLastMove()

		score := scale * child.Score
		if maximizing {
			if score > best {
				best = score
				bestMove = cell
			}
		} else if score < best {
			best = score
			bestMove = cell
		}
	}
	return Result{Move: bestMove, Score: best}
}

// AlphaBeta prunes branches that provably cannot affect the result. It
// returns the exact same (move, score) as Minimax for every position;
// pruning only changes which branches get visited.
type AlphaBeta struct {
	Board     *board.Board
	MaxPlayer int
	MinPlayer int
	Stats     *Stats
}

// NewAlphaBeta builds an alpha-beta engine over b, maximizing for maxPlayer.
func NewAlphaBeta(b *board.Board, maxPlayer, minPlayer int) *AlphaBeta {
	return &AlphaBeta{Board: b, MaxPlayer: maxPlayer, MinPlayer: minPlayer}
}

func (e *AlphaBeta) Search(depth int, maximizing bool) Result {
	return e.search(depth, maximizing, math.Inf(-1), math.Inf(1))
}

func (e *AlphaBeta) search(depth int, maximizing bool, alpha, beta float64) Result {
	e.Stats.countNode()
	if _, status := e.Board.Winner(); status != board.StatusInProgress || depth == 0 {
		e.Stats.countLeaf()
		return Result{Move: NoMove, Score: e.Board.Heuristic(e.MaxPlayer)}
	}

	player := e.MinPlayer
	best := math.Inf(1)
	if maximizing {
		player = e.MaxPlayer
		best = math.Inf(-1)
	}
	bestMove := NoMove
	for _, cell := range e.Board.EmptyCells() {
		e.Board.MakeMove(cell, player)
		scale := float64(e.Board.CountEmpty())
		// The window travels in the child's own score space. Parent scores
		// are scale times child scores, so the bounds divide through; a zero
		// scale means the child fills the board and terminates immediately.
		childAlpha, childBeta := math.Inf(-1), math.Inf(1)
		if scale > 0 {
			childAlpha = alpha / scale
			childBeta = beta / scale
		}
		child := e.search(depth-1, !maximizing, childAlpha, childBeta)
		e.Board.UndoLastMove()

		score := scale * child.Score
		if maximizing {
			if score > best {
				best = score
				bestMove = cell
			}
			if best > alpha {
				alpha = best
			}
			if best > beta {
				e.Stats.countPrune()
				break
			}
		} else {
			if score < best {
				best = score
				bestMove = cell
			}
			if best < beta {
				beta = best
			}
			if best < alpha {
				e.Stats.countPrune()
				break
			}
		}
	}
	return Result{Move: bestMove, Score: best}
}
