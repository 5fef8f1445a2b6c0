// Package game wires the board and search cores into playable games: a small
// closed catalog of variants, human and CPU players, and a synchronous
// turn-loop controller.
package game

import (
	"fmt"

	"github.com/oathompsonjones/MiniGames/bitvec"
	"github.com/oathompsonjones/MiniGames/board"
)

// Variant is one entry of the game catalog: a board configuration plus the
// per-game move shaping and default search depths.
type Variant struct {
	Name   string
	Config board.Config

	// ShapeMove maps a requested move to the cell it actually lands on and
	// reports whether the move is playable. Connect-four uses this for
	// gravity; tic-tac-toe validates in place.
	ShapeMove func(b *board.Board, move board.Move) (board.Move, bool)

	MediumDepth int
	HardDepth   int
}

const (
	VariantTicTacToe   = "tictactoe"
	VariantConnectFour = "connect4"
)

// VariantByName resolves a catalog entry; unknown names are rejected at this
// boundary and never reach the core.
func VariantByName(name string) (Variant, error) {
	switch name {
	case VariantTicTacToe:
		return TicTacToe(), nil
	case VariantConnectFour:
		return ConnectFour(), nil
	default:
		return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
}

// cellMask builds a sub-board-sized mask with the given flat cell indices set.
func cellMask(bits int, cells ...int) bitvec.Bitboard {
	mask := bitvec.NewBitboard(bits)
	for _, c := range cells {
		mask = mask.SetBit(c)
	}
	return mask
}

// TicTacToe is the 3x3 variant: rows, columns and both diagonals win, and
// the heuristic only grades decided positions. The search's empty-cell
// scaling takes care of preferring the faster win.
func TicTacToe() Variant {
	const size = 3
	cells := size * size
	masks := make([]bitvec.Bitboard, 0, 8)
	for y := 0; y < size; y++ {
		masks = append(masks, cellMask(cells, y*size, y*size+1, y*size+2))
	}
	for x := 0; x < size; x++ {
		masks = append(masks, cellMask(cells, x, x+size, x+2*size))
	}
	masks = append(masks,
		cellMask(cells, 0, 4, 8),
		cellMask(cells, 2, 4, 6),
	)

	return Variant{
		Name: VariantTicTacToe,
		Config: board.Config{
			Width:        size,
			Height:       size,
			Players:      2,
			WinningMasks: masks,
			Heuristic:    decidedOnlyHeuristic,
		},
		ShapeMove: func(b *board.Board, move board.Move) (board.Move, bool) {
			return move, b.MoveIsValid(move)
		},
		MediumDepth: 3,
		HardDepth:   9,
	}
}

// decidedOnlyHeuristic scores +1/-1 for a won position and 0 otherwise.
func decidedOnlyHeuristic(b *board.Board, player int) float64 {
	winner, status := b.Winner()
	if status != board.StatusWon {
		return 0
	}
	if winner == player {
		return 1
	}
	return -1
}

const (
	connectFourWin    = 100000.0
	connectFourThree  = 100.0
	connectFourTwo    = 10.0
	connectFourCenter = 6.0
)

// ConnectFour is the 7x6 variant. Winning masks are every horizontal,
// vertical and diagonal 4-in-a-row window; the heuristic counts open
// windows weighted by length plus a center-column bonus, mirrored for the
// opponent so it stays symmetric.
func ConnectFour() Variant {
	const (
		width  = 7
		height = 6
		inARow = 4
	)
	cells := width * height
	index := func(x, y int) int { return y*width + x }

	masks := make([]bitvec.Bitboard, 0, 69)
	for y := 0; y < height; y++ {
		for x := 0; x+inARow <= width; x++ {
			masks = append(masks, cellMask(cells,
				index(x, y), index(x+1, y), index(x+2, y), index(x+3, y)))
		}
	}
	for x := 0; x < width; x++ {
		for y := 0; y+inARow <= height; y++ {
			masks = append(masks, cellMask(cells,
				index(x, y), index(x, y+1), index(x, y+2), index(x, y+3)))
		}
	}
	for y := 0; y+inARow <= height; y++ {
		for x := 0; x+inARow <= width; x++ {
			masks = append(masks, cellMask(cells,
				index(x, y), index(x+1, y+1), index(x+2, y+2), index(x+3, y+3)))
			masks = append(masks, cellMask(cells,
				index(x+3, y), index(x+2, y+1), index(x+1, y+2), index(x, y+3)))
		}
	}

	centerMask := bitvec.NewBitboard(cells)
	for y := 0; y < height; y++ {
		centerMask = centerMask.SetBit(index(width/2, y))
	}

	heuristic := func(b *board.Board, player int) float64 {
		winner, status := b.Winner()
		switch status {
		case board.StatusWon:
			if winner == player {
				return connectFourWin
			}
			return -connectFourWin
		case board.StatusDraw:
			return 0
		}
		opponent := 1 - player
		mine := b.PlayerBoard(player)
		theirs := b.PlayerBoard(opponent)
		score := 0.0
		for _, mask := range masks {
			m := mine.And(mask).OnesCount()
			t := theirs.And(mask).OnesCount()
			if m > 0 && t > 0 {
				continue
			}
			switch {
			case m == 3:
				score += connectFourThree
			case m == 2:
				score += connectFourTwo
			case t == 3:
				score -= connectFourThree
			case t == 2:
				score -= connectFourTwo
			}
		}
		score += connectFourCenter * float64(mine.And(centerMask).OnesCount())
		score -= connectFourCenter * float64(theirs.And(centerMask).OnesCount())
		return score
	}

	return Variant{
		Name: VariantConnectFour,
		Config: board.Config{
			Width:        width,
			Height:       height,
			Players:      2,
			WinningMasks: masks,
			Heuristic:    heuristic,
		},
		ShapeMove: dropToLowestRow,
		// Every empty cell is a search candidate on a 7x6 board, so the
		// depths stay shallow compared to tic-tac-toe.
		MediumDepth: 2,
		HardDepth:   4,
	}
}

// dropToLowestRow resolves a connect-four move to the bottommost unoccupied
// row of the requested column.
func dropToLowestRow(b *board.Board, move board.Move) (board.Move, bool) {
	if move.X < 0 || move.X >= b.Width() {
		return move, false
	}
	for y := b.Height() - 1; y >= 0; y-- {
		cell := board.Move{X: move.X, Y: y}
		if _, occupied := b.Occupier(cell); !occupied {
			return cell, true
		}
	}
	return move, false
}
