// Package board packs one sub-board per player inside a single bit-vector
// and layers move application, undo and win detection on top of it.
package board

import (
	"strconv"
	"strings"

	"github.com/oathompsonjones/MiniGames/bitvec"
)

// Status is the lifecycle of a single board.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDraw
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusDraw:
		return "draw"
	default:
		return "in_progress"
	}
}

// NoPlayer is the winner reported while a game is still running or drawn.
const NoPlayer = -1

// Move addresses a cell by column and row. One-dimensional games use Y = 0.
type Move struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MoveFromIndex converts a flat cell index back to a coordinate.
func MoveFromIndex(index, width int) Move {
	return Move{X: index % width, Y: index / width}
}

// Config describes a concrete game to the board: its geometry, how many
// player sub-boards (plus metadata boards) to pack, the winning masks each
// player's sub-board is checked against, and the static evaluation hook.
//
// WinningMasks are sized to one sub-board (Width*Height bits). Heuristic
// must be symmetric: evaluating for the opponent yields the same magnitude
// with the sign inverted.
type Config struct {
	Width        int
	Height       int
	Players      int
	ExtraBoards  int
	WinningMasks []bitvec.Bitboard
	Heuristic    func(b *Board, player int) float64
}

// Board is a packed game board. Player p's sub-board occupies the contiguous
// bit range [p*Width*Height, (p+1)*Width*Height); extra metadata boards
// follow the player boards and are never consulted by occupancy or winner
// queries.
//
// Mutations trust their caller: MakeMove performs no legality check so the
// search hot loop stays branch-free, and UndoLastMove treats an empty move
// history as a contract violation. Validate with MoveIsValid first.
type Board struct {
	cfg     Config
	cells   int
	bits    bitvec.Bitboard
	subMask bitvec.Bitboard
	moves   []int
}

// New builds an empty board from cfg.
func New(cfg Config) *Board {
	cells := cfg.Width * cfg.Height
	total := cells * (cfg.Players + cfg.ExtraBoards)
	mask := bitvec.NewBitboard(total)
	for i := 0; i < cells; i++ {
		mask = mask.SetBit(i)
	}
	return &Board{
		cfg:     cfg,
		cells:   cells,
		bits:    bitvec.NewBitboard(total),
		subMask: mask,
	}
}

func (b *Board) Width() int   { return b.cfg.Width }
func (b *Board) Height() int  { return b.cfg.Height }
func (b *Board) Players() int { return b.cfg.Players }

// Cells returns the number of cells in one sub-board.
func (b *Board) Cells() int { return b.cells }

// BitIndex returns the absolute bit index of move for player.
func (b *Board) BitIndex(move Move, player int) int {
	return player*b.cells + move.Y*b.cfg.Width + move.X
}

// MakeMove sets player's bit for the given cell and records it on the move
// stack. No legality check is performed; the caller validates upstream.
func (b *Board) MakeMove(move Move, player int) {
	index := b.BitIndex(move, player)
	b.moves = append(b.moves, index)
	b.bits = b.bits.SetBit(index)
}

// UndoLastMove reverses the most recently applied move. Calling it with an
// empty move history is a caller bug and panics.
func (b *Board) UndoLastMove() {
	if len(b.moves) == 0 {
		panic("board: UndoLastMove with empty move history")
	}
	index := b.moves[len(b.moves)-1]
	b.moves = b.moves[:len(b.moves)-1]
	b.bits = b.bits.ClearBit(index)
}

// MoveCount returns the number of moves currently on the stack.
func (b *Board) MoveCount() int {
	return len(b.moves)
}

// InBounds reports whether move lies on the board.
func (b *Board) InBounds(move Move) bool {
	return move.X >= 0 && move.Y >= 0 && move.X < b.cfg.Width && move.Y < b.cfg.Height
}

// MoveIsValid reports whether move is in bounds and its cell unoccupied.
func (b *Board) MoveIsValid(move Move) bool {
	if !b.InBounds(move) {
		return false
	}
	_, occupied := b.Occupier(move)
	return !occupied
}

// Occupier returns the player occupying the given cell. Sub-boards are
// scanned in construction order; they are mutually exclusive by invariant,
// so the first hit is the only one.
func (b *Board) Occupier(move Move) (int, bool) {
	offset := move.Y*b.cfg.Width + move.X
	for p := 0; p < b.cfg.Players; p++ {
		if b.bits.Bit(p*b.cells + offset) {
			return p, true
		}
	}
	return NoPlayer, false
}

// PlayerBoard extracts player's sub-board as a standalone bitboard of
// Width*Height bits.
func (b *Board) PlayerBoard(player int) bitvec.Bitboard {
	return b.bits.ShiftRight(player * b.cells).And(b.subMask)
}

// ExtraBoard extracts the i-th metadata board, packed after the player
// sub-boards.
func (b *Board) ExtraBoard(i int) bitvec.Bitboard {
	return b.PlayerBoard(b.cfg.Players + i)
}

// SetExtraBit sets a bit on the i-th metadata board without touching the
// move stack.
func (b *Board) SetExtraBit(i int, move Move) {
	b.bits = b.bits.SetBit(b.BitIndex(move, b.cfg.Players+i))
}

// ClearExtraBit clears a bit on the i-th metadata board.
func (b *Board) ClearExtraBit(i int, move Move) {
	b.bits = b.bits.ClearBit(b.BitIndex(move, b.cfg.Players+i))
}

// occupied ORs all player sub-boards together.
func (b *Board) occupied() bitvec.Bitboard {
	out := b.PlayerBoard(0)
	for p := 1; p < b.cfg.Players; p++ {
		out = out.Or(b.PlayerBoard(p))
	}
	return out
}

// Winner returns the first player, in construction order, whose sub-board
// fully contains one of the winning masks. With no winner it reports a draw
// when the board is full, otherwise StatusInProgress.
func (b *Board) Winner() (int, Status) {
	for p := 0; p < b.cfg.Players; p++ {
		sub := b.PlayerBoard(p)
		for _, mask := range b.cfg.WinningMasks {
			if sub.Contains(mask) {
				return p, StatusWon
			}
		}
	}
	if b.IsFull() {
		return NoPlayer, StatusDraw
	}
	return NoPlayer, StatusInProgress
}

// IsFull reports whether every cell is occupied by some player.
func (b *Board) IsFull() bool {
	return b.occupied().Contains(b.subMask)
}

// IsEmpty reports whether no player occupies any cell.
func (b *Board) IsEmpty() bool {
	return b.occupied().IsZero()
}

// EmptyCells enumerates unoccupied cells in row-major order (y outer,
// x inner). Search iterates moves in exactly this order, so the ordering
// fixes tie-break behavior and must not change.
func (b *Board) EmptyCells() []Move {
	cells := make([]Move, 0, b.cells-len(b.moves))
	for y := 0; y < b.cfg.Height; y++ {
		for x := 0; x < b.cfg.Width; x++ {
			move := Move{X: x, Y: y}
			if _, occupied := b.Occupier(move); !occupied {
				cells = append(cells, move)
			}
		}
	}
	return cells
}

// CountEmpty returns the number of unoccupied cells.
func (b *Board) CountEmpty() int {
	return b.cells - b.occupied().OnesCount()
}

// Heuristic evaluates the position for player through the configured hook.
func (b *Board) Heuristic(player int) float64 {
	return b.cfg.Heuristic(b, player)
}

// Clone returns a deep copy sharing nothing with b.
func (b *Board) Clone() *Board {
	return &Board{
		cfg:     b.cfg,
		cells:   b.cells,
		bits:    b.bits,
		subMask: b.subMask,
		moves:   append([]int(nil), b.moves...),
	}
}

// String renders occupancy row by row for debugging: digits for players,
// dots for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.cfg.Height; y++ {
		for x := 0; x < b.cfg.Width; x++ {
			if p, occupied := b.Occupier(Move{X: x, Y: y}); occupied {
				sb.WriteString(strconv.Itoa(p))
			} else {
				sb.WriteByte('.')
			}
		}
		if y < b.cfg.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
