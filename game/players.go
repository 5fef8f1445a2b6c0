package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/oathompsonjones/MiniGames/board"
)

type PlayerType int

const (
	PlayerHuman PlayerType = iota
	PlayerCPU
)

// Difficulty selects how a CPU player decides: the weakest tier plays a
// uniformly random empty cell, the others search to a variant-tuned depth.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty resolves a tier name, rejecting anything unrecognized.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}

// Player is a turn-taking participant. ChooseMove reports false when the
// player has nothing to offer (no pending human move, or a terminal board).
type Player interface {
	IsHuman() bool
	ChooseMove(b *board.Board, player int) (board.Move, bool)
}

type HumanPlayer struct {
	pending     bool
	pendingMove board.Move
}

func NewHumanPlayer() *HumanPlayer {
	return &HumanPlayer{}
}

func (h *HumanPlayer) IsHuman() bool {
	return true
}

func (h *HumanPlayer) ChooseMove(*board.Board, int) (board.Move, bool) {
	if !h.pending {
		return board.Move{}, false
	}
	h.pending = false
	return h.pendingMove, true
}

func (h *HumanPlayer) SetPendingMove(move board.Move) {
	h.pendingMove = move
	h.pending = true
}

func (h *HumanPlayer) HasPendingMove() bool {
	return h.pending
}

type CPUPlayer struct {
	difficulty Difficulty
	depth      int
	rng        *rand.Rand
}

// NewCPUPlayer builds a CPU player for the given variant, freezing the
// search depth its tier maps to.
func NewCPUPlayer(difficulty Difficulty, variant Variant) *CPUPlayer {
	depth := 0
	switch difficulty {
	case DifficultyMedium:
		depth = variant.MediumDepth
	case DifficultyHard:
		depth = variant.HardDepth
	}
	if override := GetConfig().depthOverride(difficulty); override > 0 {
		depth = override
	}
	return &CPUPlayer{
		difficulty: difficulty,
		depth:      depth,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *CPUPlayer) IsHuman() bool {
	return false
}

func (c *CPUPlayer) Difficulty() Difficulty {
	return c.difficulty
}

func (c *CPUPlayer) ChooseMove(b *board.Board, player int) (board.Move, bool) {
	cells := b.EmptyCells()
	if len(cells) == 0 {
		return board.Move{}, false
	}
	if _, status := b.Winner(); status != board.StatusInProgress {
		return board.Move{}, false
	}
	if c.difficulty == DifficultyEasy {
		return cells[c.rng.Intn(len(cells))], true
	}
	result := findOptimalMove(b, player, c.depth)
	if !b.InBounds(result.Move) {
		// Depth zero or a sentinel result; any empty cell is playable.
		return cells[0], true
	}
	return result.Move, true
}
