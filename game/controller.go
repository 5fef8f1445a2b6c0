package game

import (
	"sync"

	"github.com/oathompsonjones/MiniGames/board"
	"github.com/oathompsonjones/MiniGames/search"
)

// Controller serializes access to one Game for the HTTP and WebSocket
// layers. Everything it exposes is a thin locked pass-through.
type Controller struct {
	mu   sync.Mutex
	game Game
}

func NewController(settings Settings) (*Controller, error) {
	game, err := NewGame(settings)
	if err != nil {
		return nil, err
	}
	return &Controller{game: game}, nil
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.State()
}

func (c *Controller) Settings() Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.Settings()
}

func (c *Controller) History() MoveHistory {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.History()
}

func (c *Controller) CurrentPlayer() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.CurrentPlayer()
}

// OnCellClicked queues a move for the human to play on the next Step.
func (c *Controller) OnCellClicked(x, y int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.game.SubmitHumanMove(board.Move{X: x, Y: y})
}

// ApplyHumanMove applies a human move immediately, rejecting it when it is
// not a human's turn.
func (c *Controller) ApplyHumanMove(move board.Move) (bool, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.game.CurrentPlayerIsHuman() {
		return false, ErrNotHumanTurn.Error()
	}
	return c.game.TryApplyMove(move)
}

// Step advances the turn loop by at most one move.
func (c *Controller) Step() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.Step()
}

// Play runs the turn loop until terminal or until a human must act.
func (c *Controller) Play() (int, board.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.Play()
}

// DetermineCPUMove returns the move a CPU of the given tier would play for
// the current player, without applying it.
func (c *Controller) DetermineCPUMove(difficulty Difficulty) (board.Move, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return board.Move{}, ErrUnknownDifficulty
	}
	state := c.game.State()
	if state.Status != board.StatusInProgress {
		return board.Move{}, ErrGameOver
	}
	cpu := NewCPUPlayer(difficulty, c.game.Variant())
	move, ok := cpu.ChooseMove(c.game.board, c.game.toMove)
	if !ok {
		return board.Move{}, ErrGameOver
	}
	return move, nil
}

// FindOptimalMove searches for the current player at the variant's hard
// depth.
func (c *Controller) FindOptimalMove() search.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.FindOptimalMove()
}

func (c *Controller) Reset(settings Settings) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.Reset(settings)
}
