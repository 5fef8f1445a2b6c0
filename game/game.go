package game

import (
	"fmt"
	"log"
	"time"

	"github.com/oathompsonjones/MiniGames/board"
	"github.com/oathompsonjones/MiniGames/search"
)

// State is a point-in-time snapshot handed to renderers and the HTTP layer.
// The board is a clone; mutating it does not touch the live game.
type State struct {
	Board       *board.Board
	ToMove      int
	Status      board.Status
	Winner      int
	HasLastMove bool
	LastMove    board.Move
	LastMessage string
	MoveCount   int
}

// Game owns one board, two players and the turn order. It is not safe for
// concurrent use; Controller adds the locking.
type Game struct {
	settings    Settings
	variant     Variant
	board       *board.Board
	players     [2]Player
	toMove      int
	history     MoveHistory
	turnStart   time.Time
	lastMove    board.Move
	hasLastMove bool
	lastMessage string
}

func NewGame(settings Settings) (Game, error) {
	g := Game{}
	if err := g.Reset(settings); err != nil {
		return Game{}, err
	}
	return g, nil
}

func (g *Game) Reset(settings Settings) error {
	variant, err := VariantByName(settings.Variant)
	if err != nil {
		return err
	}
	g.settings = settings
	g.variant = variant
	g.board = board.New(variant.Config)
	g.toMove = settings.FirstPlayer % variant.Config.Players
	g.history.Clear()
	g.hasLastMove = false
	g.lastMove = board.Move{X: -1, Y: -1}
	g.lastMessage = ""
	g.createPlayers()
	g.turnStart = time.Now()
	return nil
}

func (g *Game) createPlayers() {
	types := [2]PlayerType{g.settings.Player0Type, g.settings.Player1Type}
	for i, t := range types {
		if t == PlayerHuman {
			g.players[i] = NewHumanPlayer()
		} else {
			g.players[i] = NewCPUPlayer(g.settings.Difficulty, g.variant)
		}
	}
}

// SetPlayer swaps in a specific player implementation, e.g. a second CPU
// tier for self-play.
func (g *Game) SetPlayer(index int, player Player) {
	g.players[index] = player
}

func (g *Game) Settings() Settings {
	return g.settings
}

func (g *Game) Variant() Variant {
	return g.variant
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) CurrentPlayer() int {
	return g.toMove
}

func (g *Game) CurrentPlayerIsHuman() bool {
	return g.players[g.toMove].IsHuman()
}

func (g *Game) State() State {
	winner, status := g.board.Winner()
	return State{
		Board:       g.board.Clone(),
		ToMove:      g.toMove,
		Status:      status,
		Winner:      winner,
		HasLastMove: g.hasLastMove,
		LastMove:    g.lastMove,
		LastMessage: g.lastMessage,
		MoveCount:   g.board.MoveCount(),
	}
}

// SubmitHumanMove hands a move to the human whose turn it is; the move is
// applied on the next Step.
func (g *Game) SubmitHumanMove(move board.Move) error {
	player, ok := g.players[g.toMove].(*HumanPlayer)
	if !ok {
		return ErrNotHumanTurn
	}
	player.SetPendingMove(move)
	return nil
}

// TryApplyMove validates, shapes and applies a move for the player to move.
// This is the single place legality is checked before the board's
// branch-free MakeMove runs.
func (g *Game) TryApplyMove(move board.Move) (bool, string) {
	if _, status := g.board.Winner(); status != board.StatusInProgress {
		g.lastMessage = ErrGameOver.Error()
		return false, g.lastMessage
	}
	shaped, ok := g.variant.ShapeMove(g.board, move)
	if !ok || !g.board.MoveIsValid(shaped) {
		g.lastMessage = fmt.Sprintf("%s (%d,%d)", ErrIllegalMove, move.X, move.Y)
		return false, g.lastMessage
	}
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	isAi := !g.players[g.toMove].IsHuman()
	depth := 0
	if cpu, ok := g.players[g.toMove].(*CPUPlayer); ok {
		depth = cpu.depth
	}
	g.board.MakeMove(shaped, g.toMove)
	g.history.Push(HistoryEntry{
		Move:      shaped,
		Player:    g.toMove,
		ElapsedMs: elapsedMs,
		IsAi:      isAi,
		Depth:     depth,
	})
	g.lastMove = shaped
	g.hasLastMove = true
	g.lastMessage = ""
	g.logMovePlayed(shaped, elapsedMs, isAi)
	g.toMove = (g.toMove + 1) % g.variant.Config.Players
	g.turnStart = time.Now()
	return true, ""
}

// Step advances the game by at most one turn: a CPU player picks and plays,
// a human player plays only if a move is pending. It reports whether a move
// was applied.
func (g *Game) Step() bool {
	if _, status := g.board.Winner(); status != board.StatusInProgress {
		return false
	}
	move, ok := g.players[g.toMove].ChooseMove(g.board, g.toMove)
	if !ok {
		return false
	}
	applied, _ := g.TryApplyMove(move)
	return applied
}

// Play runs the synchronous turn loop until the game is terminal or a human
// is waiting for input, and returns the final winner and status.
func (g *Game) Play() (int, board.Status) {
	for g.Step() {
	}
	return g.board.Winner()
}

// FindOptimalMove searches for the player to move at the variant's hard
// depth.
func (g *Game) FindOptimalMove() search.Result {
	return findOptimalMove(g.board, g.toMove, g.variant.HardDepth)
}

func (g *Game) logMovePlayed(move board.Move, elapsedMs float64, isAi bool) {
	kind := "human"
	if isAi {
		kind = "cpu"
	}
	log.Printf("[game] %s player %d played (%d,%d) after %.0fms",
		kind, g.toMove, move.X, move.Y, elapsedMs)
}
