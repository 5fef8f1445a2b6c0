package game

import (
	"testing"

	"github.com/oathompsonjones/MiniGames/board"
)

func TestHumanPlayerPendingMove(t *testing.T) {
	h := NewHumanPlayer()
	if _, ok := h.ChooseMove(nil, 0); ok {
		t.Fatal("human with no pending move must not offer one")
	}
	h.SetPendingMove(board.Move{X: 1, Y: 2})
	if !h.HasPendingMove() {
		t.Fatal("pending move not recorded")
	}
	move, ok := h.ChooseMove(nil, 0)
	if !ok || move != (board.Move{X: 1, Y: 2}) {
		t.Fatalf("ChooseMove = (%v,%v), want the pending move", move, ok)
	}
	if _, ok := h.ChooseMove(nil, 0); ok {
		t.Fatal("pending move must be consumed by the first ChooseMove")
	}
}

func TestEasyCPUPlaysValidMoves(t *testing.T) {
	variant := TicTacToe()
	b := board.New(variant.Config)
	b.MakeMove(board.Move{X: 1, Y: 1}, 0)
	cpu := NewCPUPlayer(DifficultyEasy, variant)
	for i := 0; i < 50; i++ {
		move, ok := cpu.ChooseMove(b, 1)
		if !ok {
			t.Fatal("easy CPU found no move on a near-empty board")
		}
		if !b.MoveIsValid(move) {
			t.Fatalf("easy CPU offered invalid move %v", move)
		}
	}
}

func TestCPUDeclinesTerminalBoard(t *testing.T) {
	variant := TicTacToe()
	b := board.New(variant.Config)
	b.MakeMove(board.Move{X: 0, Y: 0}, 0)
	b.MakeMove(board.Move{X: 1, Y: 0}, 0)
	b.MakeMove(board.Move{X: 2, Y: 0}, 0)
	for _, tier := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		cpu := NewCPUPlayer(tier, variant)
		if _, ok := cpu.ChooseMove(b, 1); ok {
			t.Fatalf("%s CPU offered a move on a decided board", tier)
		}
	}
}
