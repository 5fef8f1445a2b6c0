package game

import (
	"errors"
	"testing"

	"github.com/oathompsonjones/MiniGames/board"
)

func TestVariantByName(t *testing.T) {
	for _, name := range []string{VariantTicTacToe, VariantConnectFour} {
		v, err := VariantByName(name)
		if err != nil {
			t.Fatalf("VariantByName(%q) error: %v", name, err)
		}
		if v.Name != name {
			t.Fatalf("variant name = %q, want %q", v.Name, name)
		}
	}
	if _, err := VariantByName("checkers"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("unknown variant error = %v, want ErrUnknownVariant", err)
	}
}

func TestTicTacToeMasks(t *testing.T) {
	v := TicTacToe()
	if got := len(v.Config.WinningMasks); got != 8 {
		t.Fatalf("tic-tac-toe has %d winning masks, want 8", got)
	}
	for i, mask := range v.Config.WinningMasks {
		if got := mask.OnesCount(); got != 3 {
			t.Fatalf("mask %d has %d bits, want 3", i, got)
		}
	}
}

func TestConnectFourMasks(t *testing.T) {
	v := ConnectFour()
	// 24 horizontal + 21 vertical + 12 per diagonal direction.
	if got := len(v.Config.WinningMasks); got != 69 {
		t.Fatalf("connect-four has %d winning masks, want 69", got)
	}
	for i, mask := range v.Config.WinningMasks {
		if got := mask.OnesCount(); got != 4 {
			t.Fatalf("mask %d has %d bits, want 4", i, got)
		}
	}
}

func TestConnectFourGravity(t *testing.T) {
	v := ConnectFour()
	b := board.New(v.Config)

	// A drop targeting column 3 lands on the bottommost empty row, not row 0.
	shaped, ok := v.ShapeMove(b, board.Move{X: 3, Y: 0})
	if !ok {
		t.Fatal("drop into empty column rejected")
	}
	if want := (board.Move{X: 3, Y: 5}); shaped != want {
		t.Fatalf("drop landed at %v, want %v", shaped, want)
	}
	b.MakeMove(shaped, 0)
	if owner, occupied := b.Occupier(board.Move{X: 3, Y: 5}); !occupied || owner != 0 {
		t.Fatalf("bottom row not occupied after drop: (%d,%v)", owner, occupied)
	}

	// The next drop in the same column stacks one row up.
	shaped, ok = v.ShapeMove(b, board.Move{X: 3, Y: 0})
	if !ok || shaped != (board.Move{X: 3, Y: 4}) {
		t.Fatalf("second drop landed at %v, want {3 4}", shaped)
	}

	// A full column rejects further drops.
	for y := 4; y >= 0; y-- {
		b.MakeMove(board.Move{X: 3, Y: y}, y%2)
	}
	if _, ok := v.ShapeMove(b, board.Move{X: 3, Y: 0}); ok {
		t.Fatal("drop into full column must be rejected")
	}
	if _, ok := v.ShapeMove(b, board.Move{X: 7, Y: 0}); ok {
		t.Fatal("drop outside the board must be rejected")
	}
}

func TestConnectFourVerticalWin(t *testing.T) {
	v := ConnectFour()
	b := board.New(v.Config)
	for i := 0; i < 4; i++ {
		shaped, ok := v.ShapeMove(b, board.Move{X: 2, Y: 0})
		if !ok {
			t.Fatalf("drop %d rejected", i)
		}
		b.MakeMove(shaped, 0)
	}
	winner, status := b.Winner()
	if status != board.StatusWon || winner != 0 {
		t.Fatalf("Winner = (%d,%v), want (0,StatusWon)", winner, status)
	}
}

func TestConnectFourHeuristicSymmetry(t *testing.T) {
	v := ConnectFour()
	b := board.New(v.Config)
	b.MakeMove(board.Move{X: 3, Y: 5}, 0)
	b.MakeMove(board.Move{X: 2, Y: 5}, 0)
	b.MakeMove(board.Move{X: 0, Y: 5}, 1)
	s0 := v.Config.Heuristic(b, 0)
	s1 := v.Config.Heuristic(b, 1)
	if s0 != -s1 {
		t.Fatalf("heuristic not symmetric: player0=%v player1=%v", s0, s1)
	}
	if s0 <= 0 {
		t.Fatalf("player 0 holds the stronger position, got %v", s0)
	}
}

func TestTicTacToeHeuristicDecidedOnly(t *testing.T) {
	v := TicTacToe()
	b := board.New(v.Config)
	b.MakeMove(board.Move{X: 0, Y: 0}, 0)
	if got := v.Config.Heuristic(b, 0); got != 0 {
		t.Fatalf("undecided position scored %v, want 0", got)
	}
	b.MakeMove(board.Move{X: 1, Y: 0}, 0)
	b.MakeMove(board.Move{X: 2, Y: 0}, 0)
	if v.Config.Heuristic(b, 0) != 1 || v.Config.Heuristic(b, 1) != -1 {
		t.Fatal("decided position must score +1/-1")
	}
}
