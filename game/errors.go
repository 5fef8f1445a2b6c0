package game

import "errors"

var (
	ErrUnknownVariant    = errors.New("unknown variant")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrNotHumanTurn      = errors.New("not human turn")
	ErrGameOver          = errors.New("game over")
	ErrIllegalMove       = errors.New("illegal move")
)
