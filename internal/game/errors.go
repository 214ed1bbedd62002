package game

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange      = errors.New("cell out of range")
	ErrCellOccupied    = errors.New("cell already occupied")
	ErrGameAlreadyOver = errors.New("game already over")
	ErrNoLegalMoves    = errors.New("no legal moves available")
	ErrUnknownMode     = errors.New("unknown game mode")
	ErrUnknownColor    = errors.New("unknown stone color")
)

func outOfRange(c Cell) error {
	return fmt.Errorf("%w: (%d,%d) not in [0,%d)", ErrOutOfRange, c.Row, c.Col, BoardSize)
}

func occupied(c Cell) error {
	return fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, c.Row, c.Col)
}
