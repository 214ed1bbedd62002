package session

import (
	"errors"

	"gomoku/internal/game"
)

// ErrorKind names a rejected action for API clients.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, game.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, game.ErrCellOccupied):
		return "cell_occupied"
	case errors.Is(err, game.ErrGameAlreadyOver):
		return "game_already_over"
	case errors.Is(err, game.ErrNoLegalMoves):
		return "no_legal_moves"
	case errors.Is(err, game.ErrUnknownMode):
		return "unknown_mode"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
