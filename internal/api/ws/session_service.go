package ws

import "gomoku/internal/shared"

type SessionService interface {
	View(code string) (shared.GameView, error)
	Move(code string, row, col int) (shared.MoveResult, error)
	Reset(code string) (shared.GameView, error)
}
