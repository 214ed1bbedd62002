package shared

import "time"

// GameView is the render-ready snapshot of a session sent to clients.
type GameView struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	Mode      string     `json:"mode"`
	Status    string     `json:"status"` // "in_progress" or "finished"
	Turn      string     `json:"turn"`
	Winner    *string    `json:"winner"`
	Draw      bool       `json:"draw"`
	BoardSize int        `json:"board_size"`
	Board     [][]string `json:"board"` // "", "white" or "black" per cell, indexed [row][col]
	Moves     []MoveView `json:"moves"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type MoveView struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Color string `json:"color"`
}

type MoveResult struct {
	Outcome string     `json:"outcome"`
	Winner  *string    `json:"winner"`
	Moves   []MoveView `json:"moves"`
	Game    GameView   `json:"game"`
}
