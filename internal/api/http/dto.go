package http

// CreateGameRequest represents the payload for POST /games. An empty mode
// falls back to the server's configured default.
type CreateGameRequest struct {
	Mode string `json:"mode"`
}

// MoveRequest represents a stone placement for the player whose turn it is.
type MoveRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}
