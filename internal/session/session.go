package session

import (
	"sync"
	"time"

	"gomoku/internal/game"
	"gomoku/internal/shared"
)

// Session is one game on the server. The engine is not safe for concurrent
// use, so every access to it goes through mu.
type Session struct {
	ID        string
	Code      string
	CreatedAt time.Time

	mu        sync.Mutex
	game      *game.Game
	updatedAt time.Time
	closed    bool
}

// Store holds live sessions by code. Stores keep pointers, so a session is
// saved once on creation and mutated in place afterwards.
type Store interface {
	GetSession(code string) (*Session, bool)
	SaveSession(s *Session)
	// DeleteSession removes the session and returns it; ok is false when
	// the code was unknown.
	DeleteSession(code string) (*Session, bool)
	// ListSessions returns sessions oldest first.
	ListSessions() []*Session
}

// close marks a removed session so callers that fetched it before removal
// stop touching its game.
func (s *Session) close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

func (s *Session) View() shared.GameView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() shared.GameView {
	g := s.game
	b := g.Board()

	rows := make([][]string, game.BoardSize)
	for r := range rows {
		rows[r] = make([]string, game.BoardSize)
		for c := range rows[r] {
			if color, ok, _ := b.At(game.Cell{Row: r, Col: c}); ok {
				rows[r][c] = color.String()
			}
		}
	}

	v := shared.GameView{
		ID:        s.ID,
		Code:      s.Code,
		Mode:      g.Mode().String(),
		Status:    g.Status().String(),
		Turn:      g.Turn().String(),
		Draw:      g.IsDraw(),
		BoardSize: game.BoardSize,
		Board:     rows,
		Moves:     moveViews(g.Moves()),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.updatedAt,
	}
	if w, ok := g.Winner(); ok {
		name := w.String()
		v.Winner = &name
	}
	return v
}

func moveViews(moves []game.Move) []shared.MoveView {
	out := make([]shared.MoveView, 0, len(moves))
	for _, m := range moves {
		out = append(out, shared.MoveView{Row: m.Cell.Row, Col: m.Cell.Col, Color: m.Color.String()})
	}
	return out
}
