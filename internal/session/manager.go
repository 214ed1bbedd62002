package session

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"gomoku/internal/config"
	"gomoku/internal/game"
	"gomoku/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("game session not found")

type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
	now   func() time.Time

	mu    sync.Mutex
	seeds *rand.Rand
	codes *rand.Rand
}

func NewManager(s Store, cfg config.Config, hub Broadcaster) *Manager {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if hub == nil {
		hub = nopBroadcaster{}
	}
	return &Manager{
		store: s,
		cfg:   cfg,
		hub:   hub,
		now:   time.Now,
		seeds: rand.New(rand.NewSource(seed)),
		codes: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetHub breaks the construction cycle between the manager and the
// websocket hub, which needs the manager to serve client actions.
func (m *Manager) SetHub(hub Broadcaster) {
	log.Printf("Setting hub in session manager: %T", hub)
	m.hub = hub
}

func (m *Manager) Create(mode game.Mode) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, err := game.NewGame(mode, rand.New(rand.NewSource(m.seeds.Int63())))
	if err != nil {
		return nil, err
	}
	now := m.now()
	s := &Session{
		ID:        uuid.NewString(),
		Code:      m.uniqueCode(),
		CreatedAt: now,
		game:      g,
		updatedAt: now,
	}
	m.store.SaveSession(s)
	log.Printf("session %s created (%s)", s.Code, mode)
	return s, nil
}

func (m *Manager) Get(code string) (*Session, bool) {
	return m.store.GetSession(code)
}

func (m *Manager) View(code string) (shared.GameView, error) {
	s, ok := m.store.GetSession(code)
	if !ok {
		return shared.GameView{}, fmt.Errorf("%w: %s", ErrNotFound, code)
	}
	return s.View(), nil
}

func (m *Manager) List() []shared.GameView {
	sessions := m.store.ListSessions()
	out := make([]shared.GameView, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, s.View())
	}
	return out
}

// Move places the current player's stone in the session's game. In
// computer mode the returned result also carries the computer's reply.
func (m *Manager) Move(code string, row, col int) (shared.MoveResult, error) {
	s, ok := m.store.GetSession(code)
	if !ok {
		return shared.MoveResult{}, fmt.Errorf("%w: %s", ErrNotFound, code)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return shared.MoveResult{}, fmt.Errorf("%w: %s", ErrNotFound, code)
	}
	res, err := s.game.PlaceStone(game.Cell{Row: row, Col: col})
	if err != nil {
		s.mu.Unlock()
		return shared.MoveResult{}, err
	}
	s.updatedAt = m.now()
	out := shared.MoveResult{
		Outcome: res.Outcome.String(),
		Moves:   moveViews(res.Moves),
		Game:    s.viewLocked(),
	}
	s.mu.Unlock()

	if res.Outcome == game.Win {
		name := res.Winner.String()
		out.Winner = &name
	}

	m.hub.Broadcast(code, "move-applied", out)
	if res.Outcome != game.Continue {
		log.Printf("session %s finished: %s", code, res.Outcome)
		m.hub.Broadcast(code, "game-over", gin.H{
			"winner": out.Winner,
			"draw":   res.Outcome == game.Draw,
			"game":   out.Game,
		})
	}
	return out, nil
}

func (m *Manager) Reset(code string) (shared.GameView, error) {
	s, ok := m.store.GetSession(code)
	if !ok {
		return shared.GameView{}, fmt.Errorf("%w: %s", ErrNotFound, code)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return shared.GameView{}, fmt.Errorf("%w: %s", ErrNotFound, code)
	}
	s.game.Reset()
	s.updatedAt = m.now()
	view := s.viewLocked()
	s.mu.Unlock()

	m.hub.Broadcast(code, "game-reset", view)
	return view, nil
}

func (m *Manager) Delete(code string) error {
	s, ok := m.store.DeleteSession(code)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, code)
	}
	s.close()
	m.hub.Broadcast(code, "game-closed", gin.H{"code": code})
	return nil
}

// Sweep drops sessions that have been idle for longer than the configured
// TTL and returns how many were removed.
func (m *Manager) Sweep(now time.Time) int {
	if m.cfg.SessionTTL <= 0 {
		return 0
	}
	removed := 0
	for _, s := range m.store.ListSessions() {
		if now.Sub(s.UpdatedAt()) <= m.cfg.SessionTTL {
			continue
		}
		if gone, ok := m.store.DeleteSession(s.Code); ok {
			gone.close()
			removed++
			m.hub.Broadcast(s.Code, "game-closed", gin.H{"code": s.Code, "reason": "idle"})
		}
	}
	if removed > 0 {
		log.Printf("swept %d idle sessions", removed)
	}
	return removed
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// uniqueCode must be called with m.mu held.
func (m *Manager) uniqueCode() string {
	for {
		b := make([]byte, 6)
		for i := range b {
			b[i] = letters[m.codes.Intn(len(letters))]
		}
		if _, taken := m.store.GetSession(string(b)); !taken {
			return string(b)
		}
	}
}
