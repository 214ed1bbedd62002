package store

import (
	"sync"

	"gomoku/internal/session"
)

// MemoryStore keeps sessions in process memory. Sessions are listed in the
// order they were first saved.
type MemoryStore struct {
	mu     sync.RWMutex
	byCode map[string]*session.Session
	order  []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byCode: make(map[string]*session.Session)}
}

func (m *MemoryStore) GetSession(code string) (*session.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.byCode[code]
	return s, ok
}

// SaveSession adds s, or replaces the session stored under the same code
// without changing its position.
func (m *MemoryStore) SaveSession(s *session.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byCode[s.Code]; !ok {
		m.order = append(m.order, s.Code)
	}
	m.byCode[s.Code] = s
}

func (m *MemoryStore) DeleteSession(code string) (*session.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byCode[code]
	if !ok {
		return nil, false
	}
	delete(m.byCode, code)
	for i, c := range m.order {
		if c == code {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return s, true
}

func (m *MemoryStore) ListSessions() []*session.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*session.Session, 0, len(m.order))
	for _, code := range m.order {
		out = append(out, m.byCode[code])
	}
	return out
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byCode)
}
