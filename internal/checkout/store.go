package checkout

import (
	"sync"
)

// Store keeps checkout sessions in memory keyed by checkout id.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore returns an empty checkout store.
func NewStore() *Store {
	return &Store{sessions: map[string]*Session{}}
}

func (s *Store) put(session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

func (s *Store) get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}
