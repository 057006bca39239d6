package cart

import (
	"sync"
	"time"
)

type row struct {
	productID   string
	productName string
	size        string
	quantity    int
	unitPrice   int64
	currency    string
}

type record struct {
	rows      []row
	createdAt time.Time
	updatedAt time.Time
}

func (r *record) find(productID, size string) int {
	for i, item := range r.rows {
		if item.productID == productID && item.size == size {
			return i
		}
	}
	return -1
}

// Store keeps carts in memory keyed by session id. Entries are created
// lazily on first read so GET never errors.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*record
}

// NewStore returns an empty cart store.
func NewStore() *Store {
	return &Store{carts: map[string]*record{}}
}

func (s *Store) getOrCreate(sessionID string) *record {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.carts[sessionID]
	if !ok {
		now := time.Now().UTC()
		rec = &record{createdAt: now, updatedAt: now}
		s.carts[sessionID] = rec
	}
	return rec
}
