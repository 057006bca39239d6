package sessionlock

import (
	"sync"
)

// Keyed serializes work per key. Cart and checkout mutations for a session
// must not interleave, while unrelated sessions proceed in parallel.
type Keyed struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// New returns an empty keyed lock set.
func New() *Keyed {
	return &Keyed{locks: map[string]*entry{}}
}

// Lock acquires the lock for key, creating it on first use. The returned
// func releases the lock and drops the entry once nobody waits on it.
func (k *Keyed) Lock(key string) func() {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

// Do runs fn while holding the lock for key.
func (k *Keyed) Do(key string, fn func()) {
	unlock := k.Lock(key)
	defer unlock()
	fn()
}

// Len reports how many keys currently hold or await a lock.
func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
