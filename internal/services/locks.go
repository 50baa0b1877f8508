package services

import "sync"

// ItemLocks serializes mutating operations per item so that each
// read-validate-write sequence runs as one atomic unit. Mutators on different
// items never block each other. Locks are created on first use and kept for
// the life of the process; items are never deleted, so the map only grows
// with the set of items ever touched.
type ItemLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewItemLocks() *ItemLocks {
	return &ItemLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the lock for itemID and returns the matching unlock.
func (l *ItemLocks) Lock(itemID string) func() {
	l.mu.Lock()
	m, ok := l.locks[itemID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[itemID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
