package service

import "sync"

// ownerLocks serializes lifecycle mutations per owner so the read-check-write
// sequences in Start/Stop/ContinueFrom/Edit/Delete cannot interleave for the
// same owner. The store's partial unique index remains the authoritative
// guard for writers outside this process.
type ownerLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newOwnerLocks() *ownerLocks {
	return &ownerLocks{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the owner's mutex and returns its unlock function.
func (l *ownerLocks) lock(ownerID string) func() {
	l.mu.Lock()
	m, ok := l.locks[ownerID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[ownerID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
