package ledger

import (
	"sync"

	"golang.org/x/exp/slices"
)

// locks is a table of mutexes keyed by entity ID.
//
// Entries are created on demand and removed once no goroutine holds
// or waits for them.
type locks struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newLocks() *locks {
	return &locks{entries: make(map[string]*lockEntry)}
}

// lock acquires the mutexes for all ids and returns the function
// releasing them. IDs are locked in sorted order so that two callers
// locking the same set never deadlock.
func (l *locks) lock(ids ...string) (unlock func()) {
	ids = slices.Clone(ids)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	entries := make([]*lockEntry, 0, len(ids))

	l.mu.Lock()
	for _, id := range ids {
		e, ok := l.entries[id]
		if !ok {
			e = &lockEntry{}
			l.entries[id] = e
		}
		e.refs++
		entries = append(entries, e)
	}
	l.mu.Unlock()

	for _, e := range entries {
		e.mu.Lock()
	}

	return func() {
		for i := len(entries) - 1; i >= 0; i-- {
			entries[i].mu.Unlock()
		}

		l.mu.Lock()
		defer l.mu.Unlock()
		for i, id := range ids {
			entries[i].refs--
			if entries[i].refs == 0 {
				delete(l.entries, id)
			}
		}
	}
}

// size returns the number of entries in the table.
func (l *locks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
