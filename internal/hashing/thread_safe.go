package hashing

import (
	"sync"
)

// ThreadSafeTable wraps Table with mutex protection so perft workers can
// share one table.
type ThreadSafeTable struct {
	table *Table
	mu    sync.Mutex
}

// NewThreadSafeTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeTable(maxCapacity int) *ThreadSafeTable {
	return &ThreadSafeTable{
		table: NewTable(maxCapacity),
	}
}

// Lookup returns the stored count for hash at depth.
func (t *ThreadSafeTable) Lookup(hash uint64, depth int) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Lookup(hash, depth)
}

// Store records a count.
func (t *ThreadSafeTable) Store(hash uint64, depth int, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Store(hash, depth, nodes)
}

// Len returns the number of stored entries.
func (t *ThreadSafeTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Len()
}

// Stats returns the hit and miss counts.
func (t *ThreadSafeTable) Stats() (hits, misses int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Hits(), t.table.Misses()
}
