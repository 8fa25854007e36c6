package hashing

// tableKey identifies a subtree: the position and how deep it was counted.
type tableKey struct {
	hash  uint64
	depth int
}

// Table remembers perft counts by position hash and depth. It is not safe
// for concurrent use; see ThreadSafeTable.
type Table struct {
	entries map[tableKey]uint64
	// maxCapacity bounds the number of entries; 0 means unlimited.
	maxCapacity int
	hits        int
	misses      int
}

// NewTable creates an empty table. maxCapacity of 0 means unlimited.
func NewTable(maxCapacity int) *Table {
	return &Table{
		entries:     make(map[tableKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored count for hash at depth.
func (t *Table) Lookup(hash uint64, depth int) (uint64, bool) {
	nodes, ok := t.entries[tableKey{hash, depth}]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return nodes, ok
}

// Store records a count. Once the table is full new entries are dropped;
// existing ones can still be overwritten.
func (t *Table) Store(hash uint64, depth int, nodes uint64) {
	key := tableKey{hash, depth}
	if _, ok := t.entries[key]; !ok && t.IsFull() {
		return
	}
	t.entries[key] = nodes
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Hits returns the number of successful lookups.
func (t *Table) Hits() int {
	return t.hits
}

// Misses returns the number of failed lookups.
func (t *Table) Misses() int {
	return t.misses
}

// IsFull reports whether the capacity limit has been reached.
// Always false for unlimited capacity.
func (t *Table) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Reset clears the table and its counters.
func (t *Table) Reset() {
	t.entries = make(map[tableKey]uint64)
	t.hits = 0
	t.misses = 0
}
