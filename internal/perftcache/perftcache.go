// Package perftcache stores perft results in BadgerDB so repeated runs on
// the same position and depth are answered without walking the tree.
package perftcache

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// keyPrefix namespaces perft entries within the database.
const keyPrefix = "perft"

// Entry is one cached perft run. Divide is nil when only the total was
// computed.
type Entry struct {
	Nodes  uint64            `json:"nodes"`
	Divide map[string]uint64 `json:"divide,omitempty"`
}

// Cache wraps BadgerDB for perft results.
type Cache struct {
	db *badger.DB
}

// Open opens (or creates) a cache in dir.
func Open(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens a cache that lives only as long as the process.
func OpenInMemory() (*Cache, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Cache, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening perft cache: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the database.
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Key builds the cache key for a position and depth. Only the first four
// FEN fields take part: the clocks do not change the move tree.
func Key(fen string, depth int) []byte {
	fields := strings.Fields(fen)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return []byte(fmt.Sprintf("%s/%d/%s", keyPrefix, depth, strings.Join(fields, " ")))
}

// Get returns the cached entry for fen at depth. The boolean is false on a
// miss.
func (c *Cache) Get(fen string, depth int) (*Entry, bool, error) {
	var entry *Entry

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(Key(fen, depth))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			entry = &Entry{}
			return json.Unmarshal(val, entry)
		})
	})
	if err != nil {
		return nil, false, err
	}
	return entry, entry != nil, nil
}

// Put stores entry for fen at depth, replacing any earlier value.
func (c *Cache) Put(fen string, depth int, entry *Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(Key(fen, depth), data)
	})
}
