package perftcache

import (
	"testing"

	"github.com/lgbarn/legalmoves-go/internal/testutil"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestKey(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  string
	}{
		{"full FEN drops clocks", startFEN, 3, "perft/3/rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"},
		{"short FEN kept", "8/8/8/8/8/8/8/K6k w", 1, "perft/1/8/8/8/8/8/8/8/K6k w"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, string(Key(tt.fen, tt.depth)), tt.want)
		})
	}

	testutil.AssertEqual(t, string(Key(startFEN, 2)),
		string(Key("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 17 40", 2)),
		"clocks must not change the key")
}

func TestCacheInMemory(t *testing.T) {
	cache, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error: %v", err)
	}
	defer cache.Close()

	runCacheTests(t, cache)
}

func TestCacheOnDisk(t *testing.T) {
	dir := t.TempDir()

	cache, err := Open(dir)
	if err != nil {
		t.Fatalf("Open(%q) error: %v", dir, err)
	}
	runCacheTests(t, cache)
	testutil.AssertNoError(t, cache.Close())

	// Entries survive a reopen.
	cache, err = Open(dir)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer cache.Close()

	got, ok, err := cache.Get(startFEN, 2)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, ok, "entry lost after reopen")
	testutil.AssertEqual(t, got, &Entry{Nodes: 400})
}

func runCacheTests(t *testing.T, cache *Cache) {
	t.Helper()

	t.Run("miss", func(t *testing.T) {
		got, ok, err := cache.Get(startFEN, 5)
		testutil.AssertNoError(t, err)
		testutil.AssertFalse(t, ok, "unexpected hit")
		if got != nil {
			t.Errorf("Get() on miss = %+v; want nil", got)
		}
	})

	t.Run("total only", func(t *testing.T) {
		testutil.AssertNoError(t, cache.Put(startFEN, 2, &Entry{Nodes: 400}))
		got, ok, err := cache.Get(startFEN, 2)
		testutil.AssertNoError(t, err)
		testutil.AssertTrue(t, ok, "miss after Put")
		testutil.AssertEqual(t, got, &Entry{Nodes: 400})
	})

	t.Run("with divide", func(t *testing.T) {
		want := &Entry{Nodes: 40, Divide: map[string]uint64{"e2e4": 20, "d2d4": 20}}
		testutil.AssertNoError(t, cache.Put(startFEN, 1, want))
		got, ok, err := cache.Get(startFEN, 1)
		testutil.AssertNoError(t, err)
		testutil.AssertTrue(t, ok, "miss after Put")
		testutil.AssertEqual(t, got, want)
	})

	t.Run("depths are separate", func(t *testing.T) {
		got, ok, err := cache.Get(startFEN, 3)
		testutil.AssertNoError(t, err)
		testutil.AssertFalse(t, ok, "depth 3 should miss")
		if got != nil {
			t.Errorf("Get() = %+v; want nil", got)
		}
	})
}
