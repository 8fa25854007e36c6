package engine

import (
	"github.com/lgbarn/legalmoves-go/internal/chess"
	"github.com/lgbarn/legalmoves-go/internal/hashing"
	"github.com/lgbarn/legalmoves-go/internal/worker"
)

// PerftTable memoizes subtree counts by position hash and depth.
// Implementations used with more than one worker must be safe for
// concurrent use.
type PerftTable interface {
	Lookup(hash uint64, depth int) (uint64, bool)
	Store(hash uint64, depth int, nodes uint64)
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// The board is walked in place and is unchanged on return.
func Perft(b *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := NewSearchNode(b).LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		withMove(b, m, func() {
			nodes += Perft(b, depth-1)
		})
	}
	return nodes
}

// HashedPerft is Perft with transposed subtrees answered from table.
// Leaf and frontier counts are cheap and are not stored.
func HashedPerft(b *chess.Board, depth int, table PerftTable) uint64 {
	if depth <= 1 {
		return Perft(b, depth)
	}
	key := hashing.Zobrist(b)
	if nodes, ok := table.Lookup(key, depth); ok {
		return nodes
	}

	var nodes uint64
	for _, m := range NewSearchNode(b).LegalMoves() {
		withMove(b, m, func() {
			nodes += HashedPerft(b, depth-1, table)
		})
	}
	table.Store(key, depth, nodes)
	return nodes
}

// Divide returns the perft count below each root move, keyed by the move in
// UCI form.
func Divide(b *chess.Board, depth int) map[string]uint64 {
	return divide(b, depth, 1, Perft)
}

// ParallelDivide is Divide with the root moves spread over a worker pool.
// Each worker gets its own copy of the board.
func ParallelDivide(b *chess.Board, depth, workers int) map[string]uint64 {
	return divide(b, depth, workers, Perft)
}

// HashedDivide is ParallelDivide counting each subtree with HashedPerft.
// All workers share table.
func HashedDivide(b *chess.Board, depth, workers int, table PerftTable) map[string]uint64 {
	return divide(b, depth, workers, func(b *chess.Board, depth int) uint64 {
		return HashedPerft(b, depth, table)
	})
}

func divide(b *chess.Board, depth, workers int, count func(*chess.Board, int) uint64) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	moves := NewSearchNode(b).LegalMoves()

	if workers <= 1 {
		for _, m := range moves {
			withMove(b, m, func() {
				result[m.UCI()] = count(b, depth-1)
			})
		}
		return result
	}

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Move:  item.Move,
			Index: item.Index,
			Nodes: count(item.Board, item.Depth),
		}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))
	pool.Start()

	go func() {
		for i, m := range moves {
			withMove(b, m, func() {
				pool.Submit(worker.WorkItem{Board: b.Clone(), Move: m.UCI(), Depth: depth - 1, Index: i})
			})
		}
		pool.Close()
	}()

	for r := range pool.Results() {
		result[r.Move] = r.Nodes
	}
	return result
}
