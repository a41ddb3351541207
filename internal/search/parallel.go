package search

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/worker"
)

// scoreParallel scores the root moves on a worker pool. Every work item
// gets its own copy of the position and its own link table. Workers share
// the read-only move list and the evaluation cache, if any.
func scoreParallel(pos *chess.Position, colour chess.Colour, depth int, moves []chess.Move, o *options) []float64 {
	var (
		evaluated int32
		progMu    sync.Mutex
	)

	process := func(item worker.WorkItem) worker.ProcessResult {
		s := newSearcher(item.Position, o.cache)
		result := worker.ProcessResult{
			Index: item.Index,
			Move:  item.Move,
			Score: s.score(item.Move, colour, depth),
		}
		if n := atomic.AddInt32(&evaluated, 1); o.progress != nil && n%progressInterval == 0 {
			progMu.Lock()
			o.progress(int(n))
			progMu.Unlock()
		}
		return result
	}

	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Position: pos.Copy(), Move: m, Index: i}
	}

	pool := worker.NewPool(process,
		worker.WithWorkers(o.workers),
		worker.WithBufferSize(o.workers*2),
	)

	scores := make([]float64, len(moves))
	for _, r := range pool.Map(items) {
		scores[r.Index] = r.Score
	}
	return scores
}
