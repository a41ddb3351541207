// Package worker scores candidate moves on a fixed set of goroutines.
package worker

import (
	"sync"

	"github.com/lgbarn/chesslab-go/internal/chess"
)

// WorkItem is one root move to score. The item owns Position; the worker
// plays and unplays moves on it, so it must never be shared between items.
type WorkItem struct {
	Position *chess.Position
	Move     chess.Move
	Index    int // position of Move in the enumeration order
}

// ProcessResult carries the score of one WorkItem back to the caller.
type ProcessResult struct {
	Index int
	Move  chess.Move
	Score float64 // pawns, from the mover's point of view
	Error error
}

// ProcessFunc scores one item. It runs on a worker goroutine.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans WorkItems out to numWorkers goroutines running processFunc.
type Pool struct {
	numWorkers  int
	bufferSize  int
	processFunc ProcessFunc

	work    chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n > 0 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the work and result channels.
// Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size > 0 {
			p.bufferSize = size
		}
	}
}

// NewPool returns a pool with one worker and a buffer of 10 unless the
// options say otherwise.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{numWorkers: 1, bufferSize: 10, processFunc: processFunc}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.numWorkers)
	for i := 0; i < p.numWorkers; i++ {
		go func() {
			defer p.wg.Done()
			for item := range p.work {
				p.results <- p.processFunc(item)
			}
		}()
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.work <- item
}

// Close stops accepting work, waits for the workers to drain it and then
// closes the result channel.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel results arrive on, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Map scores items and returns the results in Index order. Indices must be
// 0..len(items)-1, each used once. Map starts and closes the pool itself.
func (p *Pool) Map(items []WorkItem) []ProcessResult {
	p.Start()
	go func() {
		for _, item := range items {
			p.Submit(item)
		}
		p.Close()
	}()

	out := make([]ProcessResult, len(items))
	for r := range p.results {
		out[r.Index] = r
	}
	return out
}
