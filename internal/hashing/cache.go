package hashing

import (
	"sync"

	"github.com/lgbarn/chesslab-go/internal/chess"
)

// entry is one cached evaluation with the position it belongs to.
type entry struct {
	pos   chess.Position
	score float64
}

// EvalCache memoizes static evaluations by position. Lookups compare the
// whole position, so hash collisions never return a wrong score. It is
// safe for concurrent use.
type EvalCache struct {
	mu          sync.RWMutex
	table       map[uint64][]entry
	size        int
	maxCapacity int
	hits        int
	misses      int
}

// NewEvalCache creates an evaluation cache.
// maxCapacity of 0 means unlimited capacity.
func NewEvalCache(maxCapacity int) *EvalCache {
	return &EvalCache{
		table:       make(map[uint64][]entry),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the cached score of pos, if any.
func (c *EvalCache) Lookup(pos *chess.Position) (float64, bool) {
	key := Zobrist(pos)

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.table[key] {
		if e.pos == *pos {
			c.hits++
			return e.score, true
		}
	}
	c.misses++
	return 0, false
}

// Store records the score of pos. Once the cache is full new positions
// are dropped.
func (c *EvalCache) Store(pos *chess.Position, score float64) {
	key := Zobrist(pos)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.maxCapacity > 0 && c.size >= c.maxCapacity {
		return
	}
	for _, e := range c.table[key] {
		if e.pos == *pos {
			return
		}
	}
	c.table[key] = append(c.table[key], entry{pos: *pos, score: score})
	c.size++
}

// Len returns the number of cached positions.
func (c *EvalCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.size
}

// Stats returns the number of lookups that hit and missed.
func (c *EvalCache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *EvalCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxCapacity > 0 && c.size >= c.maxCapacity
}

// Reset clears the cache and its statistics.
func (c *EvalCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.table = make(map[uint64][]entry)
	c.size = 0
	c.hits = 0
	c.misses = 0
}
