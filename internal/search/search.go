// Package search picks moves with a fixed-depth negamax over the legal
// move set, scoring leaves with a static evaluator.
package search

import (
	"math"
	"sort"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/engine"
	"github.com/lgbarn/chesslab-go/internal/hashing"
)

// MateScore is the side-relative score, in pawns, of being checkmated.
const MateScore = 1000.0

// DefaultDepth is the search depth used when the caller has no preference.
// Depth 2 looks three plies ahead: the root move, the reply and the
// answer to the reply.
const DefaultDepth = 2

// progressInterval is how many root moves are scored between progress calls.
const progressInterval = 7

// Option configures a search.
type Option func(*options)

type options struct {
	progress func(evaluated int)
	workers  int
	cache    *hashing.EvalCache
}

// WithProgress registers a callback invoked after every seventh scored root
// move with the number of root moves scored so far. With more than one
// worker the callback runs on worker goroutines, one call at a time.
func WithProgress(fn func(evaluated int)) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// WithWorkers scores root moves on n goroutines, each on its own copy of
// the position. Values below 2 keep the search sequential.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithCache memoizes leaf evaluations in c. A cache may be shared between
// searches and between workers.
func WithCache(c *hashing.EvalCache) Option {
	return func(o *options) {
		o.cache = c
	}
}

func newOptions(opts []Option) *options {
	o := &options{workers: 1}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// BestMove returns the highest-ranked legal move for colour, or false when
// colour has no legal move. The position is left unchanged.
func BestMove(pos *chess.Position, colour chess.Colour, depth int, opts ...Option) (chess.Move, bool) {
	ranked := Rank(pos, colour, depth, opts...)
	if len(ranked) == 0 {
		return chess.Move{}, false
	}
	return ranked[0], true
}

// Rank scores every legal move for colour and returns them best first.
// Each Move carries its display text and its White-positive Score. Moves
// with equal scores keep square order. The position is left unchanged.
func Rank(pos *chess.Position, colour chess.Colour, depth int, opts ...Option) []chess.Move {
	o := newOptions(opts)
	if depth < 0 {
		depth = 0
	}

	moves := engine.LegalMoves(pos, colour)
	for i := range moves {
		moves[i].Text = engine.MoveText(pos, moves[i])
	}

	var scores []float64
	if o.workers > 1 && len(moves) > 1 {
		scores = scoreParallel(pos, colour, depth, moves, o)
	} else {
		scores = scoreSequential(pos, colour, depth, moves, o)
	}

	idx := make([]int, len(moves))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	ranked := make([]chess.Move, len(moves))
	for i, j := range idx {
		ranked[i] = moves[j]
		ranked[i].Score = relative(scores[j], colour)
	}
	return ranked
}

func scoreSequential(pos *chess.Position, colour chess.Colour, depth int, moves []chess.Move, o *options) []float64 {
	s := newSearcher(pos, o.cache)
	scores := make([]float64, len(moves))
	for i, m := range moves {
		scores[i] = s.score(m, colour, depth)
		if o.progress != nil && (i+1)%progressInterval == 0 {
			o.progress(i + 1)
		}
	}
	return scores
}

// searcher walks the tree below one position, applying and rolling back
// moves in place.
type searcher struct {
	pos   *chess.Position
	links *engine.Links
	cache *hashing.EvalCache // nil for none
}

func newSearcher(pos *chess.Position, cache *hashing.EvalCache) *searcher {
	return &searcher{pos: pos, links: engine.NewLinks(), cache: cache}
}

// score returns the side-relative value of colour playing m.
func (s *searcher) score(m chess.Move, colour chess.Colour, depth int) float64 {
	mark := s.links.Len()
	applied := engine.Forward(s.pos, s.links, m)
	defer func() {
		engine.Backward(s.pos, s.links, applied)
		s.links.Truncate(mark)
	}()

	if depth == 0 {
		return relative(s.evaluate(), colour)
	}
	return -s.best(colour.Opposite(), depth-1)
}

// best returns the side-relative value of the position for colour to move.
func (s *searcher) best(colour chess.Colour, depth int) float64 {
	moves := engine.LegalMoves(s.pos, colour)
	if len(moves) == 0 {
		if engine.InCheck(s.pos, colour) {
			return -MateScore
		}
		return relative(s.evaluate(), colour)
	}

	best := math.Inf(-1)
	for _, m := range moves {
		if v := s.score(m, colour, depth); v > best {
			best = v
		}
	}
	return best
}

// evaluate returns the static evaluation of the current position.
func (s *searcher) evaluate() float64 {
	if s.cache == nil {
		return Evaluate(s.pos)
	}
	if score, ok := s.cache.Lookup(s.pos); ok {
		return score
	}
	score := Evaluate(s.pos)
	s.cache.Store(s.pos, score)
	return score
}

// relative converts between White-positive and side-relative scores.
func relative(score float64, colour chess.Colour) float64 {
	return score * float64(colour.Sign())
}
