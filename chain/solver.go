package chain

import (
	"fmt"
	"math"

	"github.com/katalvlaran/keychain/keypad"
)

// memoKey identifies a chunk typed starting at a given depth.
type memoKey struct {
	depth int
	chunk string
}

// Solver computes minimal human keystroke counts for one Chain.
// Its memo table lives as long as the Solver; entries are never evicted.
// A Solver is not safe for concurrent use: give each goroutine its own.
type Solver struct {
	chain *Chain
	opts  Options
	memo  map[memoKey]int64

	hits, misses int
}

// NewSolver returns a Solver with an empty memo table for c.
func NewSolver(c *Chain, opts ...Option) *Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Solver{
		chain: c,
		opts:  o,
		memo:  make(map[memoKey]int64),
	}
}

// Solve returns the minimal number of keys the human must press so that the
// numeric keypad at depth 0 receives code. Equivalent to Cost(0, code).
func (s *Solver) Solve(code keypad.Sequence) (int64, error) {
	return s.Cost(0, code)
}

// Cost returns the minimal number of human keystrokes needed to press seq on
// the keypad at depth, with that keypad's arm starting on A. At depth Len()
// the human types seq directly and the cost is len(seq).
// Returns ErrDepthOutOfRange or a wrapped keypad.ErrUnknownKey.
func (s *Solver) Cost(depth int, seq keypad.Sequence) (int64, error) {
	if depth < 0 || depth > s.chain.Len() {
		return 0, fmt.Errorf("%w: %d not in [0,%d]", ErrDepthOutOfRange, depth, s.chain.Len())
	}
	return s.cost(depth, seq)
}

func (s *Solver) cost(depth int, seq keypad.Sequence) (int64, error) {
	if depth == s.chain.Len() {
		return int64(len(seq)), nil
	}
	key := memoKey{depth: depth, chunk: seq.String()}
	if n, ok := s.memo[key]; ok {
		s.hits++
		return n, nil
	}
	s.misses++

	layer := s.chain.layers[depth]
	var total int64
	current := keypad.KeyActivate
	for _, target := range seq {
		cands, err := layer.Candidates(current, target)
		if err != nil {
			return 0, fmt.Errorf("chain: depth %d: %w", depth, err)
		}
		best, _, err := s.cheapest(depth+1, cands)
		if err != nil {
			return 0, err
		}
		total += best
		current = target
	}
	s.memo[key] = total

	return total, nil
}

// cheapest costs every candidate at depth and returns the minimum and the
// index of the first candidate reaching it.
func (s *Solver) cheapest(depth int, cands []keypad.Sequence) (int64, int, error) {
	best, idx := int64(math.MaxInt64), -1
	for i, c := range cands {
		n, err := s.cost(depth, c)
		if err != nil {
			return 0, -1, err
		}
		if n < best {
			best, idx = n, i
		}
	}
	return best, idx, nil
}

// Expand returns one minimal keystroke sequence for the human, so that
// len(Expand(code)) == Solve(code). Where candidates tie, the first in table
// order is taken.
// Returns ErrExpansionTooLong without building anything when the result
// would exceed Options.MaxExpansion.
func (s *Solver) Expand(code keypad.Sequence) (keypad.Sequence, error) {
	n, err := s.Solve(code)
	if err != nil {
		return nil, err
	}
	if n > s.opts.MaxExpansion {
		return nil, fmt.Errorf("%w: %d keystrokes > %d", ErrExpansionTooLong, n, s.opts.MaxExpansion)
	}
	return s.expand(0, code, make(keypad.Sequence, 0, n))
}

func (s *Solver) expand(depth int, seq, out keypad.Sequence) (keypad.Sequence, error) {
	if depth == s.chain.Len() {
		return append(out, seq...), nil
	}
	layer := s.chain.layers[depth]
	current := keypad.KeyActivate
	for _, target := range seq {
		cands, err := layer.Candidates(current, target)
		if err != nil {
			return nil, fmt.Errorf("chain: depth %d: %w", depth, err)
		}
		_, i, err := s.cheapest(depth+1, cands)
		if err != nil {
			return nil, err
		}
		if out, err = s.expand(depth+1, cands[i], out); err != nil {
			return nil, err
		}
		current = target
	}
	return out, nil
}

// Stats returns memo usage counters since the Solver was created.
func (s *Solver) Stats() Stats {
	return Stats{Entries: len(s.memo), Hits: s.hits, Misses: s.misses}
}
