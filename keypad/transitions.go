package keypad

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// Pair is an ordered (from, to) pair of keys on one layout.
type Pair struct {
	From, To Key
}

// TransitionTable holds, for every ordered pair of keys of a Layout, the
// shortest gap-free move sequences between them. It is immutable once built.
type TransitionTable struct {
	layout *Layout
	moves  map[Pair][]Sequence
}

// NewTransitionTable precomputes the candidates of every ordered key pair of l.
//
// Behavior:
//  1. (dx,dy) = position(to) − position(from).
//  2. Horizontal-first: |dx| of < or >, then |dy| of ^ or v.
//  3. Vertical-first: the same moves with the axes swapped.
//  4. Drop an ordering whose path touches the gap; keep only one when the
//     keys share a row or column, since both orderings coincide.
//  5. Append A to every survivor.
//
// Returns ErrNoCandidate if the gap blocks both orderings of some pair.
// Complexity: O(K²·D) time and memory, D = Width+Height.
func NewTransitionTable(l *Layout) (*TransitionTable, error) {
	t := &TransitionTable{
		layout: l,
		moves:  make(map[Pair][]Sequence, len(l.order)*len(l.order)),
	}
	for _, from := range l.order {
		fp := l.positions[from]
		for _, to := range l.order {
			dx, dy := l.positions[to].Sub(fp)
			horizontal := axisMoves(dx, KeyLeft, KeyRight)
			vertical := axisMoves(dy, KeyUp, KeyDown)

			var cands []Sequence
			hf := slices.Concat(horizontal, vertical, Sequence{KeyActivate})
			if l.Traces(from, to, hf) {
				cands = append(cands, hf)
			}
			if dx != 0 && dy != 0 {
				vf := slices.Concat(vertical, horizontal, Sequence{KeyActivate})
				if l.Traces(from, to, vf) {
					cands = append(cands, vf)
				}
			}
			if len(cands) == 0 {
				return nil, fmt.Errorf("%w: %s→%s on %s", ErrNoCandidate, from, to, l.Name)
			}
			t.moves[Pair{from, to}] = cands
		}
	}

	return t, nil
}

// MustTransitionTable is like NewTransitionTable but panics on error.
func MustTransitionTable(l *Layout) *TransitionTable {
	t, err := NewTransitionTable(l)
	if err != nil {
		panic(err)
	}
	return t
}

// axisMoves returns |d| presses of neg (d<0) or pos (d>0).
func axisMoves(d int, neg, pos Key) Sequence {
	k := pos
	if d < 0 {
		k = neg
	}
	return slices.Repeat(Sequence{k}, absDiff(d, 0))
}

// Layout returns the layout the table was built for.
func (t *TransitionTable) Layout() *Layout {
	return t.layout
}

// Candidates returns the one or two move sequences that take an arm from
// `from` to `to` and press it. The returned slices are shared and must not
// be modified.
// Returns ErrUnknownKey if either key is not on the layout.
// Complexity: O(1).
func (t *TransitionTable) Candidates(from, to Key) ([]Sequence, error) {
	cands, ok := t.moves[Pair{from, to}]
	if !ok {
		missing := from
		if t.layout.Has(from) {
			missing = to
		}
		return nil, fmt.Errorf("%w: %s on %s keypad", ErrUnknownKey, missing, t.layout.Name)
	}
	return cands, nil
}

// Pairs lists every key pair in the table, sorted by from then to.
func (t *TransitionTable) Pairs() []Pair {
	ps := maps.Keys(t.moves)
	slices.SortFunc(ps, func(a, b Pair) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})
	return ps
}

// Len returns the number of key pairs.
func (t *TransitionTable) Len() int {
	return len(t.moves)
}

// Traces reports whether seq is a legal press sequence that walks an arm
// from key `from` to key `to` and presses it: only direction keys followed
// by a single trailing A, never leaving the grid nor touching the gap.
func (l *Layout) Traces(from, to Key, seq Sequence) bool {
	p, ok := l.positions[from]
	if !ok {
		return false
	}
	dst, ok := l.positions[to]
	if !ok || len(seq) == 0 || seq[len(seq)-1] != KeyActivate {
		return false
	}
	for _, k := range seq[:len(seq)-1] {
		if !k.IsDirection() {
			return false
		}
		p = p.Add(k.Delta())
		if !l.InBounds(p) || p == l.gap {
			return false
		}
	}
	return p == dst
}
