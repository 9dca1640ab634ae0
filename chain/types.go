package chain

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/keychain/keypad"
)

// Sentinel errors for chain operations.
var (
	// ErrEmptyChain indicates a chain without any layer.
	ErrEmptyChain = errors.New("chain: at least one layer is required")
	// ErrNegativeDepth indicates a negative number of directional layers.
	ErrNegativeDepth = errors.New("chain: number of directional keypads must be non-negative")
	// ErrDepthOutOfRange indicates a depth outside [0, Len()].
	ErrDepthOutOfRange = errors.New("chain: depth out of range")
	// ErrExpansionTooLong indicates the literal keystroke string exceeds the configured limit.
	ErrExpansionTooLong = errors.New("chain: expansion exceeds limit")
	// ErrArmOverGap indicates a replayed move put an arm over a keypad's gap.
	ErrArmOverGap = errors.New("chain: arm moved over the gap")
	// ErrArmOutOfBounds indicates a replayed move put an arm outside its keypad.
	ErrArmOutOfBounds = errors.New("chain: arm moved off the keypad")
)

// Chain is an ordered, immutable list of keypad layers. Layer 0 receives the
// code; the arm over the last layer is steered by the human.
type Chain struct {
	layers []*keypad.TransitionTable
}

// New builds the door chain: the numeric keypad followed by `directional`
// directional keypads. All directional layers share one transition table.
// Returns ErrNegativeDepth if directional < 0.
func New(directional int) (*Chain, error) {
	if directional < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, directional)
	}
	layouts := make([]*keypad.Layout, 0, directional+1)
	layouts = append(layouts, keypad.NumericLayout())
	for i := 0; i < directional; i++ {
		layouts = append(layouts, keypad.DirectionalLayout())
	}
	return FromLayouts(layouts...)
}

// FromLayouts builds a chain from arbitrary layouts, outermost last.
// Repeated layouts share a transition table.
// Returns ErrEmptyChain for no layouts, or the table construction error.
func FromLayouts(layouts ...*keypad.Layout) (*Chain, error) {
	if len(layouts) == 0 {
		return nil, ErrEmptyChain
	}
	built := make(map[*keypad.Layout]*keypad.TransitionTable, 2)
	c := &Chain{layers: make([]*keypad.TransitionTable, len(layouts))}
	for i, l := range layouts {
		t, ok := built[l]
		if !ok {
			var err error
			if t, err = keypad.NewTransitionTable(l); err != nil {
				return nil, fmt.Errorf("chain: layer %d: %w", i, err)
			}
			built[l] = t
		}
		c.layers[i] = t
	}
	return c, nil
}

// Len returns L, the number of layers; depth L is the human.
func (c *Chain) Len() int {
	return len(c.layers)
}

// Directional returns the number of directional layers, L−1.
func (c *Chain) Directional() int {
	return len(c.layers) - 1
}

// Layer returns the transition table of the keypad at depth.
// Returns ErrDepthOutOfRange for depth outside [0, L).
func (c *Chain) Layer(depth int) (*keypad.TransitionTable, error) {
	if depth < 0 || depth >= len(c.layers) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrDepthOutOfRange, depth, len(c.layers))
	}
	return c.layers[depth], nil
}

// Options configures a Solver.
//
// MaxExpansion – longest keystroke string Expand will build. Must be > 0.
type Options struct {
	MaxExpansion int64
}

// Option mutates Options.
type Option func(*Options)

// DefaultMaxExpansion is the default Expand limit.
const DefaultMaxExpansion int64 = 1 << 16

// DefaultOptions returns Options{MaxExpansion: DefaultMaxExpansion}.
func DefaultOptions() Options {
	return Options{MaxExpansion: DefaultMaxExpansion}
}

// WithMaxExpansion sets the Expand limit; non-positive values keep the default.
func WithMaxExpansion(n int64) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxExpansion = n
		}
	}
}

// Stats reports memo table usage.
type Stats struct {
	Entries int // distinct (depth, chunk) keys stored
	Hits    int // lookups answered from the memo
	Misses  int // lookups that had to recurse
}
