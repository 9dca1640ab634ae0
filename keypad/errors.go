package keypad

import "errors"

var (
	// ErrUnknownKey indicates a symbol that is not a key, or a key the layout does not carry.
	ErrUnknownKey = errors.New("keypad: unknown key")
	// ErrNoButtons indicates a layout declared without any button.
	ErrNoButtons = errors.New("keypad: layout must declare at least one button")
	// ErrDuplicateKey indicates the same key was declared twice.
	ErrDuplicateKey = errors.New("keypad: key declared more than once")
	// ErrDuplicatePosition indicates two keys share one cell.
	ErrDuplicatePosition = errors.New("keypad: two keys share a position")
	// ErrNegativePosition indicates a button or gap with a negative coordinate.
	ErrNegativePosition = errors.New("keypad: positions must be non-negative")
	// ErrGapOverlap indicates the gap was placed on a declared key.
	ErrGapOverlap = errors.New("keypad: gap overlaps a key")
	// ErrNoCandidate indicates no gap-free ordering exists between two keys.
	ErrNoCandidate = errors.New("keypad: no valid move sequence between keys")
)
