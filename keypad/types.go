// Package keypad defines the Key alphabet, grid positions and move
// sequences shared by every layout.
package keypad

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// Key is a single button symbol. Its underlying byte is the symbol as typed.
type Key byte

const (
	// KeyActivate presses the button the arm is resting on.
	KeyActivate Key = 'A'
	// KeyUp, KeyDown, KeyLeft and KeyRight move the arm one cell.
	KeyUp    Key = '^'
	KeyDown  Key = 'v'
	KeyLeft  Key = '<'
	KeyRight Key = '>'
	// Key0 through Key9 are the digits of the numeric keypad.
	Key0 Key = '0'
	Key1 Key = '1'
	Key2 Key = '2'
	Key3 Key = '3'
	Key4 Key = '4'
	Key5 Key = '5'
	Key6 Key = '6'
	Key7 Key = '7'
	Key8 Key = '8'
	Key9 Key = '9'
)

// ParseKey converts a typed symbol into a Key.
// Returns ErrUnknownKey for anything outside 0–9, A, ^, v, < and >.
func ParseKey(r rune) (Key, error) {
	k := Key(r)
	if r > 0x7f || !(k.IsDigit() || k.IsDirection() || k == KeyActivate) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, r)
	}
	return k, nil
}

// String returns the symbol of k.
func (k Key) String() string {
	return string(rune(k))
}

// IsDigit reports whether k is one of 0–9.
func (k Key) IsDigit() bool {
	return k >= Key0 && k <= Key9
}

// IsDirection reports whether k moves an arm.
func (k Key) IsDirection() bool {
	switch k {
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		return true
	}
	return false
}

// Delta returns the unit move of a direction key; (0,0) for any other key.
// Rows grow downward, so KeyUp is (0,-1).
func (k Key) Delta() (dx, dy int) {
	switch k {
	case KeyUp:
		return 0, -1
	case KeyDown:
		return 0, 1
	case KeyLeft:
		return -1, 0
	case KeyRight:
		return 1, 0
	}
	return 0, 0
}

// Position locates a button on its layout grid: X is the column, Y the row.
type Position struct {
	X, Y int
}

// Add returns p moved by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Sub returns the offset that moves q onto p.
func (p Position) Sub(q Position) (dx, dy int) {
	return p.X - q.X, p.Y - q.Y
}

// Manhattan returns the number of single-cell moves between p and q.
func (p Position) Manhattan(q Position) int {
	return absDiff(p.X, q.X) + absDiff(p.Y, q.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func absDiff[T constraints.Signed](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// Button places a Key on a layout.
type Button struct {
	Key Key
	Pos Position
}

// Sequence is an ordered run of key presses.
type Sequence []Key

// ParseSequence converts typed symbols into a Sequence.
// Returns ErrUnknownKey (wrapped with the offending symbol) on failure.
func ParseSequence(s string) (Sequence, error) {
	seq := make(Sequence, 0, len(s))
	for _, r := range s {
		k, err := ParseKey(r)
		if err != nil {
			return nil, err
		}
		seq = append(seq, k)
	}
	return seq, nil
}

// MustSequence is like ParseSequence but panics on error.
// Intended for fixed literals.
func MustSequence(s string) Sequence {
	seq, err := ParseSequence(s)
	if err != nil {
		panic(err)
	}
	return seq
}

// String joins the symbols of s; it is the memo key form of a chunk.
func (s Sequence) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, k := range s {
		b.WriteByte(byte(k))
	}
	return b.String()
}

// Equal reports whether s and o hold the same presses.
func (s Sequence) Equal(o Sequence) bool {
	return slices.Equal(s, o)
}
