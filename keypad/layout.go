// Package keypad provides immutable keypad layouts: a rectangular grid of
// buttons with a single empty cell (the gap) that no arm may rest on.
package keypad

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Layout is an immutable keypad. Width and Height span every button and the gap;
// cells[y*Width+x] holds the key at (x,y), or 0 for an empty cell.
type Layout struct {
	Name          string
	Width, Height int

	gap       Position
	positions map[Key]Position
	domain    mapset.Set[Key]
	order     []Key
	cells     []Key
}

// NewLayout builds a Layout from its gap and buttons.
// Buttons keep their declaration order in Keys().
// Returns ErrNoButtons if buttons is empty, ErrNegativePosition for a negative
// coordinate, ErrDuplicateKey / ErrDuplicatePosition for repeated keys or cells,
// and ErrGapOverlap if the gap sits on a button.
// Complexity: O(K + W×H) time and memory.
func NewLayout(name string, gap Position, buttons []Button) (*Layout, error) {
	if len(buttons) == 0 {
		return nil, ErrNoButtons
	}
	if gap.X < 0 || gap.Y < 0 {
		return nil, fmt.Errorf("%w: gap at %s", ErrNegativePosition, gap)
	}
	l := &Layout{
		Name:      name,
		Width:     gap.X + 1,
		Height:    gap.Y + 1,
		gap:       gap,
		positions: make(map[Key]Position, len(buttons)),
		domain:    mapset.New[Key](),
		order:     make([]Key, 0, len(buttons)),
	}
	occupied := make(map[Position]Key, len(buttons))
	for _, b := range buttons {
		if b.Pos.X < 0 || b.Pos.Y < 0 {
			return nil, fmt.Errorf("%w: key %s at %s", ErrNegativePosition, b.Key, b.Pos)
		}
		if l.domain.Has(b.Key) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, b.Key)
		}
		if other, ok := occupied[b.Pos]; ok {
			return nil, fmt.Errorf("%w: %s and %s at %s", ErrDuplicatePosition, other, b.Key, b.Pos)
		}
		if b.Pos == gap {
			return nil, fmt.Errorf("%w: key %s at %s", ErrGapOverlap, b.Key, b.Pos)
		}
		occupied[b.Pos] = b.Key
		l.positions[b.Key] = b.Pos
		l.domain.Put(b.Key)
		l.order = append(l.order, b.Key)
		l.Width = max(l.Width, b.Pos.X+1)
		l.Height = max(l.Height, b.Pos.Y+1)
	}
	l.cells = make([]Key, l.Width*l.Height)
	for k, p := range l.positions {
		l.cells[l.index(p)] = k
	}

	return l, nil
}

// MustLayout is like NewLayout but panics on error.
// Only for layouts fixed at compile time.
func MustLayout(name string, gap Position, buttons []Button) *Layout {
	l, err := NewLayout(name, gap, buttons)
	if err != nil {
		panic(fmt.Sprintf("keypad: invalid %s layout: %v", name, err))
	}
	return l
}

var (
	numeric = MustLayout("numeric", Position{0, 3}, []Button{
		{Key7, Position{0, 0}}, {Key8, Position{1, 0}}, {Key9, Position{2, 0}},
		{Key4, Position{0, 1}}, {Key5, Position{1, 1}}, {Key6, Position{2, 1}},
		{Key1, Position{0, 2}}, {Key2, Position{1, 2}}, {Key3, Position{2, 2}},
		{Key0, Position{1, 3}}, {KeyActivate, Position{2, 3}},
	})
	directional = MustLayout("directional", Position{0, 0}, []Button{
		{KeyUp, Position{1, 0}}, {KeyActivate, Position{2, 0}},
		{KeyLeft, Position{0, 1}}, {KeyDown, Position{1, 1}}, {KeyRight, Position{2, 1}},
	})
)

// NumericLayout returns the door keypad: digits 0–9 and A, gap bottom-left.
func NumericLayout() *Layout { return numeric }

// DirectionalLayout returns the robot control keypad: ^ v < > and A, gap top-left.
func DirectionalLayout() *Layout { return directional }

// Gap returns the position of the empty cell.
func (l *Layout) Gap() Position {
	return l.gap
}

// Has reports whether k is a button of l.
// Complexity: O(1).
func (l *Layout) Has(k Key) bool {
	return l.domain.Has(k)
}

// Len returns the number of buttons.
func (l *Layout) Len() int {
	return l.domain.Size()
}

// Position returns where k sits, or false if l has no such key.
// Complexity: O(1).
func (l *Layout) Position(k Key) (Position, bool) {
	p, ok := l.positions[k]
	return p, ok
}

// Keys returns the buttons in declaration order. The slice is a copy.
func (l *Layout) Keys() []Key {
	out := make([]Key, len(l.order))
	copy(out, l.order)
	return out
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (l *Layout) InBounds(p Position) bool {
	return p.X >= 0 && p.X < l.Width && p.Y >= 0 && p.Y < l.Height
}

// KeyAt returns the button at p. It reports false for the gap, for empty
// cells and for positions outside the grid.
// Complexity: O(1).
func (l *Layout) KeyAt(p Position) (Key, bool) {
	if !l.InBounds(p) {
		return 0, false
	}
	k := l.cells[l.index(p)]
	return k, k != 0
}

// index maps p to a row-major index: y*Width + x.
func (l *Layout) index(p Position) int {
	return p.Y*l.Width + p.X
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (l *Layout) Coordinate(idx int) Position {
	return Position{X: idx % l.Width, Y: idx / l.Width}
}

// String renders l as a grid, one row per line; the gap and empty cells print as a space.
func (l *Layout) String() string {
	buf := make([]byte, 0, (l.Width+1)*l.Height)
	for i, k := range l.cells {
		if k == 0 {
			buf = append(buf, ' ')
		} else {
			buf = append(buf, byte(k))
		}
		if l.Coordinate(i).X == l.Width-1 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}
