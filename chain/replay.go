package chain

import (
	"fmt"

	"github.com/katalvlaran/keychain/keypad"
)

// Replay feeds the human's keystrokes into c and returns the keys pressed on
// the door keypad at depth 0.
//
// arms[d] is the position of the arm hovering over keypad d; every arm starts
// on A. A key arriving at depth d either moves arms[d-1] one cell or, for A,
// makes that arm press the button under it; the pressed button is dispatched
// one layer further in. A button pressed on keypad 0 is emitted.
//
// Returns ErrArmOutOfBounds or ErrArmOverGap when a move leaves the buttons of
// a keypad, and a wrapped keypad.ErrUnknownKey for a key that cannot steer an
// arm.
// Complexity: O(len(presses)·L).
func Replay(c *Chain, presses keypad.Sequence) (keypad.Sequence, error) {
	arms := make([]keypad.Position, c.Len())
	for d := range arms {
		p, ok := c.layers[d].Layout().Position(keypad.KeyActivate)
		if !ok {
			return nil, fmt.Errorf("chain: layer %d: %w: no %s key", d, keypad.ErrUnknownKey, keypad.KeyActivate)
		}
		arms[d] = p
	}

	var typed keypad.Sequence
	for i, k := range presses {
		for arm := c.Len() - 1; ; arm-- {
			layout := c.layers[arm].Layout()
			if k.IsDirection() {
				next := arms[arm].Add(k.Delta())
				if !layout.InBounds(next) {
					return typed, fmt.Errorf("chain: press %d: %w: %s keypad at %s", i, ErrArmOutOfBounds, layout.Name, next)
				}
				if _, ok := layout.KeyAt(next); !ok {
					return typed, fmt.Errorf("chain: press %d: %w: %s keypad at %s", i, ErrArmOverGap, layout.Name, next)
				}
				arms[arm] = next
				break
			}
			if k != keypad.KeyActivate {
				return typed, fmt.Errorf("chain: press %d: %w: %s cannot steer an arm", i, keypad.ErrUnknownKey, k)
			}
			k, _ = layout.KeyAt(arms[arm])
			if arm == 0 {
				typed = append(typed, k)
				break
			}
		}
	}
	return typed, nil
}
