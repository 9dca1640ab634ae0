// Package chain computes how many keystrokes a human needs to make a door
// keypad type a code when the door is driven by a chain of robot arms.
//
// Layer 0 of a Chain is the numeric keypad on the door. Layers 1..N are
// directional keypads. Every layer has a robot arm hovering over it; the arm
// over layer d is steered by the keys pressed on layer d+1, and the arm over
// the last layer is steered by the human's own keystrokes (depth L). The
// chain length is L = N + 1.
//
// Solver.Solve never builds the keystroke string. It splits every sequence
// into chunks that each end in A (one arm trip plus a press), costs each
// chunk one layer further out, and memoizes the result on (depth, chunk).
// Every chunk starts with the arm parked on A, because the previous chunk
// ended by pressing A, so a chunk's cost does not depend on what came before.
//
// When the gap allows two orderings for a trip, both are costed and the
// cheaper one wins: runs of the same direction are cheap one layer out, so
// equal-length orderings diverge as they are re-expanded.
//
// Complexity:
//
//   - Solve: O(L·C) memo entries, C bounded by the directional chunk
//     alphabet (a few dozen); each entry costs O(chunk length).
//   - Expand: O(result length); refused beyond the configured limit.
//   - Replay: O(len(presses)·L).
//
// Errors:
//
//   - ErrEmptyChain, ErrNegativeDepth: invalid chain construction.
//   - ErrDepthOutOfRange: Cost called with depth outside [0, L].
//   - ErrExpansionTooLong: Expand would exceed the configured limit.
//   - ErrArmOverGap, ErrArmOutOfBounds: Replay met an illegal arm move.
//   - keypad.ErrUnknownKey: a sequence carries a key its layer does not have.
package chain
