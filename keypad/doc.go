// Package keypad describes the keypads of a robot chain and the candidate
// arm movements between their buttons.
//
// What:
//
//   - Key is a single button symbol: digits 0–9, Activate (A) and the four
//     direction keys ^ v < >.
//   - Layout is an immutable rectangular keypad: every Key has a Position and
//     exactly one cell, the gap, carries no button.
//   - TransitionTable precomputes, for every ordered pair of keys of a Layout,
//     the one or two shortest move sequences an arm can follow from one button
//     to the other (horizontal-first and vertical-first), each ending in A.
//
// Why:
//
//   - An arm resting over the gap panics the robot, so the two axis orderings
//     are not interchangeable: the table keeps only orderings that stay on
//     buttons.
//   - Both surviving orderings have the same length on this keypad, but cost
//     differently once typed through further keypads; callers compare them.
//
// Layouts:
//
//	Numeric:            Directional:
//
//	+---+---+---+           +---+---+
//	| 7 | 8 | 9 |           | ^ | A |
//	+---+---+---+       +---+---+---+
//	| 4 | 5 | 6 |       | < | v | > |
//	+---+---+---+       +---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	    | 0 | A |
//	    +---+---+
//
// Complexity:
//
//   - NewLayout:          O(K + W×H) time and memory, K = number of buttons.
//   - NewTransitionTable: O(K²·D) time, D = grid diameter; O(K²·D) memory.
//   - Candidates:         O(1).
//
// Errors:
//
//   - ErrUnknownKey: symbol or key outside the layout's domain.
//   - ErrNoButtons, ErrDuplicateKey, ErrDuplicatePosition, ErrNegativePosition,
//     ErrGapOverlap: inconsistent layout definition.
//   - ErrNoCandidate: the gap blocks every ordering between two keys.
package keypad
