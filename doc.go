// Package keychain computes how few keystrokes a human needs to open a door
// whose numeric keypad is operated by a chain of robots.
//
// 🚪 The setup
//
//	A robot arm types on the door's numeric keypad. That arm is steered from a
//	directional keypad, whose own arm is steered from another directional
//	keypad, and so on, until the last arm is steered by a human.
//
// ✨ What is inside
//
//   - keypad/     : keys, layouts with their gap, and the candidate moves between buttons
//   - chain/      : layered chains, the memoized keystroke counter, expansion and replay
//   - complexity/ : door code parsing and complexity score sums for each part
//   - cmd/keychain : command-line front end
//
// Quick ASCII example:
//
//	    +---+---+
//	    | ^ | A |
//	+---+---+---+
//	| < | v | > |
//	+---+---+---+
//
// is the directional keypad; its top-left cell is the gap no arm may rest on.
//
//	go run ./cmd/keychain -input codes.txt
package keychain
