// Package complexity parses door codes and sums their complexity scores.
//
// A code is a line such as "029A": digits and A, always ending in A. Its
// complexity is the minimal number of human keystrokes that types it through
// a robot chain, times the number formed by its digits (029A → 29).
//
// Run solves one puzzle part: it builds a fresh chain and memo table for the
// part's number of directional keypads and sums every code's score.
//
//	codes, _ := complexity.ParseCodes(os.Stdin)
//	for _, part := range complexity.Parts() {
//		report, _ := complexity.Run(ctx, codes, part)
//		fmt.Println(part.Name, report.Total)
//	}
//
// Scores are traced with OpenTelemetry (tracer "keychain/complexity"); with no
// provider installed the global no-op tracer is used.
//
// Errors:
//
//   - *ParseError wrapping ErrEmptyCode, ErrInvalidSymbol, ErrMissingActivate
//     or ErrValueOverflow, with the offending line number and text.
//   - ErrScoreOverflow: a score or the running total does not fit in an int64.
package complexity
