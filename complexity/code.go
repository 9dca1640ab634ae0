package complexity

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/keychain/keypad"
)

// Sentinel errors for code validation.
var (
	// ErrEmptyCode indicates a code with no symbols.
	ErrEmptyCode = errors.New("complexity: empty code")
	// ErrInvalidSymbol indicates a symbol outside 0–9 and A.
	ErrInvalidSymbol = errors.New("complexity: invalid symbol")
	// ErrMissingActivate indicates a code that does not end in A.
	ErrMissingActivate = errors.New("complexity: code must end with A")
	// ErrValueOverflow indicates the digits do not fit in an int64.
	ErrValueOverflow = errors.New("complexity: numeric value overflows")
)

// ParseError reports a malformed code and where it was read.
type ParseError struct {
	Line int    // 1-based input line; 0 when parsed outside a file
	Text string // the offending line
	Err  error  // one of the sentinel errors above
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("complexity: code %q: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("complexity: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Code is one validated door code.
type Code struct {
	Text  string          // the code as typed, e.g. "029A"
	Keys  keypad.Sequence // Text as numeric-keypad keys
	Value int64           // the number formed by the digits; 0 for "A"
	Line  int             // source line, 0 if not read from input
}

// ParseCode validates a single code.
func ParseCode(text string) (Code, error) {
	return parseCode(0, text)
}

func parseCode(line int, text string) (Code, error) {
	fail := func(err error) (Code, error) {
		return Code{}, &ParseError{Line: line, Text: text, Err: err}
	}
	if text == "" {
		return fail(ErrEmptyCode)
	}
	numeric := keypad.NumericLayout()
	keys := make(keypad.Sequence, 0, len(text))
	var digits strings.Builder
	for _, r := range text {
		k, err := keypad.ParseKey(r)
		if err != nil || !numeric.Has(k) {
			return fail(fmt.Errorf("%w %q", ErrInvalidSymbol, r))
		}
		if k.IsDigit() {
			digits.WriteByte(byte(k))
		}
		keys = append(keys, k)
	}
	if keys[len(keys)-1] != keypad.KeyActivate {
		return fail(ErrMissingActivate)
	}

	var value int64
	if digits.Len() > 0 {
		v, err := strconv.ParseInt(digits.String(), 10, 64)
		if err != nil {
			return fail(fmt.Errorf("%w: %s", ErrValueOverflow, digits.String()))
		}
		value = v
	}

	return Code{Text: text, Keys: keys, Value: value, Line: line}, nil
}

// ParseCodes reads one code per line. Surrounding whitespace is trimmed and
// blank lines are skipped. The first malformed line stops parsing with a
// *ParseError.
func ParseCodes(r io.Reader) ([]Code, error) {
	var out []Code
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		c, err := parseCode(line, text)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("complexity: reading codes: %w", err)
	}
	return out, nil
}
