package complexity_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keychain/complexity"
)

// TestParseCode_Valid checks keys and numeric values.
func TestParseCode_Valid(t *testing.T) {
	cases := []struct {
		text  string
		value int64
	}{
		{"029A", 29},
		{"980A", 980},
		{"A", 0},
		{"000A", 0},
		{"1A2A", 12},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			c, err := complexity.ParseCode(tc.text)
			require.NoError(t, err)
			require.Equal(t, tc.text, c.Text)
			require.Equal(t, tc.text, c.Keys.String())
			require.Equal(t, tc.value, c.Value)
			require.Zero(t, c.Line)
		})
	}
}

// TestParseCode_Errors checks each validation failure.
func TestParseCode_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", complexity.ErrEmptyCode},
		{"Letter", "02BA", complexity.ErrInvalidSymbol},
		{"Direction", "0^A", complexity.ErrInvalidSymbol},
		{"Lowercase", "029a", complexity.ErrInvalidSymbol},
		{"NoActivate", "029", complexity.ErrMissingActivate},
		{"Overflow", "99999999999999999999A", complexity.ErrValueOverflow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := complexity.ParseCode(tc.text)
			require.ErrorIs(t, err, tc.err)
			var pe *complexity.ParseError
			require.True(t, errors.As(err, &pe))
			require.Equal(t, tc.text, pe.Text)
		})
	}
}

// TestParseCodes reads a block with blank lines and padding.
func TestParseCodes(t *testing.T) {
	in := "029A\n980A\n\n  179A  \n456A\n379A\n"
	cs, err := complexity.ParseCodes(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, cs, 5)
	require.Equal(t, "179A", cs[2].Text)
	require.Equal(t, 4, cs[2].Line)
	require.Equal(t, int64(379), cs[4].Value)
}

// TestParseCodes_ReportsLine checks the offending line is identified.
func TestParseCodes_ReportsLine(t *testing.T) {
	_, err := complexity.ParseCodes(strings.NewReader("029A\n98X0A\n179A\n"))
	require.ErrorIs(t, err, complexity.ErrInvalidSymbol)

	var pe *complexity.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 2, pe.Line)
	require.Equal(t, "98X0A", pe.Text)
	require.Contains(t, err.Error(), "line 2")
}

// TestParseCodes_Empty returns no codes and no error.
func TestParseCodes_Empty(t *testing.T) {
	cs, err := complexity.ParseCodes(strings.NewReader("\n\n"))
	require.NoError(t, err)
	require.Empty(t, cs)
}
