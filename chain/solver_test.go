package chain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/keychain/chain"
	"github.com/katalvlaran/keychain/keypad"
)

var sampleCodes = []string{"029A", "980A", "179A", "456A", "379A"}

// SolverSuite exercises Solver on the door chain with two directional keypads.
type SolverSuite struct {
	suite.Suite
	chain  *chain.Chain
	solver *chain.Solver
}

func (s *SolverSuite) SetupTest() {
	c, err := chain.New(2)
	s.Require().NoError(err)
	s.chain = c
	s.solver = chain.NewSolver(c)
}

// TestSampleLengths pins the per-code minimal lengths of the sample codes.
func (s *SolverSuite) TestSampleLengths() {
	want := map[string]int64{"029A": 68, "980A": 60, "179A": 68, "456A": 64, "379A": 64}
	for _, code := range sampleCodes {
		n, err := s.solver.Solve(keypad.MustSequence(code))
		s.Require().NoError(err)
		s.Equal(want[code], n, "code %s", code)
	}
	s.Equal(33, s.solver.Stats().Entries)
}

// TestBothOrderingsExplored shows the two equal-length orderings of 3→7 cost
// differently one layer out, and that the solver takes the cheaper.
func (s *SolverSuite) TestBothOrderingsExplored() {
	tbl, err := s.chain.Layer(0)
	s.Require().NoError(err)
	cands, err := tbl.Candidates(keypad.Key3, keypad.Key7)
	s.Require().NoError(err)
	s.Require().Len(cands, 2)
	s.Require().Equal(len(cands[0]), len(cands[1]))

	horizontal, err := s.solver.Cost(1, cands[0])
	s.Require().NoError(err)
	vertical, err := s.solver.Cost(1, cands[1])
	s.Require().NoError(err)
	s.Equal(int64(23), horizontal)
	s.Equal(int64(27), vertical)

	// 3 then 7: the first chunk is A→3, the second must use the cheaper 3→7.
	toThree, err := s.solver.Cost(1, keypad.MustSequence("^A"))
	s.Require().NoError(err)
	total, err := s.solver.Solve(keypad.MustSequence("37"))
	s.Require().NoError(err)
	s.Equal(toThree+min(horizontal, vertical), total)
}

// TestFixedPrecedenceIsWrong costs 379A always preferring the vertical-first
// candidate; the result is worse than the exhaustive solver's.
func (s *SolverSuite) TestFixedPrecedenceIsWrong() {
	code := keypad.MustSequence("379A")
	numeric, _ := s.chain.Layer(0)

	var greedy int64
	current := keypad.KeyActivate
	for _, k := range code {
		cands, err := numeric.Candidates(current, k)
		s.Require().NoError(err)
		n, err := s.solver.Cost(1, cands[len(cands)-1])
		s.Require().NoError(err)
		greedy += n
		current = k
	}
	best, err := s.solver.Solve(code)
	s.Require().NoError(err)
	s.Equal(int64(64), best)
	s.Greater(greedy, best)
}

// TestCostIdempotent checks repeated calls agree and the second is a memo hit.
func (s *SolverSuite) TestCostIdempotent() {
	chunk := keypad.MustSequence("<<^^A")
	first, err := s.solver.Cost(1, chunk)
	s.Require().NoError(err)
	before := s.solver.Stats()
	second, err := s.solver.Cost(1, chunk)
	s.Require().NoError(err)
	after := s.solver.Stats()

	s.Equal(first, second)
	s.Equal(before.Entries, after.Entries)
	s.Equal(before.Hits+1, after.Hits)
	s.Equal(before.Misses, after.Misses)
}

// TestBaseCase checks depth L returns the literal length.
func (s *SolverSuite) TestBaseCase() {
	n, err := s.solver.Cost(s.chain.Len(), keypad.MustSequence("<A"))
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	n, err = s.solver.Cost(2, keypad.MustSequence("<A"))
	s.Require().NoError(err)
	s.Equal(int64(8), n)
}

// TestActivateOnlyAndEmpty covers the degenerate codes.
func (s *SolverSuite) TestActivateOnlyAndEmpty() {
	n, err := s.solver.Solve(keypad.MustSequence("A"))
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	n, err = s.solver.Solve(nil)
	s.Require().NoError(err)
	s.Zero(n)
}

// TestErrors covers depth and key domain violations.
func (s *SolverSuite) TestErrors() {
	_, err := s.solver.Cost(-1, keypad.MustSequence("A"))
	s.ErrorIs(err, chain.ErrDepthOutOfRange)
	_, err = s.solver.Cost(s.chain.Len()+1, keypad.MustSequence("A"))
	s.ErrorIs(err, chain.ErrDepthOutOfRange)

	_, err = s.solver.Solve(keypad.MustSequence("1^A"))
	s.ErrorIs(err, keypad.ErrUnknownKey)
	_, err = s.solver.Cost(1, keypad.MustSequence("5A"))
	s.ErrorIs(err, keypad.ErrUnknownKey)
}

// TestExpandMatchesSolve checks the materialised sequence has the solved
// length and types the code back when replayed.
func (s *SolverSuite) TestExpandMatchesSolve() {
	for _, code := range append(sampleCodes, "A") {
		seq := keypad.MustSequence(code)
		n, err := s.solver.Solve(seq)
		s.Require().NoError(err)
		presses, err := s.solver.Expand(seq)
		s.Require().NoError(err)
		s.Len(presses, int(n), "code %s", code)

		typed, err := chain.Replay(s.chain, presses)
		s.Require().NoError(err)
		s.Equal(code, typed.String())
	}
}

// TestExpand_Sample pins one optimal sequence for 029A.
func (s *SolverSuite) TestExpand_Sample() {
	presses, err := s.solver.Expand(keypad.MustSequence("029A"))
	s.Require().NoError(err)
	s.Equal("<vA<AA>>^AvAA<^A>Av<<A>>^AvA^A<vA>^Av<<A>^A>AAvA^Av<<A>A>^AAAvA<^A>A", presses.String())
}

// TestExpand_TooLong checks the literal string is refused past the limit.
func (s *SolverSuite) TestExpand_TooLong() {
	small := chain.NewSolver(s.chain, chain.WithMaxExpansion(10))
	_, err := small.Expand(keypad.MustSequence("029A"))
	s.ErrorIs(err, chain.ErrExpansionTooLong)

	deep, err := chain.New(25)
	s.Require().NoError(err)
	_, err = chain.NewSolver(deep).Expand(keypad.MustSequence("029A"))
	s.ErrorIs(err, chain.ErrExpansionTooLong)
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

// TestSolve_LowerBound checks Solve(code) ≥ len(code) across chain lengths.
func TestSolve_LowerBound(t *testing.T) {
	for n := 0; n <= 6; n++ {
		c, err := chain.New(n)
		require.NoError(t, err)
		s := chain.NewSolver(c)
		for _, code := range append(sampleCodes, "A", "0A", "7A", "3A9A") {
			got, err := s.Solve(keypad.MustSequence(code))
			require.NoError(t, err)
			require.GreaterOrEqual(t, got, int64(len(code)), "code %s, %d directional", code, n)
		}
	}
}

// TestSolve_DeepChain solves the sample codes through 25 directional keypads.
func TestSolve_DeepChain(t *testing.T) {
	c, err := chain.New(25)
	require.NoError(t, err)
	s := chain.NewSolver(c)

	want := map[string]int64{
		"029A": 82050061710,
		"980A": 72242026390,
		"179A": 81251039228,
		"456A": 80786362258,
		"379A": 77985628636,
	}
	start := time.Now()
	for _, code := range sampleCodes {
		got, err := s.Solve(keypad.MustSequence(code))
		require.NoError(t, err)
		require.Equal(t, want[code], got, "code %s", code)
	}
	require.Less(t, time.Since(start), time.Second)
	require.Equal(t, 378, s.Stats().Entries)
}

// TestSolve_ShallowChains pins lengths for chains shorter than the door chain.
func TestSolve_ShallowChains(t *testing.T) {
	cases := []struct {
		directional int
		want        []int64
	}{
		{0, []int64{12, 12, 14, 12, 14}},
		{1, []int64{28, 26, 28, 26, 28}},
	}
	for _, tc := range cases {
		c, err := chain.New(tc.directional)
		require.NoError(t, err)
		s := chain.NewSolver(c)
		for i, code := range sampleCodes {
			got, err := s.Solve(keypad.MustSequence(code))
			require.NoError(t, err)
			require.Equal(t, tc.want[i], got, "code %s, %d directional", code, tc.directional)
		}
	}
}
