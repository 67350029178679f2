package contract

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawQuadraticMatch(t *testing.T) {
	cases := []struct {
		name  string
		funds []uint64
		want  uint64
	}{
		{"no contributions", nil, 0},
		{"single contributor has no match", []uint64{100}, 0},
		{"floor sqrt can undercut the sum", []uint64{2}, 0},
		{"two equal contributors", []uint64{25, 25}, 50},
		{"five small contributions", []uint64{4, 4, 4, 4, 4}, 80},
		{"broad support beats concentration", []uint64{1, 1, 1, 1}, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := rawQuadraticMatch(tc.funds)
			require.True(t, got.IsUint64())
			assert.Equal(t, tc.want, got.Uint64())
		})
	}
}

func TestCLRSingleContributorNoMatch(t *testing.T) {
	grants := []RawGrant{
		{FundAddress: "hive:parks", Funds: []uint64{100}, CollectedVoteFunds: 100},
	}
	matched, leftover, err := calculateCLR(grants, 1000)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, uint64(0), matched[0].Match)
	assert.Equal(t, uint64(100), matched[0].CollectedVoteFunds)
	assert.Equal(t, uint64(1000), leftover)
}

func TestCLRTwoEqualContributors(t *testing.T) {
	grants := []RawGrant{
		{FundAddress: "hive:parks", Funds: []uint64{25, 25}, CollectedVoteFunds: 50},
	}
	matched, leftover, err := calculateCLR(grants, 1000)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, uint64(50), matched[0].Match)
	assert.Equal(t, uint64(950), leftover)
}

func TestCLRCapitalConstrainedScaling(t *testing.T) {
	// raw(p1) = (2*5)^2 - 20 = 80, raw(p2) = (5+4)^2 - 41 = 40
	grants := []RawGrant{
		{FundAddress: "hive:p1", Funds: []uint64{4, 4, 4, 4, 4}, CollectedVoteFunds: 20},
		{FundAddress: "hive:p2", Funds: []uint64{25, 16}, CollectedVoteFunds: 41},
	}
	matched, leftover, err := calculateCLR(grants, 60)
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, uint64(40), matched[0].Match)
	assert.Equal(t, uint64(20), matched[1].Match)
	assert.Equal(t, uint64(0), leftover)
}

func TestCLRZeroProposals(t *testing.T) {
	matched, leftover, err := calculateCLR(nil, 777)
	require.NoError(t, err)
	assert.Empty(t, matched)
	assert.Equal(t, uint64(777), leftover)
}

func TestCLRUnfundedProposalIsLegal(t *testing.T) {
	grants := []RawGrant{
		{FundAddress: "hive:p1", Funds: nil, CollectedVoteFunds: 0},
		{FundAddress: "hive:p2", Funds: []uint64{9, 9}, CollectedVoteFunds: 18},
	}
	matched, leftover, err := calculateCLR(grants, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), matched[0].Match)
	assert.Equal(t, uint64(18), matched[1].Match)
	assert.Equal(t, uint64(82), leftover)
}

// TestCLRSumInvariant hammers random contribution multisets and budgets and
// checks the budget is conserved exactly in both the constrained and the
// unconstrained branch.
func TestCLRSumInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 500; iter++ {
		nProposals := rng.Intn(9)
		grants := make([]RawGrant, 0, nProposals)
		for p := 0; p < nProposals; p++ {
			nVotes := rng.Intn(11)
			funds := make([]uint64, 0, nVotes)
			var collected uint64
			for v := 0; v < nVotes; v++ {
				amt := uint64(rng.Int63n(1_000_000_000_000)) + 1
				funds = append(funds, amt)
				collected += amt
			}
			grants = append(grants, RawGrant{
				FundAddress:        "hive:prop",
				Funds:              funds,
				CollectedVoteFunds: collected,
			})
		}
		budget := uint64(rng.Int63n(1_000_000_000_000_000))

		matched, leftover, err := calculateCLR(grants, budget)
		require.NoError(t, err)
		var sum uint64
		for _, g := range matched {
			sum += g.Match
		}
		require.Equal(t, budget, sum+leftover,
			"iter %d: %d matched + %d leftover != budget %d", iter, sum, leftover, budget)
	}
}

func TestCalculateMatchesUnknownAlgorithm(t *testing.T) {
	_, _, err := calculateMatches(AlgorithmUnspecified, nil, 10)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestCheckedAdd(t *testing.T) {
	got, err := checkedAdd(3, 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got)

	_, err = checkedAdd(^uint64(0), 1)
	assert.ErrorIs(t, err, ErrAmountOverflow)
}
