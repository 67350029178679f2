package contract

import (
	"math"

	"github.com/holiman/uint256"

	"qfund/sdk"
)

// RawGrant is the per-proposal snapshot the matching engine consumes: the
// individual contribution amounts plus their already-summed total.
type RawGrant struct {
	FundAddress        sdk.Address
	Funds              []uint64
	CollectedVoteFunds uint64
}

// Grant is one proposal's computed payout share.
type Grant struct {
	FundAddress        sdk.Address
	Match              uint64
	CollectedVoteFunds uint64
}

// calculateMatches dispatches on the configured algorithm. Only CLR exists
// today; any other selector is a hard error rather than a silent default.
func calculateMatches(alg Algorithm, grants []RawGrant, budget uint64) ([]Grant, uint64, error) {
	switch alg {
	case AlgorithmCLR:
		return calculateCLR(grants, budget)
	default:
		return nil, 0, ErrUnknownAlgorithm
	}
}

// calculateCLR implements capital-constrained liberal radicalism over exact
// integers. For each proposal raw = (Σ⌊√cᵢ⌋)² − Σcᵢ; when the raw matches
// exceed the budget every match scales by ⌊raw·budget/totalRaw⌋ and the
// floor residue joins the leftover, keeping Σmatch + leftover == budget
// without a cross-proposal tie-break. All intermediates are 256-bit wide so
// no contribution multiset can overflow.
func calculateCLR(grants []RawGrant, budget uint64) ([]Grant, uint64, error) {
	budget256 := uint256.NewInt(budget)

	raws := make([]*uint256.Int, len(grants))
	totalRaw := uint256.NewInt(0)
	for i, g := range grants {
		raws[i] = rawQuadraticMatch(g.Funds)
		totalRaw.Add(totalRaw, raws[i])
	}

	out := make([]Grant, len(grants))
	leftover := uint256.NewInt(0)

	if totalRaw.Cmp(budget256) <= 0 {
		// unconstrained: everyone gets the full computed subsidy
		for i, g := range grants {
			out[i] = Grant{
				FundAddress:        g.FundAddress,
				Match:              raws[i].Uint64(),
				CollectedVoteFunds: g.CollectedVoteFunds,
			}
		}
		leftover.Sub(budget256, totalRaw)
	} else {
		distributed := uint256.NewInt(0)
		scaled := new(uint256.Int)
		for i, g := range grants {
			// match = floor(raw * budget / totalRaw); numerator stays exact
			// in 256 bits until the single final division
			scaled.Mul(raws[i], budget256)
			scaled.Div(scaled, totalRaw)
			out[i] = Grant{
				FundAddress:        g.FundAddress,
				Match:              scaled.Uint64(),
				CollectedVoteFunds: g.CollectedVoteFunds,
			}
			distributed.Add(distributed, scaled)
		}
		// floor-rounding residue, always >= 0 and < len(grants)
		leftover.Sub(budget256, distributed)
	}

	if !leftover.IsUint64() {
		return nil, 0, ErrAmountOverflow
	}
	return out, leftover.Uint64(), nil
}

// rawQuadraticMatch computes (Σ⌊√cᵢ⌋)² − Σcᵢ, clamped at zero. The floor in
// the square roots can pull the squared sum below the plain sum (a single
// contribution of 2 gives 1² − 2), and a lone contributor has no one to be
// matched against, so the clamp is part of the formula rather than an
// error case.
func rawQuadraticMatch(funds []uint64) *uint256.Int {
	sumSqrt := uint256.NewInt(0)
	sum := uint256.NewInt(0)
	tmp := new(uint256.Int)
	for _, f := range funds {
		tmp.SetUint64(f)
		sum.Add(sum, tmp)
		sumSqrt.Add(sumSqrt, tmp.Sqrt(tmp))
	}
	raw := new(uint256.Int).Mul(sumSqrt, sumSqrt)
	if raw.Cmp(sum) <= 0 {
		return uint256.NewInt(0)
	}
	return raw.Sub(raw, sum)
}

// checkedAdd guards the running collected-funds counters; the matching math
// itself is overflow-free by width.
func checkedAdd(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, ErrAmountOverflow
	}
	return a + b, nil
}
