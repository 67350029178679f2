package contract

import "qfund/sdk"

// Algorithm selects the matching formula applied at distribution time. Only
// CLR is implemented; the selector stays in config so a governance upgrade
// can add variants without a state migration.
type Algorithm uint8

const (
	AlgorithmUnspecified Algorithm = 0
	// AlgorithmCLR is capital-constrained liberal radicalism: quadratic
	// matches scaled down proportionally when they exceed the budget.
	AlgorithmCLR Algorithm = 1
)

// String serializes the algorithm enum into the short codes used in payloads.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmCLR:
		return "clr"
	default:
		return "unspecified"
	}
}

// AlgorithmFromString parses the payload code back into the enum.
func AlgorithmFromString(s string) Algorithm {
	if s == "clr" {
		return AlgorithmCLR
	}
	return AlgorithmUnspecified
}

// Expiration is a half-open period bound on block height and/or unix time.
// A zero field is ignored; at least one must be set.
type Expiration struct {
	AtHeight uint64
	AtTime   int64
}

// IsExpired reports whether the period has ended at the given env snapshot.
func (e Expiration) IsExpired(env sdk.Env) bool {
	if e.AtHeight > 0 && env.BlockHeight >= e.AtHeight {
		return true
	}
	if e.AtTime > 0 && env.BlockTime >= e.AtTime {
		return true
	}
	return false
}

// IsSet reports whether any bound was configured at all.
func (e Expiration) IsSet() bool {
	return e.AtHeight > 0 || e.AtTime > 0
}

// Config is the immutable singleton written once at instantiation.
type Config struct {
	Admin           sdk.Address
	LeftoverAddr    sdk.Address
	Budget          sdk.Coin
	ProposalPeriod  Expiration
	VotingPeriod    Expiration
	CreateWhitelist []sdk.Address // empty slice means open creation
	VoteWhitelist   []sdk.Address // empty slice means open voting
	Algorithm       Algorithm
}

// isCreateAllowed gates proposal creation when a whitelist is configured.
func (c *Config) isCreateAllowed(addr sdk.Address) bool {
	return addrListed(c.CreateWhitelist, addr)
}

// isVoteAllowed gates voting when a whitelist is configured.
func (c *Config) isVoteAllowed(addr sdk.Address) bool {
	return addrListed(c.VoteWhitelist, addr)
}

func addrListed(wl []sdk.Address, addr sdk.Address) bool {
	if len(wl) == 0 {
		return true
	}
	for _, w := range wl {
		if w == addr {
			return true
		}
	}
	return false
}

// Proposal is created once during the proposal period. Only CollectedFunds
// mutates afterwards, and only through the vote path.
type Proposal struct {
	ID             uint64
	Title          string
	Description    string
	Metadata       []byte // opaque client blob, may be empty
	FundAddress    sdk.Address
	CollectedFunds uint64
}

// Vote records one contribution. A second vote by the same address on the
// same proposal is rejected, never merged.
type Vote struct {
	ProposalID uint64
	Voter      sdk.Address
	Fund       sdk.Coin
}

// InstantiateArgs carries the one-time setup parameters.
type InstantiateArgs struct {
	Admin           sdk.Address
	LeftoverAddr    sdk.Address
	BudgetDenom     sdk.Denom
	BudgetAmount    uint64
	ProposalPeriod  Expiration
	VotingPeriod    Expiration
	CreateWhitelist []sdk.Address
	VoteWhitelist   []sdk.Address
	Algorithm       Algorithm
}

// CreateProposalArgs mirrors the proposal_create payload.
type CreateProposalArgs struct {
	Title       string
	Description string
	Metadata    []byte
	FundAddress sdk.Address
}
