package contract

import (
	"fmt"

	"qfund/sdk"
)

// Events are terse pipe-delimited lines so indexers can follow the contract
// without diffing storage. One line per state transition, fields keyed by
// short tags.

// emitInit announces the pool parameters right after instantiation.
func (c *Contract) emitInit(cfg *Config, by sdk.Address) {
	c.logger.Log(fmt.Sprintf(
		"init|by:%s|budget:%s|alg:%s",
		by.String(),
		cfg.Budget.String(),
		cfg.Algorithm.String(),
	))
}

// emitProposalCreated pings explorers with the fresh id and title.
func (c *Contract) emitProposalCreated(p *Proposal, by sdk.Address) {
	c.logger.Log(fmt.Sprintf(
		"pc|id:%d|by:%s|title:%s",
		p.ID,
		by.String(),
		p.Title,
	))
}

// emitVoteCast includes amount and running total so collected funds can be
// replayed from logs only.
func (c *Contract) emitVoteCast(v *Vote, newTotal uint64) {
	c.logger.Log(fmt.Sprintf(
		"v|id:%d|by:%s|amt:%d|total:%d",
		v.ProposalID,
		v.Voter.String(),
		v.Fund.Amount,
		newTotal,
	))
}

// emitDistribution summarizes the payout batch in one line.
func (c *Contract) emitDistribution(proposals, transfers int, leftover uint64) {
	c.logger.Log(fmt.Sprintf(
		"dist|props:%d|transfers:%d|leftover:%d",
		proposals,
		transfers,
		leftover,
	))
}
