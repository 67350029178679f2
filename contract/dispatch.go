package contract

import (
	"fmt"

	"qfund/sdk"
)

// Action names for the string-routed call surface.
const (
	ActionInstantiate         = "instantiate"
	ActionCreateProposal      = "proposal_create"
	ActionVoteProposal        = "proposal_vote"
	ActionTriggerDistribution = "trigger_distribution"

	QueryProposalByID = "proposal_by_id"
	QueryAllProposals = "all_proposals"
)

// Runner is the host-facing entry layer: it routes action strings to the
// typed handlers and wraps every execute in a buffered transaction, so a
// failing call leaves no partial writes behind no matter where it failed.
type Runner struct {
	state  sdk.State
	bank   sdk.Bank
	logger sdk.Logger
}

func NewRunner(state sdk.State, bank sdk.Bank, logger sdk.Logger) *Runner {
	if logger == nil {
		logger = sdk.NopLogger{}
	}
	return &Runner{state: state, bank: bank, logger: logger}
}

// Execute runs one state-changing call. The JSON response is returned to the
// caller; on error the buffered writes are discarded and the failure reason
// surfaces verbatim.
func (r *Runner) Execute(env sdk.Env, info sdk.MessageInfo, action, payload string) (string, error) {
	tx := sdk.NewTxState(r.state)
	c := New(tx, r.bank, r.logger)

	resp, err := r.execute(c, env, info, action, payload)
	if err != nil {
		tx.Discard()
		return "", err
	}
	tx.Commit()
	return resp, nil
}

func (r *Runner) execute(c *Contract, env sdk.Env, info sdk.MessageInfo, action, payload string) (string, error) {
	switch action {
	case ActionInstantiate:
		args, err := decodeInstantiateArgs(payload)
		if err != nil {
			return "", err
		}
		if err := c.Instantiate(env, info, args); err != nil {
			return "", err
		}
		return encodeOKResponse()

	case ActionCreateProposal:
		args, err := decodeCreateProposalArgs(payload)
		if err != nil {
			return "", err
		}
		id, err := c.CreateProposal(env, info, args)
		if err != nil {
			return "", err
		}
		return encodeIDResponse(id)

	case ActionVoteProposal:
		id, err := decodeVoteArgs(payload)
		if err != nil {
			return "", err
		}
		total, err := c.VoteProposal(env, info, id)
		if err != nil {
			return "", err
		}
		return encodeCollectedResponse(total)

	case ActionTriggerDistribution:
		if err := c.TriggerDistribution(env, info); err != nil {
			return "", err
		}
		return encodeOKResponse()

	default:
		return "", fmt.Errorf("unknown action %q", action)
	}
}

// Query answers read-only calls straight off the backing state.
func (r *Runner) Query(action, payload string) (string, error) {
	c := New(r.state, r.bank, r.logger)
	switch action {
	case QueryProposalByID:
		id, err := decodeVoteArgs(payload)
		if err != nil {
			return "", err
		}
		p, err := c.QueryProposal(id)
		if err != nil {
			return "", err
		}
		return encodeProposalJSON(p)

	case QueryAllProposals:
		proposals, err := c.QueryAllProposals()
		if err != nil {
			return "", err
		}
		return encodeProposalListJSON(proposals)

	default:
		return "", fmt.Errorf("unknown query %q", action)
	}
}
