package contract

import (
	"strconv"

	"qfund/sdk"
)

// -----------------------------------------------------------------------------
// Proposal records + id sequence
// -----------------------------------------------------------------------------

// getProposalSeq reads the id counter, defaulting to zero. Counters persist
// as decimal strings so host tooling can read them without a decoder.
func getProposalSeq(state sdk.State) uint64 {
	ptr := state.Get(proposalSeqKey())
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setProposalSeq stores the counter back as a decimal string.
func setProposalSeq(state sdk.State, n uint64) {
	state.Set(proposalSeqKey(), strconv.FormatUint(n, 10))
}

// saveProposal persists a proposal record under its id key.
func saveProposal(state sdk.State, p *Proposal) {
	state.Set(proposalKey(p.ID), string(encodeProposal(p)))
}

// loadProposal decodes one proposal or reports not found.
func loadProposal(state sdk.State, id uint64) (*Proposal, error) {
	ptr := state.Get(proposalKey(id))
	if ptr == nil || *ptr == "" {
		return nil, ErrProposalNotFound
	}
	return decodeProposal([]byte(*ptr))
}

// loadAllProposals walks ids 1..seq in order. Ids are dense and never
// deleted, so the counter is the complete index.
func loadAllProposals(state sdk.State) ([]*Proposal, error) {
	seq := getProposalSeq(state)
	out := make([]*Proposal, 0, seq)
	for id := uint64(1); id <= seq; id++ {
		p, err := loadProposal(state, id)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
