package contract

import "qfund/sdk"

// -----------------------------------------------------------------------------
// Vote records + per-proposal voter index
// -----------------------------------------------------------------------------

// hasVoted checks the composite key so duplicate contributions get rejected
// before any write happens.
func hasVoted(state sdk.State, proposalID uint64, voter sdk.Address) bool {
	ptr := state.Get(voteKey(proposalID, voter))
	return ptr != nil && *ptr != ""
}

// saveVote persists the record and appends the voter to the proposal's index
// list. The index gives distribution a deterministic iteration order without
// a range scan, which the host kv does not offer.
func saveVote(state sdk.State, v *Vote) error {
	state.Set(voteKey(v.ProposalID, v.Voter), string(encodeVote(v)))

	voters, err := loadVoterIndex(state, v.ProposalID)
	if err != nil {
		return err
	}
	voters = append(voters, v.Voter)
	state.Set(votersKey(v.ProposalID), string(encodeAddressList(voters)))
	return nil
}

// loadVoterIndex returns voters in the order they voted; empty when none.
func loadVoterIndex(state sdk.State, proposalID uint64) ([]sdk.Address, error) {
	ptr := state.Get(votersKey(proposalID))
	if ptr == nil || *ptr == "" {
		return nil, nil
	}
	return decodeAddressList([]byte(*ptr))
}

// loadVotesForProposal resolves the index into full vote records.
func loadVotesForProposal(state sdk.State, proposalID uint64) ([]*Vote, error) {
	voters, err := loadVoterIndex(state, proposalID)
	if err != nil {
		return nil, err
	}
	out := make([]*Vote, 0, len(voters))
	for _, voter := range voters {
		ptr := state.Get(voteKey(proposalID, voter))
		if ptr == nil || *ptr == "" {
			continue
		}
		v, err := decodeVote([]byte(*ptr))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
