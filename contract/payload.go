package contract

import (
	"fmt"

	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"

	"qfund/sdk"
)

// Call payloads and query responses travel as JSON. Decoding goes through
// tinyjson's lexer directly instead of reflection so the ABI stays cheap on
// constrained runtimes and unknown fields are skipped, not errors.

// decodeInstantiateArgs unpacks the instantiate payload.
func decodeInstantiateArgs(payload string) (InstantiateArgs, error) {
	in := jlexer.Lexer{Data: []byte(payload)}
	args := InstantiateArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "admin":
			args.Admin = sdk.Address(in.String())
		case "leftover":
			args.LeftoverAddr = sdk.Address(in.String())
		case "budget_denom":
			args.BudgetDenom = sdk.Denom(in.String())
		case "budget_amount":
			args.BudgetAmount = in.Uint64()
		case "proposal_period":
			args.ProposalPeriod = readExpirationJSON(&in)
		case "voting_period":
			args.VotingPeriod = readExpirationJSON(&in)
		case "create_whitelist":
			args.CreateWhitelist = readAddressListJSON(&in)
		case "vote_whitelist":
			args.VoteWhitelist = readAddressListJSON(&in)
		case "algorithm":
			args.Algorithm = AlgorithmFromString(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	in.Consumed()
	if err := in.Error(); err != nil {
		return InstantiateArgs{}, fmt.Errorf("instantiate payload: %w", err)
	}
	return args, nil
}

// decodeCreateProposalArgs unpacks the proposal_create payload.
func decodeCreateProposalArgs(payload string) (CreateProposalArgs, error) {
	in := jlexer.Lexer{Data: []byte(payload)}
	args := CreateProposalArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "title":
			args.Title = in.String()
		case "description":
			args.Description = in.String()
		case "metadata":
			args.Metadata = in.Bytes()
		case "fund_address":
			args.FundAddress = sdk.Address(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	in.Consumed()
	if err := in.Error(); err != nil {
		return CreateProposalArgs{}, fmt.Errorf("proposal payload: %w", err)
	}
	return args, nil
}

// decodeVoteArgs expects {"proposal_id":N}.
func decodeVoteArgs(payload string) (uint64, error) {
	in := jlexer.Lexer{Data: []byte(payload)}
	var id uint64
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "proposal_id", "id":
			id = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	in.Consumed()
	if err := in.Error(); err != nil {
		return 0, fmt.Errorf("vote payload: %w", err)
	}
	return id, nil
}

func readExpirationJSON(in *jlexer.Lexer) Expiration {
	e := Expiration{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "height":
			e.AtHeight = in.Uint64()
		case "time":
			e.AtTime = in.Int64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	return e
}

func readAddressListJSON(in *jlexer.Lexer) []sdk.Address {
	var out []sdk.Address
	in.Delim('[')
	for !in.IsDelim(']') {
		out = append(out, sdk.Address(in.String()))
		in.WantComma()
	}
	in.Delim(']')
	return out
}

// -----------------------------------------------------------------------------
// Response encoding
// -----------------------------------------------------------------------------

func writeProposalJSON(out *jwriter.Writer, p *Proposal) {
	out.RawByte('{')
	out.RawString(`"id":`)
	out.Uint64(p.ID)
	out.RawString(`,"title":`)
	out.String(p.Title)
	out.RawString(`,"description":`)
	out.String(p.Description)
	if len(p.Metadata) > 0 {
		out.RawString(`,"metadata":`)
		out.Base64Bytes(p.Metadata)
	}
	out.RawString(`,"fund_address":`)
	out.String(p.FundAddress.String())
	out.RawString(`,"collected_funds":`)
	out.Uint64(p.CollectedFunds)
	out.RawByte('}')
}

// encodeProposalJSON renders one proposal for the proposal_by_id query.
func encodeProposalJSON(p *Proposal) (string, error) {
	out := jwriter.Writer{}
	writeProposalJSON(&out, p)
	return buildString(&out)
}

// encodeProposalListJSON renders the all_proposals response.
func encodeProposalListJSON(proposals []*Proposal) (string, error) {
	out := jwriter.Writer{}
	out.RawString(`{"proposals":[`)
	for i, p := range proposals {
		if i > 0 {
			out.RawByte(',')
		}
		writeProposalJSON(&out, p)
	}
	out.RawString(`]}`)
	return buildString(&out)
}

// encodeIDResponse renders {"proposal_id":N} for proposal_create.
func encodeIDResponse(id uint64) (string, error) {
	out := jwriter.Writer{}
	out.RawString(`{"proposal_id":`)
	out.Uint64(id)
	out.RawByte('}')
	return buildString(&out)
}

// encodeCollectedResponse renders {"collected_funds":N} for proposal_vote.
func encodeCollectedResponse(total uint64) (string, error) {
	out := jwriter.Writer{}
	out.RawString(`{"collected_funds":`)
	out.Uint64(total)
	out.RawByte('}')
	return buildString(&out)
}

// encodeOKResponse is the bare success ack for instantiate and distribution.
func encodeOKResponse() (string, error) {
	out := jwriter.Writer{}
	out.RawString(`{"ok":true}`)
	return buildString(&out)
}

func buildString(out *jwriter.Writer) (string, error) {
	b, err := out.BuildBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}
