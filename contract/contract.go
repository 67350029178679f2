package contract

import (
	"fmt"

	"qfund/sdk"
)

// Contract wires the matching-pool operations to their host collaborators.
// Handlers get the state explicitly instead of package globals so a caller
// controls transaction scoping (see Runner).
type Contract struct {
	state  sdk.State
	bank   sdk.Bank
	logger sdk.Logger
}

func New(state sdk.State, bank sdk.Bank, logger sdk.Logger) *Contract {
	if logger == nil {
		logger = sdk.NopLogger{}
	}
	return &Contract{state: state, bank: bank, logger: logger}
}

// extractBudgetCoin finds the attached coin matching the budget denom and
// rejects zero amounts. Extra coins in other denoms are a caller mistake.
func extractBudgetCoin(funds []sdk.Coin, denom sdk.Denom) (sdk.Coin, error) {
	var found *sdk.Coin
	for i := range funds {
		if funds[i].Denom == denom {
			found = &funds[i]
			continue
		}
		if funds[i].Amount > 0 {
			return sdk.Coin{}, fmt.Errorf("%w: attached %s, budget denom is %s",
				ErrWrongDenomination, funds[i].Denom, denom)
		}
	}
	if found == nil {
		return sdk.Coin{}, fmt.Errorf("%w: no %s attached", ErrWrongDenomination, denom)
	}
	if found.Amount == 0 {
		return sdk.Coin{}, ErrZeroAmount
	}
	return *found, nil
}

// Instantiate validates and stores the immutable config. The declared budget
// must actually be escrowed with this call; everything the later phases gate
// on is fixed here.
func (c *Contract) Instantiate(env sdk.Env, info sdk.MessageInfo, args InstantiateArgs) error {
	if isInitialized(c.state) {
		return ErrAlreadyInitialized
	}
	if args.Algorithm != AlgorithmCLR {
		return ErrUnknownAlgorithm
	}
	if args.BudgetAmount == 0 {
		return ErrZeroAmount
	}
	if !args.Admin.IsValid() || !args.LeftoverAddr.IsValid() {
		return ErrInvalidAddress
	}
	for _, wl := range [][]sdk.Address{args.CreateWhitelist, args.VoteWhitelist} {
		for _, addr := range wl {
			if !addr.IsValid() {
				return fmt.Errorf("%w: whitelist entry %s", ErrInvalidAddress, addr)
			}
		}
	}
	if !args.ProposalPeriod.IsSet() || !args.VotingPeriod.IsSet() {
		return fmt.Errorf("%w: period bounds required", ErrPeriodAlreadyExpired)
	}
	if args.ProposalPeriod.IsExpired(env) || args.VotingPeriod.IsExpired(env) {
		return ErrPeriodAlreadyExpired
	}

	attached, err := extractBudgetCoin(info.Funds, args.BudgetDenom)
	if err != nil {
		return err
	}
	if attached.Amount != args.BudgetAmount {
		return fmt.Errorf("%w: declared %d, attached %d",
			ErrBudgetMismatch, args.BudgetAmount, attached.Amount)
	}

	cfg := &Config{
		Admin:           args.Admin,
		LeftoverAddr:    args.LeftoverAddr,
		Budget:          sdk.NewCoin(args.BudgetDenom, args.BudgetAmount),
		ProposalPeriod:  args.ProposalPeriod,
		VotingPeriod:    args.VotingPeriod,
		CreateWhitelist: args.CreateWhitelist,
		VoteWhitelist:   args.VoteWhitelist,
		Algorithm:       args.Algorithm,
	}
	saveConfig(c.state, cfg)
	setProposalSeq(c.state, 0)

	c.emitInit(cfg, info.Sender)
	return nil
}

// CreateProposal registers a new proposal during the proposal period and
// returns the assigned id. Ids are dense and strictly increasing from 1.
func (c *Contract) CreateProposal(env sdk.Env, info sdk.MessageInfo, args CreateProposalArgs) (uint64, error) {
	cfg, err := loadConfig(c.state)
	if err != nil {
		return 0, err
	}
	if !cfg.isCreateAllowed(info.Sender) {
		return 0, ErrUnauthorized
	}
	if cfg.ProposalPeriod.IsExpired(env) {
		return 0, ErrProposalPeriodExpired
	}
	if !args.FundAddress.IsValid() {
		return 0, fmt.Errorf("%w: fund address %s", ErrInvalidAddress, args.FundAddress)
	}

	id := getProposalSeq(c.state) + 1
	setProposalSeq(c.state, id)
	p := &Proposal{
		ID:          id,
		Title:       args.Title,
		Description: args.Description,
		Metadata:    args.Metadata,
		FundAddress: args.FundAddress,
	}
	saveProposal(c.state, p)

	c.emitProposalCreated(p, info.Sender)
	return id, nil
}

// VoteProposal records a funded contribution toward a proposal and returns
// its new collected total. One vote per (proposal, voter); top-ups are
// rejected, not merged.
func (c *Contract) VoteProposal(env sdk.Env, info sdk.MessageInfo, proposalID uint64) (uint64, error) {
	cfg, err := loadConfig(c.state)
	if err != nil {
		return 0, err
	}
	if !cfg.isVoteAllowed(info.Sender) {
		return 0, ErrUnauthorized
	}
	if cfg.VotingPeriod.IsExpired(env) {
		return 0, ErrVotingPeriodExpired
	}
	fund, err := extractBudgetCoin(info.Funds, cfg.Budget.Denom)
	if err != nil {
		return 0, err
	}
	p, err := loadProposal(c.state, proposalID)
	if err != nil {
		return 0, err
	}
	if hasVoted(c.state, proposalID, info.Sender) {
		return 0, ErrDuplicateVote
	}

	p.CollectedFunds, err = checkedAdd(p.CollectedFunds, fund.Amount)
	if err != nil {
		return 0, err
	}
	saveProposal(c.state, p)
	vote := &Vote{ProposalID: proposalID, Voter: info.Sender, Fund: fund}
	if err := saveVote(c.state, vote); err != nil {
		return 0, err
	}

	c.emitVoteCast(vote, p.CollectedFunds)
	return p.CollectedFunds, nil
}

// TriggerDistribution runs the matching engine once after voting closed and
// emits the payout batch: matched plus collected funds per proposal, then
// the leftover. The persisted flag makes a second trigger fail instead of
// re-spending the budget.
func (c *Contract) TriggerDistribution(env sdk.Env, info sdk.MessageInfo) error {
	cfg, err := loadConfig(c.state)
	if err != nil {
		return err
	}
	if info.Sender != cfg.Admin {
		return ErrUnauthorized
	}
	if !cfg.VotingPeriod.IsExpired(env) {
		return ErrVotingPeriodNotExpired
	}
	if isDistributed(c.state) {
		return ErrAlreadyDistributed
	}

	proposals, err := loadAllProposals(c.state)
	if err != nil {
		return err
	}
	grants := make([]RawGrant, 0, len(proposals))
	for _, p := range proposals {
		votes, err := loadVotesForProposal(c.state, p.ID)
		if err != nil {
			return err
		}
		funds := make([]uint64, 0, len(votes))
		for _, v := range votes {
			funds = append(funds, v.Fund.Amount)
		}
		grants = append(grants, RawGrant{
			FundAddress:        p.FundAddress,
			Funds:              funds,
			CollectedVoteFunds: p.CollectedFunds,
		})
	}

	matched, leftover, err := calculateMatches(cfg.Algorithm, grants, cfg.Budget.Amount)
	if err != nil {
		return err
	}

	// assemble the full batch before emitting anything so a failed checked
	// add cannot leave half the instructions with the host
	batch := make([]sdk.Transfer, 0, len(matched)+1)
	for _, g := range matched {
		total, err := checkedAdd(g.Match, g.CollectedVoteFunds)
		if err != nil {
			return err
		}
		if total == 0 {
			continue
		}
		batch = append(batch, sdk.Transfer{
			To:     g.FundAddress,
			Amount: sdk.NewCoin(cfg.Budget.Denom, total),
		})
	}
	if leftover > 0 {
		batch = append(batch, sdk.Transfer{
			To:     cfg.LeftoverAddr,
			Amount: sdk.NewCoin(cfg.Budget.Denom, leftover),
		})
	}

	markDistributed(c.state)
	for _, tr := range batch {
		c.bank.Send(tr.To, tr.Amount)
	}

	c.emitDistribution(len(matched), len(batch), leftover)
	return nil
}

// QueryProposal fetches one proposal by id.
func (c *Contract) QueryProposal(id uint64) (*Proposal, error) {
	if !isInitialized(c.state) {
		return nil, ErrNotInitialized
	}
	return loadProposal(c.state, id)
}

// QueryAllProposals lists every proposal in id order. Unbounded; pagination
// is a production-hardening concern the ABI does not expose yet.
func (c *Contract) QueryAllProposals() ([]*Proposal, error) {
	if !isInitialized(c.state) {
		return nil, ErrNotInitialized
	}
	return loadAllProposals(c.state)
}

// QueryConfig exposes the stored singleton for clients and the debug runner.
func (c *Contract) QueryConfig() (*Config, error) {
	return loadConfig(c.state)
}
