package contract

import "errors"

// Every operation surfaces exactly one of these to the caller and aborts the
// whole transaction; nothing is logged-only or swallowed.
var (
	ErrNotInitialized     = errors.New("contract not initialized")
	ErrAlreadyInitialized = errors.New("contract already initialized")

	ErrUnauthorized = errors.New("unauthorized")

	ErrProposalPeriodExpired  = errors.New("proposal period expired")
	ErrVotingPeriodExpired    = errors.New("voting period expired")
	ErrVotingPeriodNotExpired = errors.New("voting period not expired")
	ErrPeriodAlreadyExpired   = errors.New("period already expired at instantiation")

	ErrInvalidAddress    = errors.New("invalid address")
	ErrWrongDenomination = errors.New("wrong denomination")
	ErrZeroAmount        = errors.New("zero amount")
	ErrBudgetMismatch    = errors.New("attached funds do not match budget")

	ErrProposalNotFound = errors.New("proposal not found")
	ErrDuplicateVote    = errors.New("address already voted on proposal")

	ErrAlreadyDistributed = errors.New("distribution already triggered")
	ErrUnknownAlgorithm   = errors.New("unknown matching algorithm")
	ErrAmountOverflow     = errors.New("amount overflow")
)
