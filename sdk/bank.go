package sdk

// Transfer is a single instruction for the host ledger: move escrowed
// contract funds to a recipient. Instructions are fire-and-forget; the host
// applies them after the contract's state transition is finalized.
type Transfer struct {
	To     Address
	Amount Coin
}

// Bank is where the contract emits transfer instructions. It never reads
// balances back; the external ledger module is the sole mutator of real
// funds.
type Bank interface {
	Send(to Address, amount Coin)
}

// MemBank records emitted transfers in order for tests and the debug runner.
type MemBank struct {
	Transfers []Transfer
}

func (b *MemBank) Send(to Address, amount Coin) {
	b.Transfers = append(b.Transfers, Transfer{To: to, Amount: amount})
}
