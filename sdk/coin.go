package sdk

import "strconv"

// Denom is the currency ticker of a native asset held by the host ledger.
type Denom string

const (
	DenomHive Denom = "hive"
	DenomHbd  Denom = "hbd"
)

// String returns the raw ticker string for logging or host calls.
func (d Denom) String() string {
	return string(d)
}

// Coin is a single-denomination integer amount. All contract accounting is
// integral; scaling to display units is a client concern.
type Coin struct {
	Denom  Denom
	Amount uint64
}

// NewCoin is a small convenience constructor mirroring host-side helpers.
func NewCoin(denom Denom, amount uint64) Coin {
	return Coin{Denom: denom, Amount: amount}
}

// String formats like "1500 hive" for event lines and errors.
func (c Coin) String() string {
	return strconv.FormatUint(c.Amount, 10) + " " + c.Denom.String()
}
