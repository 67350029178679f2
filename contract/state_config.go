package contract

import "qfund/sdk"

// -----------------------------------------------------------------------------
// Config singleton + distribution flag
// -----------------------------------------------------------------------------

// isInitialized returns true once instantiate stored the config.
func isInitialized(state sdk.State) bool {
	ptr := state.Get(configKey())
	return ptr != nil && *ptr != ""
}

// saveConfig stores the encoded singleton. Called exactly once.
func saveConfig(state sdk.State, cfg *Config) {
	state.Set(configKey(), string(encodeConfig(cfg)))
}

// loadConfig decodes the singleton or reports the contract as uninitialized.
func loadConfig(state sdk.State) (*Config, error) {
	ptr := state.Get(configKey())
	if ptr == nil || *ptr == "" {
		return nil, ErrNotInitialized
	}
	return decodeConfig([]byte(*ptr))
}

// isDistributed reports whether the one-shot distribution already ran.
func isDistributed(state sdk.State) bool {
	ptr := state.Get(distributedKey())
	return ptr != nil && *ptr != ""
}

// markDistributed flips the single-shot flag inside the same transaction as
// the payout batch so a replayed trigger cannot re-spend the budget.
func markDistributed(state sdk.State) {
	state.Set(distributedKey(), "1")
}
