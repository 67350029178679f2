package sdk

// Env is the per-call snapshot of chain context the host hands to the
// contract. Period gating is evaluated against this snapshot only, never
// against wall-clock time, so replays stay deterministic.
type Env struct {
	BlockHeight uint64
	BlockTime   int64 // unix seconds
	TxID        string
}

// MessageInfo carries the authenticated sender plus any funds the host
// escrowed into the contract for this call.
type MessageInfo struct {
	Sender Address
	Funds  []Coin
}

// Logger receives the terse event lines the contract emits. The host wires
// this to its console; tests use a recording logger.
type Logger interface {
	Log(line string)
}

// MemLogger collects event lines so tests can assert on them.
type MemLogger struct {
	Lines []string
}

func (l *MemLogger) Log(line string) {
	l.Lines = append(l.Lines, line)
}

// NopLogger drops everything, handy when callers dont care about events.
type NopLogger struct{}

func (NopLogger) Log(string) {}

// FuncLogger adapts a plain function, used by the debug runner to feed slog.
type FuncLogger func(line string)

func (f FuncLogger) Log(line string) { f(line) }
