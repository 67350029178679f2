package sdk

import (
	"encoding/json"
	"os"
	"sort"
)

// State is the kv surface the contract persists through. Values are opaque
// strings; key layout and encoding live in the contract package.
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// MemState is the in-memory backend used by tests and the local debug
// runner. With a filename set it snapshots the full map to disk after every
// write so a crashed debug session can be inspected.
type MemState struct {
	db       map[string]string
	filename string
}

func NewMemState() *MemState {
	return &MemState{db: make(map[string]string)}
}

// NewFileState snapshots to the given JSON file after each mutation.
func NewFileState(filename string) *MemState {
	m := &MemState{db: make(map[string]string), filename: filename}
	m.loadFromFile()
	return m
}

func (m *MemState) Set(key, value string) {
	m.db[key] = value
	m.snapshot()
}

func (m *MemState) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MemState) Delete(key string) {
	delete(m.db, key)
	m.snapshot()
}

// Len reports how many keys are stored, used by tests only.
func (m *MemState) Len() int {
	return len(m.db)
}

func (m *MemState) snapshot() {
	if m.filename == "" {
		return
	}
	data, err := json.MarshalIndent(m.db, "", "  ")
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile(m.filename, data, 0644); err != nil {
		panic(err)
	}
}

func (m *MemState) loadFromFile() {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		panic(err)
	}
	if err := json.Unmarshal(data, &m.db); err != nil {
		panic(err)
	}
}

// TxState buffers writes on top of a backing State so an operation either
// commits everything or nothing. Reads see buffered writes first.
type TxState struct {
	backing State
	writes  map[string]*string // nil value marks a pending delete
}

func NewTxState(backing State) *TxState {
	return &TxState{backing: backing, writes: make(map[string]*string)}
}

func (t *TxState) Set(key, value string) {
	v := value
	t.writes[key] = &v
}

func (t *TxState) Get(key string) *string {
	if v, ok := t.writes[key]; ok {
		if v == nil {
			return nil
		}
		cp := *v
		return &cp
	}
	return t.backing.Get(key)
}

func (t *TxState) Delete(key string) {
	t.writes[key] = nil
}

// Commit flushes buffered writes to the backing state in sorted key order so
// replicated backends apply mutations deterministically.
func (t *TxState) Commit() {
	keys := make([]string, 0, len(t.writes))
	for k := range t.writes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := t.writes[k]; v == nil {
			t.backing.Delete(k)
		} else {
			t.backing.Set(k, *v)
		}
	}
	t.writes = make(map[string]*string)
}

// Discard drops buffered writes, leaving the backing state untouched.
func (t *TxState) Discard() {
	t.writes = make(map[string]*string)
}

// Dirty reports whether uncommitted writes are pending.
func (t *TxState) Dirty() bool {
	return len(t.writes) > 0
}
