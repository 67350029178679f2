package sdk

import (
	"errors"

	badger "github.com/dgraph-io/badger/v4"
)

// BadgerState persists contract kv state in a badger database so a host
// process can survive restarts. It satisfies the same State interface as
// MemState; storage failures abort the process like a host-level fault, the
// contract layer never sees partial writes.
type BadgerState struct {
	db *badger.DB
}

func NewBadgerState(dir string) (*BadgerState, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerState{db: db}, nil
}

func (b *BadgerState) Close() error {
	return b.db.Close()
}

func (b *BadgerState) Set(key, value string) {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		panic("badger state set: " + err.Error())
	}
}

func (b *BadgerState) Get(key string) *string {
	var out *string
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		s := string(val)
		out = &s
		return nil
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		panic("badger state get: " + err.Error())
	}
	return out
}

func (b *BadgerState) Delete(key string) {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		panic("badger state delete: " + err.Error())
	}
}
