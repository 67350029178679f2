package sdk

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStateConformance exercises the behavior every State backend must share.
func runStateConformance(t *testing.T, state State) {
	t.Helper()

	assert.Nil(t, state.Get("missing"))

	state.Set("a", "1")
	require.NotNil(t, state.Get("a"))
	assert.Equal(t, "1", *state.Get("a"))

	state.Set("a", "2")
	assert.Equal(t, "2", *state.Get("a"))

	// empty value is stored, not treated as absent by the backend
	state.Set("b", "")
	require.NotNil(t, state.Get("b"))
	assert.Equal(t, "", *state.Get("b"))

	state.Delete("a")
	assert.Nil(t, state.Get("a"))

	// deleting a missing key is a no-op
	state.Delete("never-set")

	// binary-ish keys must survive round trips
	key := string([]byte{0x10, 0x00, 0xff, 0x01})
	state.Set(key, "blob")
	require.NotNil(t, state.Get(key))
	assert.Equal(t, "blob", *state.Get(key))
}

func TestMemStateConformance(t *testing.T) {
	runStateConformance(t, NewMemState())
}

func TestFileStateSnapshotAndReload(t *testing.T) {
	file := filepath.Join(t.TempDir(), "state.json")
	first := NewFileState(file)
	runStateConformance(t, first)
	first.Set("persisted", "yes")

	second := NewFileState(file)
	require.NotNil(t, second.Get("persisted"))
	assert.Equal(t, "yes", *second.Get("persisted"))
	assert.Nil(t, second.Get("a"), "deleted keys must not resurrect")
}

func TestBadgerStateConformance(t *testing.T) {
	state, err := NewBadgerState(t.TempDir())
	require.NoError(t, err)
	defer state.Close()
	runStateConformance(t, state)
}

func TestBadgerStatePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	state, err := NewBadgerState(dir)
	require.NoError(t, err)
	state.Set("k", "v")
	require.NoError(t, state.Close())

	reopened, err := NewBadgerState(dir)
	require.NoError(t, err)
	defer reopened.Close()
	require.NotNil(t, reopened.Get("k"))
	assert.Equal(t, "v", *reopened.Get("k"))
}

func TestTxStateCommit(t *testing.T) {
	backing := NewMemState()
	backing.Set("existing", "old")

	tx := NewTxState(backing)
	runStateConformance(t, tx)

	tx2 := NewTxState(backing)
	tx2.Set("x", "1")
	tx2.Delete("existing")
	require.NotNil(t, tx2.Get("x"))
	assert.Nil(t, tx2.Get("existing"), "reads must see buffered deletes")
	assert.Equal(t, "old", *backing.Get("existing"), "backing untouched before commit")

	tx2.Commit()
	assert.Equal(t, "1", *backing.Get("x"))
	assert.Nil(t, backing.Get("existing"))
	assert.False(t, tx2.Dirty())
}

func TestTxStateDiscard(t *testing.T) {
	backing := NewMemState()
	backing.Set("keep", "safe")

	tx := NewTxState(backing)
	tx.Set("junk", "1")
	tx.Delete("keep")
	require.True(t, tx.Dirty())

	tx.Discard()
	assert.False(t, tx.Dirty())
	assert.Nil(t, backing.Get("junk"))
	assert.Equal(t, "safe", *backing.Get("keep"))
	assert.Equal(t, "safe", *tx.Get("keep"), "post-discard reads fall through")
}

func TestTxStateReadThrough(t *testing.T) {
	backing := NewMemState()
	backing.Set("base", "b")
	tx := NewTxState(backing)
	require.NotNil(t, tx.Get("base"))
	assert.Equal(t, "b", *tx.Get("base"))

	tx.Set("base", "overlay")
	assert.Equal(t, "overlay", *tx.Get("base"))
	assert.Equal(t, "b", *backing.Get("base"))
}
