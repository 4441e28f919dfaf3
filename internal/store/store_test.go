package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/processor"
	"github.com/vk/brewdoc/internal/store"
	"github.com/vk/brewdoc/internal/testutil"
)

func widget(name string) entity.Entity {
	b := entity.NewBundle()
	e := testutil.NewWidget(b)
	e.SetName(name)
	return e
}

func runStoreContract(t *testing.T, st store.Store) {
	t.Helper()

	t.Run("insert assigns ids in order", func(t *testing.T) {
		id1, err := st.Insert(widget("a"))
		require.NoError(t, err)
		id2, err := st.Insert(widget("b"))
		require.NoError(t, err)
		assert.Less(t, id1, id2)
	})

	t.Run("all preserves insertion order", func(t *testing.T) {
		rows := st.All("Widget")
		require.Len(t, rows, 2)
		assert.Equal(t, "a", rows[0].Name())
		assert.Equal(t, "b", rows[1].Name())
	})

	t.Run("find first", func(t *testing.T) {
		e, found := st.FindFirst("Widget", func(e entity.Entity) bool { return e.Name() == "b" })
		require.True(t, found)
		assert.Equal(t, "b", e.Name())

		_, found = st.FindFirst("Widget", func(e entity.Entity) bool { return e.Name() == "zzz" })
		assert.False(t, found)
	})

	t.Run("delete", func(t *testing.T) {
		e, found := st.FindFirst("Widget", func(e entity.Entity) bool { return e.Name() == "a" })
		require.True(t, found)
		require.NoError(t, st.Delete("Widget", e.ID()))
		assert.Len(t, st.All("Widget"), 1)

		require.Error(t, st.Delete("Widget", e.ID()), "deleting an unknown id is an error")
		require.Error(t, st.Delete("Nope", 1))
	})
}

func TestMemStore(t *testing.T) {
	t.Parallel()

	st := store.NewMemStore()
	defer st.Close()
	runStoreContract(t, st)
}

func TestSQLiteStore(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "brewdoc.db")
	st, err := store.OpenSQLite(path, nil)
	require.NoError(t, err)
	defer st.Close()
	runStoreContract(t, st)
}

func TestSQLiteReopenReplaysRows(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "brewdoc.db")
	hydrate := processor.Rehydrate(testutil.NewFixtureRegistry())

	st, err := store.OpenSQLite(path, hydrate)
	require.NoError(t, err)
	id1, err := st.Insert(widget("first-run"))
	require.NoError(t, err)
	require.NoError(t, st.Close())

	// A second process over the same file sees the first run's rows and
	// keeps allocating ids past them.
	st, err = store.OpenSQLite(path, hydrate)
	require.NoError(t, err)
	defer st.Close()

	rows := st.All("Widget")
	require.Len(t, rows, 1)
	assert.Equal(t, "first-run", rows[0].Name())
	assert.Equal(t, id1, rows[0].ID())

	_, found := st.FindFirst("Widget", func(e entity.Entity) bool { return e.Name() == "first-run" })
	assert.True(t, found)

	id2, err := st.Insert(widget("second-run"))
	require.NoError(t, err)
	assert.Greater(t, id2, id1)
	assert.Len(t, st.All("Widget"), 2)
}

func TestSQLiteReopenWithoutHydratorSeedsIDs(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "brewdoc.db")
	st, err := store.OpenSQLite(path, nil)
	require.NoError(t, err)
	id1, err := st.Insert(widget("first-run"))
	require.NoError(t, err)
	require.NoError(t, st.Close())

	// Without a hydrator the mirror stays cold, but inserts still never
	// collide with earlier runs.
	st, err = store.OpenSQLite(path, nil)
	require.NoError(t, err)
	defer st.Close()

	assert.Empty(t, st.All("Widget"))
	id2, err := st.Insert(widget("second-run"))
	require.NoError(t, err)
	assert.Greater(t, id2, id1)
}

func TestOpenDSN(t *testing.T) {
	t.Parallel()

	st, err := store.Open("memory", nil)
	require.NoError(t, err)
	assert.IsType(t, &store.MemStore{}, st)
	st.Close()

	st, err = store.Open("", nil)
	require.NoError(t, err)
	assert.IsType(t, &store.MemStore{}, st)
	st.Close()

	st, err = store.Open("sqlite:"+filepath.Join(t.TempDir(), "x.db"), nil)
	require.NoError(t, err)
	assert.IsType(t, &store.SQLiteStore{}, st)
	st.Close()

	_, err = store.Open("postgres://nope", nil)
	require.Error(t, err)
}
