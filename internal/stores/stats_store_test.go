package stores

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// verifyRecordSemantics runs the shared aggregate rules against any backend.
func verifyRecordSemantics(t *testing.T, store StatsStore) {
	t.Helper()
	ctx := context.Background()

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, store.Record(ctx, "airBrakes", 60, false))
	require.NoError(t, store.Record(ctx, "airBrakes", 90, true))

	all, err = store.All(ctx)
	require.NoError(t, err)
	rec := all["airBrakes"]
	assert.Equal(t, 2, rec.Attempts)
	assert.Equal(t, 90, rec.HighScore)
	assert.Equal(t, 90, rec.LastScore)
	assert.Equal(t, 1, rec.TimesPassed)

	// A worse last score lowers lastScore but never highScore.
	require.NoError(t, store.Record(ctx, "airBrakes", 40, false))
	all, err = store.All(ctx)
	require.NoError(t, err)
	rec = all["airBrakes"]
	assert.Equal(t, 3, rec.Attempts)
	assert.Equal(t, 90, rec.HighScore)
	assert.Equal(t, 40, rec.LastScore)
	assert.Equal(t, 1, rec.TimesPassed)

	// An equal score does not raise highScore (strictly greater only).
	require.NoError(t, store.Record(ctx, "airBrakes", 90, true))
	all, err = store.All(ctx)
	require.NoError(t, err)
	rec = all["airBrakes"]
	assert.Equal(t, 90, rec.HighScore)
	assert.Equal(t, 2, rec.TimesPassed)

	// Categories aggregate independently.
	require.NoError(t, store.Record(ctx, "passenger", 100, true))
	all, err = store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, 1, all["passenger"].Attempts)
}

func TestMemoryStore(t *testing.T) {
	verifyRecordSemantics(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	verifyRecordSemantics(t, NewFileStore(path, discardLogger()))
}

func TestFileStore_PersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "stats.json")

	first := NewFileStore(path, discardLogger())
	require.NoError(t, first.Record(ctx, "airBrakes", 84, true))

	second := NewFileStore(path, discardLogger())
	all, err := second.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, 84, all["airBrakes"].HighScore)
	assert.Equal(t, 1, all["airBrakes"].Attempts)
}

func TestFileStore_CorruptFileReadsEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewFileStore(path, discardLogger())

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// Recording over a corrupt file restarts the aggregate cleanly.
	require.NoError(t, store.Record(ctx, "airBrakes", 76, false))
	all, err = store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, all["airBrakes"].Attempts)
}

func TestSQLiteStore(t *testing.T) {
	store, err := OpenSQLiteStore("file::memory:?cache=shared", discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	verifyRecordSemantics(t, store)
}

func TestSQLiteStore_PersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "stats.db")

	first, err := OpenSQLiteStore(path, discardLogger())
	require.NoError(t, err)
	require.NoError(t, first.Record(ctx, "airBrakes", 92, true))
	require.NoError(t, first.Close())

	second, err := OpenSQLiteStore(path, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { second.Close() })

	all, err := second.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, 92, all["airBrakes"].LastScore)
}
