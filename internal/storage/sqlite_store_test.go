package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grachmannico95/cnab-ledger/internal/domain"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.db")
	store, err := OpenSQLite(context.Background(), path, 5*time.Second, baseDate.Location())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_LedgerRepository(t *testing.T) {
	testLedgerRepository(t, func(t *testing.T) domain.LedgerRepository {
		return openTestSQLite(t)
	})
}

func TestSQLiteStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "ledger.db")

	store, err := OpenSQLite(ctx, path, time.Second, nil)
	require.NoError(t, err)
	f := newFixture(t, "JOÃO MACEDO", "09620676017", "BAR DO JOÃO")
	insertAll(t, store, f, newTx(t, f.store, domain.TransactionTypeFinancing, "142.00", "09620676017", "h1", baseDate))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(ctx, path, time.Second, nil)
	require.NoError(t, err)
	defer reopened.Close()

	items, total, err := reopened.PagedStores(ctx, 1, 10, "")
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "-142", items[0].Balance().String())
}

func TestSQLiteStore_DatesReadBackInLocation(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.db")

	store, err := OpenSQLite(ctx, path, time.Second, nil)
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())
	f := newFixture(t, "JOÃO MACEDO", "09620676017", "BAR DO JOÃO")
	insertAll(t, store, f, newTx(t, f.store, domain.TransactionTypeFinancing, "142.00", "09620676017", "h1", baseDate))

	items, _, err := store.PagedStores(ctx, 1, 10, "")
	require.NoError(t, err)
	require.NoError(t, store.Close())
	require.Len(t, items, 1)
	utc := items[0].Transactions[0].Date
	assert.True(t, utc.Equal(baseDate))
	assert.Equal(t, time.UTC, utc.Location())

	reopened, err := OpenSQLite(ctx, path, time.Second, baseDate.Location())
	require.NoError(t, err)
	defer reopened.Close()

	items, _, err = reopened.PagedStores(ctx, 1, 10, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	local := items[0].Transactions[0].Date
	assert.True(t, local.Equal(baseDate))
	assert.Equal(t, baseDate.Format(time.RFC3339), local.Format(time.RFC3339))
}

func TestSQLiteStore_CommitAfterRollbackIsNoop(t *testing.T) {
	store := openTestSQLite(t)
	ctx := context.Background()

	uow, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, uow.Rollback(ctx))
	assert.NoError(t, uow.Commit(ctx))
	assert.NoError(t, uow.Rollback(ctx))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "?", placeholders(1))
	assert.Equal(t, "?, ?, ?", placeholders(3))
}
