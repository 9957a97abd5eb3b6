package storage

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grachmannico95/cnab-ledger/internal/domain"
)

// testLedgerRepository runs the behavior every LedgerRepository backend
// must share.
func testLedgerRepository(t *testing.T, newRepo func(t *testing.T) domain.LedgerRepository) {
	t.Run("commit makes writes visible", func(t *testing.T) {
		testCommitVisibility(t, newRepo(t))
	})
	t.Run("rollback discards writes", func(t *testing.T) {
		testRollback(t, newRepo(t))
	})
	t.Run("duplicate keys", func(t *testing.T) {
		testDuplicateKeys(t, newRepo(t))
	})
	t.Run("losing writer gets duplicate at commit", func(t *testing.T) {
		testConcurrentUnits(t, newRepo(t))
	})
	t.Run("paged stores", func(t *testing.T) {
		testPagedStores(t, newRepo(t))
	})
	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, newRepo(t).Ping(context.Background()))
	})
}

type fixture struct {
	owner *domain.StoreOwner
	store *domain.Store
}

func newFixture(t *testing.T, ownerName, cpf, storeName string) fixture {
	t.Helper()
	owner, err := domain.NewStoreOwner(ownerName, cpf)
	require.NoError(t, err)
	store, err := domain.NewStore(storeName, owner)
	require.NoError(t, err)
	return fixture{owner: owner, store: store}
}

func newTx(t *testing.T, store *domain.Store, typ domain.TransactionType, amount, payer, hash string, date time.Time) *domain.Transaction {
	t.Helper()
	tx, err := domain.NewTransaction(domain.TransactionParams{
		Type:       typ,
		Date:       date,
		Amount:     typ.SignedAmount(decimal.RequireFromString(amount)),
		CPF:        payer,
		CardNumber: "4753****3153",
		LineHash:   hash,
		Store:      store,
	})
	require.NoError(t, err)
	return tx
}

func insertAll(t *testing.T, repo domain.LedgerRepository, f fixture, txs ...*domain.Transaction) {
	t.Helper()
	ctx := context.Background()

	uow, err := repo.Begin(ctx)
	require.NoError(t, err)
	defer uow.Rollback(ctx)

	if owner, err := uow.FindOwnerByCPF(ctx, f.owner.CPF); err == nil && owner == nil {
		require.NoError(t, uow.InsertOwner(ctx, f.owner))
	}
	if store, err := uow.FindStoreByName(ctx, f.store.Name); err == nil && store == nil {
		require.NoError(t, uow.InsertStore(ctx, f.store))
	}
	for _, tx := range txs {
		require.NoError(t, uow.InsertTransaction(ctx, tx))
	}
	require.NoError(t, uow.Commit(ctx))
}

var baseDate = time.Date(2019, 3, 1, 15, 34, 53, 0, time.FixedZone("UTC-03:00", -3*3600))

func testCommitVisibility(t *testing.T, repo domain.LedgerRepository) {
	ctx := context.Background()
	f := newFixture(t, "JOÃO MACEDO", "09620676017", "BAR DO JOÃO")
	tx := newTx(t, f.store, domain.TransactionTypeFinancing, "142.00", "09620676017", "hash-1", baseDate)

	uow, err := repo.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, uow.InsertOwner(ctx, f.owner))
	require.NoError(t, uow.InsertStore(ctx, f.store))
	require.NoError(t, uow.InsertTransaction(ctx, tx))

	// staged writes are visible to the unit itself
	owner, err := uow.FindOwnerByCPF(ctx, "09620676017")
	require.NoError(t, err)
	require.NotNil(t, owner)
	assert.Equal(t, f.owner.ID, owner.ID)

	require.NoError(t, uow.Commit(ctx))
	require.NoError(t, uow.Rollback(ctx))

	check, err := repo.Begin(ctx)
	require.NoError(t, err)

	store, err := check.FindStoreByName(ctx, "BAR DO JOÃO")
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, f.owner.ID, store.OwnerID)

	exists, err := check.ExistsTransactionByHash(ctx, "hash-1")
	require.NoError(t, err)
	assert.True(t, exists)

	missing, err := check.FindOwnerByCPF(ctx, "00000000000")
	require.NoError(t, err)
	assert.Nil(t, missing)
	require.NoError(t, check.Rollback(ctx))

	items, total, err := repo.PagedStores(ctx, 1, 10, "")
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "JOÃO MACEDO", items[0].OwnerName)
	require.Len(t, items[0].Transactions, 1)

	stored := items[0].Transactions[0]
	assert.True(t, stored.Amount.Equal(decimal.RequireFromString("-142")), stored.Amount.String())
	assert.True(t, stored.Date.Equal(baseDate))
	_, offset := stored.Date.Zone()
	assert.Equal(t, -3*3600, offset, "dates come back at the file's offset")
	assert.Equal(t, "2019-03-01T15:34:53-03:00", stored.Date.Format(time.RFC3339))
	assert.Equal(t, domain.TransactionTypeFinancing, stored.Type)
	assert.Equal(t, "4753****3153", stored.CardNumber)
	assert.True(t, items[0].Balance().Equal(decimal.RequireFromString("-142")))
}

func testRollback(t *testing.T, repo domain.LedgerRepository) {
	ctx := context.Background()
	f := newFixture(t, "MARIA", "55641815063", "LOJA DO Ó")

	uow, err := repo.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, uow.InsertOwner(ctx, f.owner))
	require.NoError(t, uow.InsertStore(ctx, f.store))
	require.NoError(t, uow.Rollback(ctx))

	_, total, err := repo.PagedStores(ctx, 1, 10, "")
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	check, err := repo.Begin(ctx)
	require.NoError(t, err)
	defer check.Rollback(ctx)
	owner, err := check.FindOwnerByCPF(ctx, "55641815063")
	require.NoError(t, err)
	assert.Nil(t, owner)
}

func testDuplicateKeys(t *testing.T, repo domain.LedgerRepository) {
	ctx := context.Background()
	f := newFixture(t, "MARIA", "55641815063", "LOJA DO Ó")
	insertAll(t, repo, f, newTx(t, f.store, domain.TransactionTypeSales, "10", "55641815063", "h1", baseDate))

	other := newFixture(t, "OUTRA MARIA", "55641815063", "LOJA DO Ó")

	uow, err := repo.Begin(ctx)
	require.NoError(t, err)
	defer uow.Rollback(ctx)

	err = uow.InsertOwner(ctx, other.owner)
	var dup *domain.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, domain.EntityStoreOwner, dup.Entity)

	err = uow.InsertStore(ctx, other.store)
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, domain.EntityStore, dup.Entity)

	err = uow.InsertTransaction(ctx, newTx(t, f.store, domain.TransactionTypeSales, "10", "55641815063", "h1", baseDate))
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, domain.EntityTransaction, dup.Entity)
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func testConcurrentUnits(t *testing.T, repo domain.LedgerRepository) {
	ctx := context.Background()
	first := newFixture(t, "JOSÉ", "23270298056", "MERCEARIA")
	second := newFixture(t, "JOSÉ", "23270298056", "MERCEARIA")

	a, err := repo.Begin(ctx)
	require.NoError(t, err)
	defer a.Rollback(ctx)
	require.NoError(t, a.InsertOwner(ctx, first.owner))
	require.NoError(t, a.Commit(ctx))

	b, err := repo.Begin(ctx)
	require.NoError(t, err)

	err = b.InsertOwner(ctx, second.owner)
	if err == nil {
		err = b.Commit(ctx)
	}
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
	require.NoError(t, b.Rollback(ctx))

	check, err := repo.Begin(ctx)
	require.NoError(t, err)
	defer check.Rollback(ctx)
	owner, err := check.FindOwnerByCPF(ctx, "23270298056")
	require.NoError(t, err)
	require.NotNil(t, owner)
	assert.Equal(t, first.owner.ID, owner.ID)
}

func testPagedStores(t *testing.T, repo domain.LedgerRepository) {
	ctx := context.Background()

	names := []string{"MERCEARIA 3 IRMÃOS", "BAR DO JOÃO", "LOJA DO Ó - MATRIZ", "MERCADO DA AVENIDA", "ARMAZÉM"}
	for i, name := range names {
		cpf := fmt.Sprintf("%011d", i+1)
		f := newFixture(t, fmt.Sprintf("OWNER %d", i), cpf, name)
		insertAll(t, repo, f,
			newTx(t, f.store, domain.TransactionTypeSales, "100.00", cpf, name+"-a", baseDate.Add(time.Hour)),
			newTx(t, f.store, domain.TransactionTypeRent, "30.50", "99999999999", name+"-b", baseDate),
		)
	}

	items, total, err := repo.PagedStores(ctx, 1, 2, "")
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, items, 2)
	assert.Equal(t, "ARMAZÉM", items[0].Store.Name)
	assert.Equal(t, "BAR DO JOÃO", items[1].Store.Name)

	items, _, err = repo.PagedStores(ctx, 3, 2, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "MERCEARIA 3 IRMÃOS", items[0].Store.Name)

	// past the last page: empty, but the total still counts every store
	for _, page := range []int{4, 100, math.MaxInt/10 + 2, math.MaxInt} {
		items, total, err = repo.PagedStores(ctx, page, 2, "")
		require.NoError(t, err, "page %d", page)
		assert.NotNil(t, items, "page %d", page)
		assert.Empty(t, items, "page %d", page)
		assert.Equal(t, 5, total, "page %d", page)
	}

	items, total, err = repo.PagedStores(ctx, 2, 10, "00000000002")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, total)

	// filter selects stores but keeps all their transactions
	items, total, err = repo.PagedStores(ctx, 1, 10, "00000000002")
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "BAR DO JOÃO", items[0].Store.Name)
	require.Len(t, items[0].Transactions, 2)
	assert.Equal(t, domain.TransactionTypeRent, items[0].Transactions[0].Type)
	assert.True(t, items[0].Balance().Equal(decimal.RequireFromString("69.50")), items[0].Balance().String())

	_, total, err = repo.PagedStores(ctx, 1, 10, "99999999999")
	require.NoError(t, err)
	assert.Equal(t, 5, total)

	items, total, err = repo.PagedStores(ctx, 1, 10, "12312312312")
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, items)
}
