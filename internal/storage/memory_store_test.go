package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grachmannico95/cnab-ledger/internal/domain"
)

func TestMemoryStore_LedgerRepository(t *testing.T) {
	testLedgerRepository(t, func(t *testing.T) domain.LedgerRepository {
		return NewMemoryStore()
	})
}

func TestMemoryStore_CommitIsAllOrNothing(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first := newFixture(t, "MARCOS", "84515254073", "MERCADO DA AVENIDA")
	second := newFixture(t, "PAULA", "12345678901", "MERCADO DA AVENIDA")

	a, err := store.Begin(ctx)
	require.NoError(t, err)
	b, err := store.Begin(ctx)
	require.NoError(t, err)

	// both units stage the same store name before either commits
	require.NoError(t, a.InsertOwner(ctx, first.owner))
	require.NoError(t, a.InsertStore(ctx, first.store))
	require.NoError(t, b.InsertOwner(ctx, second.owner))
	require.NoError(t, b.InsertStore(ctx, second.store))

	require.NoError(t, a.Commit(ctx))

	err = b.Commit(ctx)
	var dup *domain.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, domain.EntityStore, dup.Entity)
	require.NoError(t, b.Rollback(ctx))

	check, err := store.Begin(ctx)
	require.NoError(t, err)
	owner, err := check.FindOwnerByCPF(ctx, "12345678901")
	require.NoError(t, err)
	assert.Nil(t, owner, "owner from the failed unit must not be applied")

	found, err := check.FindStoreByName(ctx, "MERCADO DA AVENIDA")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, first.owner.ID, found.OwnerID)
}

func TestMemoryStore_ConcurrentCommits(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make(chan error, 10)

	for i := 0; i < 10; i++ {
		f := newFixture(t, "JOSÉ", "23270298056", "MERCEARIA")
		wg.Add(1)
		go func() {
			defer wg.Done()

			uow, err := store.Begin(ctx)
			if err != nil {
				results <- err
				return
			}
			defer uow.Rollback(ctx)

			if err := uow.InsertOwner(ctx, f.owner); err != nil {
				results <- err
				return
			}
			results <- uow.Commit(ctx)
		}()
	}

	wg.Wait()
	close(results)

	var committed int
	for err := range results {
		if err == nil {
			committed++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrDuplicateKey)
	}
	assert.Equal(t, 1, committed)
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Begin(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, _, err = store.PagedStores(ctx, 1, 10, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	f := newFixture(t, "MARIA", "55641815063", "LOJA DO Ó")
	insertAll(t, store, f)

	uow, err := store.Begin(ctx)
	require.NoError(t, err)
	found, err := uow.FindStoreByName(ctx, "LOJA DO Ó")
	require.NoError(t, err)
	found.Name = "CHANGED"

	again, err := uow.FindStoreByName(ctx, "LOJA DO Ó")
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, "LOJA DO Ó", again.Name)
}
