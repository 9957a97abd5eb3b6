package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/grachmannico95/cnab-ledger/internal/cnab"
	"github.com/grachmannico95/cnab-ledger/internal/domain"
	"github.com/grachmannico95/cnab-ledger/internal/storage"
	"github.com/grachmannico95/cnab-ledger/mocks"
	"github.com/grachmannico95/cnab-ledger/pkg/logger"
)

const (
	lineBarDoJoao  = "3201903010000014200096206760174753****3153153453JOÃO MACEDO   BAR DO JOÃO       "
	lineLojaDoO    = "5201903010000013200556418150633123****7687145607MARIA JOSEFINALOJA DO Ó - MATRIZ"
	lineMercearia  = "1201903010000015200096206760171234****7890233000JOÃO MACEDO   MERCEARIA 3 IRMÃOS"
	lineBarDoJoao2 = "2201903010000011200096206760173648****0099234234JOÃO MACEDO   BAR DO JOÃO       "
)

func decode(t *testing.T, line string) cnab.Record {
	t.Helper()
	rec, err := cnab.NewDecoder(-3).Decode(line, 1)
	require.NoError(t, err)
	return rec
}

func ingestLine(t *testing.T, ing *TransactionIngestor, line string, lineNumber int) (domain.LineOutcome, error) {
	t.Helper()
	return ing.Ingest(context.Background(), decode(t, line), lineNumber, cnab.HashLine(line))
}

func allStores(t *testing.T, repo domain.LedgerRepository) []domain.StoreLedger {
	t.Helper()
	items, _, err := repo.PagedStores(context.Background(), 1, 100, "")
	require.NoError(t, err)
	return items
}

func TestTransactionIngestor_SampleLineBalance(t *testing.T) {
	repo := storage.NewMemoryStore()
	ing := NewTransactionIngestor(repo, logger.NewNop())

	outcome, err := ingestLine(t, ing, lineBarDoJoao, 1)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCreated, outcome)

	stores := allStores(t, repo)
	require.Len(t, stores, 1)
	assert.Equal(t, "BAR DO JOÃO", stores[0].Store.Name)
	assert.Equal(t, "JOÃO MACEDO", stores[0].OwnerName)
	assert.True(t, stores[0].Balance().Equal(decimal.RequireFromString("-142.00")), stores[0].Balance().String())
}

func TestTransactionIngestor_Idempotent(t *testing.T) {
	repo := storage.NewMemoryStore()
	ing := NewTransactionIngestor(repo, logger.NewNop())

	outcome, err := ingestLine(t, ing, lineBarDoJoao, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCreated, outcome)

	outcome, err = ingestLine(t, ing, lineBarDoJoao, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDuplicate, outcome)

	stores := allStores(t, repo)
	require.Len(t, stores, 1)
	assert.Len(t, stores[0].Transactions, 1)
}

func TestTransactionIngestor_ThreeDistinctStores(t *testing.T) {
	repo := storage.NewMemoryStore()
	ing := NewTransactionIngestor(repo, logger.NewNop())

	for i, line := range []string{lineBarDoJoao, lineLojaDoO, lineMercearia} {
		outcome, err := ingestLine(t, ing, line, i+1)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeCreated, outcome)
	}

	stores := allStores(t, repo)
	require.Len(t, stores, 3)
	for _, s := range stores {
		assert.Len(t, s.Transactions, 1, s.Store.Name)
	}
}

func TestTransactionIngestor_ReusesOwnerAndStore(t *testing.T) {
	repo := storage.NewMemoryStore()
	ing := NewTransactionIngestor(repo, logger.NewNop())

	for i, line := range []string{lineBarDoJoao, lineMercearia, lineBarDoJoao2} {
		_, err := ingestLine(t, ing, line, i+1)
		require.NoError(t, err)
	}

	stores := allStores(t, repo)
	require.Len(t, stores, 2)
	assert.Equal(t, stores[0].Store.OwnerID, stores[1].Store.OwnerID)

	bar := stores[0]
	assert.Equal(t, "BAR DO JOÃO", bar.Store.Name)
	require.Len(t, bar.Transactions, 2)
	assert.True(t, bar.Balance().Equal(decimal.RequireFromString("-254.00")), bar.Balance().String())
}

func TestTransactionIngestor_SignFollowsType(t *testing.T) {
	repo := storage.NewMemoryStore()
	ing := NewTransactionIngestor(repo, logger.NewNop())
	base := decode(t, lineBarDoJoao)

	for code := 1; code <= 9; code++ {
		rec := base
		rec.Type = domain.TransactionType(code)
		rec.StoreName = "LOJA " + domain.TransactionType(code).String()
		// raw amounts with the wrong sign are normalized too
		if code%2 == 0 {
			rec.Amount = rec.Amount.Neg()
		}

		outcome, err := ing.Ingest(context.Background(), rec, code, cnab.HashLine(rec.StoreName))
		require.NoError(t, err)
		require.Equal(t, domain.OutcomeCreated, outcome)
	}

	for _, s := range allStores(t, repo) {
		require.Len(t, s.Transactions, 1)
		tx := s.Transactions[0]
		assert.Equal(t, tx.Type.IsExpense(), tx.Amount.IsNegative(), tx.Type.String())
		assert.True(t, tx.Amount.Abs().Equal(decimal.RequireFromString("142")))
	}
}

func TestTransactionIngestor_InvalidOwnerLeavesNoWrites(t *testing.T) {
	repo := storage.NewMemoryStore()
	ing := NewTransactionIngestor(repo, logger.NewNop())

	_, err := ingestLine(t, ing, lineLojaDoO, 1)
	require.NoError(t, err)

	rec := decode(t, lineMercearia)
	rec.CPF = "11122233344"
	rec.OwnerName = "NOME MUITO COMPRIDO"

	outcome, err := ing.Ingest(context.Background(), rec, 2, "long-owner")

	assert.Equal(t, domain.OutcomeInvalid, outcome)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.EntityStoreOwner, verr.Entity)
	assert.True(t, verr.HasField("name"))

	stores := allStores(t, repo)
	require.Len(t, stores, 1)
	assert.Equal(t, "LOJA DO Ó - MATRIZ", stores[0].Store.Name)

	uow, err := repo.Begin(context.Background())
	require.NoError(t, err)
	owner, err := uow.FindOwnerByCPF(context.Background(), "11122233344")
	require.NoError(t, err)
	assert.Nil(t, owner)
}

func TestTransactionIngestor_InvalidTransactionRollsBackOwnerAndStore(t *testing.T) {
	repo := storage.NewMemoryStore()
	ing := NewTransactionIngestor(repo, logger.NewNop())
	ing.now = func() time.Time { return time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC) }

	// dated two months after the processing clock
	outcome, err := ingestLine(t, ing, lineBarDoJoao, 1)

	assert.Equal(t, domain.OutcomeInvalid, outcome)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.EntityTransaction, verr.Entity)
	assert.True(t, verr.HasField("date"))
	assert.Empty(t, allStores(t, repo))
}

func TestTransactionIngestor_InvalidCardNumber(t *testing.T) {
	repo := storage.NewMemoryStore()
	ing := NewTransactionIngestor(repo, logger.NewNop())

	rec := decode(t, lineBarDoJoao)
	rec.CardNumber = "4753-3153"

	outcome, err := ing.Ingest(context.Background(), rec, 1, "bad-card")

	assert.Equal(t, domain.OutcomeInvalid, outcome)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.HasField("card_number"))
	assert.Empty(t, allStores(t, repo))
}

func TestTransactionIngestor_ReusesOwnerAfterLostInsertRace(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	uow := mocks.NewMockUnitOfWork(t)
	ing := NewTransactionIngestor(repo, logger.NewNop())
	rec := decode(t, lineBarDoJoao)

	winner := &domain.StoreOwner{ID: "owner-winner", Name: "JOÃO MACEDO", CPF: rec.CPF}
	store := &domain.Store{ID: "store-1", Name: rec.StoreName, OwnerID: winner.ID}

	repo.EXPECT().Begin(mock.Anything).Return(uow, nil).Once()
	uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
	uow.EXPECT().ExistsTransactionByHash(mock.Anything, "hash").Return(false, nil).Once()
	uow.EXPECT().FindOwnerByCPF(mock.Anything, rec.CPF).Return(nil, nil).Once()
	uow.EXPECT().
		InsertOwner(mock.Anything, mock.AnythingOfType("*domain.StoreOwner")).
		Return(&domain.DuplicateKeyError{Entity: domain.EntityStoreOwner, Key: rec.CPF}).
		Once()
	uow.EXPECT().FindOwnerByCPF(mock.Anything, rec.CPF).Return(winner, nil).Once()
	uow.EXPECT().FindStoreByName(mock.Anything, rec.StoreName).Return(store, nil).Once()
	uow.EXPECT().
		InsertTransaction(mock.Anything, mock.MatchedBy(func(tx *domain.Transaction) bool {
			return tx.StoreID == "store-1" && tx.Amount.Equal(decimal.RequireFromString("-142")) && tx.LineHash == "hash"
		})).
		Return(nil).
		Once()
	uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

	outcome, err := ing.Ingest(context.Background(), rec, 1, "hash")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCreated, outcome)
}

func TestTransactionIngestor_StoreCreatedForResolvedOwner(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	uow := mocks.NewMockUnitOfWork(t)
	ing := NewTransactionIngestor(repo, logger.NewNop())
	rec := decode(t, lineBarDoJoao)

	owner := &domain.StoreOwner{ID: "owner-1", Name: "JOÃO MACEDO", CPF: rec.CPF}

	repo.EXPECT().Begin(mock.Anything).Return(uow, nil).Once()
	uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
	uow.EXPECT().ExistsTransactionByHash(mock.Anything, "hash").Return(false, nil).Once()
	uow.EXPECT().FindOwnerByCPF(mock.Anything, rec.CPF).Return(owner, nil).Once()
	uow.EXPECT().FindStoreByName(mock.Anything, rec.StoreName).Return(nil, nil).Once()

	var created *domain.Store
	uow.EXPECT().
		InsertStore(mock.Anything, mock.AnythingOfType("*domain.Store")).
		Run(func(ctx context.Context, store *domain.Store) { created = store }).
		Return(nil).
		Once()
	uow.EXPECT().InsertTransaction(mock.Anything, mock.Anything).Return(nil).Once()
	uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

	outcome, err := ing.Ingest(context.Background(), rec, 1, "hash")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCreated, outcome)
	require.NotNil(t, created)
	assert.Equal(t, "owner-1", created.OwnerID)
	assert.Equal(t, "BAR DO JOÃO", created.Name)
}

func TestTransactionIngestor_RetriesLineWhenCommitLosesRace(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	first := mocks.NewMockUnitOfWork(t)
	second := mocks.NewMockUnitOfWork(t)
	ing := NewTransactionIngestor(repo, logger.NewNop())
	rec := decode(t, lineBarDoJoao)

	owner := &domain.StoreOwner{ID: "owner-1", Name: "JOÃO MACEDO", CPF: rec.CPF}
	winner := &domain.Store{ID: "store-winner", Name: rec.StoreName, OwnerID: owner.ID}

	repo.EXPECT().Begin(mock.Anything).Return(first, nil).Once()
	repo.EXPECT().Begin(mock.Anything).Return(second, nil).Once()

	first.EXPECT().Rollback(mock.Anything).Return(nil).Once()
	first.EXPECT().ExistsTransactionByHash(mock.Anything, "hash").Return(false, nil).Once()
	first.EXPECT().FindOwnerByCPF(mock.Anything, rec.CPF).Return(owner, nil).Once()
	first.EXPECT().FindStoreByName(mock.Anything, rec.StoreName).Return(nil, nil).Once()
	first.EXPECT().InsertStore(mock.Anything, mock.Anything).Return(nil).Once()
	first.EXPECT().InsertTransaction(mock.Anything, mock.Anything).Return(nil).Once()
	first.EXPECT().
		Commit(mock.Anything).
		Return(&domain.DuplicateKeyError{Entity: domain.EntityStore, Key: rec.StoreName}).
		Once()

	second.EXPECT().Rollback(mock.Anything).Return(nil).Once()
	second.EXPECT().ExistsTransactionByHash(mock.Anything, "hash").Return(false, nil).Once()
	second.EXPECT().FindOwnerByCPF(mock.Anything, rec.CPF).Return(owner, nil).Once()
	second.EXPECT().FindStoreByName(mock.Anything, rec.StoreName).Return(winner, nil).Once()
	second.EXPECT().
		InsertTransaction(mock.Anything, mock.MatchedBy(func(tx *domain.Transaction) bool {
			return tx.StoreID == "store-winner"
		})).
		Return(nil).
		Once()
	second.EXPECT().Commit(mock.Anything).Return(nil).Once()

	outcome, err := ing.Ingest(context.Background(), rec, 1, "hash")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCreated, outcome)
}

func TestTransactionIngestor_DuplicateHashAtInsert(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	uow := mocks.NewMockUnitOfWork(t)
	ing := NewTransactionIngestor(repo, logger.NewNop())
	rec := decode(t, lineBarDoJoao)

	owner := &domain.StoreOwner{ID: "owner-1", Name: "JOÃO MACEDO", CPF: rec.CPF}
	store := &domain.Store{ID: "store-1", Name: rec.StoreName, OwnerID: owner.ID}

	repo.EXPECT().Begin(mock.Anything).Return(uow, nil).Once()
	uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
	uow.EXPECT().ExistsTransactionByHash(mock.Anything, "hash").Return(false, nil).Once()
	uow.EXPECT().FindOwnerByCPF(mock.Anything, rec.CPF).Return(owner, nil).Once()
	uow.EXPECT().FindStoreByName(mock.Anything, rec.StoreName).Return(store, nil).Once()
	uow.EXPECT().
		InsertTransaction(mock.Anything, mock.Anything).
		Return(&domain.DuplicateKeyError{Entity: domain.EntityTransaction, Key: "hash"}).
		Once()

	outcome, err := ing.Ingest(context.Background(), rec, 1, "hash")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDuplicate, outcome)
}

func TestTransactionIngestor_PersistenceFailure(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	uow := mocks.NewMockUnitOfWork(t)
	ing := NewTransactionIngestor(repo, logger.NewNop())
	rec := decode(t, lineBarDoJoao)
	cause := errors.New("connection reset")

	repo.EXPECT().Begin(mock.Anything).Return(uow, nil).Once()
	uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
	uow.EXPECT().ExistsTransactionByHash(mock.Anything, "hash").Return(false, cause).Once()

	outcome, err := ing.Ingest(context.Background(), rec, 1, "hash")

	assert.Equal(t, domain.OutcomeFailed, outcome)
	var perr *domain.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, cause)
}

func TestTransactionIngestor_BeginFailure(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	ing := NewTransactionIngestor(repo, logger.NewNop())

	repo.EXPECT().Begin(mock.Anything).Return(nil, errors.New("pool exhausted")).Once()

	outcome, err := ing.Ingest(context.Background(), decode(t, lineBarDoJoao), 1, "hash")

	assert.Equal(t, domain.OutcomeFailed, outcome)
	assert.ErrorContains(t, err, "pool exhausted")
}
