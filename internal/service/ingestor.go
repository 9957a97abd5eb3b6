package service

import (
	"context"
	"errors"
	"time"

	"github.com/grachmannico95/cnab-ledger/internal/cnab"
	"github.com/grachmannico95/cnab-ledger/internal/domain"
	"github.com/grachmannico95/cnab-ledger/pkg/logger"
)

type LineIngestor interface {
	Ingest(ctx context.Context, rec cnab.Record, lineNumber int, lineHash string) (domain.LineOutcome, error)
}

// TransactionIngestor stores one decoded line per unit of work, creating
// the owner and store on first reference.
type TransactionIngestor struct {
	repo   domain.LedgerRepository
	logger *logger.Logger
	now    func() time.Time
}

func NewTransactionIngestor(repo domain.LedgerRepository, log *logger.Logger) *TransactionIngestor {
	return &TransactionIngestor{
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
}

// Ingest returns OutcomeInvalid with a *domain.ValidationError, OutcomeFailed
// with a *domain.PersistenceError, or a nil error for created and duplicate lines.
func (i *TransactionIngestor) Ingest(ctx context.Context, rec cnab.Record, lineNumber int, lineHash string) (domain.LineOutcome, error) {
	outcome, err := i.attempt(ctx, rec, lineNumber, lineHash)

	// A concurrent writer committed the same owner or store after our
	// lookup. Run the line again so it resolves to the winner.
	var dup *domain.DuplicateKeyError
	if errors.As(err, &dup) && dup.Entity != domain.EntityTransaction {
		i.logger.Debug(ctx, "Lost creation race, retrying line",
			"line", lineNumber,
			"entity", dup.Entity,
			"key", dup.Key,
		)
		outcome, err = i.attempt(ctx, rec, lineNumber, lineHash)
	}

	if err == nil {
		return outcome, nil
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		i.logger.Warn(ctx, "Line failed validation",
			"line", lineNumber,
			"error", verr.Error(),
		)
		return domain.OutcomeInvalid, verr
	}

	i.logger.Error(ctx, "Failed to persist line",
		"line", lineNumber,
		"error", err,
	)
	return domain.OutcomeFailed, domain.NewPersistenceError("ingest line", err)
}

func (i *TransactionIngestor) attempt(ctx context.Context, rec cnab.Record, lineNumber int, lineHash string) (domain.LineOutcome, error) {
	uow, err := i.repo.Begin(ctx)
	if err != nil {
		return domain.OutcomeFailed, err
	}
	defer uow.Rollback(ctx)

	exists, err := uow.ExistsTransactionByHash(ctx, lineHash)
	if err != nil {
		return domain.OutcomeFailed, err
	}
	if exists {
		i.logger.Warn(ctx, "Duplicate transaction detected",
			"line", lineNumber,
			"hash", lineHash,
		)
		return domain.OutcomeDuplicate, nil
	}

	owner, err := i.resolveOwner(ctx, uow, rec)
	if err != nil {
		return domain.OutcomeFailed, err
	}

	store, err := i.resolveStore(ctx, uow, rec.StoreName, owner)
	if err != nil {
		return domain.OutcomeFailed, err
	}

	tx, err := domain.NewTransaction(domain.TransactionParams{
		Type:        rec.Type,
		Date:        rec.Date,
		Amount:      rec.Type.SignedAmount(rec.Amount),
		CPF:         rec.CPF,
		CardNumber:  rec.CardNumber,
		LineHash:    lineHash,
		Store:       store,
		ProcessedAt: i.now(),
	})
	if err != nil {
		return domain.OutcomeInvalid, err
	}

	if err := uow.InsertTransaction(ctx, tx); err != nil {
		if isDuplicateTransaction(err) {
			return domain.OutcomeDuplicate, nil
		}
		return domain.OutcomeFailed, err
	}

	if err := uow.Commit(ctx); err != nil {
		if isDuplicateTransaction(err) {
			return domain.OutcomeDuplicate, nil
		}
		return domain.OutcomeFailed, err
	}

	i.logger.Info(ctx, "Transaction persisted",
		"line", lineNumber,
		"transaction_id", tx.ID,
		"type", tx.Type.String(),
		"store", store.Name,
		"amount", tx.Amount.String(),
	)

	return domain.OutcomeCreated, nil
}

func (i *TransactionIngestor) resolveOwner(ctx context.Context, uow domain.UnitOfWork, rec cnab.Record) (*domain.StoreOwner, error) {
	owner, err := uow.FindOwnerByCPF(ctx, rec.CPF)
	if err != nil || owner != nil {
		return owner, err
	}

	owner, err = domain.NewStoreOwner(rec.OwnerName, rec.CPF)
	if err != nil {
		return nil, err
	}

	err = uow.InsertOwner(ctx, owner)
	if errors.Is(err, domain.ErrDuplicateKey) {
		return reuseExisting(err, func() (*domain.StoreOwner, error) {
			return uow.FindOwnerByCPF(ctx, rec.CPF)
		})
	}
	if err != nil {
		return nil, err
	}

	i.logger.Debug(ctx, "Created store owner", "owner_id", owner.ID, "name", owner.Name)
	return owner, nil
}

func (i *TransactionIngestor) resolveStore(ctx context.Context, uow domain.UnitOfWork, name string, owner *domain.StoreOwner) (*domain.Store, error) {
	store, err := uow.FindStoreByName(ctx, name)
	if err != nil || store != nil {
		return store, err
	}

	store, err = domain.NewStore(name, owner)
	if err != nil {
		return nil, err
	}

	err = uow.InsertStore(ctx, store)
	if errors.Is(err, domain.ErrDuplicateKey) {
		return reuseExisting(err, func() (*domain.Store, error) {
			return uow.FindStoreByName(ctx, name)
		})
	}
	if err != nil {
		return nil, err
	}

	i.logger.Debug(ctx, "Created store", "store_id", store.ID, "name", store.Name)
	return store, nil
}

// reuseExisting re-fetches the row that won a uniqueness race. If it is
// still not visible the original conflict is returned.
func reuseExisting[T any](conflict error, find func() (*T, error)) (*T, error) {
	found, err := find()
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, conflict
	}
	return found, nil
}

func isDuplicateTransaction(err error) bool {
	var dup *domain.DuplicateKeyError
	return errors.As(err, &dup) && dup.Entity == domain.EntityTransaction
}
