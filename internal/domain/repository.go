package domain

import "context"

// UnitOfWork groups the writes of one ingested line. Lookups return
// (nil, nil) when nothing matches. Inserts that hit a natural key return a
// *DuplicateKeyError. Rollback after Commit is a no-op.
type UnitOfWork interface {
	FindOwnerByCPF(ctx context.Context, cpf string) (*StoreOwner, error)
	InsertOwner(ctx context.Context, owner *StoreOwner) error

	FindStoreByName(ctx context.Context, name string) (*Store, error)
	InsertStore(ctx context.Context, store *Store) error

	ExistsTransactionByHash(ctx context.Context, lineHash string) (bool, error)
	InsertTransaction(ctx context.Context, tx *Transaction) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type LedgerRepository interface {
	Begin(ctx context.Context) (UnitOfWork, error)

	// PagedStores returns stores ordered by name with their transactions,
	// and the count of all qualifying stores. A non-empty cpf keeps only
	// stores with at least one transaction paid by that CPF.
	PagedStores(ctx context.Context, page, pageSize int, cpf string) ([]StoreLedger, int, error)

	Ping(ctx context.Context) error
}

type UploadRepository interface {
	CreateUpload(ctx context.Context, uploadID, source string) error
	GetUpload(ctx context.Context, uploadID string) (*Upload, error)
	UpdateUploadStatus(ctx context.Context, uploadID string, status UploadStatus) error
	SaveUploadReport(ctx context.Context, uploadID string, report *BatchReport) error

	// Idempotency tracking for bus events
	IsEventProcessed(ctx context.Context, eventID string) (bool, error)
	MarkEventProcessed(ctx context.Context, eventID string) error
}
