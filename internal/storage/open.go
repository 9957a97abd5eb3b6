package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/grachmannico95/cnab-ledger/internal/config"
	"github.com/grachmannico95/cnab-ledger/internal/domain"
	"github.com/grachmannico95/cnab-ledger/pkg/logger"
)

// Ledger is a LedgerRepository that owns a connection.
type Ledger interface {
	domain.LedgerRepository
	Close() error
}

// Open returns the ledger backend selected by cfg.Driver. SQL backends
// return transaction dates in loc.
func Open(ctx context.Context, cfg config.StorageConfig, loc *time.Location, log *logger.Logger) (Ledger, error) {
	switch cfg.Driver {
	case config.StorageDriverMemory:
		log.Warn(ctx, "Using in-memory storage, data is lost on restart")
		return NewMemoryStore(), nil

	case config.StorageDriverSQLite:
		store, err := OpenSQLite(ctx, cfg.SQLitePath, cfg.SQLiteBusy, loc)
		if err != nil {
			return nil, err
		}
		log.Info(ctx, "SQLite storage opened", "path", store.Path())
		return store, nil

	case config.StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("storage driver %q requires DB_DSN", cfg.Driver)
		}
		store, err := OpenPostgres(ctx, cfg.PostgresDSN, cfg.AutoMigrate, loc)
		if err != nil {
			return nil, err
		}
		log.Info(ctx, "Postgres storage opened", "auto_migrate", cfg.AutoMigrate)
		return store, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
