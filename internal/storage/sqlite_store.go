package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/grachmannico95/cnab-ledger/internal/domain"
)

const sqliteTimeLayout = "2006-01-02 15:04:05.000000000"

// SQLiteStore is a LedgerRepository backed by a SQLite file. Units of work
// start with BEGIN IMMEDIATE so writers are serialized.
type SQLiteStore struct {
	db   *sql.DB
	path string
	loc  *time.Location
}

// OpenSQLite opens or creates the database at path. Dates are stored in UTC
// and read back in loc, nil meaning UTC.
func OpenSQLite(ctx context.Context, path string, busyTimeout time.Duration, loc *time.Location) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_txlock=immediate&_busy_timeout=%d",
		path, busyTimeout.Milliseconds())
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, SQLiteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	if loc == nil {
		loc = time.UTC
	}

	return &SQLiteStore{db: db, path: path, loc: loc}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Begin(ctx context.Context) (domain.UnitOfWork, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, domain.NewPersistenceError("begin", err)
	}
	return &sqliteUnit{tx: tx}, nil
}

func (s *SQLiteStore) PagedStores(ctx context.Context, page, pageSize int, cpf string) ([]domain.StoreLedger, int, error) {
	const filter = `(? = '' OR EXISTS (SELECT 1 FROM transactions t WHERE t.store_id = s.id AND t.cpf = ?))`

	var total int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stores s WHERE `+filter, cpf, cpf).Scan(&total)
	if err != nil {
		return nil, 0, domain.NewPersistenceError("count stores", err)
	}

	start, end := domain.PageBounds(page, pageSize, total)
	if start == end {
		return []domain.StoreLedger{}, total, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.name, s.owner_id, s.created_at, s.updated_at, o.name
		FROM stores s
		JOIN store_owners o ON o.id = s.owner_id
		WHERE `+filter+`
		ORDER BY s.name
		LIMIT ? OFFSET ?`,
		cpf, cpf, end-start, start)
	if err != nil {
		return nil, 0, domain.NewPersistenceError("list stores", err)
	}
	defer rows.Close()

	var items []domain.StoreLedger
	index := make(map[string]int)
	for rows.Next() {
		var (
			item                 domain.StoreLedger
			createdAt, updatedAt string
		)
		if err := rows.Scan(&item.Store.ID, &item.Store.Name, &item.Store.OwnerID, &createdAt, &updatedAt, &item.OwnerName); err != nil {
			return nil, 0, domain.NewPersistenceError("scan store", err)
		}
		if item.Store.CreatedAt, err = parseSQLiteTime(createdAt); err != nil {
			return nil, 0, domain.NewPersistenceError("scan store", err)
		}
		if item.Store.UpdatedAt, err = parseSQLiteTime(updatedAt); err != nil {
			return nil, 0, domain.NewPersistenceError("scan store", err)
		}
		item.Transactions = []domain.Transaction{}
		index[item.Store.ID] = len(items)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, domain.NewPersistenceError("list stores", err)
	}
	if len(items) == 0 {
		return []domain.StoreLedger{}, total, nil
	}

	args := make([]any, 0, len(items))
	for _, item := range items {
		args = append(args, item.Store.ID)
	}
	txRows, err := s.db.QueryContext(ctx, `
		SELECT id, type, date, amount, cpf, card_number, line_hash, store_id, created_at
		FROM transactions
		WHERE store_id IN (`+placeholders(len(args))+`)
		ORDER BY date, rowid`, args...)
	if err != nil {
		return nil, 0, domain.NewPersistenceError("list transactions", err)
	}
	defer txRows.Close()

	for txRows.Next() {
		tx, err := scanSQLiteTransaction(txRows, s.loc)
		if err != nil {
			return nil, 0, domain.NewPersistenceError("scan transaction", err)
		}
		i := index[tx.StoreID]
		items[i].Transactions = append(items[i].Transactions, tx)
	}
	if err := txRows.Err(); err != nil {
		return nil, 0, domain.NewPersistenceError("list transactions", err)
	}

	return items, total, nil
}

type sqliteUnit struct {
	tx *sql.Tx
}

func (u *sqliteUnit) FindOwnerByCPF(ctx context.Context, cpf string) (*domain.StoreOwner, error) {
	var (
		owner                domain.StoreOwner
		createdAt, updatedAt string
	)
	err := u.tx.QueryRowContext(ctx,
		`SELECT id, name, cpf, created_at, updated_at FROM store_owners WHERE cpf = ?`, cpf,
	).Scan(&owner.ID, &owner.Name, &owner.CPF, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewPersistenceError("find owner", err)
	}
	if owner.CreatedAt, err = parseSQLiteTime(createdAt); err != nil {
		return nil, domain.NewPersistenceError("find owner", err)
	}
	if owner.UpdatedAt, err = parseSQLiteTime(updatedAt); err != nil {
		return nil, domain.NewPersistenceError("find owner", err)
	}
	return &owner, nil
}

func (u *sqliteUnit) InsertOwner(ctx context.Context, owner *domain.StoreOwner) error {
	_, err := u.tx.ExecContext(ctx,
		`INSERT INTO store_owners (id, name, cpf, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		owner.ID, owner.Name, owner.CPF, formatSQLiteTime(owner.CreatedAt), formatSQLiteTime(owner.UpdatedAt))
	return sqliteWriteError("insert owner", domain.EntityStoreOwner, owner.CPF, err)
}

func (u *sqliteUnit) FindStoreByName(ctx context.Context, name string) (*domain.Store, error) {
	var (
		store                domain.Store
		createdAt, updatedAt string
	)
	err := u.tx.QueryRowContext(ctx,
		`SELECT id, name, owner_id, created_at, updated_at FROM stores WHERE name = ?`, name,
	).Scan(&store.ID, &store.Name, &store.OwnerID, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewPersistenceError("find store", err)
	}
	if store.CreatedAt, err = parseSQLiteTime(createdAt); err != nil {
		return nil, domain.NewPersistenceError("find store", err)
	}
	if store.UpdatedAt, err = parseSQLiteTime(updatedAt); err != nil {
		return nil, domain.NewPersistenceError("find store", err)
	}
	return &store, nil
}

func (u *sqliteUnit) InsertStore(ctx context.Context, store *domain.Store) error {
	_, err := u.tx.ExecContext(ctx,
		`INSERT INTO stores (id, name, owner_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		store.ID, store.Name, store.OwnerID, formatSQLiteTime(store.CreatedAt), formatSQLiteTime(store.UpdatedAt))
	return sqliteWriteError("insert store", domain.EntityStore, store.Name, err)
}

func (u *sqliteUnit) ExistsTransactionByHash(ctx context.Context, lineHash string) (bool, error) {
	var exists bool
	err := u.tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM transactions WHERE line_hash = ?)`, lineHash,
	).Scan(&exists)
	if err != nil {
		return false, domain.NewPersistenceError("exists transaction", err)
	}
	return exists, nil
}

func (u *sqliteUnit) InsertTransaction(ctx context.Context, tx *domain.Transaction) error {
	_, err := u.tx.ExecContext(ctx, `
		INSERT INTO transactions (id, type, date, amount, cpf, card_number, line_hash, store_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID, int(tx.Type), formatSQLiteTime(tx.Date), tx.Amount.String(), tx.CPF, tx.CardNumber,
		tx.LineHash, tx.StoreID, formatSQLiteTime(tx.CreatedAt))
	return sqliteWriteError("insert transaction", domain.EntityTransaction, tx.LineHash, err)
}

func (u *sqliteUnit) Commit(ctx context.Context) error {
	if err := u.tx.Commit(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return domain.NewPersistenceError("commit", err)
	}
	return nil
}

func (u *sqliteUnit) Rollback(ctx context.Context) error {
	if err := u.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return domain.NewPersistenceError("rollback", err)
	}
	return nil
}

func sqliteWriteError(op string, entity domain.Entity, key string, err error) error {
	if err == nil {
		return nil
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return &domain.DuplicateKeyError{Entity: entity, Key: key}
	}
	return domain.NewPersistenceError(op, err)
}

func scanSQLiteTransaction(rows *sql.Rows, loc *time.Location) (domain.Transaction, error) {
	var (
		tx                      domain.Transaction
		typ                     int
		date, amount, createdAt string
	)
	if err := rows.Scan(&tx.ID, &typ, &date, &amount, &tx.CPF, &tx.CardNumber, &tx.LineHash, &tx.StoreID, &createdAt); err != nil {
		return tx, err
	}

	var err error
	tx.Type = domain.TransactionType(typ)
	if tx.Date, err = parseSQLiteTime(date); err != nil {
		return tx, err
	}
	tx.Date = tx.Date.In(loc)
	if tx.Amount, err = decimal.NewFromString(amount); err != nil {
		return tx, err
	}
	if tx.CreatedAt, err = parseSQLiteTime(createdAt); err != nil {
		return tx, err
	}
	return tx, nil
}

func formatSQLiteTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

func parseSQLiteTime(s string) (time.Time, error) {
	return time.ParseInLocation(sqliteTimeLayout, s, time.UTC)
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
