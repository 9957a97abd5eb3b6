package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/grachmannico95/cnab-ledger/internal/domain"
)

const pgUniqueViolation = "23505"

type pgStoreOwner struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:64;not null"`
	CPF       string `gorm:"column:cpf;size:11;not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (pgStoreOwner) TableName() string { return "store_owners" }

type pgStore struct {
	ID        string       `gorm:"primaryKey;size:36"`
	Name      string       `gorm:"size:64;not null;uniqueIndex"`
	OwnerID   string       `gorm:"size:36;not null;index"`
	Owner     pgStoreOwner `gorm:"foreignKey:OwnerID;references:ID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (pgStore) TableName() string { return "stores" }

type pgTransaction struct {
	ID         string          `gorm:"primaryKey;size:36"`
	Type       int             `gorm:"not null"`
	Date       time.Time       `gorm:"not null"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CPF        string          `gorm:"column:cpf;size:11;not null;index"`
	CardNumber string          `gorm:"size:12;not null"`
	LineHash   string          `gorm:"size:64;not null;uniqueIndex"`
	StoreID    string          `gorm:"size:36;not null;index:idx_transactions_store_date,priority:1"`
	Store      pgStore         `gorm:"foreignKey:StoreID;references:ID"`
	CreatedAt  time.Time       `gorm:"index:idx_transactions_store_date,priority:2"`
}

func (pgTransaction) TableName() string { return "transactions" }

type pgStoreRow struct {
	ID        string
	Name      string
	OwnerID   string
	OwnerName string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostgresStore is a LedgerRepository on PostgreSQL through gorm.
type PostgresStore struct {
	db  *gorm.DB
	loc *time.Location
}

// OpenPostgres connects to dsn. Transaction dates are returned in loc, nil
// meaning UTC.
func OpenPostgres(ctx context.Context, dsn string, autoMigrate bool, loc *time.Location) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect postgres database: %w", err)
	}

	if loc == nil {
		loc = time.UTC
	}

	store := &PostgresStore{db: db, loc: loc}
	if err := store.Ping(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if autoMigrate {
		if err := db.WithContext(ctx).AutoMigrate(&pgStoreOwner{}, &pgStore{}, &pgTransaction{}); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	return store, nil
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *PostgresStore) Begin(ctx context.Context) (domain.UnitOfWork, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, domain.NewPersistenceError("begin", tx.Error)
	}
	return &postgresUnit{tx: tx}, nil
}

func (s *PostgresStore) PagedStores(ctx context.Context, page, pageSize int, cpf string) ([]domain.StoreLedger, int, error) {
	scoped := func(db *gorm.DB) *gorm.DB {
		if cpf == "" {
			return db
		}
		return db.Where("EXISTS (SELECT 1 FROM transactions t WHERE t.store_id = stores.id AND t.cpf = ?)", cpf)
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&pgStore{}).Scopes(scoped).Count(&total).Error; err != nil {
		return nil, 0, domain.NewPersistenceError("count stores", err)
	}

	start, end := domain.PageBounds(page, pageSize, int(total))
	if start == end {
		return []domain.StoreLedger{}, int(total), nil
	}

	var rows []pgStoreRow
	err := s.db.WithContext(ctx).
		Table("stores").
		Select("stores.id, stores.name, stores.owner_id, store_owners.name AS owner_name, stores.created_at, stores.updated_at").
		Joins("JOIN store_owners ON store_owners.id = stores.owner_id").
		Scopes(scoped).
		Order(`stores.name COLLATE "C"`).
		Limit(end - start).
		Offset(start).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, domain.NewPersistenceError("list stores", err)
	}
	if len(rows) == 0 {
		return []domain.StoreLedger{}, int(total), nil
	}

	ids := make([]string, 0, len(rows))
	index := make(map[string]int, len(rows))
	items := make([]domain.StoreLedger, 0, len(rows))
	for i, row := range rows {
		ids = append(ids, row.ID)
		index[row.ID] = i
		items = append(items, domain.StoreLedger{
			Store: domain.Store{
				ID:        row.ID,
				Name:      row.Name,
				OwnerID:   row.OwnerID,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			OwnerName:    row.OwnerName,
			Transactions: []domain.Transaction{},
		})
	}

	var txs []pgTransaction
	err = s.db.WithContext(ctx).
		Where("store_id IN ?", ids).
		Order("date, created_at, id").
		Find(&txs).Error
	if err != nil {
		return nil, 0, domain.NewPersistenceError("list transactions", err)
	}

	for _, tx := range txs {
		i := index[tx.StoreID]
		items[i].Transactions = append(items[i].Transactions, tx.toDomain(s.loc))
	}

	return items, int(total), nil
}

type postgresUnit struct {
	tx   *gorm.DB
	done bool
}

func (u *postgresUnit) FindOwnerByCPF(ctx context.Context, cpf string) (*domain.StoreOwner, error) {
	var row pgStoreOwner
	err := u.tx.WithContext(ctx).Where("cpf = ?", cpf).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewPersistenceError("find owner", err)
	}
	return &domain.StoreOwner{
		ID:        row.ID,
		Name:      row.Name,
		CPF:       row.CPF,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (u *postgresUnit) InsertOwner(ctx context.Context, owner *domain.StoreOwner) error {
	row := pgStoreOwner{
		ID:        owner.ID,
		Name:      owner.Name,
		CPF:       owner.CPF,
		CreatedAt: owner.CreatedAt,
		UpdatedAt: owner.UpdatedAt,
	}
	return u.insert(ctx, "insert owner", domain.EntityStoreOwner, owner.CPF, &row)
}

func (u *postgresUnit) FindStoreByName(ctx context.Context, name string) (*domain.Store, error) {
	var row pgStore
	err := u.tx.WithContext(ctx).Where("name = ?", name).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewPersistenceError("find store", err)
	}
	return &domain.Store{
		ID:        row.ID,
		Name:      row.Name,
		OwnerID:   row.OwnerID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (u *postgresUnit) InsertStore(ctx context.Context, store *domain.Store) error {
	row := pgStore{
		ID:        store.ID,
		Name:      store.Name,
		OwnerID:   store.OwnerID,
		CreatedAt: store.CreatedAt,
		UpdatedAt: store.UpdatedAt,
	}
	return u.insert(ctx, "insert store", domain.EntityStore, store.Name, &row)
}

func (u *postgresUnit) ExistsTransactionByHash(ctx context.Context, lineHash string) (bool, error) {
	var count int64
	err := u.tx.WithContext(ctx).Model(&pgTransaction{}).Where("line_hash = ?", lineHash).Limit(1).Count(&count).Error
	if err != nil {
		return false, domain.NewPersistenceError("exists transaction", err)
	}
	return count > 0, nil
}

func (u *postgresUnit) InsertTransaction(ctx context.Context, tx *domain.Transaction) error {
	row := pgTransaction{
		ID:         tx.ID,
		Type:       int(tx.Type),
		Date:       tx.Date,
		Amount:     tx.Amount,
		CPF:        tx.CPF,
		CardNumber: tx.CardNumber,
		LineHash:   tx.LineHash,
		StoreID:    tx.StoreID,
		CreatedAt:  tx.CreatedAt,
	}
	return u.insert(ctx, "insert transaction", domain.EntityTransaction, tx.LineHash, &row)
}

// insert runs inside a savepoint so a unique violation leaves the
// transaction usable for the follow-up lookup.
func (u *postgresUnit) insert(ctx context.Context, op string, entity domain.Entity, key string, row any) error {
	const savepoint = "cnab_insert"

	db := u.tx.WithContext(ctx)
	if err := db.SavePoint(savepoint).Error; err != nil {
		return domain.NewPersistenceError(op, err)
	}

	err := db.Omit(clause.Associations).Create(row).Error
	if err == nil {
		return nil
	}

	if rbErr := db.RollbackTo(savepoint).Error; rbErr != nil {
		return domain.NewPersistenceError(op, fmt.Errorf("%v, rollback to savepoint: %w", err, rbErr))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &domain.DuplicateKeyError{Entity: entity, Key: key}
	}
	return domain.NewPersistenceError(op, err)
}

func (u *postgresUnit) Commit(ctx context.Context) error {
	if u.done {
		return nil
	}
	u.done = true
	if err := u.tx.Commit().Error; err != nil {
		return domain.NewPersistenceError("commit", err)
	}
	return nil
}

func (u *postgresUnit) Rollback(ctx context.Context) error {
	if u.done {
		return nil
	}
	u.done = true
	if err := u.tx.Rollback().Error; err != nil && !errors.Is(err, sql.ErrTxDone) {
		return domain.NewPersistenceError("rollback", err)
	}
	return nil
}

func (t pgTransaction) toDomain(loc *time.Location) domain.Transaction {
	return domain.Transaction{
		ID:         t.ID,
		Type:       domain.TransactionType(t.Type),
		Date:       t.Date.In(loc),
		Amount:     t.Amount,
		CPF:        t.CPF,
		CardNumber: t.CardNumber,
		LineHash:   t.LineHash,
		StoreID:    t.StoreID,
		CreatedAt:  t.CreatedAt,
	}
}
