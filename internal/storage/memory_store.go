package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/grachmannico95/cnab-ledger/internal/domain"
)

// MemoryStore is a LedgerRepository held in process memory. Natural keys
// are checked both when a write is staged and again at commit.
type MemoryStore struct {
	owners       map[string]*domain.StoreOwner
	ownersByCPF  map[string]string
	stores       map[string]*domain.Store
	storesByName map[string]string
	transactions map[string][]domain.Transaction
	hashes       map[string]bool
	mu           sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		owners:       make(map[string]*domain.StoreOwner),
		ownersByCPF:  make(map[string]string),
		stores:       make(map[string]*domain.Store),
		storesByName: make(map[string]string),
		transactions: make(map[string][]domain.Transaction),
		hashes:       make(map[string]bool),
	}
}

func (s *MemoryStore) Begin(ctx context.Context) (domain.UnitOfWork, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &memoryUnit{store: s}, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) PagedStores(ctx context.Context, page, pageSize int, cpf string) ([]domain.StoreLedger, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []*domain.Store
	for _, store := range s.stores {
		if cpf != "" && !s.storeHasPayer(store.ID, cpf) {
			continue
		}
		filtered = append(filtered, store)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Name < filtered[j].Name
	})

	total := len(filtered)
	start, end := domain.PageBounds(page, pageSize, total)

	items := make([]domain.StoreLedger, 0, end-start)
	for _, store := range filtered[start:end] {
		txs := make([]domain.Transaction, len(s.transactions[store.ID]))
		copy(txs, s.transactions[store.ID])
		sort.SliceStable(txs, func(i, j int) bool {
			return txs[i].Date.Before(txs[j].Date)
		})

		var ownerName string
		if owner, ok := s.owners[store.OwnerID]; ok {
			ownerName = owner.Name
		}

		items = append(items, domain.StoreLedger{
			Store:        *store,
			OwnerName:    ownerName,
			Transactions: txs,
		})
	}

	return items, total, nil
}

func (s *MemoryStore) storeHasPayer(storeID, cpf string) bool {
	for _, tx := range s.transactions[storeID] {
		if tx.CPF == cpf {
			return true
		}
	}
	return false
}

// memoryUnit stages writes until Commit.
type memoryUnit struct {
	store  *MemoryStore
	owners []*domain.StoreOwner
	stores []*domain.Store
	txs    []*domain.Transaction
	done   bool
}

func (u *memoryUnit) FindOwnerByCPF(ctx context.Context, cpf string) (*domain.StoreOwner, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, owner := range u.owners {
		if owner.CPF == cpf {
			found := *owner
			return &found, nil
		}
	}

	u.store.mu.RLock()
	defer u.store.mu.RUnlock()

	id, ok := u.store.ownersByCPF[cpf]
	if !ok {
		return nil, nil
	}
	found := *u.store.owners[id]
	return &found, nil
}

func (u *memoryUnit) InsertOwner(ctx context.Context, owner *domain.StoreOwner) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	existing, err := u.FindOwnerByCPF(ctx, owner.CPF)
	if err != nil {
		return err
	}
	if existing != nil {
		return &domain.DuplicateKeyError{Entity: domain.EntityStoreOwner, Key: owner.CPF}
	}

	staged := *owner
	u.owners = append(u.owners, &staged)
	return nil
}

func (u *memoryUnit) FindStoreByName(ctx context.Context, name string) (*domain.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, store := range u.stores {
		if store.Name == name {
			found := *store
			return &found, nil
		}
	}

	u.store.mu.RLock()
	defer u.store.mu.RUnlock()

	id, ok := u.store.storesByName[name]
	if !ok {
		return nil, nil
	}
	found := *u.store.stores[id]
	return &found, nil
}

func (u *memoryUnit) InsertStore(ctx context.Context, store *domain.Store) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	existing, err := u.FindStoreByName(ctx, store.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return &domain.DuplicateKeyError{Entity: domain.EntityStore, Key: store.Name}
	}

	staged := *store
	u.stores = append(u.stores, &staged)
	return nil
}

func (u *memoryUnit) ExistsTransactionByHash(ctx context.Context, lineHash string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	for _, tx := range u.txs {
		if tx.LineHash == lineHash {
			return true, nil
		}
	}

	u.store.mu.RLock()
	defer u.store.mu.RUnlock()

	return u.store.hashes[lineHash], nil
}

func (u *memoryUnit) InsertTransaction(ctx context.Context, tx *domain.Transaction) error {
	exists, err := u.ExistsTransactionByHash(ctx, tx.LineHash)
	if err != nil {
		return err
	}
	if exists {
		return &domain.DuplicateKeyError{Entity: domain.EntityTransaction, Key: tx.LineHash}
	}

	staged := *tx
	u.txs = append(u.txs, &staged)
	return nil
}

// Commit applies every staged write or none of them.
func (u *memoryUnit) Commit(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if u.done {
		return nil
	}

	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, owner := range u.owners {
		if _, ok := s.ownersByCPF[owner.CPF]; ok {
			return &domain.DuplicateKeyError{Entity: domain.EntityStoreOwner, Key: owner.CPF}
		}
	}
	for _, store := range u.stores {
		if _, ok := s.storesByName[store.Name]; ok {
			return &domain.DuplicateKeyError{Entity: domain.EntityStore, Key: store.Name}
		}
	}
	for _, tx := range u.txs {
		if s.hashes[tx.LineHash] {
			return &domain.DuplicateKeyError{Entity: domain.EntityTransaction, Key: tx.LineHash}
		}
	}

	for _, owner := range u.owners {
		s.owners[owner.ID] = owner
		s.ownersByCPF[owner.CPF] = owner.ID
	}
	for _, store := range u.stores {
		s.stores[store.ID] = store
		s.storesByName[store.Name] = store.ID
	}
	for _, tx := range u.txs {
		s.transactions[tx.StoreID] = append(s.transactions[tx.StoreID], *tx)
		s.hashes[tx.LineHash] = true
	}

	u.done = true
	return nil
}

func (u *memoryUnit) Rollback(ctx context.Context) error {
	u.owners = nil
	u.stores = nil
	u.txs = nil
	u.done = true
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
