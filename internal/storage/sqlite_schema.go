package storage

// SQLiteSchema creates the ledger tables. Natural keys carry UNIQUE
// constraints so concurrent writers are arbitrated by the database.
const SQLiteSchema = `
CREATE TABLE IF NOT EXISTS store_owners (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    cpf TEXT NOT NULL UNIQUE,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS stores (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    owner_id TEXT NOT NULL REFERENCES store_owners(id),
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_stores_owner ON stores(owner_id);

CREATE TABLE IF NOT EXISTS transactions (
    id TEXT PRIMARY KEY,
    type INTEGER NOT NULL,
    date TEXT NOT NULL,                -- UTC, fixed width so it sorts as text
    amount TEXT NOT NULL,              -- signed decimal
    cpf TEXT NOT NULL,
    card_number TEXT NOT NULL,
    line_hash TEXT NOT NULL UNIQUE,
    store_id TEXT NOT NULL REFERENCES stores(id),
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_store ON transactions(store_id, date);
CREATE INDEX IF NOT EXISTS idx_transactions_cpf ON transactions(cpf);
`
