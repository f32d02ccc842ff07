package sqlstore

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/forum/internal/forum/store"
)

type txStore struct {
	tx *sql.Tx
	q  queries
}

func newTx(tx *sql.Tx, d Dialect) *txStore {
	return &txStore{
		tx: tx,
		q:  queries{db: tx, d: d},
	}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // caller will commit/rollback and outer DB stays open

// Ping is a no-op for transactions, the connection is already established.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users         { return &usersRepo{q: t.q} }
func (t *txStore) Sessions() store.Sessions   { return &sessionsRepo{q: t.q} }
func (t *txStore) Questions() store.Questions { return &questionsRepo{q: t.q} }
func (t *txStore) Answers() store.Answers     { return &answersRepo{q: t.q} }

// ApplyMigrations is a no-op; migrations are applied before starting a tx.
func (t *txStore) ApplyMigrations(ctx context.Context) error { return nil }
