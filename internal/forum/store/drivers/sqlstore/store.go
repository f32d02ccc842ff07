package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/forum/internal/forum/store"
)

type Store struct {
	db *sql.DB
	q  queries
}

// New wraps an open database. The caller hands over ownership of db.
func New(db *sql.DB, d Dialect) *Store {
	return &Store{
		db: db,
		q:  queries{db: db, d: d},
	}
}

// DB exposes the underlying handle for driver specific setup.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ApplyMigrations runs the dialect's embedded migrations.
func (s *Store) ApplyMigrations(ctx context.Context) error {
	if s.q.d.Migrate == nil {
		return fmt.Errorf("sqlstore: no migrations for dialect %q", s.q.d.Name)
	}
	return s.q.d.Migrate(ctx, s.db)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx, s.q.d), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Ensure rollback is called if we panic or return early with error
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err // rollback happens in defer
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users         { return &usersRepo{q: s.q} }
func (s *Store) Sessions() store.Sessions   { return &sessionsRepo{q: s.q} }
func (s *Store) Questions() store.Questions { return &questionsRepo{q: s.q} }
func (s *Store) Answers() store.Answers     { return &answersRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapWriteErr turns unique violations into store.ErrAlreadyExists.
func (q queries) mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	if q.d.IsUniqueViolation != nil && q.d.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %w", store.ErrAlreadyExists, err)
	}
	return err
}

// requireAffected returns store.ErrNotFound when an UPDATE/DELETE touched
// no rows.
func requireAffected(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time.UTC()
		return &val
	}
	return nil
}

func mapOptionalTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
