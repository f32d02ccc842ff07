// Package postgres is the PostgreSQL store driver. It shares its repositories
// with the sqlite driver through sqlstore and migrates with goose.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/forum/internal/forum/store/drivers/postgres/migrations"
	"github.com/aussiebroadwan/forum/internal/forum/store/drivers/sqlstore"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// Dialect is the sqlstore dialect for pgx.
var Dialect = sqlstore.Dialect{
	Name:              "postgres",
	Numbered:          true,
	IsUniqueViolation: isUniqueViolation,
	Migrate:           applyMigrations,
}

// NewStore opens a pgx backed store for dsn.
func NewStore(dsn string) (*sqlstore.Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return sqlstore.New(db, Dialect), nil
}

// NewStoreFromDB wraps an already open handle.
func NewStoreFromDB(db *sql.DB) *sqlstore.Store {
	return sqlstore.New(db, Dialect)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// applyMigrations sets up goose with the embedded migrations and runs them
// against db.
func applyMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
