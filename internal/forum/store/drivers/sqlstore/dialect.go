// Package sqlstore holds the database/sql repositories shared by the sqlite
// and postgres drivers. Queries are written once with '?' placeholders and
// rebound for drivers that want numbered parameters.
package sqlstore

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

// DBTX is the subset of database/sql used by the repos.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// MigrateFunc brings the schema of db up to date.
type MigrateFunc func(ctx context.Context, db *sql.DB) error

// Dialect captures the few places the drivers disagree.
type Dialect struct {
	Name string

	// Numbered rewrites '?' placeholders to $1, $2, ...
	Numbered bool

	// IsUniqueViolation reports whether err came from a UNIQUE constraint.
	IsUniqueViolation func(err error) bool

	Migrate MigrateFunc
}

// Rebind rewrites query for the dialect's placeholder style.
func (d Dialect) Rebind(query string) string {
	if !d.Numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// queries binds a DBTX to a dialect. Every repo goes through it.
type queries struct {
	db DBTX
	d  Dialect
}

func (q queries) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return q.db.ExecContext(ctx, q.d.Rebind(query), args...)
}

func (q queries) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return q.db.QueryContext(ctx, q.d.Rebind(query), args...)
}

func (q queries) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return q.db.QueryRowContext(ctx, q.d.Rebind(query), args...)
}
