package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aussiebroadwan/forum/internal/forum/domain"
	"github.com/aussiebroadwan/forum/internal/forum/store"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewStoreFromDB(db), mock
}

var userCols = []string{
	"id", "uuid", "username", "email", "first_name", "last_name", "about_me",
	"dob", "country", "contact_number", "salt", "password_hash", "role", "created_at",
}

func TestApplyMigrations_UsesEmbeddedDir(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}

	s, _ := newMockStore(t)
	require.NoError(t, s.ApplyMigrations(context.Background()))
	require.Equal(t, ".", gotDir)
}

func TestApplyMigrations_PropagatesError(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	boom := errors.New("migrate failed")
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return boom
	}

	s, _ := newMockStore(t)
	require.ErrorIs(t, s.ApplyMigrations(context.Background()), boom)
}

func TestGetUserByUsername_NumberedPlaceholder(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`(?s)^SELECT .+ FROM users WHERE username = \$1$`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(
			int64(1), "01HUUID", "alice", "alice@example.com", "", "", "",
			"", "", "", "salt", "hash", "admin", now,
		))

	u, err := s.Users().GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, domain.RoleAdmin, u.Role)
}

func TestGetUserByUUID_NotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`(?s)^SELECT .+ FROM users WHERE uuid = \$1$`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Users().GetUserByUUID(context.Background(), "ghost")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`(?s)^INSERT INTO users .+VALUES \(\$1, \$2, .+\$13\)\s+RETURNING id$`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	_, err := s.Users().CreateUser(context.Background(), domain.User{
		UUID: "u", Username: "alice", Email: "a@example.com", CreatedAt: time.Now(),
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestCreateUser_OtherErrorsPassThrough(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`(?s)^INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := s.Users().CreateUser(context.Background(), domain.User{UUID: "u", CreatedAt: time.Now()})
	require.Error(t, err)
	require.NotErrorIs(t, err, store.ErrAlreadyExists)
}

func TestGetSessionByToken_LoadsUser(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now().UTC()

	cols := append([]string{"id", "token", "user_id", "issued_at", "expires_at", "logout_at"}, userCols...)
	mock.ExpectQuery(`(?s)^SELECT s\.id.+FROM sessions s\s+JOIN users u ON u\.id = s\.user_id\s+WHERE s\.token = \$1$`).
		WithArgs("abc123").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			int64(10), "abc123", int64(1), now, now.Add(8*time.Hour), nil,
			int64(1), "01HUUID", "alice", "alice@example.com", "", "", "",
			"", "", "", "salt", "hash", "nonadmin", now,
		))

	sess, err := s.Sessions().GetSessionByToken(context.Background(), "abc123")
	require.NoError(t, err)
	require.Equal(t, int64(10), sess.ID)
	require.Equal(t, "alice", sess.User.Username)
	require.Nil(t, sess.LogoutAt)
}

func TestSignOutSession_OnlyActive(t *testing.T) {
	s, mock := newMockStore(t)
	at := time.Now().UTC()

	q := `^UPDATE sessions SET logout_at = \$1 WHERE token = \$2 AND logout_at IS NULL$`
	mock.ExpectExec(q).WithArgs(at, "abc123").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs(at, "abc123").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Sessions().SignOutSession(context.Background(), "abc123", at))
	require.ErrorIs(t, s.Sessions().SignOutSession(context.Background(), "abc123", at), store.ErrNotFound)
}

func TestWithTx_CommitAndRollback(t *testing.T) {
	ctx := context.Background()
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`^UPDATE questions SET content = \$1 WHERE id = \$2$`).
		WithArgs("edited", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Questions().UpdateQuestionContent(ctx, 3, "edited")
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`^DELETE FROM answers WHERE id = \$1$`).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Answers().DeleteAnswer(ctx, 4)
	})
	require.ErrorIs(t, err, store.ErrNotFound)
}
