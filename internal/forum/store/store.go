package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/forum/internal/forum/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and so a Tx-scoped store can't start another transaction.
type Store interface {
	Users() Users
	Sessions() Sessions
	Questions() Questions
	Answers() Answers

	ApplyMigrations(ctx context.Context) error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error, the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByUUID resolves the external identifier used in URLs.
	GetUserByUUID(ctx context.Context, uuid string) (domain.User, error)

	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts u and returns it with its internal id set. A
	// duplicate uuid, username or email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)
}

type Sessions interface {
	// CreateSession stores a freshly issued session and returns it with its
	// internal id set.
	CreateSession(ctx context.Context, s domain.Session) (domain.Session, error)

	// GetSessionByToken looks the token up by exact match and loads the
	// owning user with it.
	GetSessionByToken(ctx context.Context, token string) (domain.Session, error)

	// SignOutSession sets logout_at on a session that is still active.
	// Returns ErrNotFound when no active session has this token.
	SignOutSession(ctx context.Context, token string, at time.Time) error
}

type Questions interface {
	CreateQuestion(ctx context.Context, q domain.Question) (domain.Question, error)
	GetQuestionByUUID(ctx context.Context, uuid string) (domain.Question, error)

	// ListQuestions returns every question, oldest first.
	ListQuestions(ctx context.Context) ([]domain.Question, error)
	ListQuestionsByUser(ctx context.Context, userID int64) ([]domain.Question, error)

	UpdateQuestionContent(ctx context.Context, id int64, content string) error

	// DeleteQuestion cascades to the question's answers (per schema).
	DeleteQuestion(ctx context.Context, id int64) error
}

type Answers interface {
	CreateAnswer(ctx context.Context, a domain.Answer) (domain.Answer, error)
	GetAnswerByUUID(ctx context.Context, uuid string) (domain.Answer, error)
	ListAnswersByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error)
	UpdateAnswerContent(ctx context.Context, id int64, content string) error
	DeleteAnswer(ctx context.Context, id int64) error
}
