package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/forum/internal/forum/domain"
	"github.com/aussiebroadwan/forum/internal/forum/service"
	"github.com/aussiebroadwan/forum/internal/forum/store"
	"github.com/aussiebroadwan/forum/internal/forum/store/drivers/sqlite"
	"github.com/aussiebroadwan/forum/pkg/cryptox"
	"github.com/aussiebroadwan/forum/pkg/idx"
	"github.com/aussiebroadwan/forum/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "forum-test"

type env struct {
	store     store.Store
	signer    jwtx.Signer
	sessions  *service.SessionService
	users     *service.UserService
	questions *service.QuestionService
	answers   *service.AnswerService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	cryptox.SetPepper("test-pepper")

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations(context.Background()))

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("test", pemKey)
	require.NoError(t, err)

	sessions := &service.SessionService{Store: s}
	return &env{
		store:    s,
		signer:   signer,
		sessions: sessions,
		users: &service.UserService{
			Store:      s,
			Sessions:   sessions,
			Signer:     signer,
			Issuer:     testIssuer,
			SessionTTL: 8 * time.Hour,
		},
		questions: &service.QuestionService{Store: s, Sessions: sessions},
		answers:   &service.AnswerService{Store: s, Sessions: sessions},
	}
}

// signup registers username with password "secret".
func (e *env) signup(t *testing.T, username string) domain.User {
	t.Helper()

	u, err := e.users.Signup(context.Background(), service.SignupInput{
		FirstName: "Test",
		LastName:  "User",
		Username:  username,
		Email:     username + "@example.com",
		Password:  "secret",
		Country:   "AU",
	})
	require.NoError(t, err)
	return u
}

// admin inserts an admin straight into the store, signup can't make one.
func (e *env) admin(t *testing.T, username string) domain.User {
	t.Helper()

	cred, err := cryptox.HashPassword("secret")
	require.NoError(t, err)

	u, err := e.store.Users().CreateUser(context.Background(), domain.User{
		UUID:         idx.New().String(),
		Username:     username,
		Email:        username + "@example.com",
		Salt:         cred.Salt,
		PasswordHash: cred.Hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	return u
}

// signin opens a session for username and returns its token.
func (e *env) signin(t *testing.T, username string) string {
	t.Helper()

	sess, err := e.users.SignIn(context.Background(), username, "secret")
	require.NoError(t, err)
	return sess.Token
}

// seedSession inserts a session with explicit timestamps.
func (e *env) seedSession(t *testing.T, token string, u domain.User, issued time.Time, logout *time.Time) {
	t.Helper()

	_, err := e.store.Sessions().CreateSession(context.Background(), domain.Session{
		Token:     token,
		UserID:    u.ID,
		IssuedAt:  issued,
		ExpiresAt: issued.Add(8 * time.Hour),
		LogoutAt:  logout,
	})
	require.NoError(t, err)
}
