package service_test

import (
	"context"
	"crypto/ed25519"
	"testing"

	"github.com/aussiebroadwan/forum/internal/forum/domain"
	"github.com/aussiebroadwan/forum/internal/forum/service"
	"github.com/aussiebroadwan/forum/pkg/cryptox"
	"github.com/aussiebroadwan/forum/pkg/idx"
	"github.com/aussiebroadwan/forum/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestCheckSignupUniqueness(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.signup(t, "alice") // alice@example.com

	t.Run("username first", func(t *testing.T) {
		err := e.users.CheckSignupUniqueness(ctx, "alice", "fresh@example.com")
		require.ErrorIs(t, err, service.ErrUsernameTaken)
	})

	t.Run("username wins when both collide", func(t *testing.T) {
		err := e.users.CheckSignupUniqueness(ctx, "alice", "alice@example.com")
		require.ErrorIs(t, err, service.ErrUsernameTaken)
	})

	t.Run("email", func(t *testing.T) {
		err := e.users.CheckSignupUniqueness(ctx, "bob", "alice@example.com")
		require.ErrorIs(t, err, service.ErrEmailTaken)

		se, _ := service.AsError(err)
		require.Equal(t, "SGR-002", se.Code)
	})

	t.Run("free", func(t *testing.T) {
		require.NoError(t, e.users.CheckSignupUniqueness(ctx, "bob", "bob@example.com"))
	})
}

func TestSignup(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	u := e.signup(t, "alice")
	require.True(t, idx.Valid(u.UUID))
	require.Equal(t, domain.RoleNonAdmin, u.Role)
	require.NotEmpty(t, u.Salt)
	require.NotEqual(t, "secret", u.PasswordHash)
	require.NoError(t, cryptox.VerifyPassword("secret", cryptox.Credential{Salt: u.Salt, Hash: u.PasswordHash}))

	t.Run("duplicate username rejected", func(t *testing.T) {
		_, err := e.users.Signup(ctx, service.SignupInput{Username: "alice", Email: "x@example.com", Password: "p"})
		require.ErrorIs(t, err, service.ErrUsernameTaken)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := e.users.Signup(ctx, service.SignupInput{Username: "alice2", Email: "alice@example.com", Password: "p"})
		require.ErrorIs(t, err, service.ErrEmailTaken)
	})

	t.Run("missing fields", func(t *testing.T) {
		for _, in := range []service.SignupInput{
			{Email: "a@b.c", Password: "p"},
			{Username: "x", Password: "p"},
			{Username: "x", Email: "a@b.c"},
		} {
			_, err := e.users.Signup(ctx, in)
			require.ErrorIs(t, err, service.ErrInvalidRequest)
		}
	})

	t.Run("external ids are unique", func(t *testing.T) {
		other := e.signup(t, "bob")
		require.NotEqual(t, u.UUID, other.UUID)
	})
}

func TestSignIn(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	alice := e.signup(t, "alice")

	t.Run("unknown username", func(t *testing.T) {
		_, err := e.users.SignIn(ctx, "nobody", "secret")
		require.ErrorIs(t, err, service.ErrUsernameNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := e.users.SignIn(ctx, "alice", "wrong")
		require.ErrorIs(t, err, service.ErrPasswordFailed)
	})

	t.Run("each sign in is a new session", func(t *testing.T) {
		s1, err := e.users.SignIn(ctx, "alice", "secret")
		require.NoError(t, err)
		s2, err := e.users.SignIn(ctx, "alice", "secret")
		require.NoError(t, err)

		require.NotEqual(t, s1.ID, s2.ID)
		require.NotEqual(t, s1.Token, s2.Token)
		require.Equal(t, alice.ID, s1.UserID)
		require.Equal(t, s1.IssuedAt.Add(e.users.SessionTTL), s1.ExpiresAt)
		require.Nil(t, s1.LogoutAt)

		for _, tok := range []string{s1.Token, s2.Token} {
			_, err := e.sessions.ValidateSession(ctx, tok, "post a question")
			require.NoError(t, err)
		}
	})

	t.Run("token is a signed jwt about the user", func(t *testing.T) {
		sess, err := e.users.SignIn(ctx, "alice", "secret")
		require.NoError(t, err)

		claims, err := jwtx.NewVerifierEdDSA(e.signer.Public().(ed25519.PublicKey), testIssuer).Verify(sess.Token)
		require.NoError(t, err)
		require.Equal(t, alice.UUID, claims.Subject)
		require.Equal(t, "alice", claims.Username)
		require.Equal(t, string(domain.RoleNonAdmin), claims.Role)
	})
}

func TestGetUserProfile(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	alice := e.signup(t, "alice")
	bob := e.signup(t, "bob")
	tok := e.signin(t, "alice")

	got, err := e.users.GetUserProfile(ctx, tok, bob.UUID)
	require.NoError(t, err)
	require.Equal(t, "bob", got.Username)
	require.Equal(t, "AU", got.Country)

	_, err = e.users.GetUserProfile(ctx, tok, "missing")
	require.ErrorIs(t, err, service.ErrUserNotFound)

	_, err = e.users.GetUserProfile(ctx, "nope", alice.UUID)
	require.ErrorIs(t, err, service.ErrNotSignedIn)

	_, err = e.sessions.SignOut(ctx, tok)
	require.NoError(t, err)

	_, err = e.users.GetUserProfile(ctx, tok, alice.UUID)
	require.ErrorIs(t, err, service.ErrSignedOut)
	se, _ := service.AsError(err)
	require.Equal(t, "User is signed out.Sign in first to get user details", se.Message)
}
