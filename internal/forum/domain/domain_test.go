package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/forum/internal/forum/domain"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := domain.ParseRole("admin")
	require.NoError(t, err)
	require.True(t, r.IsAdmin())

	r, err = domain.ParseRole("")
	require.NoError(t, err)
	require.Equal(t, domain.RoleNonAdmin, r)

	_, err = domain.ParseRole("root")
	require.Error(t, err)
}

func TestSessionState(t *testing.T) {
	now := time.Now().UTC()
	s := domain.Session{IssuedAt: now, ExpiresAt: now.Add(time.Hour)}

	require.False(t, s.SignedOut())
	require.False(t, s.Expired(now))
	require.True(t, s.Expired(now.Add(2*time.Hour)))

	s.LogoutAt = &now
	require.True(t, s.SignedOut())

	// A session without an expiry instant never expires.
	require.False(t, domain.Session{}.Expired(now))
}

func TestResourceOwner(t *testing.T) {
	var r domain.Resource = domain.Question{UserID: 7}
	require.Equal(t, int64(7), r.OwnerID())
	require.Equal(t, domain.KindQuestion, r.Kind())

	r = domain.Answer{UserID: 9}
	require.Equal(t, int64(9), r.OwnerID())
	require.Equal(t, domain.KindAnswer, r.Kind())
}
