package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/forum/internal/forum/domain"
	"github.com/aussiebroadwan/forum/internal/forum/store"
	"github.com/aussiebroadwan/forum/pkg/slogx"
)

// BearerPrefix is stripped from presented tokens when present.
const BearerPrefix = "Bearer "

// ExpiryPolicy decides whether an active (not signed out) session is past
// its lifetime.
type ExpiryPolicy interface {
	Expired(s domain.Session, now time.Time) bool
}

// NoExpiry never expires a session; only sign-out ends it.
type NoExpiry struct{}

func (NoExpiry) Expired(domain.Session, time.Time) bool { return false }

// StrictExpiry expires sessions once their ExpiresAt has passed.
type StrictExpiry struct{}

func (StrictExpiry) Expired(s domain.Session, now time.Time) bool { return s.Expired(now) }

// SessionService resolves bearer tokens to sessions and signs them out.
type SessionService struct {
	Store store.Store

	// Expiry defaults to NoExpiry.
	Expiry ExpiryPolicy

	// Now defaults to time.Now.
	Now func() time.Time
}

// StripBearer removes a leading "Bearer " from token. Anything else is
// returned unchanged.
func StripBearer(token string) string {
	if rest, ok := strings.CutPrefix(token, BearerPrefix); ok {
		return rest
	}
	return token
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *SessionService) expiry() ExpiryPolicy {
	if s.Expiry != nil {
		return s.Expiry
	}
	return NoExpiry{}
}

// ValidateSession resolves token to an active session. action completes the
// "Sign in first to ..." message of ATHR-002. It never writes to the store.
func (s *SessionService) ValidateSession(ctx context.Context, token, action string) (domain.Session, error) {
	l := slogx.FromContext(ctx)

	token = StripBearer(token)
	if token == "" {
		return domain.Session{}, ErrNotSignedIn
	}

	sess, err := s.Store.Sessions().GetSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Warn("no session for token", slog.String("action", action))
			return domain.Session{}, ErrNotSignedIn
		}
		l.Error("failed to look up session", slog.Any("err", err))
		return domain.Session{}, fmt.Errorf("lookup session: %w", err)
	}

	if sess.SignedOut() {
		l.Warn("signed out session used",
			slog.String("user_id", sess.User.UUID),
			slog.String("action", action),
		)
		return domain.Session{}, signedOut(action)
	}

	if s.expiry().Expired(sess, s.now()) {
		l.Warn("expired session used",
			slog.String("user_id", sess.User.UUID),
			slog.String("action", action),
		)
		return domain.Session{}, sessionExpired(action)
	}

	return sess, nil
}

// SignOut ends the session behind token and returns the external id of its
// owner. Missing, signed out and expired sessions fail with SGR-001.
func (s *SessionService) SignOut(ctx context.Context, token string) (string, error) {
	l := slogx.FromContext(ctx)
	now := s.now()

	token = StripBearer(token)
	if token == "" {
		return "", ErrNoActiveSession
	}

	var userUUID string
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		sess, err := tx.Sessions().GetSessionByToken(ctx, token)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNoActiveSession
			}
			return err
		}

		if sess.SignedOut() || s.expiry().Expired(sess, now) {
			return ErrNoActiveSession
		}

		// Conditional on logout_at IS NULL, so a concurrent sign-out that
		// won the race leaves nothing for us to update.
		if err := tx.Sessions().SignOutSession(ctx, token, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNoActiveSession
			}
			return err
		}

		userUUID = sess.User.UUID
		return nil
	})
	if err != nil {
		if _, ok := AsError(err); !ok {
			l.Error("failed to sign out", slog.Any("err", err))
			return "", fmt.Errorf("sign out: %w", err)
		}
		return "", err
	}

	l.Info("user signed out", slog.String("user_id", userUUID))
	return userUUID, nil
}
