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
	"github.com/aussiebroadwan/forum/pkg/cryptox"
	"github.com/aussiebroadwan/forum/pkg/idx"
	"github.com/aussiebroadwan/forum/pkg/jwtx"
	"github.com/aussiebroadwan/forum/pkg/slogx"
)

type UserService struct {
	Store    store.Store
	Sessions *SessionService

	// Signer mints session tokens at sign-in.
	Signer     jwtx.Signer
	Issuer     string
	SessionTTL time.Duration
}

// SignupInput is a registration request. Role is not part of it, every new
// user starts as nonadmin.
type SignupInput struct {
	FirstName     string
	LastName      string
	Username      string
	Email         string
	Password      string
	Country       string
	AboutMe       string
	DOB           string
	ContactNumber string
}

// CheckSignupUniqueness fails with SGR-001 when username is taken and,
// only if it is not, with SGR-002 when email is.
func (s *UserService) CheckSignupUniqueness(ctx context.Context, username, email string) error {
	if _, err := s.Store.Users().GetUserByUsername(ctx, username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("lookup username: %w", err)
	}

	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("lookup email: %w", err)
	}

	return nil
}

// Signup registers a new user after the uniqueness check.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (domain.User, error) {
	l := slogx.FromContext(ctx)

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	switch {
	case in.Username == "":
		return domain.User{}, InvalidRequest("username is required")
	case in.Email == "":
		return domain.User{}, InvalidRequest("emailAddress is required")
	case in.Password == "":
		return domain.User{}, InvalidRequest("password is required")
	}

	if err := s.CheckSignupUniqueness(ctx, in.Username, in.Email); err != nil {
		return domain.User{}, err
	}

	cred, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.Store.Users().CreateUser(ctx, domain.User{
		UUID:          idx.New().String(),
		Username:      in.Username,
		Email:         in.Email,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		AboutMe:       in.AboutMe,
		DOB:           in.DOB,
		Country:       in.Country,
		ContactNumber: in.ContactNumber,
		Salt:          cred.Salt,
		PasswordHash:  cred.Hash,
		Role:          domain.RoleNonAdmin,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Someone registered the same name or email since the check.
			if cerr := s.CheckSignupUniqueness(ctx, in.Username, in.Email); cerr != nil {
				return domain.User{}, cerr
			}
		}
		l.Error("failed to create user", slog.String("username", in.Username), slog.Any("err", err))
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	l.Info("user registered", slog.String("user_id", user.UUID))
	return user, nil
}

// SignIn checks username and password and opens a new session. Every sign-in
// gets its own session, existing ones are left alone.
func (s *UserService) SignIn(ctx context.Context, username, password string) (domain.Session, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, ErrUsernameNotFound
		}
		return domain.Session{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, cryptox.Credential{Salt: user.Salt, Hash: user.PasswordHash}); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Warn("sign in password mismatch", slog.String("user_id", user.UUID))
			return domain.Session{}, ErrPasswordFailed
		}
		return domain.Session{}, fmt.Errorf("verify password: %w", err)
	}

	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	now := s.Sessions.now().Truncate(time.Second)

	token, err := s.Signer.Sign(jwtx.NewSessionClaims(user.UUID, user.Username, string(user.Role), s.Issuer, ttl, now))
	if err != nil {
		return domain.Session{}, fmt.Errorf("sign session token: %w", err)
	}

	sess, err := s.Store.Sessions().CreateSession(ctx, domain.Session{
		Token:     token,
		UserID:    user.ID,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	})
	if err != nil {
		l.Error("failed to create session", slog.String("user_id", user.UUID), slog.Any("err", err))
		return domain.Session{}, fmt.Errorf("create session: %w", err)
	}
	sess.User = user

	l.Info("user signed in", slog.String("user_id", user.UUID))
	return sess, nil
}

// GetUserProfile returns the user with external id userUUID to any signed in
// caller.
func (s *UserService) GetUserProfile(ctx context.Context, token, userUUID string) (domain.User, error) {
	if _, err := s.Sessions.ValidateSession(ctx, token, "get user details"); err != nil {
		return domain.User{}, err
	}

	user, err := s.Store.Users().GetUserByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}
