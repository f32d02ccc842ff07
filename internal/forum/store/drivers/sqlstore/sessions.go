package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aussiebroadwan/forum/internal/forum/domain"
)

type sessionsRepo struct {
	q queries
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) (domain.Session, error) {
	err := r.q.queryRow(ctx, `INSERT INTO sessions (token, user_id, issued_at, expires_at, logout_at)
VALUES (?, ?, ?, ?, ?)
RETURNING id`,
		s.Token, s.UserID, s.IssuedAt.UTC(), s.ExpiresAt.UTC(), mapOptionalTime(s.LogoutAt),
	).Scan(&s.ID)
	if err != nil {
		return domain.Session{}, r.q.mapWriteErr(err)
	}
	return s, nil
}

func (r *sessionsRepo) GetSessionByToken(ctx context.Context, token string) (domain.Session, error) {
	row := r.q.queryRow(ctx, `SELECT s.id, s.token, s.user_id, s.issued_at, s.expires_at, s.logout_at,
	u.id, u.uuid, u.username, u.email, u.first_name, u.last_name, u.about_me,
	u.dob, u.country, u.contact_number, u.salt, u.password_hash, u.role, u.created_at
FROM sessions s
JOIN users u ON u.id = s.user_id
WHERE s.token = ?`, token)

	var (
		s        domain.Session
		logoutAt sql.NullTime
		role     string
	)
	err := row.Scan(
		&s.ID, &s.Token, &s.UserID, &s.IssuedAt, &s.ExpiresAt, &logoutAt,
		&s.User.ID, &s.User.UUID, &s.User.Username, &s.User.Email, &s.User.FirstName, &s.User.LastName, &s.User.AboutMe,
		&s.User.DOB, &s.User.Country, &s.User.ContactNumber, &s.User.Salt, &s.User.PasswordHash, &role, &s.User.CreatedAt,
	)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	if s.User.Role, err = domain.ParseRole(role); err != nil {
		return domain.Session{}, fmt.Errorf("session %d: %w", s.ID, err)
	}

	s.IssuedAt = s.IssuedAt.UTC()
	s.ExpiresAt = s.ExpiresAt.UTC()
	s.LogoutAt = mapNullTimePtr(logoutAt)
	s.User.CreatedAt = s.User.CreatedAt.UTC()
	return s, nil
}

func (r *sessionsRepo) SignOutSession(ctx context.Context, token string, at time.Time) error {
	return requireAffected(r.q.exec(ctx,
		`UPDATE sessions SET logout_at = ? WHERE token = ? AND logout_at IS NULL`,
		at.UTC(), token,
	))
}
