package sqlstore

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/forum/internal/forum/domain"
)

const userColumns = `id, uuid, username, email, first_name, last_name, about_me,
	dob, country, contact_number, salt, password_hash, role, created_at`

type usersRepo struct {
	q queries
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := row.Scan(
		&u.ID, &u.UUID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.AboutMe,
		&u.DOB, &u.Country, &u.ContactNumber, &u.Salt, &u.PasswordHash, &role, &u.CreatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	if u.Role, err = domain.ParseRole(role); err != nil {
		return domain.User{}, fmt.Errorf("user %d: %w", u.ID, err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}

func (r *usersRepo) getUser(ctx context.Context, where string, arg any) (domain.User, error) {
	row := r.q.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where+` = ?`, arg)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	return r.getUser(ctx, "id", id)
}

func (r *usersRepo) GetUserByUUID(ctx context.Context, uuid string) (domain.User, error) {
	return r.getUser(ctx, "uuid", uuid)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.getUser(ctx, "username", username)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getUser(ctx, "email", email)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	if u.Role == "" {
		u.Role = domain.RoleNonAdmin
	}

	err := r.q.queryRow(ctx, `INSERT INTO users (uuid, username, email, first_name, last_name,
	about_me, dob, country, contact_number, salt, password_hash, role, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id`,
		u.UUID, u.Username, u.Email, u.FirstName, u.LastName,
		u.AboutMe, u.DOB, u.Country, u.ContactNumber, u.Salt, u.PasswordHash, string(u.Role), u.CreatedAt.UTC(),
	).Scan(&u.ID)
	if err != nil {
		return domain.User{}, r.q.mapWriteErr(err)
	}
	return u, nil
}
