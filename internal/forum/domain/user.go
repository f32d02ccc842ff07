package domain

import (
	"fmt"
	"time"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleNonAdmin Role = "nonadmin"
	RoleAdmin    Role = "admin"
)

// ParseRole maps the stored role string onto a Role. An empty string is
// treated as nonadmin.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleNonAdmin, "":
		return RoleNonAdmin, nil
	default:
		return "", fmt.Errorf("domain: unknown role %q", s)
	}
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }

type User struct {
	ID            int64  // internal, never leaves the service
	UUID          string // external identifier (ULID)
	Username      string
	Email         string
	FirstName     string
	LastName      string
	AboutMe       string
	DOB           string
	Country       string
	ContactNumber string
	Salt          string // password guard salt, base64
	PasswordHash  string // argon2id of password+pepper under Salt, base64
	Role          Role
	CreatedAt     time.Time
}
