package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// ErrPasswordMismatch is returned by VerifyPassword when the password does
// not reproduce the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// Credential is the stored form of a password: a random salt and the
// Argon2id hash of password+pepper under that salt, both base64 encoded.
type Credential struct {
	Salt string
	Hash string
}

// HashPassword derives a fresh Credential for password.
func HashPassword(password string) (Credential, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return Credential{}, fmt.Errorf("cryptox: failed to generate salt: %w", err)
	}

	hash := derive(password, salt)
	return Credential{
		Salt: base64.RawStdEncoding.EncodeToString(salt),
		Hash: base64.RawStdEncoding.EncodeToString(hash),
	}, nil
}

// VerifyPassword recomputes the hash of password under c.Salt and compares
// it with c.Hash in constant time.
func VerifyPassword(password string, c Credential) error {
	salt, err := base64.RawStdEncoding.DecodeString(c.Salt)
	if err != nil {
		return fmt.Errorf("invalid credential: failed to decode salt: %w", err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(c.Hash)
	if err != nil {
		return fmt.Errorf("invalid credential: failed to decode hash: %w", err)
	}
	if len(expected) != keyLength {
		return errors.New("invalid credential: unexpected hash length")
	}

	if subtle.ConstantTimeCompare(derive(password, salt), expected) == 1 {
		return nil
	}
	return ErrPasswordMismatch
}

func derive(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password+GetPepper()),
		salt,
		iterations,
		memory,
		parallelism,
		keyLength,
	)
}
