package jwtx

import (
	"crypto"
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer mints session tokens.
type Signer interface {
	KID() string
	Sign(Claims) (string, error)
	Public() crypto.PublicKey
	Validate() error
}

// NewSignerEdDSA creates an EdDSA signer from a PKCS8 PEM private key.
func NewSignerEdDSA(kid string, pemKey []byte) (*EdDSASigner, error) {
	block, _ := pem.Decode(pemKey)
	if block == nil {
		return nil, errors.New("jwtx: invalid PEM for Ed25519 key")
	}
	if block.Type != "PRIVATE KEY" {
		return nil, fmt.Errorf("jwtx: expected PRIVATE KEY, got %q (Ed25519 requires PKCS8)", block.Type)
	}

	priv, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("jwtx: parse PKCS8: %w", err)
	}

	key, ok := priv.(ed25519.PrivateKey)
	if !ok {
		return nil, errors.New("jwtx: not Ed25519 private key")
	}

	return &EdDSASigner{kid: kid, key: key}, nil
}

// EdDSASigner signs with a single Ed25519 key. There is no rotation: the
// key lives as long as the process, or the key file when one is configured.
type EdDSASigner struct {
	kid string
	key ed25519.PrivateKey
}

func (s *EdDSASigner) KID() string { return s.kid }

func (s *EdDSASigner) Public() crypto.PublicKey { return s.PublicKey() }

// PublicKey is Public without the type assertion.
func (s *EdDSASigner) PublicKey() ed25519.PublicKey {
	if len(s.key) != ed25519.PrivateKeySize {
		return nil
	}
	return s.key.Public().(ed25519.PublicKey)
}

// Sign returns claims as a compact JWT with typ and kid headers set.
func (s *EdDSASigner) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

// Verifier returns a verifier for tokens minted by s.
func (s *EdDSASigner) Verifier(issuer string) *EdDSAVerifier {
	return NewVerifierEdDSA(s.PublicKey(), issuer)
}

// Validate checks the key is usable by signing a probe and verifying it.
func (s *EdDSASigner) Validate() error {
	if len(s.key) != ed25519.PrivateKeySize {
		return errors.New("jwtx: invalid Ed25519 private key size")
	}

	probe := []byte("jwtx-probe:" + s.kid)
	if !ed25519.Verify(s.PublicKey(), probe, ed25519.Sign(s.key, probe)) {
		return errors.New("jwtx: Ed25519 key pair does not verify")
	}
	return nil
}
