package jwtx_test

import (
	"crypto/ed25519"
	"testing"
	"time"

	"github.com/aussiebroadwan/forum/pkg/cryptox"
	"github.com/aussiebroadwan/forum/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "forum"

func newSigner(t *testing.T, kid string) *jwtx.EdDSASigner {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	require.NoError(t, err)
	require.NoError(t, signer.Validate())
	return signer
}

func TestEdDSASignAndVerify(t *testing.T) {
	signer := newSigner(t, "test-key-eddsa")
	require.Equal(t, "test-key-eddsa", signer.KID())

	claims := jwtx.NewSessionClaims("user-456", "eddsauser", "admin", exampleIssuer, 5*time.Minute, time.Now().UTC())

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := signer.Verifier(exampleIssuer).Verify(token)
	require.NoError(t, err)

	require.Equal(t, claims.Issuer, parsed.Issuer)
	require.Equal(t, claims.Subject, parsed.Subject)
	require.Equal(t, claims.Username, parsed.Username)
	require.Equal(t, claims.Role, parsed.Role)
	require.Equal(t, claims.ID, parsed.ID)
}

func TestEdDSAVerifyFailsForWrongIssuer(t *testing.T) {
	signer := newSigner(t, "k1")

	token, err := signer.Sign(jwtx.NewSessionClaims("user-789", "", "", exampleIssuer, time.Minute, time.Now().UTC()))
	require.NoError(t, err)

	verifier := jwtx.NewVerifierEdDSA(signer.Public().(ed25519.PublicKey), "wrong-issuer")
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestEdDSAVerifyFailsForOtherKey(t *testing.T) {
	signer1 := newSigner(t, "key1")
	signer2 := newSigner(t, "key2")

	token, err := signer1.Sign(jwtx.NewSessionClaims("user-unknown", "", "", exampleIssuer, time.Minute, time.Now().UTC()))
	require.NoError(t, err)

	verifier := jwtx.NewVerifierEdDSA(signer2.Public().(ed25519.PublicKey), exampleIssuer)
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalid)
}

func TestEdDSAVerifyFailsForExpiredToken(t *testing.T) {
	signer := newSigner(t, "k1")

	issued := time.Now().UTC().Add(-2 * time.Hour)
	token, err := signer.Sign(jwtx.NewSessionClaims("user", "", "", exampleIssuer, time.Hour, issued))
	require.NoError(t, err)

	verifier := jwtx.NewVerifierEdDSA(signer.Public().(ed25519.PublicKey), exampleIssuer)
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestEdDSATokenHeaders(t *testing.T) {
	signer := newSigner(t, "session-key")

	token, err := signer.Sign(jwtx.NewSessionClaims("user", "", "", exampleIssuer, time.Minute, time.Now().UTC()))
	require.NoError(t, err)

	parsed, _, err := jwt.NewParser().ParseUnverified(token, &jwtx.Claims{})
	require.NoError(t, err)
	require.Equal(t, "EdDSA", parsed.Header["alg"])
	require.Equal(t, "session-key", parsed.Header["kid"])
	require.Equal(t, "JWT", parsed.Header["typ"])
}

func TestEdDSAValidate(t *testing.T) {
	signer := newSigner(t, "k1")
	require.NoError(t, signer.Validate())
	require.Len(t, signer.PublicKey(), ed25519.PublicKeySize)

	var empty jwtx.EdDSASigner
	require.Error(t, empty.Validate())
	require.Nil(t, empty.PublicKey())
}

func TestEdDSAValidateFailsForInvalidKey(t *testing.T) {
	_, err := jwtx.NewSignerEdDSA("test", []byte("not-a-pem-key"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid PEM")
}
