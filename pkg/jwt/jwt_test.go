package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"

	gjwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("secret", 24*time.Hour)

	token, expiresAt, err := svc.GenerateToken("admin", "clubadmin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)
	assert.Equal(t, 24*time.Hour, svc.Expiry())

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.ID)
	assert.Equal(t, "clubadmin", claims.Username)
	assert.Equal(t, "admin", claims.Subject)
}

func TestJWTService_ValidateInvalidToken(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateExpiredToken(t *testing.T) {
	svc := NewJWTService("secret", 24*time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-25 * time.Hour) }

	token, _, err := svc.GenerateToken("admin", "clubadmin")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_ValidateTamperedToken(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	token, _, err := svc.GenerateToken("admin", "clubadmin")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.ValidateToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewJWTService("another-secret", time.Hour)
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateWrongSigningMethod(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	claims := gjwt.MapClaims{
		"id":       "admin",
		"username": "clubadmin",
		"exp":      time.Now().Add(time.Minute).Unix(),
		"iat":      time.Now().Unix(),
	}
	unsigned := gjwt.NewWithClaims(gjwt.SigningMethodNone, claims)
	tokenStr, err := unsigned.SignedString(gjwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateMissingIdentity(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	token, _, err := svc.GenerateToken("", "clubadmin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_GenerateSignError(t *testing.T) {
	orig := signJWTToken
	t.Cleanup(func() { signJWTToken = orig })
	signJWTToken = func(*gjwt.Token, []byte) (string, error) {
		return "", errors.New("sign failed")
	}

	svc := NewJWTService("secret", time.Hour)
	_, _, err := svc.GenerateToken("admin", "clubadmin")
	assert.Error(t, err)
}
