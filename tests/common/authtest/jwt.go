//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	pkgjwt "manuara-reservas/internal/pkg/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// MintToken signs an HS256 token the way the identity provider in front
// of the dashboard does, so middleware tests exercise real validation.
func MintToken(t *testing.T, secret string, userID uuid.UUID, role string, ttl time.Duration) string {
	t.Helper()

	claims := pkgjwt.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err, "Failed to sign test token")
	return signed
}
