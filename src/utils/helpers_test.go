package utils

import (
	"carhive/src/types"
	"os"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestNewBookingNumber(t *testing.T) {
	seen := map[string]bool{}
	for range 100 {
		bn := NewBookingNumber()
		parts := strings.Split(bn, "-")
		assert.Len(t, parts, 3)
		assert.Equal(t, "CR", parts[0])
		assert.Len(t, parts[2], 6)
		assert.False(t, seen[bn], "duplicate booking number %s", bn)
		seen[bn] = true
	}
}

func TestGenerateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", "secret")
	token, err := GenerateJWT("someone@example.com", 42)
	assert.Nil(t, err)

	claims := &types.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tk *jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	assert.Nil(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "someone@example.com", claims.Email)
}
