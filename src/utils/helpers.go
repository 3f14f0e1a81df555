package utils

import (
	"carhive/src/types"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// NewBookingNumber builds a human-legible, practically-unique rental
// reference. Uniqueness against existing rows is not checked here; the
// bookings table enforces it at materialization time.
func NewBookingNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("CR-%d-%s", time.Now().Unix(), suffix)
}

func GenerateJWT(email string, userId uint) (string, error) {
	jwtKey := []byte(os.Getenv("JWT_SECRET"))
	expiry := time.Now().Add(24 * time.Hour)
	claims := &types.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userId),
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func IsProd() bool {
	return os.Getenv("API_ENV") == "production"
}
