package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// TokenTTL is how long an issued session token stays valid. Logout only
// clears the cookie client-side; tokens are never revoked before expiry.
const TokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Email  string `json:"email"`
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// Init sets the signing secret. Called once from the composition root.
func Init(secret string) {
	jwtSecret = []byte(secret)
}

// GenerateToken creates a signed session token for a logged-in admin
func GenerateToken(email, userID string) (string, error) {
	expirationTime := time.Now().Add(TokenTTL)

	claims := &Claims{
		Email:  email,
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidateToken parses and validates a session token
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
