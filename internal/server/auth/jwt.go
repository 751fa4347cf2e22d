// Package auth issues and verifies the HS256 session tokens handed out on
// login.
package auth

import (
	"errors"
	"time"

	"github.com/ecopulse/ecopulse/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity embedded in a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// Identity is what a verified token proves about its bearer.
type Identity struct {
	UserID string
	Name   string
}

// GenerateToken signs a token for the user. A zero validityDuration produces
// a token without an exp claim.
func GenerateToken(userID, name string, secretKey []byte, validityDuration time.Duration) (string, error) {
	claims := Claims{UserID: userID, Name: name}
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	if validityDuration != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(validityDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and returns the embedded identity.
// Expired tokens yield common.ErrTokenExpired; every other failure yields
// common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrInvalidToken
	}

	return &Identity{UserID: claims.UserID, Name: claims.Name}, nil
}
