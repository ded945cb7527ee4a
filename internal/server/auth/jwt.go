// Package auth issues and verifies the short-lived HS256 tokens that bind a
// request to a user identity, and wraps the bcrypt credential hashing used
// at registration and login.
package auth

import (
	"errors"
	"time"

	"github.com/avolkovs/benfordapp/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims includes the standard registered claims plus the custom user_id
// claim carried by every access token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// GenerateToken produces a signed token encoding userID and an absolute
// expiry (now + validityDuration).
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// UserIDFromToken verifies the signature and expiry of tokenString and
// returns the user id it binds. The expected signing algorithm is pinned to
// HS256; tokens signed with any other method are rejected, so a token
// cannot downgrade or confuse the verifier. Expired tokens yield
// common.ErrTokenExpired, everything else common.ErrInvalidToken.
func UserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
