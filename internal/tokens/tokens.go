package tokens

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Bearer tokens are valid for two hours after login.
const TokenTTL = 2 * time.Hour

var (
	ErrMissingToken = errors.New("token missing")
	ErrInvalidToken = errors.New("invalid token")
)

type Claims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

func CreateToken(userID uint, secret []byte) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ClaimsFromToken(tokenStr string, secret []byte) (*Claims, error) {
	var claims Claims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

// FromAuthHeader extracts the raw token from an Authorization header,
// tolerating a missing "Bearer " prefix.
func FromAuthHeader(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")), nil
}
