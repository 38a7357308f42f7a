package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/shivamvijaywargi/auth-service/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherror "github.com/shivamvijaywargi/auth-service/internal/errors"
)

type TokenGenerator interface {
	Issue(userID string) (string, time.Time, error)
	Verify(tokenString string) (string, error)
	Expiry() time.Duration
}

// TokenService signs and validates the bearer token. Validity is solely
// a function of signature and expiry; there is no server-side state.
type TokenService struct {
	Secret      string
	TokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

func NewTokenService(secret string, expiryMinutes int) *TokenService {
	return &TokenService{
		Secret:      secret,
		TokenExpiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

// Issue signs a token carrying the user id and returns it with its expiry.
func (ts *TokenService) Issue(userID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.TokenExpiry)

	claims := JWTCustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// Verify parses and validates the given token string and returns the
// user id it carries. Malformed, tampered, and expired tokens all fail.
func (ts *TokenService) Verify(tokenString string) (string, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil {
		return "", autherror.ErrInvalidToken
	}

	if !token.Valid {
		return "", autherror.ErrInvalidToken
	}

	return claims.UserID, nil
}

func (ts *TokenService) Expiry() time.Duration {
	return ts.TokenExpiry
}
