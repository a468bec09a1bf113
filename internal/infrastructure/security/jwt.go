package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// ErrInvalidToken covers expired, malformed and wrong-kind tokens; callers
// map it to an authentication failure.
var ErrInvalidToken = errors.New("invalid or expired token")

type tokenClaims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates the HS256 access/refresh pair. Lifetimes
// come from configuration; access and refresh tokens are signed with separate
// secrets and carry a type claim, so one can never stand in for the other.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (m *TokenManager) Generate(userID string) (string, string, error) {
	access, err := m.sign(userID, tokenTypeAccess, m.accessSecret, m.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err := m.sign(userID, tokenTypeRefresh, m.refreshSecret, m.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (m *TokenManager) sign(userID, tokenType string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (m *TokenManager) ValidateAccessToken(tokenStr string) (string, error) {
	return m.validate(tokenStr, tokenTypeAccess, m.accessSecret)
}

func (m *TokenManager) ValidateRefreshToken(tokenStr string) (string, error) {
	return m.validate(tokenStr, tokenTypeRefresh, m.refreshSecret)
}

func (m *TokenManager) validate(tokenStr, wantType string, secret []byte) (string, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.TokenType != wantType || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
