package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims is the signed payload of an access token.
type CustomClaims struct {
	Role     string   `json:"role"`
	Login    string   `json:"login"`
	Name     string   `json:"name,omitempty"`
	Surname  string   `json:"surname,omitempty"`
	Lastname string   `json:"lastname,omitempty"`
	Email    string   `json:"email,omitempty"`
	EventIDs []string `json:"eventId"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies access tokens. The secret is process-wide
// configuration; rotating it invalidates all outstanding tokens.
type JWTManager struct {
	secret []byte
	expiry time.Duration
}

// NewJWTManager creates a new JWTManager.
func NewJWTManager(secret string, expiry time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), expiry: expiry}
}

// GenerateAccessToken issues a signed HS256 token with the configured expiry.
func (m *JWTManager) GenerateAccessToken(userID, role, login, name, surname, lastname, email string, eventIDs []string) (string, error) {
	if eventIDs == nil {
		eventIDs = []string{}
	}
	now := time.Now()
	claims := CustomClaims{
		Role:     role,
		Login:    login,
		Name:     name,
		Surname:  surname,
		Lastname: lastname,
		Email:    email,
		EventIDs: eventIDs,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates signature and expiry and returns the claims.
func (m *JWTManager) VerifyToken(tokenStr string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid or expired token: %w", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}
