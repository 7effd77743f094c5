package usecase

import (
	"github.com/mveu/events-api/internal/domain/entity"
)

// TokenService defines the interface for access token operations.
type TokenService interface {
	// GenerateAccessToken issues a signed, time-limited token carrying the
	// user's identity, effective role, profile fields and a snapshot of the
	// registered event IDs.
	GenerateAccessToken(user *entity.User) (string, error)
	// ParseAccessToken validates a token and returns its claims.
	ParseAccessToken(token string) (*entity.Claims, error)
}
