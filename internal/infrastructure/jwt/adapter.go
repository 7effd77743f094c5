package jwt

import (
	"github.com/mveu/events-api/internal/domain/entity"
	"github.com/mveu/events-api/internal/usecase"
)

// TokenServiceAdapter adapts JWTManager to the usecase.TokenService interface.
type TokenServiceAdapter struct {
	mgr *JWTManager
}

// NewTokenService creates a new usecase.TokenService from JWTManager
func NewTokenService(mgr *JWTManager) usecase.TokenService {
	return &TokenServiceAdapter{mgr: mgr}
}

// GenerateAccessToken issues an access token for a user. The embedded event
// ID list is a snapshot at issuance time and is not refreshed on later
// membership changes.
func (a *TokenServiceAdapter) GenerateAccessToken(user *entity.User) (string, error) {
	return a.mgr.GenerateAccessToken(
		user.ID,
		string(user.EffectiveRole()),
		user.Login,
		user.Name,
		user.Surname,
		user.Lastname,
		user.Email,
		user.EventIDs,
	)
}

// ParseAccessToken validates an access token and returns Claims.
func (a *TokenServiceAdapter) ParseAccessToken(tokenStr string) (*entity.Claims, error) {
	customClaims, err := a.mgr.VerifyToken(tokenStr)
	if err != nil {
		return nil, err
	}
	return &entity.Claims{
		UserID:           customClaims.Subject,
		Role:             entity.UserRole(customClaims.Role),
		Login:            customClaims.Login,
		Name:             customClaims.Name,
		Surname:          customClaims.Surname,
		Lastname:         customClaims.Lastname,
		Email:            customClaims.Email,
		EventIDs:         customClaims.EventIDs,
		RegisteredClaims: customClaims.RegisteredClaims,
	}, nil
}
