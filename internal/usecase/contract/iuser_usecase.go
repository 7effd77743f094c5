package contract

import (
	"context"

	"github.com/mveu/events-api/internal/domain/entity"
)

type IUserUseCase interface {
	// Register creates a new account. Fails when login or email collide.
	Register(ctx context.Context, login, name, surname, lastname, email, password string) (*entity.User, error)
	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, login, password string) (*entity.User, string, error)
	// Authenticate resolves an access token to the current user record.
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// ListUsersWithEventCounts projects all users to administrative
	// summaries. Admin only.
	ListUsersWithEventCounts(ctx context.Context, actorRole entity.UserRole) ([]entity.UserSummary, error)
}
