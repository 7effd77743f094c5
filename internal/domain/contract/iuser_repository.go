package contract

import (
	"context"
	"errors"

	"github.com/mveu/events-api/internal/domain/entity"
)

// ErrUserNotFound is returned when no user matches the given lookup.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUser is returned when a unique constraint on login or email is
// violated.
var ErrDuplicateUser = errors.New("login or email already in use")

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByLogin retrieves a user by login.
	GetUserByLogin(ctx context.Context, login string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// AddEvent atomically adds eventID to the user's membership set if absent.
	// Returns false when the pair already existed.
	AddEvent(ctx context.Context, userID, eventID string) (bool, error)
	// RemoveEvent atomically removes eventID from the user's membership set.
	// Returns false when the pair did not exist.
	RemoveEvent(ctx context.Context, userID, eventID string) (bool, error)
	// GetEventIDs returns the user's current membership set.
	GetEventIDs(ctx context.Context, userID string) ([]string, error)
	// ListUsers returns all users for administrative review.
	ListUsers(ctx context.Context) ([]entity.User, error)
}
