package contract

import (
	"context"

	"github.com/mveu/events-api/internal/domain/entity"
)

// IRegistrationUseCase owns the membership relation between users and events.
type IRegistrationUseCase interface {
	// Register adds the (user, event) pair and returns the updated
	// membership list. Re-registering signals a conflict.
	Register(ctx context.Context, userID, eventID string) ([]string, error)
	// Unregister removes the (user, event) pair and returns the updated
	// membership list.
	Unregister(ctx context.Context, userID, eventID string) ([]string, error)
	// GetMembership returns the user's current membership list.
	GetMembership(ctx context.Context, userID string) ([]string, error)
	// GetEventsForUser resolves the user's membership to full event records,
	// dropping dangling references.
	GetEventsForUser(ctx context.Context, userID string) ([]entity.Event, error)
}
