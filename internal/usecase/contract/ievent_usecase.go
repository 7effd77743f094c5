package contract

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/mveu/events-api/internal/domain/entity"
)

// CreateEventInput carries the fields of a create-event call.
type CreateEventInput struct {
	Title       string
	Description string
	Date        *time.Time
	Location    string
	Images      []*multipart.FileHeader
}

type IEventUseCase interface {
	ListEvents(ctx context.Context) ([]entity.Event, error)
	GetEvent(ctx context.Context, id string) (*entity.Event, error)
	CreateEvent(ctx context.Context, input CreateEventInput) (*entity.Event, error)
	// MarkPassed sets passed=true. Admin only, idempotent.
	MarkPassed(ctx context.Context, id string, actorRole entity.UserRole) (*entity.Event, error)
	// DeleteEvent hard-deletes the event and returns the deleted snapshot.
	// Admin only.
	DeleteEvent(ctx context.Context, id string, actorRole entity.UserRole) (*entity.Event, error)
	// GetEventsByIDs resolves a batch of IDs, silently dropping malformed or
	// unknown ones.
	GetEventsByIDs(ctx context.Context, ids []string) ([]entity.Event, error)
}
