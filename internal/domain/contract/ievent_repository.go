package contract

import (
	"context"
	"errors"

	"github.com/mveu/events-api/internal/domain/entity"
)

// ErrEventNotFound is returned when no event matches the given ID.
var ErrEventNotFound = errors.New("event not found")

type IEventRepository interface {
	CreateEvent(ctx context.Context, event *entity.Event) error
	GetEventByID(ctx context.Context, id string) (*entity.Event, error)
	// ListEvents returns all events sorted by date descending. Events without
	// a date sort after dated ones.
	ListEvents(ctx context.Context) ([]entity.Event, error)
	// GetEventsByIDs returns the events matching the given IDs, in no
	// guaranteed order. Unknown IDs are skipped.
	GetEventsByIDs(ctx context.Context, ids []string) ([]entity.Event, error)
	// MarkPassed sets passed=true and returns the updated event. The
	// transition is idempotent.
	MarkPassed(ctx context.Context, id string) (*entity.Event, error)
	// DeleteEvent removes the event and returns the deleted snapshot.
	DeleteEvent(ctx context.Context, id string) (*entity.Event, error)
}
