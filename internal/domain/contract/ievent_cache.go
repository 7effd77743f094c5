package contract

import (
	"context"

	"github.com/mveu/events-api/internal/domain/entity"
)

// IEventCache defines caching operations for the event catalog.
type IEventCache interface {
	GetEventList(ctx context.Context) ([]entity.Event, bool, error)
	SetEventList(ctx context.Context, events []entity.Event) error
	InvalidateEventList(ctx context.Context) error
}
