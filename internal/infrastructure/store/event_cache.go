package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mveu/events-api/internal/domain/contract"
	"github.com/mveu/events-api/internal/domain/entity"
)

const eventListKey = "events:list"

// EventCacheStore caches the event list in Redis. Mutating catalog
// operations invalidate the key.
type EventCacheStore struct {
	rdb     *redis.Client
	listTTL time.Duration
}

func NewEventCacheStore(rdb *redis.Client) *EventCacheStore {
	return &EventCacheStore{
		rdb:     rdb,
		listTTL: 5 * time.Minute,
	}
}

var _ contract.IEventCache = (*EventCacheStore)(nil)

func (c *EventCacheStore) GetEventList(ctx context.Context) ([]entity.Event, bool, error) {
	b, err := c.rdb.Get(ctx, eventListKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var events []entity.Event
	if err := json.Unmarshal(b, &events); err != nil {
		return nil, false, nil
	}
	return events, true, nil
}

func (c *EventCacheStore) SetEventList(ctx context.Context, events []entity.Event) error {
	data, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, eventListKey, data, c.listTTL).Err()
}

func (c *EventCacheStore) InvalidateEventList(ctx context.Context) error {
	return c.rdb.Del(ctx, eventListKey).Err()
}
