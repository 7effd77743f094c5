package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mveu/events-api/internal/domain/contract"
	"github.com/mveu/events-api/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EventRepository is the MongoDB implementation of IEventRepository.
type EventRepository struct {
	collection *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{
		collection: db.Collection("events"),
	}
}

var _ contract.IEventRepository = (*EventRepository)(nil)

func (r *EventRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

func (r *EventRepository) GetEventByID(ctx context.Context, id string) (*entity.Event, error) {
	var event entity.Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to retrieve event: %w", err)
	}
	return &event, nil
}

// ListEvents returns all events sorted by date descending. Documents without
// a date carry a BSON null, which sorts after every real date in descending
// order, so undated events appear last.
func (r *EventRepository) ListEvents(ctx context.Context) ([]entity.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []entity.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) GetEventsByIDs(ctx context.Context, ids []string) ([]entity.Event, error) {
	if len(ids) == 0 {
		return []entity.Event{}, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve events by IDs: %w", err)
	}
	defer cursor.Close(ctx)

	events := []entity.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}

// MarkPassed sets passed=true and returns the updated document. Setting the
// flag on an already passed event is a no-op returning the same state.
func (r *EventRepository) MarkPassed(ctx context.Context, id string) (*entity.Event, error) {
	update := bson.M{"$set": bson.M{"passed": true, "updated_at": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var event entity.Event
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to mark event as passed: %w", err)
	}
	return &event, nil
}

// DeleteEvent removes the document and returns the deleted snapshot.
func (r *EventRepository) DeleteEvent(ctx context.Context, id string) (*entity.Event, error) {
	var event entity.Event
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to delete event: %w", err)
	}
	return &event, nil
}
