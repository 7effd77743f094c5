package mongodb

import (
	"context"
	"fmt"

	"github.com/mveu/events-api/internal/domain/contract"
	"github.com/mveu/events-api/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepository is the MongoDB implementation of IUserRepository.
// Membership mutations use single-document $addToSet/$pull updates, which
// gives the add-if-absent/remove-if-present atomicity the ledger relies on.
type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

var _ contract.IUserRepository = (*MongoUserRepository)(nil)

// EnsureIndexes creates the unique indexes on login and email.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "login", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return contract.ErrDuplicateUser
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) GetUserByLogin(ctx context.Context, login string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"login": login})
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return &user, nil
}

// AddEvent adds eventID to the user's membership set if absent. A matched
// but unmodified update means the pair already existed.
func (r *MongoUserRepository) AddEvent(ctx context.Context, userID, eventID string) (bool, error) {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"event_ids": eventID}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to add event to user: %w", err)
	}
	if result.MatchedCount == 0 {
		return false, contract.ErrUserNotFound
	}
	return result.ModifiedCount > 0, nil
}

// RemoveEvent removes eventID from the user's membership set. A matched but
// unmodified update means the pair did not exist.
func (r *MongoUserRepository) RemoveEvent(ctx context.Context, userID, eventID string) (bool, error) {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"event_ids": eventID}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to remove event from user: %w", err)
	}
	if result.MatchedCount == 0 {
		return false, contract.ErrUserNotFound
	}
	return result.ModifiedCount > 0, nil
}

func (r *MongoUserRepository) GetEventIDs(ctx context.Context, userID string) ([]string, error) {
	var doc struct {
		EventIDs []string `bson:"event_ids"`
	}
	opts := options.FindOne().SetProjection(bson.M{"event_ids": 1})
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to retrieve membership: %w", err)
	}
	if doc.EventIDs == nil {
		return []string{}, nil
	}
	return doc.EventIDs, nil
}

func (r *MongoUserRepository) ListUsers(ctx context.Context) ([]entity.User, error) {
	opts := options.Find().SetProjection(bson.M{
		"name": 1, "surname": 1, "lastname": 1, "email": 1, "event_ids": 1,
	})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []entity.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}
