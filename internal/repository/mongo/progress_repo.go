package mongo

import (
	"context"
	"errors"
	"time"

	"coachdesk/coaching-app/internal/domain"
	"coachdesk/coaching-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const progressCollectionName = "client_progress"

// mongoProgressRepository implements repository.ProgressRepository.
// Progress entries are append-only; there is no update or delete.
type mongoProgressRepository struct {
	collection *mongo.Collection
}

// NewMongoProgressRepository creates a new progress repository backed by MongoDB.
func NewMongoProgressRepository(db *mongo.Database) repository.ProgressRepository {
	return &mongoProgressRepository{
		collection: db.Collection(progressCollectionName),
	}
}

// Create inserts a new check-in entry. Date is stamped server-side.
func (r *mongoProgressRepository) Create(ctx context.Context, entry *domain.ClientProgress) (primitive.ObjectID, error) {
	if entry.ClientID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("client ID is required")
	}

	entry.ID = primitive.NewObjectID()
	entry.Date = time.Now().UTC()
	if entry.Photos == nil {
		entry.Photos = []string{}
	}

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByClientID retrieves all check-in entries for a client, newest first.
func (r *mongoProgressRepository) GetByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.ClientProgress, error) {
	var entries []domain.ClientProgress

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"clientId": clientID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// EnsureProgressIndexes creates necessary indexes for the progress collection.
func EnsureProgressIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Compound index serves the newest-first listing per client.
			Keys:    bson.D{{Key: "clientId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal.
	}
}
