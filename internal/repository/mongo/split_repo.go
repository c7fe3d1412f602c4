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

const splitCollectionName = "workout_splits"

type mongoSplitRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutSplitRepository creates a new workout split repository backed by MongoDB.
func NewMongoWorkoutSplitRepository(db *mongo.Database) repository.WorkoutSplitRepository {
	return &mongoSplitRepository{
		collection: db.Collection(splitCollectionName),
	}
}

func (r *mongoSplitRepository) Create(ctx context.Context, split *domain.WorkoutSplit) (primitive.ObjectID, error) {
	if split.Name == "" || split.CoachID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("split name and coach ID are required")
	}

	split.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	split.CreatedAt = now
	split.UpdatedAt = now
	if split.Schedule == nil {
		split.Schedule = []domain.ScheduleDay{}
	}

	result, err := r.collection.InsertOne(ctx, split)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

func (r *mongoSplitRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSplit, error) {
	var split domain.WorkoutSplit
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&split)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &split, nil
}

func (r *mongoSplitRepository) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.WorkoutSplit, error) {
	var splits []domain.WorkoutSplit

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"coachId": coachID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &splits); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return splits, nil
}

// EnsureWorkoutSplitIndexes creates necessary indexes for the splits collection.
func EnsureWorkoutSplitIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "coachId", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal.
	}
}
