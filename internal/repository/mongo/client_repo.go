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

const clientCollectionName = "clients"

// mongoClientRepository implements repository.ClientRepository.
type mongoClientRepository struct {
	collection *mongo.Collection
}

// NewMongoClientRepository creates a new client repository backed by MongoDB.
func NewMongoClientRepository(db *mongo.Database) repository.ClientRepository {
	return &mongoClientRepository{
		collection: db.Collection(clientCollectionName),
	}
}

// Create inserts a new client record.
func (r *mongoClientRepository) Create(ctx context.Context, client *domain.Client) (primitive.ObjectID, error) {
	if client.Name == "" || client.CoachID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("client name and coach ID are required")
	}

	client.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, client)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a client by its ID. Ownership is checked by the caller.
func (r *mongoClientRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Client, error) {
	var client domain.Client
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&client)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// GetByCoachID retrieves all clients belonging to a coach.
func (r *mongoClientRepository) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Client, error) {
	var clients []domain.Client

	findOptions := options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"coachId": coachID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return clients, nil
}

// Update applies a partial update: only non-nil fields of the update are
// written, everything else is left untouched. CoachID is never modified.
func (r *mongoClientRepository) Update(ctx context.Context, id primitive.ObjectID, update repository.ClientUpdate) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.PaymentStatus != nil {
		set["paymentStatus"] = *update.PaymentStatus
	}
	if update.CurrentWorkoutSplit != nil {
		set["currentWorkoutSplit"] = *update.CurrentWorkoutSplit
	}
	if update.CurrentMealPlan != nil {
		set["currentMealPlan"] = *update.CurrentMealPlan
	}
	if update.CurrentPricingPlan != nil {
		set["currentPricingPlan"] = *update.CurrentPricingPlan
	}
	if update.MonthlyRate != nil {
		set["monthlyRate"] = *update.MonthlyRate
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureClientIndexes creates necessary indexes for the clients collection.
func EnsureClientIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "coachId", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal: queries still work without the index, just slower.
	}
}
