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

const pricingPlanCollectionName = "pricing_plans"

type mongoPricingPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoPricingPlanRepository creates a new pricing plan repository backed by MongoDB.
func NewMongoPricingPlanRepository(db *mongo.Database) repository.PricingPlanRepository {
	return &mongoPricingPlanRepository{
		collection: db.Collection(pricingPlanCollectionName),
	}
}

func (r *mongoPricingPlanRepository) Create(ctx context.Context, plan *domain.PricingPlan) (primitive.ObjectID, error) {
	if plan.Name == "" || plan.CoachID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("plan name and coach ID are required")
	}

	plan.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	if plan.Features == nil {
		plan.Features = []string{}
	}

	result, err := r.collection.InsertOne(ctx, plan)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

func (r *mongoPricingPlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PricingPlan, error) {
	var plan domain.PricingPlan
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *mongoPricingPlanRepository) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.PricingPlan, error) {
	var plans []domain.PricingPlan

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"coachId": coachID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return plans, nil
}

// EnsurePricingPlanIndexes creates necessary indexes for the pricing plans collection.
func EnsurePricingPlanIndexes(ctx context.Context, collection *mongo.Collection) {
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
