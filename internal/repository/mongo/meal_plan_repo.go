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

const mealPlanCollectionName = "meal_plans"

type mongoMealPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoMealPlanRepository creates a new meal plan repository backed by MongoDB.
func NewMongoMealPlanRepository(db *mongo.Database) repository.MealPlanRepository {
	return &mongoMealPlanRepository{
		collection: db.Collection(mealPlanCollectionName),
	}
}

func (r *mongoMealPlanRepository) Create(ctx context.Context, plan *domain.MealPlan) (primitive.ObjectID, error) {
	if plan.Name == "" || plan.CoachID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("plan name and coach ID are required")
	}

	plan.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	if plan.Meals == nil {
		plan.Meals = []domain.PlanMeal{}
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

func (r *mongoMealPlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MealPlan, error) {
	var plan domain.MealPlan
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *mongoMealPlanRepository) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.MealPlan, error) {
	var plans []domain.MealPlan

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

// EnsureMealPlanIndexes creates necessary indexes for the meal plans collection.
func EnsureMealPlanIndexes(ctx context.Context, collection *mongo.Collection) {
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
