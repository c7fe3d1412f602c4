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

const mealCollectionName = "meals"

type mongoMealRepository struct {
	collection *mongo.Collection
}

// NewMongoMealRepository creates a new meal repository backed by MongoDB.
func NewMongoMealRepository(db *mongo.Database) repository.MealRepository {
	return &mongoMealRepository{
		collection: db.Collection(mealCollectionName),
	}
}

func (r *mongoMealRepository) Create(ctx context.Context, meal *domain.Meal) (primitive.ObjectID, error) {
	if meal.Name == "" || meal.CoachID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("meal name and coach ID are required")
	}

	meal.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	meal.CreatedAt = now
	meal.UpdatedAt = now
	if meal.Ingredients == nil {
		meal.Ingredients = []domain.Ingredient{}
	}
	if meal.Images == nil {
		meal.Images = []string{}
	}

	result, err := r.collection.InsertOne(ctx, meal)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

func (r *mongoMealRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Meal, error) {
	var meal domain.Meal
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&meal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (r *mongoMealRepository) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Meal, error) {
	var meals []domain.Meal

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"coachId": coachID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return meals, nil
}

// EnsureMealIndexes creates necessary indexes for the meals collection.
func EnsureMealIndexes(ctx context.Context, collection *mongo.Collection) {
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
