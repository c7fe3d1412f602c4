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

const formCollectionName = "forms"

type mongoFormRepository struct {
	collection *mongo.Collection
}

// NewMongoFormRepository creates a new intake form repository backed by MongoDB.
func NewMongoFormRepository(db *mongo.Database) repository.FormRepository {
	return &mongoFormRepository{
		collection: db.Collection(formCollectionName),
	}
}

func (r *mongoFormRepository) Create(ctx context.Context, form *domain.Form) (primitive.ObjectID, error) {
	if form.Title == "" || form.CoachID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("form title and coach ID are required")
	}

	form.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	form.CreatedAt = now
	form.UpdatedAt = now
	if form.Fields == nil {
		form.Fields = []domain.FormField{}
	}

	result, err := r.collection.InsertOne(ctx, form)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a form by its ID. Forms are publicly readable by id, so
// no ownership filter here; callers decide what to expose.
func (r *mongoFormRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Form, error) {
	var form domain.Form
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&form)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &form, nil
}

func (r *mongoFormRepository) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Form, error) {
	var forms []domain.Form

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"coachId": coachID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &forms); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return forms, nil
}

// EnsureFormIndexes creates necessary indexes for the forms collection.
func EnsureFormIndexes(ctx context.Context, collection *mongo.Collection) {
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
