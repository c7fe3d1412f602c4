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

const submissionCollectionName = "form_submissions"

type mongoSubmissionRepository struct {
	collection *mongo.Collection
}

// NewMongoSubmissionRepository creates a new form submission repository backed by MongoDB.
func NewMongoSubmissionRepository(db *mongo.Database) repository.SubmissionRepository {
	return &mongoSubmissionRepository{
		collection: db.Collection(submissionCollectionName),
	}
}

// Create inserts a new submission. Unlike every other collection this one is
// written by unauthenticated visitors; the service layer has already checked
// the parent form.
func (r *mongoSubmissionRepository) Create(ctx context.Context, submission *domain.FormSubmission) (primitive.ObjectID, error) {
	if submission.FormID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("form ID is required")
	}

	submission.ID = primitive.NewObjectID()
	submission.SubmittedAt = time.Now().UTC()
	if submission.Responses == nil {
		submission.Responses = map[string]string{}
	}

	result, err := r.collection.InsertOne(ctx, submission)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

func (r *mongoSubmissionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FormSubmission, error) {
	var submission domain.FormSubmission
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&submission)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &submission, nil
}

// GetByFormID retrieves all submissions for a form, newest first.
func (r *mongoSubmissionRepository) GetByFormID(ctx context.Context, formID primitive.ObjectID) ([]domain.FormSubmission, error) {
	var submissions []domain.FormSubmission

	findOptions := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"formId": formID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return submissions, nil
}

// Update applies a partial update of status and coach notes.
func (r *mongoSubmissionRepository) Update(ctx context.Context, id primitive.ObjectID, update repository.SubmissionUpdate) error {
	set := bson.M{}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}
	if len(set) == 0 {
		return nil
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

// EnsureSubmissionIndexes creates necessary indexes for the submissions collection.
func EnsureSubmissionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Compound index serves the newest-first listing per form.
			Keys:    bson.D{{Key: "formId", Value: 1}, {Key: "submittedAt", Value: -1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal.
	}
}
