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

const publicPageCollectionName = "public_pages"

type mongoPublicPageRepository struct {
	collection *mongo.Collection
}

// NewMongoPublicPageRepository creates a new public page repository backed by MongoDB.
func NewMongoPublicPageRepository(db *mongo.Database) repository.PublicPageRepository {
	return &mongoPublicPageRepository{
		collection: db.Collection(publicPageCollectionName),
	}
}

// Create inserts a coach's page. The unique slug index turns a slug collision
// into ErrConflict.
func (r *mongoPublicPageRepository) Create(ctx context.Context, page *domain.PublicPage) (primitive.ObjectID, error) {
	if page.Slug == "" || page.CoachID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("page slug and coach ID are required")
	}

	page.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	page.CreatedAt = now
	page.UpdatedAt = now
	if page.Testimonials == nil {
		page.Testimonials = []domain.Testimonial{}
	}
	if page.ClientImages == nil {
		page.ClientImages = []string{}
	}

	result, err := r.collection.InsertOne(ctx, page)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrConflict
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByCoachID retrieves the coach's page, if any. A coach has at most one.
func (r *mongoPublicPageRepository) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) (*domain.PublicPage, error) {
	var page domain.PublicPage
	err := r.collection.FindOne(ctx, bson.M{"coachId": coachID}).Decode(&page)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &page, nil
}

// GetBySlug retrieves a page by its slug. Used by the public lookup.
func (r *mongoPublicPageRepository) GetBySlug(ctx context.Context, slug string) (*domain.PublicPage, error) {
	var page domain.PublicPage
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&page)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &page, nil
}

// Update patches the page's content in place. The document id, coach
// ownership and creation time are preserved; a slug change that collides
// with another page returns ErrConflict.
func (r *mongoPublicPageRepository) Update(ctx context.Context, id primitive.ObjectID, page *domain.PublicPage) error {
	update := bson.M{
		"$set": bson.M{
			"slug":         page.Slug,
			"title":        page.Title,
			"theme":        page.Theme,
			"primaryColor": page.PrimaryColor,
			"heroTitle":    page.HeroTitle,
			"heroSubtitle": page.HeroSubtitle,
			"aboutText":    page.AboutText,
			"testimonials": page.Testimonials,
			"clientImages": page.ClientImages,
			"contactEmail": page.ContactEmail,
			"isActive":     page.IsActive,
			"updatedAt":    time.Now().UTC(),
			// Note: coachId and createdAt are deliberately not set here.
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrConflict
		}
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsurePublicPageIndexes creates necessary indexes for the pages collection.
func EnsurePublicPageIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "coachId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// Slug uniqueness across all coaches backs the upsert conflict check.
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal.
	}
}
