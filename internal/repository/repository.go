package repository

import (
	"context"

	"coachdesk/coaching-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrConflict     = RepositoryError("conflict")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository stores coach accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// ClientUpdate lists the fields a client update may touch. Nil pointers are
// left untouched; only fields explicitly present in the request are applied.
type ClientUpdate struct {
	Status              *domain.ClientStatus
	PaymentStatus       *domain.PaymentStatus
	CurrentWorkoutSplit *primitive.ObjectID
	CurrentMealPlan     *primitive.ObjectID
	CurrentPricingPlan  *primitive.ObjectID
	MonthlyRate         *float64
	Notes               *string
}

// IsEmpty reports whether the update would touch nothing.
func (u ClientUpdate) IsEmpty() bool {
	return u.Status == nil && u.PaymentStatus == nil &&
		u.CurrentWorkoutSplit == nil && u.CurrentMealPlan == nil &&
		u.CurrentPricingPlan == nil && u.MonthlyRate == nil && u.Notes == nil
}

// ClientRepository stores a coach's client records.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Client, error)
	GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Client, error)
	Update(ctx context.Context, id primitive.ObjectID, update ClientUpdate) error
}

// ProgressRepository stores client check-in entries. Entries are append-only.
type ProgressRepository interface {
	Create(ctx context.Context, entry *domain.ClientProgress) (primitive.ObjectID, error)
	// GetByClientID returns entries newest-first.
	GetByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.ClientProgress, error)
}

// ExerciseRepository stores the coach's exercise library.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Exercise, error)
}

// WorkoutRepository stores workouts.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Workout, error)
}

// WorkoutSplitRepository stores weekly workout splits.
type WorkoutSplitRepository interface {
	Create(ctx context.Context, split *domain.WorkoutSplit) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSplit, error)
	GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.WorkoutSplit, error)
}

// MealRepository stores the coach's meal catalogue.
type MealRepository interface {
	Create(ctx context.Context, meal *domain.Meal) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Meal, error)
	GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Meal, error)
}

// MealPlanRepository stores meal plans.
type MealPlanRepository interface {
	Create(ctx context.Context, plan *domain.MealPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MealPlan, error)
	GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.MealPlan, error)
}

// PricingPlanRepository stores pricing plans.
type PricingPlanRepository interface {
	Create(ctx context.Context, plan *domain.PricingPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PricingPlan, error)
	GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.PricingPlan, error)
}

// FormRepository stores intake forms.
type FormRepository interface {
	Create(ctx context.Context, form *domain.Form) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Form, error)
	GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Form, error)
}

// SubmissionUpdate lists the fields a submission update may touch.
type SubmissionUpdate struct {
	Status *domain.SubmissionStatus
	Notes  *string
}

// SubmissionRepository stores intake form submissions.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *domain.FormSubmission) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FormSubmission, error)
	// GetByFormID returns submissions newest-first.
	GetByFormID(ctx context.Context, formID primitive.ObjectID) ([]domain.FormSubmission, error)
	Update(ctx context.Context, id primitive.ObjectID, update SubmissionUpdate) error
}

// PublicPageRepository stores public marketing pages. At most one per coach;
// slug is unique across all pages (enforced by index).
type PublicPageRepository interface {
	Create(ctx context.Context, page *domain.PublicPage) (primitive.ObjectID, error)
	GetByCoachID(ctx context.Context, coachID primitive.ObjectID) (*domain.PublicPage, error)
	GetBySlug(ctx context.Context, slug string) (*domain.PublicPage, error)
	// Update replaces the page's content in place, preserving its id and
	// coach ownership. Returns ErrConflict if the new slug is taken.
	Update(ctx context.Context, id primitive.ObjectID, page *domain.PublicPage) error
}
