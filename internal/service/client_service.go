package service

import (
	"context"
	"errors"
	"time"

	"coachdesk/coaching-app/internal/domain"
	"coachdesk/coaching-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	// Deliberately covers both "does not exist" and "owned by another coach":
	// the existence of other coaches' records is never revealed.
	ErrClientNotFound = errors.New("client not found or access denied")
)

// CreateClientInput carries the coach-provided fields for a new client.
// Status, payment status and start date are stamped by the service.
type CreateClientInput struct {
	Name        string
	Email       string
	Phone       string
	Goals       []string
	Notes       string
	MonthlyRate *float64
}

// AddProgressInput carries one check-in entry for a client.
type AddProgressInput struct {
	Weight       *float64
	BodyFat      *float64
	Measurements *domain.Measurements
	Photos       []string
	Notes        string
	Mood         *int
	Energy       *int
}

// ClientService manages a coach's client roster and progress log. Every
// operation takes the acting coach's id explicitly; there is no ambient
// caller state.
type ClientService interface {
	CreateClient(ctx context.Context, coachID primitive.ObjectID, input CreateClientInput) (*domain.Client, error)
	GetClients(ctx context.Context, coachID primitive.ObjectID) ([]domain.Client, error)
	GetClient(ctx context.Context, coachID, clientID primitive.ObjectID) (*domain.Client, error)
	UpdateClient(ctx context.Context, coachID, clientID primitive.ObjectID, update repository.ClientUpdate) (*domain.Client, error)
	GetClientProgress(ctx context.Context, coachID, clientID primitive.ObjectID) ([]domain.ClientProgress, error)
	AddClientProgress(ctx context.Context, coachID, clientID primitive.ObjectID, input AddProgressInput) (*domain.ClientProgress, error)
}

type clientService struct {
	clientRepo   repository.ClientRepository
	progressRepo repository.ProgressRepository
	splitRepo    repository.WorkoutSplitRepository
	mealPlanRepo repository.MealPlanRepository
	pricingRepo  repository.PricingPlanRepository
}

// NewClientService creates a new instance of clientService. The split, meal
// plan and pricing repositories are needed to validate that assigned records
// belong to the same coach as the client.
func NewClientService(
	clientRepo repository.ClientRepository,
	progressRepo repository.ProgressRepository,
	splitRepo repository.WorkoutSplitRepository,
	mealPlanRepo repository.MealPlanRepository,
	pricingRepo repository.PricingPlanRepository,
) ClientService {
	return &clientService{
		clientRepo:   clientRepo,
		progressRepo: progressRepo,
		splitRepo:    splitRepo,
		mealPlanRepo: mealPlanRepo,
		pricingRepo:  pricingRepo,
	}
}

// CreateClient adds a new client to the coach's roster. New clients start
// active with payment pending, matching the onboarding flow.
func (s *clientService) CreateClient(ctx context.Context, coachID primitive.ObjectID, input CreateClientInput) (*domain.Client, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID is required")
	}
	if input.Name == "" || input.Email == "" {
		return nil, ErrValidationFailed
	}

	goals := input.Goals
	if goals == nil {
		goals = []string{}
	}

	client := &domain.Client{
		CoachID:       coachID,
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Status:        domain.ClientActive,
		PaymentStatus: domain.PaymentPending,
		StartDate:     time.Now().UTC(),
		Goals:         goals,
		Notes:         input.Notes,
		MonthlyRate:   input.MonthlyRate,
	}

	clientID, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		return nil, err
	}
	client.ID = clientID

	return s.clientRepo.GetByID(ctx, clientID)
}

// GetClients retrieves the coach's full roster.
func (s *clientService) GetClients(ctx context.Context, coachID primitive.ObjectID) ([]domain.Client, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID cannot be nil")
	}
	return s.clientRepo.GetByCoachID(ctx, coachID)
}

// GetClient retrieves a single client, enforcing ownership.
func (s *clientService) GetClient(ctx context.Context, coachID, clientID primitive.ObjectID) (*domain.Client, error) {
	return s.getOwnedClient(ctx, coachID, clientID)
}

// UpdateClient applies a partial update, enforcing ownership of the client
// and of every newly assigned split/meal plan/pricing plan.
func (s *clientService) UpdateClient(ctx context.Context, coachID, clientID primitive.ObjectID, update repository.ClientUpdate) (*domain.Client, error) {
	client, err := s.getOwnedClient(ctx, coachID, clientID)
	if err != nil {
		return nil, err
	}

	if err := s.validateAssignments(ctx, coachID, update); err != nil {
		return nil, err
	}

	// An empty partial is a no-op, not an error.
	if update.IsEmpty() {
		return client, nil
	}

	if err := s.clientRepo.Update(ctx, clientID, update); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return s.clientRepo.GetByID(ctx, clientID)
}

// GetClientProgress retrieves a client's check-in log, newest first.
func (s *clientService) GetClientProgress(ctx context.Context, coachID, clientID primitive.ObjectID) ([]domain.ClientProgress, error) {
	if _, err := s.getOwnedClient(ctx, coachID, clientID); err != nil {
		return nil, err
	}
	return s.progressRepo.GetByClientID(ctx, clientID)
}

// AddClientProgress appends a check-in entry. Entries are immutable once
// written.
func (s *clientService) AddClientProgress(ctx context.Context, coachID, clientID primitive.ObjectID, input AddProgressInput) (*domain.ClientProgress, error) {
	if _, err := s.getOwnedClient(ctx, coachID, clientID); err != nil {
		return nil, err
	}

	photos := input.Photos
	if photos == nil {
		photos = []string{}
	}

	entry := &domain.ClientProgress{
		ClientID:     clientID,
		Weight:       input.Weight,
		BodyFat:      input.BodyFat,
		Measurements: input.Measurements,
		Photos:       photos,
		Notes:        input.Notes,
		Mood:         input.Mood,
		Energy:       input.Energy,
	}

	entryID, err := s.progressRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = entryID
	return entry, nil
}

// getOwnedClient fetches the client and verifies the coach owns it. Missing
// and foreign-owned both map to ErrClientNotFound.
func (s *clientService) getOwnedClient(ctx context.Context, coachID, clientID primitive.ObjectID) (*domain.Client, error) {
	if coachID == primitive.NilObjectID || clientID == primitive.NilObjectID {
		return nil, errors.New("coach ID and client ID are required")
	}

	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	if client.CoachID != coachID {
		return nil, ErrClientNotFound
	}
	return client, nil
}

// validateAssignments checks that every record id newly assigned to the
// client belongs to the acting coach. A foreign or missing record fails
// with that resource's not-found error.
func (s *clientService) validateAssignments(ctx context.Context, coachID primitive.ObjectID, update repository.ClientUpdate) error {
	if update.CurrentWorkoutSplit != nil {
		split, err := s.splitRepo.GetByID(ctx, *update.CurrentWorkoutSplit)
		if err != nil || split.CoachID != coachID {
			return ErrSplitNotFound
		}
	}
	if update.CurrentMealPlan != nil {
		plan, err := s.mealPlanRepo.GetByID(ctx, *update.CurrentMealPlan)
		if err != nil || plan.CoachID != coachID {
			return ErrMealPlanNotFound
		}
	}
	if update.CurrentPricingPlan != nil {
		plan, err := s.pricingRepo.GetByID(ctx, *update.CurrentPricingPlan)
		if err != nil || plan.CoachID != coachID {
			return ErrPricingPlanNotFound
		}
	}
	return nil
}
