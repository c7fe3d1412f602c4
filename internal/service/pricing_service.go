package service

import (
	"context"
	"errors"

	"coachdesk/coaching-app/internal/domain"
	"coachdesk/coaching-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrPricingPlanNotFound = errors.New("pricing plan not found or access denied")

// CreatePricingPlanInput carries the fields for a new coaching package.
type CreatePricingPlanInput struct {
	Name          string
	Description   string
	Price         float64
	BillingPeriod domain.BillingPeriod
	Features      []string
	IsActive      bool
}

// PricingService manages the coach's pricing plans.
type PricingService interface {
	CreatePricingPlan(ctx context.Context, coachID primitive.ObjectID, input CreatePricingPlanInput) (*domain.PricingPlan, error)
	GetPricingPlans(ctx context.Context, coachID primitive.ObjectID) ([]domain.PricingPlan, error)
}

type pricingService struct {
	pricingRepo repository.PricingPlanRepository
}

// NewPricingService creates a new instance of pricingService.
func NewPricingService(pricingRepo repository.PricingPlanRepository) PricingService {
	return &pricingService{pricingRepo: pricingRepo}
}

func (s *pricingService) CreatePricingPlan(ctx context.Context, coachID primitive.ObjectID, input CreatePricingPlanInput) (*domain.PricingPlan, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID is required")
	}
	if input.Name == "" || input.Price < 0 {
		return nil, ErrValidationFailed
	}

	plan := &domain.PricingPlan{
		CoachID:       coachID,
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		BillingPeriod: input.BillingPeriod,
		Features:      emptyIfNil(input.Features),
		IsActive:      input.IsActive,
	}

	planID, err := s.pricingRepo.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	return s.pricingRepo.GetByID(ctx, planID)
}

func (s *pricingService) GetPricingPlans(ctx context.Context, coachID primitive.ObjectID) ([]domain.PricingPlan, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID cannot be nil")
	}
	return s.pricingRepo.GetByCoachID(ctx, coachID)
}
