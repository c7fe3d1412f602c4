package service

import (
	"context"
	"errors"

	"coachdesk/coaching-app/internal/domain"
	"coachdesk/coaching-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrMealNotFound     = errors.New("meal not found or access denied")
	ErrMealPlanNotFound = errors.New("meal plan not found or access denied")
)

// CreateMealInput carries the fields for a new catalogue meal. Macros are
// per serving.
type CreateMealInput struct {
	Name         string
	Description  string
	Ingredients  []domain.Ingredient
	Instructions []string
	Macros       domain.Macros
	PrepTime     *int
	CookTime     *int
	Servings     float64
}

// CreateMealPlanInput carries the fields for a new meal plan. Total macros
// are computed by the service, not taken from the caller.
type CreateMealPlanInput struct {
	Name        string
	Description string
	Meals       []domain.PlanMeal
	IsTemplate  bool
}

// MealService manages the meal catalogue and meal plans.
type MealService interface {
	CreateMeal(ctx context.Context, coachID primitive.ObjectID, input CreateMealInput) (*domain.Meal, error)
	GetMeals(ctx context.Context, coachID primitive.ObjectID) ([]domain.Meal, error)
	CreateMealPlan(ctx context.Context, coachID primitive.ObjectID, input CreateMealPlanInput) (*domain.MealPlan, error)
	GetMealPlans(ctx context.Context, coachID primitive.ObjectID) ([]domain.MealPlan, error)
}

type mealService struct {
	mealRepo     repository.MealRepository
	mealPlanRepo repository.MealPlanRepository
}

// NewMealService creates a new instance of mealService.
func NewMealService(mealRepo repository.MealRepository, mealPlanRepo repository.MealPlanRepository) MealService {
	return &mealService{
		mealRepo:     mealRepo,
		mealPlanRepo: mealPlanRepo,
	}
}

// CreateMeal adds a meal to the coach's catalogue.
func (s *mealService) CreateMeal(ctx context.Context, coachID primitive.ObjectID, input CreateMealInput) (*domain.Meal, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID is required")
	}
	if input.Name == "" || input.Servings <= 0 {
		return nil, ErrValidationFailed
	}

	meal := &domain.Meal{
		CoachID:      coachID,
		Name:         input.Name,
		Description:  input.Description,
		Ingredients:  input.Ingredients,
		Instructions: emptyIfNil(input.Instructions),
		Macros:       input.Macros,
		Images:       []string{},
		PrepTime:     input.PrepTime,
		CookTime:     input.CookTime,
		Servings:     input.Servings,
	}

	mealID, err := s.mealRepo.Create(ctx, meal)
	if err != nil {
		return nil, err
	}
	return s.mealRepo.GetByID(ctx, mealID)
}

// GetMeals retrieves the coach's catalogue.
func (s *mealService) GetMeals(ctx context.Context, coachID primitive.ObjectID) ([]domain.Meal, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID cannot be nil")
	}
	return s.mealRepo.GetByCoachID(ctx, coachID)
}

// CreateMealPlan builds a plan from the coach's meals. TotalMacros is a
// snapshot of the referenced meals' macros at this moment; later edits to a
// meal do not flow back into existing plans.
func (s *mealService) CreateMealPlan(ctx context.Context, coachID primitive.ObjectID, input CreateMealPlanInput) (*domain.MealPlan, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID is required")
	}
	if input.Name == "" {
		return nil, ErrValidationFailed
	}

	// Resolve every referenced meal, enforcing ownership along the way.
	meals := make(map[primitive.ObjectID]domain.Macros, len(input.Meals))
	for _, pm := range input.Meals {
		if pm.Servings <= 0 {
			return nil, ErrValidationFailed
		}
		if _, ok := meals[pm.MealID]; ok {
			continue
		}
		meal, err := s.mealRepo.GetByID(ctx, pm.MealID)
		if err != nil || meal.CoachID != coachID {
			return nil, ErrMealNotFound
		}
		meals[pm.MealID] = meal.Macros
	}

	plan := &domain.MealPlan{
		CoachID:     coachID,
		Name:        input.Name,
		Description: input.Description,
		Meals:       input.Meals,
		TotalMacros: TotalMacros(input.Meals, meals),
		IsTemplate:  input.IsTemplate,
	}

	planID, err := s.mealPlanRepo.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	return s.mealPlanRepo.GetByID(ctx, planID)
}

// GetMealPlans retrieves all of the coach's meal plans.
func (s *mealService) GetMealPlans(ctx context.Context, coachID primitive.ObjectID) ([]domain.MealPlan, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID cannot be nil")
	}
	return s.mealPlanRepo.GetByCoachID(ctx, coachID)
}

// TotalMacros sums macros×servings over the plan's meals. It is a pure
// function: the result does not depend on meal order, and values are stored
// unrounded (rounding is left to presentation).
func TotalMacros(planMeals []domain.PlanMeal, macrosByMeal map[primitive.ObjectID]domain.Macros) domain.Macros {
	var total domain.Macros
	for _, pm := range planMeals {
		macros, ok := macrosByMeal[pm.MealID]
		if !ok {
			continue
		}
		total = total.Add(macros.Scale(pm.Servings))
	}
	return total
}
