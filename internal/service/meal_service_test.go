package service

import (
	"context"
	"testing"

	"coachdesk/coaching-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newMealServiceForTest() (MealService, *fakeMealRepo, *fakeMealPlanRepo) {
	mealRepo := newFakeMealRepo()
	mealPlanRepo := newFakeMealPlanRepo()
	return NewMealService(mealRepo, mealPlanRepo), mealRepo, mealPlanRepo
}

func createTestMeal(t *testing.T, svc MealService, coachID primitive.ObjectID, name string, macros domain.Macros) *domain.Meal {
	t.Helper()
	meal, err := svc.CreateMeal(context.Background(), coachID, CreateMealInput{
		Name:     name,
		Macros:   macros,
		Servings: 1,
	})
	require.NoError(t, err)
	return meal
}

func TestCreateMealPlanSnapshotsTotalMacros(t *testing.T) {
	svc, _, _ := newMealServiceForTest()
	coachID := primitive.NewObjectID()

	oats := createTestMeal(t, svc, coachID, "Oats", domain.Macros{Calories: 350, Protein: 12, Carbs: 60, Fat: 6})
	chicken := createTestMeal(t, svc, coachID, "Chicken & Rice", domain.Macros{Calories: 550, Protein: 45, Carbs: 55, Fat: 12})

	plan, err := svc.CreateMealPlan(context.Background(), coachID, CreateMealPlanInput{
		Name: "Cut day",
		Meals: []domain.PlanMeal{
			{MealID: oats.ID, MealType: domain.MealBreakfast, Servings: 1},
			{MealID: chicken.ID, MealType: domain.MealLunch, Servings: 1.5},
		},
	})
	require.NoError(t, err)

	assert.InDelta(t, 350+550*1.5, plan.TotalMacros.Calories, 1e-9)
	assert.InDelta(t, 12+45*1.5, plan.TotalMacros.Protein, 1e-9)
	assert.InDelta(t, 60+55*1.5, plan.TotalMacros.Carbs, 1e-9)
	assert.InDelta(t, 6+12*1.5, plan.TotalMacros.Fat, 1e-9)
}

func TestCreateMealPlanRejectsForeignMeal(t *testing.T) {
	svc, _, mealPlanRepo := newMealServiceForTest()
	coachID := primitive.NewObjectID()
	otherCoach := primitive.NewObjectID()

	foreign := createTestMeal(t, svc, otherCoach, "Their meal", domain.Macros{Calories: 500})

	_, err := svc.CreateMealPlan(context.Background(), coachID, CreateMealPlanInput{
		Name:  "Plan",
		Meals: []domain.PlanMeal{{MealID: foreign.ID, MealType: domain.MealDinner, Servings: 1}},
	})
	assert.ErrorIs(t, err, ErrMealNotFound)

	// Nothing was persisted.
	plans, err := svc.GetMealPlans(context.Background(), coachID)
	require.NoError(t, err)
	assert.Empty(t, plans)
	assert.Empty(t, mealPlanRepo.plans)
}

func TestCreateMealPlanRejectsNonPositiveServings(t *testing.T) {
	svc, _, _ := newMealServiceForTest()
	coachID := primitive.NewObjectID()

	meal := createTestMeal(t, svc, coachID, "Oats", domain.Macros{Calories: 350})

	_, err := svc.CreateMealPlan(context.Background(), coachID, CreateMealPlanInput{
		Name:  "Plan",
		Meals: []domain.PlanMeal{{MealID: meal.ID, MealType: domain.MealBreakfast, Servings: 0}},
	})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestTotalMacrosOrderInvariant(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()
	macrosByMeal := map[primitive.ObjectID]domain.Macros{
		a: {Calories: 300, Protein: 20, Carbs: 30, Fat: 10},
		b: {Calories: 450, Protein: 35, Carbs: 40, Fat: 15},
		c: {Calories: 200, Protein: 5, Carbs: 25, Fat: 8},
	}
	meals := []domain.PlanMeal{
		{MealID: a, Servings: 2},
		{MealID: b, Servings: 1},
		{MealID: c, Servings: 0.5},
	}
	reversed := []domain.PlanMeal{meals[2], meals[1], meals[0]}

	assert.Equal(t, TotalMacros(meals, macrosByMeal), TotalMacros(reversed, macrosByMeal))
}

func TestTotalMacrosEmptyPlanIsZero(t *testing.T) {
	total := TotalMacros(nil, map[primitive.ObjectID]domain.Macros{})
	assert.Equal(t, domain.Macros{}, total)
}

func TestGetMealsIsolatedPerCoach(t *testing.T) {
	svc, _, _ := newMealServiceForTest()
	coachA := primitive.NewObjectID()
	coachB := primitive.NewObjectID()

	createTestMeal(t, svc, coachA, "A meal", domain.Macros{Calories: 100})
	createTestMeal(t, svc, coachB, "B meal", domain.Macros{Calories: 200})

	meals, err := svc.GetMeals(context.Background(), coachA)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "A meal", meals[0].Name)
}
