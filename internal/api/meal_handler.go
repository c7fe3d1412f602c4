package api

import (
	"errors"
	"net/http"

	"coachdesk/coaching-app/internal/domain"
	"coachdesk/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealHandler serves the meal catalogue and meal plans.
type MealHandler struct {
	mealService service.MealService
}

// NewMealHandler creates a new MealHandler.
func NewMealHandler(mealService service.MealService) *MealHandler {
	return &MealHandler{mealService: mealService}
}

// --- DTOs ---

type CreateMealRequest struct {
	Name         string              `json:"name" binding:"required"`
	Description  string              `json:"description"`
	Ingredients  []domain.Ingredient `json:"ingredients"`
	Instructions []string            `json:"instructions"`
	Macros       domain.Macros       `json:"macros"`
	PrepTime     *int                `json:"prepTime" binding:"omitempty,gte=0"`
	CookTime     *int                `json:"cookTime" binding:"omitempty,gte=0"`
	Servings     float64             `json:"servings" binding:"required,gt=0"`
}

type PlanMealRequest struct {
	MealID   string          `json:"mealId" binding:"required"`
	MealType domain.MealType `json:"mealType" binding:"required,oneof=breakfast lunch dinner snack"`
	Servings float64         `json:"servings" binding:"required,gt=0"`
}

type CreateMealPlanRequest struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	Meals       []PlanMealRequest `json:"meals"`
	IsTemplate  bool              `json:"isTemplate"`
}

// --- Handler Methods ---

// CreateMeal adds a recipe to the coach's catalogue.
func (h *MealHandler) CreateMeal(c *gin.Context) {
	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	meal, err := h.mealService.CreateMeal(c.Request.Context(), coachID, service.CreateMealInput{
		Name:         req.Name,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Macros:       req.Macros,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create meal.")
		}
		return
	}

	c.JSON(http.StatusCreated, meal)
}

// GetMeals lists the coach's meal catalogue.
func (h *MealHandler) GetMeals(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	meals, err := h.mealService.GetMeals(c.Request.Context(), coachID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve meals.")
		return
	}

	if meals == nil {
		c.JSON(http.StatusOK, []domain.Meal{})
		return
	}
	c.JSON(http.StatusOK, meals)
}

// CreateMealPlan creates a meal plan. Total macros are computed server-side
// from the referenced meals, never taken from the request.
func (h *MealHandler) CreateMealPlan(c *gin.Context) {
	var req CreateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	meals := make([]domain.PlanMeal, 0, len(req.Meals))
	for _, m := range req.Meals {
		mealID, err := primitive.ObjectIDFromHex(m.MealID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid meal ID format in plan.")
			return
		}
		meals = append(meals, domain.PlanMeal{
			MealID:   mealID,
			MealType: m.MealType,
			Servings: m.Servings,
		})
	}

	plan, err := h.mealService.CreateMealPlan(c.Request.Context(), coachID, service.CreateMealPlanInput{
		Name:        req.Name,
		Description: req.Description,
		Meals:       meals,
		IsTemplate:  req.IsTemplate,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMealNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create meal plan.")
		}
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetMealPlans lists the coach's meal plans.
func (h *MealHandler) GetMealPlans(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	plans, err := h.mealService.GetMealPlans(c.Request.Context(), coachID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve meal plans.")
		return
	}

	if plans == nil {
		c.JSON(http.StatusOK, []domain.MealPlan{})
		return
	}
	c.JSON(http.StatusOK, plans)
}
