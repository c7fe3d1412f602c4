package api

import (
	"errors"
	"net/http"

	"coachdesk/coaching-app/internal/domain"
	"coachdesk/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
)

// PricingHandler serves the coach's pricing plans.
type PricingHandler struct {
	pricingService service.PricingService
}

// NewPricingHandler creates a new PricingHandler.
func NewPricingHandler(pricingService service.PricingService) *PricingHandler {
	return &PricingHandler{pricingService: pricingService}
}

type CreatePricingPlanRequest struct {
	Name          string               `json:"name" binding:"required"`
	Description   string               `json:"description"`
	Price         float64              `json:"price" binding:"gte=0"`
	BillingPeriod domain.BillingPeriod `json:"billingPeriod" binding:"required,oneof=weekly monthly yearly"`
	Features      []string             `json:"features"`
	IsActive      *bool                `json:"isActive"`
}

// CreatePricingPlan creates a coaching package. Plans default to active.
func (h *PricingHandler) CreatePricingPlan(c *gin.Context) {
	var req CreatePricingPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	plan, err := h.pricingService.CreatePricingPlan(c.Request.Context(), coachID, service.CreatePricingPlanInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		BillingPeriod: req.BillingPeriod,
		Features:      req.Features,
		IsActive:      isActive,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create pricing plan.")
		}
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetPricingPlans lists the coach's pricing plans.
func (h *PricingHandler) GetPricingPlans(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	plans, err := h.pricingService.GetPricingPlans(c.Request.Context(), coachID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve pricing plans.")
		return
	}

	if plans == nil {
		c.JSON(http.StatusOK, []domain.PricingPlan{})
		return
	}
	c.JSON(http.StatusOK, plans)
}
