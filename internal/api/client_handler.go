package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"coachdesk/coaching-app/internal/domain"
	"coachdesk/coaching-app/internal/repository"
	"coachdesk/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientHandler holds the client service dependency.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// --- DTOs ---

type CreateClientRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone"`
	Goals       []string `json:"goals"`
	Notes       string   `json:"notes"`
	MonthlyRate *float64 `json:"monthlyRate" binding:"omitempty,gte=0"`
}

// UpdateClientRequest is a partial update; absent fields are left untouched.
type UpdateClientRequest struct {
	Status              *domain.ClientStatus  `json:"status" binding:"omitempty,oneof=active inactive paused"`
	PaymentStatus       *domain.PaymentStatus `json:"paymentStatus" binding:"omitempty,oneof=paid pending overdue"`
	CurrentWorkoutSplit *string               `json:"currentWorkoutSplit"`
	CurrentMealPlan     *string               `json:"currentMealPlan"`
	CurrentPricingPlan  *string               `json:"currentPricingPlan"`
	MonthlyRate         *float64              `json:"monthlyRate" binding:"omitempty,gte=0"`
	Notes               *string               `json:"notes"`
}

type AddProgressRequest struct {
	Weight       *float64             `json:"weight" binding:"omitempty,gt=0"`
	BodyFat      *float64             `json:"bodyFat" binding:"omitempty,gte=0,lte=100"`
	Measurements *domain.Measurements `json:"measurements"`
	Photos       []string             `json:"photos"`
	Notes        string               `json:"notes"`
	Mood         *int                 `json:"mood" binding:"omitempty,min=1,max=10"`
	Energy       *int                 `json:"energy" binding:"omitempty,min=1,max=10"`
}

// ClientResponse is the DTO for returning client details.
type ClientResponse struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	Email               string               `json:"email"`
	Phone               string               `json:"phone,omitempty"`
	Status              domain.ClientStatus  `json:"status"`
	PaymentStatus       domain.PaymentStatus `json:"paymentStatus"`
	StartDate           time.Time            `json:"startDate"`
	Goals               []string             `json:"goals"`
	Notes               string               `json:"notes,omitempty"`
	MonthlyRate         *float64             `json:"monthlyRate,omitempty"`
	CurrentWorkoutSplit *string              `json:"currentWorkoutSplit,omitempty"`
	CurrentMealPlan     *string              `json:"currentMealPlan,omitempty"`
	CurrentPricingPlan  *string              `json:"currentPricingPlan,omitempty"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

// MapClientToResponse converts a domain.Client to ClientResponse DTO.
func MapClientToResponse(client *domain.Client) ClientResponse {
	if client == nil {
		return ClientResponse{}
	}
	resp := ClientResponse{
		ID:            client.ID.Hex(),
		Name:          client.Name,
		Email:         client.Email,
		Phone:         client.Phone,
		Status:        client.Status,
		PaymentStatus: client.PaymentStatus,
		StartDate:     client.StartDate,
		Goals:         client.Goals,
		Notes:         client.Notes,
		MonthlyRate:   client.MonthlyRate,
		CreatedAt:     client.CreatedAt,
		UpdatedAt:     client.UpdatedAt,
	}
	resp.CurrentWorkoutSplit = hexOrNil(client.CurrentWorkoutSplit)
	resp.CurrentMealPlan = hexOrNil(client.CurrentMealPlan)
	resp.CurrentPricingPlan = hexOrNil(client.CurrentPricingPlan)
	return resp
}

// MapClientsToResponse converts a slice of domain.Client to ClientResponse DTOs.
func MapClientsToResponse(clients []domain.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = MapClientToResponse(&clients[i])
	}
	return responses
}

func hexOrNil(id *primitive.ObjectID) *string {
	if id == nil || *id == primitive.NilObjectID {
		return nil
	}
	hex := id.Hex()
	return &hex
}

// --- Handler Methods ---

// CreateClient godoc
// @Summary Add a client
// @Description Adds a client to the authenticated coach's roster.
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param client body CreateClientRequest true "Client details"
// @Success 201 {object} ClientResponse "Client created successfully"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), coachID, service.CreateClientInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Goals:       req.Goals,
		Notes:       req.Notes,
		MonthlyRate: req.MonthlyRate,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create client.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapClientToResponse(client))
}

// GetClients godoc
// @Summary List the coach's clients
// @Description Retrieves the authenticated coach's roster, newest start date first.
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ClientResponse "List of clients"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /clients [get]
func (h *ClientHandler) GetClients(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	clients, err := h.clientService.GetClients(c.Request.Context(), coachID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve clients.")
		return
	}

	c.JSON(http.StatusOK, MapClientsToResponse(clients))
}

// GetClient godoc
// @Summary Get one client
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Success 200 {object} ClientResponse
// @Failure 404 {object} gin.H "Client not found or not owned by this coach"
// @Router /clients/{clientId} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}
	clientID, err := parseObjectIDParam(c, "clientId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), coachID, clientID)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve client.")
		}
		return
	}

	c.JSON(http.StatusOK, MapClientToResponse(client))
}

// UpdateClient godoc
// @Summary Update a client
// @Description Applies a partial update to a client. Assigned splits, meal
// @Description plans and pricing plans must belong to the same coach.
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Param update body UpdateClientRequest true "Fields to update"
// @Success 200 {object} ClientResponse "Updated client"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Client or assigned record not found"
// @Router /clients/{clientId} [patch]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}
	clientID, err := parseObjectIDParam(c, "clientId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	update := repository.ClientUpdate{
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
		MonthlyRate:   req.MonthlyRate,
		Notes:         req.Notes,
	}
	if update.CurrentWorkoutSplit, err = objectIDOrNil(req.CurrentWorkoutSplit); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid currentWorkoutSplit ID format.")
		return
	}
	if update.CurrentMealPlan, err = objectIDOrNil(req.CurrentMealPlan); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid currentMealPlan ID format.")
		return
	}
	if update.CurrentPricingPlan, err = objectIDOrNil(req.CurrentPricingPlan); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid currentPricingPlan ID format.")
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), coachID, clientID, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientNotFound),
			errors.Is(err, service.ErrSplitNotFound),
			errors.Is(err, service.ErrMealPlanNotFound),
			errors.Is(err, service.ErrPricingPlanNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update client.")
		}
		return
	}

	c.JSON(http.StatusOK, MapClientToResponse(client))
}

// GetClientProgress godoc
// @Summary List a client's check-ins
// @Description Retrieves a client's progress log, newest entry first.
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Success 200 {array} domain.ClientProgress
// @Failure 404 {object} gin.H "Client not found or not owned by this coach"
// @Router /clients/{clientId}/progress [get]
func (h *ClientHandler) GetClientProgress(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}
	clientID, err := parseObjectIDParam(c, "clientId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.clientService.GetClientProgress(c.Request.Context(), coachID, clientID)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve progress.")
		}
		return
	}

	if entries == nil {
		c.JSON(http.StatusOK, []domain.ClientProgress{})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// AddClientProgress godoc
// @Summary Record a check-in
// @Description Appends a progress entry for a client. Entries are immutable.
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Param entry body AddProgressRequest true "Check-in data"
// @Success 201 {object} domain.ClientProgress
// @Failure 404 {object} gin.H "Client not found or not owned by this coach"
// @Router /clients/{clientId}/progress [post]
func (h *ClientHandler) AddClientProgress(c *gin.Context) {
	var req AddProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}
	clientID, err := parseObjectIDParam(c, "clientId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.clientService.AddClientProgress(c.Request.Context(), coachID, clientID, service.AddProgressInput{
		Weight:       req.Weight,
		BodyFat:      req.BodyFat,
		Measurements: req.Measurements,
		Photos:       req.Photos,
		Notes:        req.Notes,
		Mood:         req.Mood,
		Energy:       req.Energy,
	})
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to record check-in.")
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func objectIDOrNil(hex *string) (*primitive.ObjectID, error) {
	if hex == nil {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(*hex)
	if err != nil {
		return nil, fmt.Errorf("invalid object ID %q", *hex)
	}
	return &id, nil
}
