package api

import (
	"errors"
	"net/http"
	"time"

	"coachdesk/coaching-app/internal/domain"
	"coachdesk/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs ---

// CreateExerciseRequest defines the expected JSON for creating an exercise.
type CreateExerciseRequest struct {
	Name         string            `json:"name" binding:"required"`
	Description  string            `json:"description"`
	MuscleGroups []string          `json:"muscleGroups"`
	Equipment    []string          `json:"equipment"`
	Instructions []string          `json:"instructions"`
	Cues         []string          `json:"cues"`
	Difficulty   domain.Difficulty `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
}

// ExerciseResponse is the DTO for returning exercise details.
type ExerciseResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	MuscleGroups []string          `json:"muscleGroups"`
	Equipment    []string          `json:"equipment"`
	Instructions []string          `json:"instructions"`
	Cues         []string          `json:"cues"`
	Difficulty   domain.Difficulty `json:"difficulty,omitempty"`
	Images       []string          `json:"images"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:           ex.ID.Hex(),
		Name:         ex.Name,
		Description:  ex.Description,
		MuscleGroups: ex.MuscleGroups,
		Equipment:    ex.Equipment,
		Instructions: ex.Instructions,
		Cues:         ex.Cues,
		Difficulty:   ex.Difficulty,
		Images:       ex.Images,
		CreatedAt:    ex.CreatedAt,
		UpdatedAt:    ex.UpdatedAt,
	}
}

// MapExercisesToResponse converts a slice of domain.Exercise to DTOs.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateExercise godoc
// @Summary Create a new exercise
// @Description Adds an exercise to the authenticated coach's library.
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercise body CreateExerciseRequest true "Exercise details"
// @Success 201 {object} ExerciseResponse "Exercise created successfully"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /exercises [post]
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), coachID, service.CreateExerciseInput{
		Name:         req.Name,
		Description:  req.Description,
		MuscleGroups: req.MuscleGroups,
		Equipment:    req.Equipment,
		Instructions: req.Instructions,
		Cues:         req.Cues,
		Difficulty:   req.Difficulty,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create exercise.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapExerciseToResponse(exercise))
}

// GetExercises godoc
// @Summary Get the coach's exercise library
// @Description Retrieves all exercises created by the authenticated coach.
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ExerciseResponse "List of exercises"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /exercises [get]
func (h *ExerciseHandler) GetExercises(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	exercises, err := h.exerciseService.GetExercises(c.Request.Context(), coachID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
		return
	}

	if exercises == nil {
		c.JSON(http.StatusOK, []ExerciseResponse{})
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// GetExercise godoc
// @Summary Get one exercise
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param exerciseId path string true "Exercise ID"
// @Success 200 {object} ExerciseResponse
// @Failure 404 {object} gin.H "Exercise not found or not owned by this coach"
// @Router /exercises/{exerciseId} [get]
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}
	exerciseID, err := parseObjectIDParam(c, "exerciseId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	exercise, err := h.exerciseService.GetExercise(c.Request.Context(), coachID, exerciseID)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercise.")
		}
		return
	}

	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}
