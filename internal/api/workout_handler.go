package api

import (
	"errors"
	"net/http"

	"coachdesk/coaching-app/internal/domain"
	"coachdesk/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutHandler serves workouts and weekly splits.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

type WorkoutExerciseRequest struct {
	ExerciseID string `json:"exerciseId" binding:"required"`
	Sets       int    `json:"sets" binding:"required,gt=0"`
	Reps       string `json:"reps"`
	Weight     string `json:"weight"`
	RestTime   string `json:"restTime"`
	Notes      string `json:"notes"`
}

type CreateWorkoutRequest struct {
	Name              string                   `json:"name" binding:"required"`
	Description       string                   `json:"description"`
	Exercises         []WorkoutExerciseRequest `json:"exercises"`
	EstimatedDuration *int                     `json:"estimatedDuration" binding:"omitempty,gt=0"`
	IsTemplate        bool                     `json:"isTemplate"`
}

type ScheduleDayRequest struct {
	Day       int     `json:"day" binding:"min=0,max=6"`
	WorkoutID *string `json:"workoutId"`
	IsRestDay bool    `json:"isRestDay"`
	Notes     string  `json:"notes"`
}

type CreateSplitRequest struct {
	Name        string               `json:"name" binding:"required"`
	Description string               `json:"description"`
	Schedule    []ScheduleDayRequest `json:"schedule"`
	IsTemplate  bool                 `json:"isTemplate"`
}

// --- Handler Methods ---

// CreateWorkout creates a workout. Every referenced exercise must exist in
// the coach's own library.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	exercises := make([]domain.WorkoutExercise, 0, len(req.Exercises))
	for _, e := range req.Exercises {
		exerciseID, err := primitive.ObjectIDFromHex(e.ExerciseID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format in workout.")
			return
		}
		exercises = append(exercises, domain.WorkoutExercise{
			ExerciseID: exerciseID,
			Sets:       e.Sets,
			Reps:       e.Reps,
			Weight:     e.Weight,
			RestTime:   e.RestTime,
			Notes:      e.Notes,
		})
	}

	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), coachID, service.CreateWorkoutInput{
		Name:              req.Name,
		Description:       req.Description,
		Exercises:         exercises,
		EstimatedDuration: req.EstimatedDuration,
		IsTemplate:        req.IsTemplate,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create workout.")
		}
		return
	}

	c.JSON(http.StatusCreated, workout)
}

// GetWorkouts lists the coach's workouts.
func (h *WorkoutHandler) GetWorkouts(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	workouts, err := h.workoutService.GetWorkouts(c.Request.Context(), coachID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts.")
		return
	}

	if workouts == nil {
		c.JSON(http.StatusOK, []domain.Workout{})
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// CreateSplit creates a weekly split. Scheduled workouts must belong to the
// coach.
func (h *WorkoutHandler) CreateSplit(c *gin.Context) {
	var req CreateSplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	schedule := make([]domain.ScheduleDay, 0, len(req.Schedule))
	for _, d := range req.Schedule {
		day := domain.ScheduleDay{
			Day:       d.Day,
			IsRestDay: d.IsRestDay,
			Notes:     d.Notes,
		}
		if day.WorkoutID, err = objectIDOrNil(d.WorkoutID); err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid workout ID format in schedule.")
			return
		}
		schedule = append(schedule, day)
	}

	split, err := h.workoutService.CreateSplit(c.Request.Context(), coachID, service.CreateSplitInput{
		Name:        req.Name,
		Description: req.Description,
		Schedule:    schedule,
		IsTemplate:  req.IsTemplate,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create split.")
		}
		return
	}

	c.JSON(http.StatusCreated, split)
}

// GetSplits lists the coach's workout splits.
func (h *WorkoutHandler) GetSplits(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	splits, err := h.workoutService.GetSplits(c.Request.Context(), coachID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve splits.")
		return
	}

	if splits == nil {
		c.JSON(http.StatusOK, []domain.WorkoutSplit{})
		return
	}
	c.JSON(http.StatusOK, splits)
}
