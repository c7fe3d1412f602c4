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
	ErrWorkoutNotFound = errors.New("workout not found or access denied")
	ErrSplitNotFound   = errors.New("workout split not found or access denied")
)

// CreateWorkoutInput carries the fields for a new workout.
type CreateWorkoutInput struct {
	Name              string
	Description       string
	Exercises         []domain.WorkoutExercise
	EstimatedDuration *int
	IsTemplate        bool
}

// CreateSplitInput carries the fields for a new weekly split.
type CreateSplitInput struct {
	Name        string
	Description string
	Schedule    []domain.ScheduleDay
	IsTemplate  bool
}

// WorkoutService manages workouts and weekly splits. Referenced exercises and
// workouts must belong to the acting coach.
type WorkoutService interface {
	CreateWorkout(ctx context.Context, coachID primitive.ObjectID, input CreateWorkoutInput) (*domain.Workout, error)
	GetWorkouts(ctx context.Context, coachID primitive.ObjectID) ([]domain.Workout, error)
	CreateSplit(ctx context.Context, coachID primitive.ObjectID, input CreateSplitInput) (*domain.WorkoutSplit, error)
	GetSplits(ctx context.Context, coachID primitive.ObjectID) ([]domain.WorkoutSplit, error)
}

type workoutService struct {
	workoutRepo  repository.WorkoutRepository
	splitRepo    repository.WorkoutSplitRepository
	exerciseRepo repository.ExerciseRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(
	workoutRepo repository.WorkoutRepository,
	splitRepo repository.WorkoutSplitRepository,
	exerciseRepo repository.ExerciseRepository,
) WorkoutService {
	return &workoutService{
		workoutRepo:  workoutRepo,
		splitRepo:    splitRepo,
		exerciseRepo: exerciseRepo,
	}
}

// CreateWorkout builds a workout from the coach's exercise library.
func (s *workoutService) CreateWorkout(ctx context.Context, coachID primitive.ObjectID, input CreateWorkoutInput) (*domain.Workout, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID is required")
	}
	if input.Name == "" {
		return nil, ErrValidationFailed
	}

	// Every referenced exercise must exist and belong to this coach.
	for _, we := range input.Exercises {
		exercise, err := s.exerciseRepo.GetByID(ctx, we.ExerciseID)
		if err != nil || exercise.CoachID != coachID {
			return nil, ErrExerciseNotFound
		}
		if we.Sets <= 0 {
			return nil, ErrValidationFailed
		}
	}

	workout := &domain.Workout{
		CoachID:           coachID,
		Name:              input.Name,
		Description:       input.Description,
		Exercises:         input.Exercises,
		EstimatedDuration: input.EstimatedDuration,
		IsTemplate:        input.IsTemplate,
	}

	workoutID, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	return s.workoutRepo.GetByID(ctx, workoutID)
}

// GetWorkouts retrieves all of the coach's workouts.
func (s *workoutService) GetWorkouts(ctx context.Context, coachID primitive.ObjectID) ([]domain.Workout, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID cannot be nil")
	}
	return s.workoutRepo.GetByCoachID(ctx, coachID)
}

// CreateSplit builds a weekly schedule from the coach's workouts. Days run
// 0-6, Sunday through Saturday.
func (s *workoutService) CreateSplit(ctx context.Context, coachID primitive.ObjectID, input CreateSplitInput) (*domain.WorkoutSplit, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID is required")
	}
	if input.Name == "" {
		return nil, ErrValidationFailed
	}

	for _, day := range input.Schedule {
		if day.Day < 0 || day.Day > 6 {
			return nil, ErrValidationFailed
		}
		if day.WorkoutID != nil {
			workout, err := s.workoutRepo.GetByID(ctx, *day.WorkoutID)
			if err != nil || workout.CoachID != coachID {
				return nil, ErrWorkoutNotFound
			}
		}
	}

	split := &domain.WorkoutSplit{
		CoachID:     coachID,
		Name:        input.Name,
		Description: input.Description,
		Schedule:    input.Schedule,
		IsTemplate:  input.IsTemplate,
	}

	splitID, err := s.splitRepo.Create(ctx, split)
	if err != nil {
		return nil, err
	}
	return s.splitRepo.GetByID(ctx, splitID)
}

// GetSplits retrieves all of the coach's splits.
func (s *workoutService) GetSplits(ctx context.Context, coachID primitive.ObjectID) ([]domain.WorkoutSplit, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID cannot be nil")
	}
	return s.splitRepo.GetByCoachID(ctx, coachID)
}
