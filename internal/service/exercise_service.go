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
	ErrExerciseNotFound = errors.New("exercise not found or access denied")
	ErrValidationFailed = errors.New("validation failed")
)

// CreateExerciseInput carries the fields for a new library exercise.
type CreateExerciseInput struct {
	Name         string
	Description  string
	MuscleGroups []string
	Equipment    []string
	Instructions []string
	Cues         []string
	Difficulty   domain.Difficulty
}

// ExerciseService manages the coach's exercise library.
type ExerciseService interface {
	CreateExercise(ctx context.Context, coachID primitive.ObjectID, input CreateExerciseInput) (*domain.Exercise, error)
	GetExercises(ctx context.Context, coachID primitive.ObjectID) ([]domain.Exercise, error)
	GetExercise(ctx context.Context, coachID, exerciseID primitive.ObjectID) (*domain.Exercise, error)
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo}
}

// CreateExercise adds an exercise to the coach's library.
func (s *exerciseService) CreateExercise(ctx context.Context, coachID primitive.ObjectID, input CreateExerciseInput) (*domain.Exercise, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID is required")
	}
	if input.Name == "" {
		return nil, ErrValidationFailed
	}

	exercise := &domain.Exercise{
		CoachID:      coachID,
		Name:         input.Name,
		Description:  input.Description,
		MuscleGroups: emptyIfNil(input.MuscleGroups),
		Equipment:    emptyIfNil(input.Equipment),
		Instructions: emptyIfNil(input.Instructions),
		Cues:         emptyIfNil(input.Cues),
		Difficulty:   input.Difficulty,
		Images:       []string{},
	}

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, err
	}
	return s.exerciseRepo.GetByID(ctx, exerciseID)
}

// GetExercises retrieves the coach's full library.
func (s *exerciseService) GetExercises(ctx context.Context, coachID primitive.ObjectID) ([]domain.Exercise, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID cannot be nil")
	}
	return s.exerciseRepo.GetByCoachID(ctx, coachID)
}

// GetExercise retrieves a single exercise, enforcing ownership.
func (s *exerciseService) GetExercise(ctx context.Context, coachID, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	if exercise.CoachID != coachID {
		return nil, ErrExerciseNotFound
	}
	return exercise, nil
}

// emptyIfNil normalizes a nil slice to an empty one so stored documents and
// JSON responses always carry arrays.
func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
