package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutExercise is one exercise slot inside a workout, with its
// prescription. Reps and weight are free-form strings because coaches write
// things like "8-12" or "AMRAP".
type WorkoutExercise struct {
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Sets       int                `bson:"sets" json:"sets"`
	Reps       string             `bson:"reps,omitempty" json:"reps,omitempty"`
	Weight     string             `bson:"weight,omitempty" json:"weight,omitempty"`
	RestTime   string             `bson:"restTime,omitempty" json:"restTime,omitempty"`
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Workout is an ordered list of exercise prescriptions. Marked as a template
// when it is meant to be reused across clients rather than a one-off.
type Workout struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID           primitive.ObjectID `bson:"coachId" json:"coachId"`
	Name              string             `bson:"name" json:"name"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	Exercises         []WorkoutExercise  `bson:"exercises" json:"exercises"`
	EstimatedDuration *int               `bson:"estimatedDuration,omitempty" json:"estimatedDuration,omitempty"` // minutes
	IsTemplate        bool               `bson:"isTemplate" json:"isTemplate"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}
