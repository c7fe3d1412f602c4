package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Difficulty level of an exercise.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Exercise is a single exercise definition in the coach's library.
// Referenced by Workouts; never deleted while referenced in observed flows.
type Exercise struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID      primitive.ObjectID `bson:"coachId" json:"coachId"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description"`
	MuscleGroups []string           `bson:"muscleGroups" json:"muscleGroups"` // e.g. "chest", "quads"
	Equipment    []string           `bson:"equipment" json:"equipment"`
	Instructions []string           `bson:"instructions" json:"instructions"` // step by step
	Cues         []string           `bson:"cues" json:"cues"`                 // short coaching cues
	Difficulty   Difficulty         `bson:"difficulty" json:"difficulty"`
	Images       []string           `bson:"images" json:"images"` // S3 object keys
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
