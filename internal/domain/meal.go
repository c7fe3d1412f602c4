package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Macros are macronutrient totals. Values are stored unrounded; rounding to
// whole units is a presentation concern.
type Macros struct {
	Calories float64 `bson:"calories" json:"calories"`
	Protein  float64 `bson:"protein" json:"protein"`
	Carbs    float64 `bson:"carbs" json:"carbs"`
	Fat      float64 `bson:"fat" json:"fat"`
}

// Add returns the component-wise sum of m and other.
func (m Macros) Add(other Macros) Macros {
	return Macros{
		Calories: m.Calories + other.Calories,
		Protein:  m.Protein + other.Protein,
		Carbs:    m.Carbs + other.Carbs,
		Fat:      m.Fat + other.Fat,
	}
}

// Scale returns m multiplied by a servings factor.
func (m Macros) Scale(servings float64) Macros {
	return Macros{
		Calories: m.Calories * servings,
		Protein:  m.Protein * servings,
		Carbs:    m.Carbs * servings,
		Fat:      m.Fat * servings,
	}
}

// Ingredient of a meal. Amount is free-form ("1/2", "200") with a separate
// unit ("cup", "g").
type Ingredient struct {
	Name   string `bson:"name" json:"name"`
	Amount string `bson:"amount" json:"amount"`
	Unit   string `bson:"unit" json:"unit"`
}

// Meal is a recipe in the coach's library with per-serving macros.
type Meal struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID      primitive.ObjectID `bson:"coachId" json:"coachId"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Ingredients  []Ingredient       `bson:"ingredients" json:"ingredients"`
	Instructions []string           `bson:"instructions" json:"instructions"`
	Macros       Macros             `bson:"macros" json:"macros"`
	Images       []string           `bson:"images" json:"images"` // S3 object keys
	PrepTime     *int               `bson:"prepTime,omitempty" json:"prepTime,omitempty"` // minutes
	CookTime     *int               `bson:"cookTime,omitempty" json:"cookTime,omitempty"` // minutes
	Servings     float64            `bson:"servings" json:"servings"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
