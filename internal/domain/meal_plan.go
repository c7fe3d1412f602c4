package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealType slots a meal into the day.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// PlanMeal references a meal from the coach's catalogue with a serving count.
type PlanMeal struct {
	MealID   primitive.ObjectID `bson:"mealId" json:"mealId"`
	MealType MealType           `bson:"mealType" json:"mealType"`
	Servings float64            `bson:"servings" json:"servings"`
}

// MealPlan is a day's worth of meals. TotalMacros is a snapshot computed at
// creation time from the referenced meals; it is NOT recomputed if a
// referenced meal's macros change later.
type MealPlan struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID     primitive.ObjectID `bson:"coachId" json:"coachId"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Meals       []PlanMeal         `bson:"meals" json:"meals"`
	TotalMacros Macros             `bson:"totalMacros" json:"totalMacros"`
	IsTemplate  bool               `bson:"isTemplate" json:"isTemplate"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
