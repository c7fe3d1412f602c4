package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduleDay maps one day of the week to a workout (or a rest day).
// Day is 0-6, Sunday through Saturday.
type ScheduleDay struct {
	Day       int                 `bson:"day" json:"day"`
	WorkoutID *primitive.ObjectID `bson:"workoutId,omitempty" json:"workoutId,omitempty"`
	IsRestDay bool                `bson:"isRestDay" json:"isRestDay"`
	Notes     string              `bson:"notes,omitempty" json:"notes,omitempty"`
}

// WorkoutSplit is a weekly schedule of workouts, assignable to a client as
// their current split.
type WorkoutSplit struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID     primitive.ObjectID `bson:"coachId" json:"coachId"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Schedule    []ScheduleDay      `bson:"schedule" json:"schedule"`
	IsTemplate  bool               `bson:"isTemplate" json:"isTemplate"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
