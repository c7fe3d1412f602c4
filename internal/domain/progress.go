package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Measurements are optional body measurements taken at a check-in, in the
// coach's preferred unit (the app does not convert).
type Measurements struct {
	Chest  *float64 `bson:"chest,omitempty" json:"chest,omitempty"`
	Waist  *float64 `bson:"waist,omitempty" json:"waist,omitempty"`
	Hips   *float64 `bson:"hips,omitempty" json:"hips,omitempty"`
	Arms   *float64 `bson:"arms,omitempty" json:"arms,omitempty"`
	Thighs *float64 `bson:"thighs,omitempty" json:"thighs,omitempty"`
}

// ClientProgress is one check-in entry for a client. Entries are append-only:
// they are created once and never updated or deleted.
type ClientProgress struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID primitive.ObjectID `bson:"clientId" json:"clientId"`
	Date     time.Time          `bson:"date" json:"date"`

	Weight       *float64      `bson:"weight,omitempty" json:"weight,omitempty"`
	BodyFat      *float64      `bson:"bodyFat,omitempty" json:"bodyFat,omitempty"`
	Measurements *Measurements `bson:"measurements,omitempty" json:"measurements,omitempty"`
	Photos       []string      `bson:"photos" json:"photos"` // S3 object keys
	Notes        string        `bson:"notes,omitempty" json:"notes,omitempty"`
	Mood         *int          `bson:"mood,omitempty" json:"mood,omitempty"`     // 1-10
	Energy       *int          `bson:"energy,omitempty" json:"energy,omitempty"` // 1-10
}
