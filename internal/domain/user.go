package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a coach account. Every piece of business data in the system
// (clients, catalog content, pricing, forms, the public page) is owned by
// exactly one coach.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose via JSON
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
