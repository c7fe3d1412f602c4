package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BillingPeriod is how often a pricing plan bills.
type BillingPeriod string

const (
	BillingWeekly  BillingPeriod = "weekly"
	BillingMonthly BillingPeriod = "monthly"
	BillingYearly  BillingPeriod = "yearly"
)

// PricingPlan is a coaching package the coach offers, assignable to clients.
type PricingPlan struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID       primitive.ObjectID `bson:"coachId" json:"coachId"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	BillingPeriod BillingPeriod      `bson:"billingPeriod" json:"billingPeriod"`
	Features      []string           `bson:"features" json:"features"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
