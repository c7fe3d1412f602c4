package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientStatus tracks whether a client is currently training.
type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
	ClientPaused   ClientStatus = "paused"
)

// PaymentStatus tracks the client's billing state.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentOverdue PaymentStatus = "overdue"
)

// Client is a coach's customer record. Distinct from the User account:
// clients do not log in, they are data the coach manages.
type Client struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID primitive.ObjectID `bson:"coachId" json:"coachId"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Phone   string             `bson:"phone,omitempty" json:"phone,omitempty"`

	Status        ClientStatus  `bson:"status" json:"status"`
	PaymentStatus PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	StartDate     time.Time     `bson:"startDate" json:"startDate"`
	Goals         []string      `bson:"goals" json:"goals"`
	Notes         string        `bson:"notes,omitempty" json:"notes,omitempty"`
	MonthlyRate   *float64      `bson:"monthlyRate,omitempty" json:"monthlyRate,omitempty"`

	// Current assignments. Each must reference a record owned by the same
	// coach as the client; the service layer enforces this on update.
	CurrentWorkoutSplit *primitive.ObjectID `bson:"currentWorkoutSplit,omitempty" json:"currentWorkoutSplit,omitempty"`
	CurrentMealPlan     *primitive.ObjectID `bson:"currentMealPlan,omitempty" json:"currentMealPlan,omitempty"`
	CurrentPricingPlan  *primitive.ObjectID `bson:"currentPricingPlan,omitempty" json:"currentPricingPlan,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsPaid reports whether the client counts toward recurring revenue.
func (c *Client) IsPaid() bool {
	return c.PaymentStatus == PaymentPaid
}
