package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmissionStatus is the coach-side triage state of a form submission.
type SubmissionStatus string

const (
	SubmissionNew       SubmissionStatus = "new"
	SubmissionContacted SubmissionStatus = "contacted"
	SubmissionConverted SubmissionStatus = "converted"
	SubmissionCancelled SubmissionStatus = "cancelled"
)

// FormSubmission is an anonymous visitor's answers to an intake form.
// Created without authentication; status and notes are mutated by the
// owning coach only.
type FormSubmission struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FormID         primitive.ObjectID `bson:"formId" json:"formId"`
	Responses      map[string]string  `bson:"responses" json:"responses"` // keyed by FormField.ID
	SubmitterEmail string             `bson:"submitterEmail,omitempty" json:"submitterEmail,omitempty"`
	SubmitterName  string             `bson:"submitterName,omitempty" json:"submitterName,omitempty"`
	Status         SubmissionStatus   `bson:"status" json:"status"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	SubmittedAt    time.Time          `bson:"submittedAt" json:"submittedAt"`
}
