package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FieldType of an intake form field.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldRadio    FieldType = "radio"
	FieldCheckbox FieldType = "checkbox"
	FieldFile     FieldType = "file"
)

// FormField is one question on an intake form. The ID keys the submitted
// responses map.
type FormField struct {
	ID          string    `bson:"id" json:"id"`
	Type        FieldType `bson:"type" json:"type"`
	Label       string    `bson:"label" json:"label"`
	Required    bool      `bson:"required" json:"required"`
	Options     []string  `bson:"options,omitempty" json:"options,omitempty"` // select/radio only
	Placeholder string    `bson:"placeholder,omitempty" json:"placeholder,omitempty"`
}

// Form is a coach's intake form. Publicly readable by id so prospects can
// fill it in without an account; only accepts submissions while IsActive.
type Form struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID     primitive.ObjectID `bson:"coachId" json:"coachId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Fields      []FormField        `bson:"fields" json:"fields"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FieldByID returns the field with the given id, or nil.
func (f *Form) FieldByID(id string) *FormField {
	for i := range f.Fields {
		if f.Fields[i].ID == id {
			return &f.Fields[i]
		}
	}
	return nil
}
