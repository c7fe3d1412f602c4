package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Testimonial shown on a coach's public page.
type Testimonial struct {
	Name  string `bson:"name" json:"name"`
	Text  string `bson:"text" json:"text"`
	Image string `bson:"image,omitempty" json:"image,omitempty"` // S3 object key
}

// PublicPage is a coach's marketing page, publicly readable by slug.
// A coach has at most one page; the slug is unique across all coaches.
type PublicPage struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID      primitive.ObjectID `bson:"coachId" json:"coachId"`
	Slug         string             `bson:"slug" json:"slug"`
	Title        string             `bson:"title" json:"title"`
	Theme        string             `bson:"theme" json:"theme"`
	PrimaryColor string             `bson:"primaryColor" json:"primaryColor"`
	HeroTitle    string             `bson:"heroTitle" json:"heroTitle"`
	HeroSubtitle string             `bson:"heroSubtitle,omitempty" json:"heroSubtitle,omitempty"`
	AboutText    string             `bson:"aboutText,omitempty" json:"aboutText,omitempty"`
	Testimonials []Testimonial      `bson:"testimonials" json:"testimonials"`
	ClientImages []string           `bson:"clientImages" json:"clientImages"` // S3 object keys
	ContactEmail string             `bson:"contactEmail" json:"contactEmail"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
