package service

import (
	"context"
	"errors"

	"coachdesk/coaching-app/internal/domain"
	"coachdesk/coaching-app/internal/repository"

	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrPageNotFound = errors.New("page not found")
	ErrSlugTaken    = errors.New("that URL slug is already in use")
	ErrSlugRequired = errors.New("a slug is required for a public page")
)

// PublicPageInput is a partial patch of a coach's marketing page. Nil
// fields are left untouched; on first save, untouched fields take their
// zero values.
type PublicPageInput struct {
	Slug         *string
	Title        *string
	Theme        *string
	PrimaryColor *string
	HeroTitle    *string
	HeroSubtitle *string
	AboutText    *string
	Testimonials []domain.Testimonial
	ClientImages []string
	ContactEmail *string
	IsActive     *bool
}

// PageService manages a coach's single public marketing page.
type PageService interface {
	// SavePage creates the coach's page on first call and patches it on
	// subsequent calls.
	SavePage(ctx context.Context, coachID primitive.ObjectID, input PublicPageInput) (*domain.PublicPage, error)
	GetMyPage(ctx context.Context, coachID primitive.ObjectID) (*domain.PublicPage, error)
	// GetPageBySlug serves the public storefront; inactive pages are
	// reported as missing.
	GetPageBySlug(ctx context.Context, pageSlug string) (*domain.PublicPage, error)
}

type pageService struct {
	pageRepo repository.PublicPageRepository
}

// NewPageService creates a new instance of pageService.
func NewPageService(pageRepo repository.PublicPageRepository) PageService {
	return &pageService{pageRepo: pageRepo}
}

func (s *pageService) SavePage(ctx context.Context, coachID primitive.ObjectID, input PublicPageInput) (*domain.PublicPage, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID is required")
	}

	existing, err := s.pageRepo.GetByCoachID(ctx, coachID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	page := existing
	if page == nil {
		page = &domain.PublicPage{CoachID: coachID, IsActive: true}
	}
	applyPageInput(page, input)

	if page.Slug == "" {
		return nil, ErrSlugRequired
	}
	// Normalize so "John's Page!" and "johns-page" collide explicitly.
	page.Slug = slug.Make(page.Slug)

	if existing == nil {
		id, err := s.pageRepo.Create(ctx, page)
		if err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return nil, ErrSlugTaken
			}
			return nil, err
		}
		page.ID = id
	} else {
		if err := s.pageRepo.Update(ctx, page.ID, page); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return nil, ErrSlugTaken
			}
			return nil, err
		}
	}
	return s.pageRepo.GetByCoachID(ctx, coachID)
}

func (s *pageService) GetMyPage(ctx context.Context, coachID primitive.ObjectID) (*domain.PublicPage, error) {
	page, err := s.pageRepo.GetByCoachID(ctx, coachID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return page, nil
}

func (s *pageService) GetPageBySlug(ctx context.Context, pageSlug string) (*domain.PublicPage, error) {
	page, err := s.pageRepo.GetBySlug(ctx, slug.Make(pageSlug))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	if !page.IsActive {
		return nil, ErrPageNotFound
	}
	return page, nil
}

func applyPageInput(page *domain.PublicPage, input PublicPageInput) {
	if input.Slug != nil {
		page.Slug = *input.Slug
	}
	if input.Title != nil {
		page.Title = *input.Title
	}
	if input.Theme != nil {
		page.Theme = *input.Theme
	}
	if input.PrimaryColor != nil {
		page.PrimaryColor = *input.PrimaryColor
	}
	if input.HeroTitle != nil {
		page.HeroTitle = *input.HeroTitle
	}
	if input.HeroSubtitle != nil {
		page.HeroSubtitle = *input.HeroSubtitle
	}
	if input.AboutText != nil {
		page.AboutText = *input.AboutText
	}
	if input.Testimonials != nil {
		page.Testimonials = input.Testimonials
	}
	if input.ClientImages != nil {
		page.ClientImages = input.ClientImages
	}
	if input.ContactEmail != nil {
		page.ContactEmail = *input.ContactEmail
	}
	if input.IsActive != nil {
		page.IsActive = *input.IsActive
	}
}
