package api

import (
	"errors"
	"net/http"

	"coachdesk/coaching-app/internal/domain"
	"coachdesk/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the coach-facing side of the public marketing page.
type PageHandler struct {
	pageService service.PageService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(pageService service.PageService) *PageHandler {
	return &PageHandler{pageService: pageService}
}

// SavePageRequest is a partial patch; absent fields are left untouched.
type SavePageRequest struct {
	Slug         *string              `json:"slug"`
	Title        *string              `json:"title"`
	Theme        *string              `json:"theme"`
	PrimaryColor *string              `json:"primaryColor"`
	HeroTitle    *string              `json:"heroTitle"`
	HeroSubtitle *string              `json:"heroSubtitle"`
	AboutText    *string              `json:"aboutText"`
	Testimonials []domain.Testimonial `json:"testimonials"`
	ClientImages []string             `json:"clientImages"`
	ContactEmail *string              `json:"contactEmail" binding:"omitempty,email"`
	IsActive     *bool                `json:"isActive"`
}

// SavePage creates or updates the coach's single public page.
func (h *PageHandler) SavePage(c *gin.Context) {
	var req SavePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	page, err := h.pageService.SavePage(c.Request.Context(), coachID, service.PublicPageInput{
		Slug:         req.Slug,
		Title:        req.Title,
		Theme:        req.Theme,
		PrimaryColor: req.PrimaryColor,
		HeroTitle:    req.HeroTitle,
		HeroSubtitle: req.HeroSubtitle,
		AboutText:    req.AboutText,
		Testimonials: req.Testimonials,
		ClientImages: req.ClientImages,
		ContactEmail: req.ContactEmail,
		IsActive:     req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlugTaken):
			abortWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrSlugRequired):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to save page.")
		}
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetMyPage returns the coach's own page, active or not.
func (h *PageHandler) GetMyPage(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	page, err := h.pageService.GetMyPage(c.Request.Context(), coachID)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve page.")
		}
		return
	}

	c.JSON(http.StatusOK, page)
}
