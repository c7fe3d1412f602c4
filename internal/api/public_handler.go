package api

import (
	"errors"
	"net/http"

	"coachdesk/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated surface: marketing pages by slug,
// intake forms by id, and form submissions from prospects.
type PublicHandler struct {
	pageService service.PageService
	formService service.FormService
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(pageService service.PageService, formService service.FormService) *PublicHandler {
	return &PublicHandler{
		pageService: pageService,
		formService: formService,
	}
}

type SubmitFormRequest struct {
	Responses      map[string]string `json:"responses" binding:"required"`
	SubmitterEmail string            `json:"submitterEmail" binding:"omitempty,email"`
	SubmitterName  string            `json:"submitterName"`
}

// GetPageBySlug serves a coach's marketing page. Inactive pages 404.
func (h *PublicHandler) GetPageBySlug(c *gin.Context) {
	page, err := h.pageService.GetPageBySlug(c.Request.Context(), c.Param("slug"))
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

// GetForm serves an intake form for public rendering. Inactive forms 404.
func (h *PublicHandler) GetForm(c *gin.Context) {
	formID, err := parseObjectIDParam(c, "formId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	form, err := h.formService.GetPublicForm(c.Request.Context(), formID)
	if err != nil {
		if errors.Is(err, service.ErrFormInactive) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve form.")
		}
		return
	}

	c.JSON(http.StatusOK, form)
}

// SubmitForm records an anonymous prospect's submission. Responses must
// match the form's declared fields.
func (h *PublicHandler) SubmitForm(c *gin.Context) {
	var req SubmitFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	formID, err := parseObjectIDParam(c, "formId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	submission, err := h.formService.SubmitForm(c.Request.Context(), formID, service.SubmitFormInput{
		Responses:      req.Responses,
		SubmitterEmail: req.SubmitterEmail,
		SubmitterName:  req.SubmitterName,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFormInactive):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidResponses):
			abortWithError(c, http.StatusUnprocessableEntity, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to submit form.")
		}
		return
	}

	c.JSON(http.StatusCreated, submission)
}
