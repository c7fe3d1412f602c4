package api

import (
	"errors"
	"net/http"

	"coachdesk/coaching-app/internal/domain"
	"coachdesk/coaching-app/internal/repository"
	"coachdesk/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
)

// FormHandler serves the coach-facing side of intake forms: creating forms
// and triaging submissions. The public side lives in PublicHandler.
type FormHandler struct {
	formService service.FormService
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(formService service.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

// --- DTOs ---

type FormFieldRequest struct {
	Type        domain.FieldType `json:"type" binding:"required,oneof=text textarea select radio checkbox file"`
	Label       string           `json:"label" binding:"required"`
	Required    bool             `json:"required"`
	Options     []string         `json:"options"`
	Placeholder string           `json:"placeholder"`
}

type CreateFormRequest struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description"`
	Fields      []FormFieldRequest `json:"fields"`
}

// UpdateSubmissionRequest is a partial update of a submission's triage state.
type UpdateSubmissionRequest struct {
	Status *domain.SubmissionStatus `json:"status" binding:"omitempty,oneof=new contacted converted cancelled"`
	Notes  *string                  `json:"notes"`
}

// --- Handler Methods ---

// CreateForm creates an intake form for the authenticated coach.
func (h *FormHandler) CreateForm(c *gin.Context) {
	var req CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	fields := make([]service.FormFieldInput, 0, len(req.Fields))
	for _, f := range req.Fields {
		fields = append(fields, service.FormFieldInput{
			Type:        f.Type,
			Label:       f.Label,
			Required:    f.Required,
			Options:     f.Options,
			Placeholder: f.Placeholder,
		})
	}

	form, err := h.formService.CreateForm(c.Request.Context(), coachID, service.CreateFormInput{
		Title:       req.Title,
		Description: req.Description,
		Fields:      fields,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create form.")
		}
		return
	}

	c.JSON(http.StatusCreated, form)
}

// GetForms lists the coach's intake forms.
func (h *FormHandler) GetForms(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	forms, err := h.formService.GetForms(c.Request.Context(), coachID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve forms.")
		return
	}

	if forms == nil {
		c.JSON(http.StatusOK, []domain.Form{})
		return
	}
	c.JSON(http.StatusOK, forms)
}

// GetSubmissions lists a form's submissions, newest first. The coach must
// own the form.
func (h *FormHandler) GetSubmissions(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}
	formID, err := parseObjectIDParam(c, "formId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	submissions, err := h.formService.GetSubmissions(c.Request.Context(), coachID, formID)
	if err != nil {
		if errors.Is(err, service.ErrFormNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve submissions.")
		}
		return
	}

	if submissions == nil {
		c.JSON(http.StatusOK, []domain.FormSubmission{})
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// UpdateSubmission patches a submission's status or notes. Ownership is
// checked through the submission's parent form.
func (h *FormHandler) UpdateSubmission(c *gin.Context) {
	var req UpdateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}
	submissionID, err := parseObjectIDParam(c, "submissionId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	submission, err := h.formService.UpdateSubmission(c.Request.Context(), coachID, submissionID, repository.SubmissionUpdate{
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update submission.")
		}
		return
	}

	c.JSON(http.StatusOK, submission)
}
