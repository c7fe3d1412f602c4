package service

import (
	"context"
	"errors"
	"fmt"

	"coachdesk/coaching-app/internal/domain"
	"coachdesk/coaching-app/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrFormNotFound       = errors.New("form not found or access denied")
	ErrFormInactive       = errors.New("form not found or inactive")
	ErrSubmissionNotFound = errors.New("submission not found or access denied")
	ErrInvalidResponses   = errors.New("submitted responses do not match the form's fields")
)

// FormFieldInput describes one field of a new form. The field id is
// generated server-side; the caller only supplies the question.
type FormFieldInput struct {
	Type        domain.FieldType
	Label       string
	Required    bool
	Options     []string
	Placeholder string
}

// CreateFormInput carries the fields for a new intake form.
type CreateFormInput struct {
	Title       string
	Description string
	Fields      []FormFieldInput
}

// SubmitFormInput is an anonymous visitor's submission payload.
type SubmitFormInput struct {
	Responses      map[string]string
	SubmitterEmail string
	SubmitterName  string
}

// FormService manages intake forms and their submissions. Form reads by id
// and submission creation are public; everything else requires the owning
// coach.
type FormService interface {
	CreateForm(ctx context.Context, coachID primitive.ObjectID, input CreateFormInput) (*domain.Form, error)
	GetForms(ctx context.Context, coachID primitive.ObjectID) ([]domain.Form, error)
	// GetPublicForm returns a form for public rendering; inactive forms are
	// reported as missing.
	GetPublicForm(ctx context.Context, formID primitive.ObjectID) (*domain.Form, error)
	SubmitForm(ctx context.Context, formID primitive.ObjectID, input SubmitFormInput) (*domain.FormSubmission, error)
	GetSubmissions(ctx context.Context, coachID, formID primitive.ObjectID) ([]domain.FormSubmission, error)
	UpdateSubmission(ctx context.Context, coachID, submissionID primitive.ObjectID, update repository.SubmissionUpdate) (*domain.FormSubmission, error)
}

type formService struct {
	formRepo       repository.FormRepository
	submissionRepo repository.SubmissionRepository
}

// NewFormService creates a new instance of formService.
func NewFormService(formRepo repository.FormRepository, submissionRepo repository.SubmissionRepository) FormService {
	return &formService{
		formRepo:       formRepo,
		submissionRepo: submissionRepo,
	}
}

// CreateForm creates an intake form. New forms are active immediately.
func (s *formService) CreateForm(ctx context.Context, coachID primitive.ObjectID, input CreateFormInput) (*domain.Form, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID is required")
	}
	if input.Title == "" {
		return nil, ErrValidationFailed
	}

	fields := make([]domain.FormField, 0, len(input.Fields))
	for _, f := range input.Fields {
		if f.Label == "" {
			return nil, ErrValidationFailed
		}
		needsOptions := f.Type == domain.FieldSelect || f.Type == domain.FieldRadio
		if needsOptions && len(f.Options) == 0 {
			return nil, ErrValidationFailed
		}
		fields = append(fields, domain.FormField{
			ID:          uuid.NewString(),
			Type:        f.Type,
			Label:       f.Label,
			Required:    f.Required,
			Options:     f.Options,
			Placeholder: f.Placeholder,
		})
	}

	form := &domain.Form{
		CoachID:     coachID,
		Title:       input.Title,
		Description: input.Description,
		Fields:      fields,
		IsActive:    true,
	}

	formID, err := s.formRepo.Create(ctx, form)
	if err != nil {
		return nil, err
	}
	return s.formRepo.GetByID(ctx, formID)
}

// GetForms retrieves the coach's forms.
func (s *formService) GetForms(ctx context.Context, coachID primitive.ObjectID) ([]domain.Form, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID cannot be nil")
	}
	return s.formRepo.GetByCoachID(ctx, coachID)
}

// GetPublicForm fetches a form for an anonymous visitor.
func (s *formService) GetPublicForm(ctx context.Context, formID primitive.ObjectID) (*domain.Form, error) {
	form, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFormInactive
		}
		return nil, err
	}
	if !form.IsActive {
		return nil, ErrFormInactive
	}
	return form, nil
}

// SubmitForm records an anonymous submission. The form must exist and be
// active, and the responses must match its declared fields; a rejected
// submission leaves no record behind.
func (s *formService) SubmitForm(ctx context.Context, formID primitive.ObjectID, input SubmitFormInput) (*domain.FormSubmission, error) {
	form, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFormInactive
		}
		return nil, err
	}
	if !form.IsActive {
		return nil, ErrFormInactive
	}

	if err := ValidateResponses(form, input.Responses); err != nil {
		return nil, err
	}

	submission := &domain.FormSubmission{
		FormID:         formID,
		Responses:      input.Responses,
		SubmitterEmail: input.SubmitterEmail,
		SubmitterName:  input.SubmitterName,
		Status:         domain.SubmissionNew,
	}

	submissionID, err := s.submissionRepo.Create(ctx, submission)
	if err != nil {
		return nil, err
	}
	submission.ID = submissionID
	return submission, nil
}

// GetSubmissions retrieves a form's submissions, newest first, after
// verifying the coach owns the form.
func (s *formService) GetSubmissions(ctx context.Context, coachID, formID primitive.ObjectID) ([]domain.FormSubmission, error) {
	form, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	if form.CoachID != coachID {
		return nil, ErrFormNotFound
	}
	return s.submissionRepo.GetByFormID(ctx, formID)
}

// UpdateSubmission patches a submission's status and notes. Authorization
// runs through one level of indirection: the coach must own the
// submission's parent form.
func (s *formService) UpdateSubmission(ctx context.Context, coachID, submissionID primitive.ObjectID, update repository.SubmissionUpdate) (*domain.FormSubmission, error) {
	submission, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}

	form, err := s.formRepo.GetByID(ctx, submission.FormID)
	if err != nil || form.CoachID != coachID {
		return nil, ErrSubmissionNotFound
	}

	if err := s.submissionRepo.Update(ctx, submissionID, update); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return s.submissionRepo.GetByID(ctx, submissionID)
}

// ValidateResponses checks a responses map against the form's field list:
// unknown field ids are rejected, required fields must be present and
// non-empty, and select/radio answers must be one of the declared options.
func ValidateResponses(form *domain.Form, responses map[string]string) error {
	for fieldID, value := range responses {
		field := form.FieldByID(fieldID)
		if field == nil {
			return fmt.Errorf("%w: unknown field %q", ErrInvalidResponses, fieldID)
		}
		if field.Type == domain.FieldSelect || field.Type == domain.FieldRadio {
			if value != "" && !containsString(field.Options, value) {
				return fmt.Errorf("%w: %q is not an option for field %q", ErrInvalidResponses, value, field.Label)
			}
		}
	}
	for _, field := range form.Fields {
		if field.Required && responses[field.ID] == "" {
			return fmt.Errorf("%w: required field %q missing", ErrInvalidResponses, field.Label)
		}
	}
	return nil
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
