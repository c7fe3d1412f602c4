package service

import (
	"context"
	"testing"

	"coachdesk/coaching-app/internal/domain"
	"coachdesk/coaching-app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newFormServiceForTest() (FormService, *fakeFormRepo, *fakeSubmissionRepo) {
	formRepo := newFakeFormRepo()
	submissionRepo := newFakeSubmissionRepo()
	return NewFormService(formRepo, submissionRepo), formRepo, submissionRepo
}

func createIntakeForm(t *testing.T, svc FormService, coachID primitive.ObjectID) *domain.Form {
	t.Helper()
	form, err := svc.CreateForm(context.Background(), coachID, CreateFormInput{
		Title: "Coaching application",
		Fields: []FormFieldInput{
			{Type: domain.FieldText, Label: "Name", Required: true},
			{Type: domain.FieldSelect, Label: "Goal", Required: true, Options: []string{"fat loss", "muscle gain"}},
			{Type: domain.FieldTextarea, Label: "Anything else?"},
		},
	})
	require.NoError(t, err)
	return form
}

func TestCreateFormGeneratesFieldIDsAndActivates(t *testing.T) {
	svc, _, _ := newFormServiceForTest()
	form := createIntakeForm(t, svc, primitive.NewObjectID())

	assert.True(t, form.IsActive)
	require.Len(t, form.Fields, 3)
	seen := make(map[string]bool)
	for _, f := range form.Fields {
		assert.NotEmpty(t, f.ID)
		assert.False(t, seen[f.ID], "field ids must be unique")
		seen[f.ID] = true
	}
}

func TestCreateFormRequiresOptionsForSelect(t *testing.T) {
	svc, _, _ := newFormServiceForTest()

	_, err := svc.CreateForm(context.Background(), primitive.NewObjectID(), CreateFormInput{
		Title:  "Bad form",
		Fields: []FormFieldInput{{Type: domain.FieldSelect, Label: "Goal"}},
	})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestSubmitFormHappyPath(t *testing.T) {
	svc, _, _ := newFormServiceForTest()
	coachID := primitive.NewObjectID()
	form := createIntakeForm(t, svc, coachID)

	submission, err := svc.SubmitForm(context.Background(), form.ID, SubmitFormInput{
		Responses: map[string]string{
			form.Fields[0].ID: "Jamie",
			form.Fields[1].ID: "fat loss",
		},
		SubmitterEmail: "jamie@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SubmissionNew, submission.Status)
	assert.False(t, submission.SubmittedAt.IsZero())

	submissions, err := svc.GetSubmissions(context.Background(), coachID, form.ID)
	require.NoError(t, err)
	require.Len(t, submissions, 1)
}

func TestSubmitFormValidatesResponses(t *testing.T) {
	svc, _, submissionRepo := newFormServiceForTest()
	form := createIntakeForm(t, svc, primitive.NewObjectID())

	cases := []struct {
		name      string
		responses map[string]string
	}{
		{"unknown field id", map[string]string{
			form.Fields[0].ID: "Jamie",
			form.Fields[1].ID: "fat loss",
			"bogus-field":     "x",
		}},
		{"missing required field", map[string]string{
			form.Fields[1].ID: "fat loss",
		}},
		{"answer outside options", map[string]string{
			form.Fields[0].ID: "Jamie",
			form.Fields[1].ID: "get shredded",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SubmitForm(context.Background(), form.ID, SubmitFormInput{Responses: tc.responses})
			assert.ErrorIs(t, err, ErrInvalidResponses)
		})
	}

	// No rejected submission left a record behind.
	assert.Empty(t, submissionRepo.submissions)
}

func TestSubmitFormInactiveRejectedWithoutRecord(t *testing.T) {
	svc, formRepo, submissionRepo := newFormServiceForTest()
	form := createIntakeForm(t, svc, primitive.NewObjectID())
	formRepo.setActive(form.ID, false)

	_, err := svc.SubmitForm(context.Background(), form.ID, SubmitFormInput{
		Responses: map[string]string{
			form.Fields[0].ID: "Jamie",
			form.Fields[1].ID: "fat loss",
		},
	})
	assert.ErrorIs(t, err, ErrFormInactive)
	assert.Empty(t, submissionRepo.submissions)

	// The public read hides it the same way.
	_, err = svc.GetPublicForm(context.Background(), form.ID)
	assert.ErrorIs(t, err, ErrFormInactive)
}

func TestGetSubmissionsNewestFirstAndOwnerScoped(t *testing.T) {
	svc, _, _ := newFormServiceForTest()
	coachID := primitive.NewObjectID()
	intruder := primitive.NewObjectID()
	form := createIntakeForm(t, svc, coachID)

	for _, name := range []string{"first", "second", "third"} {
		_, err := svc.SubmitForm(context.Background(), form.ID, SubmitFormInput{
			Responses: map[string]string{
				form.Fields[0].ID: name,
				form.Fields[1].ID: "fat loss",
			},
		})
		require.NoError(t, err)
	}

	submissions, err := svc.GetSubmissions(context.Background(), coachID, form.ID)
	require.NoError(t, err)
	require.Len(t, submissions, 3)
	assert.Equal(t, "third", submissions[0].Responses[form.Fields[0].ID])
	assert.Equal(t, "first", submissions[2].Responses[form.Fields[0].ID])

	_, err = svc.GetSubmissions(context.Background(), intruder, form.ID)
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestUpdateSubmissionChecksParentFormOwnership(t *testing.T) {
	svc, _, _ := newFormServiceForTest()
	coachID := primitive.NewObjectID()
	intruder := primitive.NewObjectID()
	form := createIntakeForm(t, svc, coachID)

	submission, err := svc.SubmitForm(context.Background(), form.ID, SubmitFormInput{
		Responses: map[string]string{
			form.Fields[0].ID: "Jamie",
			form.Fields[1].ID: "muscle gain",
		},
	})
	require.NoError(t, err)

	contacted := domain.SubmissionContacted
	notes := "called on Monday"

	_, err = svc.UpdateSubmission(context.Background(), intruder, submission.ID, repository.SubmissionUpdate{Status: &contacted})
	assert.ErrorIs(t, err, ErrSubmissionNotFound)

	updated, err := svc.UpdateSubmission(context.Background(), coachID, submission.ID, repository.SubmissionUpdate{
		Status: &contacted,
		Notes:  &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionContacted, updated.Status)
	assert.Equal(t, notes, updated.Notes)
}
