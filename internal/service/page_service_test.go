package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestSavePageCreatesThenPatches(t *testing.T) {
	svc := NewPageService(newFakePageRepo())
	coachID := primitive.NewObjectID()

	page, err := svc.SavePage(context.Background(), coachID, PublicPageInput{
		Slug:  strPtr("jamie-coaching"),
		Title: strPtr("Jamie Coaching"),
	})
	require.NoError(t, err)
	assert.Equal(t, "jamie-coaching", page.Slug)
	assert.True(t, page.IsActive)

	// Second save patches the same page; untouched fields survive.
	patched, err := svc.SavePage(context.Background(), coachID, PublicPageInput{
		AboutText: strPtr("10 years of coaching experience."),
	})
	require.NoError(t, err)
	assert.Equal(t, page.ID, patched.ID)
	assert.Equal(t, "Jamie Coaching", patched.Title)
	assert.Equal(t, "10 years of coaching experience.", patched.AboutText)
}

func TestSavePageNormalizesSlug(t *testing.T) {
	svc := NewPageService(newFakePageRepo())
	coachID := primitive.NewObjectID()

	page, err := svc.SavePage(context.Background(), coachID, PublicPageInput{
		Slug: strPtr("Jamie's Coaching!"),
	})
	require.NoError(t, err)
	assert.Equal(t, "jamies-coaching", page.Slug)

	found, err := svc.GetPageBySlug(context.Background(), "Jamie's Coaching!")
	require.NoError(t, err)
	assert.Equal(t, page.ID, found.ID)
}

func TestSavePageSlugConflict(t *testing.T) {
	svc := NewPageService(newFakePageRepo())

	_, err := svc.SavePage(context.Background(), primitive.NewObjectID(), PublicPageInput{Slug: strPtr("coach")})
	require.NoError(t, err)

	_, err = svc.SavePage(context.Background(), primitive.NewObjectID(), PublicPageInput{Slug: strPtr("coach")})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestSavePageRequiresSlug(t *testing.T) {
	svc := NewPageService(newFakePageRepo())

	_, err := svc.SavePage(context.Background(), primitive.NewObjectID(), PublicPageInput{
		Title: strPtr("No slug yet"),
	})
	assert.ErrorIs(t, err, ErrSlugRequired)
}

func TestGetPageBySlugHidesInactive(t *testing.T) {
	svc := NewPageService(newFakePageRepo())
	coachID := primitive.NewObjectID()

	_, err := svc.SavePage(context.Background(), coachID, PublicPageInput{
		Slug:     strPtr("hidden-coach"),
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)

	_, err = svc.GetPageBySlug(context.Background(), "hidden-coach")
	assert.ErrorIs(t, err, ErrPageNotFound)

	// The owner still sees their own page.
	page, err := svc.GetMyPage(context.Background(), coachID)
	require.NoError(t, err)
	assert.False(t, page.IsActive)
}
