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

func newClientServiceForTest() (ClientService, *fakeClientRepo, *fakeProgressRepo, *fakeSplitRepo, *fakeMealPlanRepo, *fakePricingRepo) {
	clientRepo := newFakeClientRepo()
	progressRepo := newFakeProgressRepo()
	splitRepo := newFakeSplitRepo()
	mealPlanRepo := newFakeMealPlanRepo()
	pricingRepo := newFakePricingRepo()
	svc := NewClientService(clientRepo, progressRepo, splitRepo, mealPlanRepo, pricingRepo)
	return svc, clientRepo, progressRepo, splitRepo, mealPlanRepo, pricingRepo
}

func TestCreateClientDefaults(t *testing.T) {
	svc, _, _, _, _, _ := newClientServiceForTest()
	coachID := primitive.NewObjectID()

	client, err := svc.CreateClient(context.Background(), coachID, CreateClientInput{
		Name:  "Jamie",
		Email: "jamie@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ClientActive, client.Status)
	assert.Equal(t, domain.PaymentPending, client.PaymentStatus)
	assert.False(t, client.StartDate.IsZero())
	assert.NotNil(t, client.Goals)
}

func TestGetClientsIsolatedPerCoach(t *testing.T) {
	svc, _, _, _, _, _ := newClientServiceForTest()
	coachA := primitive.NewObjectID()
	coachB := primitive.NewObjectID()

	_, err := svc.CreateClient(context.Background(), coachA, CreateClientInput{Name: "A1", Email: "a1@example.com"})
	require.NoError(t, err)
	_, err = svc.CreateClient(context.Background(), coachB, CreateClientInput{Name: "B1", Email: "b1@example.com"})
	require.NoError(t, err)
	_, err = svc.CreateClient(context.Background(), coachA, CreateClientInput{Name: "A2", Email: "a2@example.com"})
	require.NoError(t, err)

	clientsA, err := svc.GetClients(context.Background(), coachA)
	require.NoError(t, err)
	require.Len(t, clientsA, 2)
	for _, c := range clientsA {
		assert.Equal(t, coachA, c.CoachID)
	}

	clientsB, err := svc.GetClients(context.Background(), coachB)
	require.NoError(t, err)
	require.Len(t, clientsB, 1)
	assert.Equal(t, "B1", clientsB[0].Name)
}

func TestGetClientForeignCoachIsNotFound(t *testing.T) {
	svc, _, _, _, _, _ := newClientServiceForTest()
	owner := primitive.NewObjectID()
	intruder := primitive.NewObjectID()

	client, err := svc.CreateClient(context.Background(), owner, CreateClientInput{Name: "Jamie", Email: "jamie@example.com"})
	require.NoError(t, err)

	// A foreign coach gets the identical error as a nonexistent id.
	_, err = svc.GetClient(context.Background(), intruder, client.ID)
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = svc.GetClient(context.Background(), owner, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestUpdateClientPartial(t *testing.T) {
	svc, _, _, _, _, _ := newClientServiceForTest()
	coachID := primitive.NewObjectID()

	client, err := svc.CreateClient(context.Background(), coachID, CreateClientInput{
		Name:  "Jamie",
		Email: "jamie@example.com",
		Notes: "initial notes",
	})
	require.NoError(t, err)

	paid := domain.PaymentPaid
	updated, err := svc.UpdateClient(context.Background(), coachID, client.ID, repository.ClientUpdate{
		PaymentStatus: &paid,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentPaid, updated.PaymentStatus)
	// Untouched fields survive the partial update.
	assert.Equal(t, "initial notes", updated.Notes)
	assert.Equal(t, domain.ClientActive, updated.Status)
}

func TestUpdateClientEmptyPartialIsNoOp(t *testing.T) {
	svc, _, _, _, _, _ := newClientServiceForTest()
	coachID := primitive.NewObjectID()

	client, err := svc.CreateClient(context.Background(), coachID, CreateClientInput{Name: "Jamie", Email: "jamie@example.com"})
	require.NoError(t, err)

	updated, err := svc.UpdateClient(context.Background(), coachID, client.ID, repository.ClientUpdate{})
	require.NoError(t, err)
	assert.Equal(t, client.ID, updated.ID)
	assert.Equal(t, client.Status, updated.Status)
}

func TestUpdateClientForeignCoachFails(t *testing.T) {
	svc, clientRepo, _, _, _, _ := newClientServiceForTest()
	owner := primitive.NewObjectID()
	intruder := primitive.NewObjectID()

	client, err := svc.CreateClient(context.Background(), owner, CreateClientInput{Name: "Jamie", Email: "jamie@example.com"})
	require.NoError(t, err)

	inactive := domain.ClientInactive
	_, err = svc.UpdateClient(context.Background(), intruder, client.ID, repository.ClientUpdate{Status: &inactive})
	assert.ErrorIs(t, err, ErrClientNotFound)

	// The record is untouched.
	stored, err := clientRepo.GetByID(context.Background(), client.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ClientActive, stored.Status)
}

func TestUpdateClientAssignmentOwnershipEnforced(t *testing.T) {
	svc, _, _, splitRepo, mealPlanRepo, pricingRepo := newClientServiceForTest()
	coachID := primitive.NewObjectID()
	otherCoach := primitive.NewObjectID()

	client, err := svc.CreateClient(context.Background(), coachID, CreateClientInput{Name: "Jamie", Email: "jamie@example.com"})
	require.NoError(t, err)

	foreignSplit := &domain.WorkoutSplit{CoachID: otherCoach, Name: "PPL"}
	foreignSplitID, err := splitRepo.Create(context.Background(), foreignSplit)
	require.NoError(t, err)

	_, err = svc.UpdateClient(context.Background(), coachID, client.ID, repository.ClientUpdate{
		CurrentWorkoutSplit: &foreignSplitID,
	})
	assert.ErrorIs(t, err, ErrSplitNotFound)

	foreignPlan := &domain.MealPlan{CoachID: otherCoach, Name: "Cut"}
	foreignPlanID, err := mealPlanRepo.Create(context.Background(), foreignPlan)
	require.NoError(t, err)

	_, err = svc.UpdateClient(context.Background(), coachID, client.ID, repository.ClientUpdate{
		CurrentMealPlan: &foreignPlanID,
	})
	assert.ErrorIs(t, err, ErrMealPlanNotFound)

	// An owned record assigns cleanly.
	ownSplit := &domain.WorkoutSplit{CoachID: coachID, Name: "Upper/Lower"}
	ownSplitID, err := splitRepo.Create(context.Background(), ownSplit)
	require.NoError(t, err)
	ownPricing := &domain.PricingPlan{CoachID: coachID, Name: "Gold", Price: 100}
	ownPricingID, err := pricingRepo.Create(context.Background(), ownPricing)
	require.NoError(t, err)

	updated, err := svc.UpdateClient(context.Background(), coachID, client.ID, repository.ClientUpdate{
		CurrentWorkoutSplit: &ownSplitID,
		CurrentPricingPlan:  &ownPricingID,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.CurrentWorkoutSplit)
	assert.Equal(t, ownSplitID, *updated.CurrentWorkoutSplit)
	require.NotNil(t, updated.CurrentPricingPlan)
	assert.Equal(t, ownPricingID, *updated.CurrentPricingPlan)
}

func TestClientProgressNewestFirstAndOwnerScoped(t *testing.T) {
	svc, _, _, _, _, _ := newClientServiceForTest()
	coachID := primitive.NewObjectID()
	intruder := primitive.NewObjectID()

	client, err := svc.CreateClient(context.Background(), coachID, CreateClientInput{Name: "Jamie", Email: "jamie@example.com"})
	require.NoError(t, err)

	w1, w2 := 82.5, 81.9
	_, err = svc.AddClientProgress(context.Background(), coachID, client.ID, AddProgressInput{Weight: &w1, Notes: "week 1"})
	require.NoError(t, err)
	_, err = svc.AddClientProgress(context.Background(), coachID, client.ID, AddProgressInput{Weight: &w2, Notes: "week 2"})
	require.NoError(t, err)

	entries, err := svc.GetClientProgress(context.Background(), coachID, client.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "week 2", entries[0].Notes)
	assert.Equal(t, "week 1", entries[1].Notes)

	_, err = svc.GetClientProgress(context.Background(), intruder, client.ID)
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = svc.AddClientProgress(context.Background(), intruder, client.ID, AddProgressInput{Notes: "sneaky"})
	assert.ErrorIs(t, err, ErrClientNotFound)
}
