package service

import (
	"context"
	"fmt"
	"testing"

	"coachdesk/coaching-app/internal/domain"
	"coachdesk/coaching-app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func floatPtr(f float64) *float64 { return &f }

func TestMonthlyRevenueCountsOnlyPaidClients(t *testing.T) {
	clients := []domain.Client{
		{PaymentStatus: domain.PaymentPaid, MonthlyRate: floatPtr(100)},
		{PaymentStatus: domain.PaymentPending, MonthlyRate: floatPtr(50)},
		{PaymentStatus: domain.PaymentPaid, MonthlyRate: floatPtr(200)},
		{PaymentStatus: domain.PaymentOverdue, MonthlyRate: floatPtr(75)},
		{PaymentStatus: domain.PaymentPaid}, // paid but no rate set
	}

	assert.InDelta(t, 300, MonthlyRevenue(clients), 1e-9)
}

func TestMonthlyRevenueEmptyRoster(t *testing.T) {
	assert.Zero(t, MonthlyRevenue(nil))
}

func TestRecentClientsCapsAtLimit(t *testing.T) {
	var clients []domain.Client
	for i := 0; i < 8; i++ {
		clients = append(clients, domain.Client{Name: fmt.Sprintf("client-%d", i)})
	}

	recent := RecentClients(clients, 5)
	require.Len(t, recent, 5)
	assert.Equal(t, "client-0", recent[0].Name)

	assert.Len(t, RecentClients(clients[:3], 5), 3)
	assert.Empty(t, RecentClients(nil, 5))
}

func TestDashboardStats(t *testing.T) {
	clientRepo := newFakeClientRepo()
	clientSvc := NewClientService(clientRepo, newFakeProgressRepo(), newFakeSplitRepo(), newFakeMealPlanRepo(), newFakePricingRepo())
	svc := NewDashboardService(clientRepo)
	coachID := primitive.NewObjectID()
	otherCoach := primitive.NewObjectID()

	mkClient := func(coach primitive.ObjectID, name string, payment domain.PaymentStatus, status domain.ClientStatus, rate *float64) {
		c, err := clientSvc.CreateClient(context.Background(), coach, CreateClientInput{
			Name:        name,
			Email:       name + "@example.com",
			MonthlyRate: rate,
		})
		require.NoError(t, err)
		_, err = clientSvc.UpdateClient(context.Background(), coach, c.ID, repository.ClientUpdate{
			PaymentStatus: &payment,
			Status:        &status,
		})
		require.NoError(t, err)
	}

	mkClient(coachID, "ana", domain.PaymentPaid, domain.ClientActive, floatPtr(150))
	mkClient(coachID, "ben", domain.PaymentPending, domain.ClientActive, floatPtr(100))
	mkClient(coachID, "cam", domain.PaymentPaid, domain.ClientPaused, floatPtr(50))
	mkClient(coachID, "dee", domain.PaymentOverdue, domain.ClientInactive, nil)
	mkClient(otherCoach, "zoe", domain.PaymentPaid, domain.ClientActive, floatPtr(999))

	stats, err := svc.GetStats(context.Background(), coachID)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalClients)
	assert.Equal(t, 2, stats.ActiveClients)
	assert.Equal(t, 1, stats.PausedClients)
	assert.Equal(t, 1, stats.InactiveClients)
	assert.Equal(t, 2, stats.PaidClients)
	assert.Equal(t, 1, stats.OverdueClients)
	assert.InDelta(t, 200, stats.MonthlyRevenue, 1e-9)

	// Recent clients are newest first and never include other coaches' clients.
	require.Len(t, stats.RecentClients, 4)
	assert.Equal(t, "dee", stats.RecentClients[0].Name)
	for _, c := range stats.RecentClients {
		assert.Equal(t, coachID, c.CoachID)
	}
}
