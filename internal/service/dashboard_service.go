package service

import (
	"context"
	"errors"

	"coachdesk/coaching-app/internal/domain"
	"coachdesk/coaching-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// recentClientLimit caps the recent-clients list on the dashboard.
const recentClientLimit = 5

// DashboardStats is the coach's at-a-glance business summary.
type DashboardStats struct {
	TotalClients    int             `json:"totalClients"`
	ActiveClients   int             `json:"activeClients"`
	PausedClients   int             `json:"pausedClients"`
	InactiveClients int             `json:"inactiveClients"`
	PaidClients     int             `json:"paidClients"`
	OverdueClients  int             `json:"overdueClients"`
	MonthlyRevenue  float64         `json:"monthlyRevenue"`
	RecentClients   []domain.Client `json:"recentClients"`
}

// DashboardService aggregates a coach's client roster into summary figures.
type DashboardService interface {
	GetStats(ctx context.Context, coachID primitive.ObjectID) (*DashboardStats, error)
}

type dashboardService struct {
	clientRepo repository.ClientRepository
}

// NewDashboardService creates a new instance of dashboardService.
func NewDashboardService(clientRepo repository.ClientRepository) DashboardService {
	return &dashboardService{clientRepo: clientRepo}
}

func (s *dashboardService) GetStats(ctx context.Context, coachID primitive.ObjectID) (*DashboardStats, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID cannot be nil")
	}
	// Clients come back newest start date first.
	clients, err := s.clientRepo.GetByCoachID(ctx, coachID)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalClients:   len(clients),
		MonthlyRevenue: MonthlyRevenue(clients),
		RecentClients:  RecentClients(clients, recentClientLimit),
	}
	for i := range clients {
		switch clients[i].Status {
		case domain.ClientActive:
			stats.ActiveClients++
		case domain.ClientPaused:
			stats.PausedClients++
		case domain.ClientInactive:
			stats.InactiveClients++
		}
		switch clients[i].PaymentStatus {
		case domain.PaymentPaid:
			stats.PaidClients++
		case domain.PaymentOverdue:
			stats.OverdueClients++
		}
	}
	return stats, nil
}

// MonthlyRevenue sums the monthly rate of clients whose payment status is
// paid. Paid clients without a rate contribute zero.
func MonthlyRevenue(clients []domain.Client) float64 {
	var total float64
	for i := range clients {
		if !clients[i].IsPaid() {
			continue
		}
		if clients[i].MonthlyRate != nil {
			total += *clients[i].MonthlyRate
		}
	}
	return total
}

// RecentClients returns at most limit clients from a list already sorted
// newest start date first.
func RecentClients(clients []domain.Client, limit int) []domain.Client {
	if limit < 0 {
		limit = 0
	}
	if len(clients) < limit {
		limit = len(clients)
	}
	recent := make([]domain.Client, limit)
	copy(recent, clients[:limit])
	return recent
}
