package service

import (
	"context"
	"time"

	"github.com/alexanderramin/fulfill/internal/domain"
	"github.com/alexanderramin/fulfill/internal/repository"
)

type dashboardService struct {
	gateway *repository.Gateway
	now     func() time.Time
}

// NewDashboardService returns a DashboardService. now defaults to the wall
// clock and decides which due dates are overdue.
func NewDashboardService(gateway *repository.Gateway, now func() time.Time) DashboardService {
	if now == nil {
		now = time.Now
	}
	return &dashboardService{gateway: gateway, now: now}
}

func (s *dashboardService) load(ctx context.Context) ([]domain.Client, []domain.Task, error) {
	clients, err := s.gateway.LoadClients(ctx)
	if err != nil {
		return nil, nil, err
	}
	tasks, err := s.gateway.LoadTasks(ctx)
	if err != nil {
		return nil, nil, err
	}
	return clients, tasks, nil
}

func (s *dashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	clients, tasks, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()

	sum := &DashboardSummary{Clients: len(clients)}
	for _, t := range tasks {
		countStatus(&sum.Tasks, t.Status)
		if t.Status != domain.StatusCompleted && domain.IsOverdue(t.DueDate, now) {
			sum.OverdueTasks = append(sum.OverdueTasks, t)
		}
	}
	for _, c := range clients {
		for _, n := range c.Notes {
			countStatus(&sum.Notes, n.Status)
			if n.Completed || n.DueDate == nil || !domain.IsOverdue(*n.DueDate, now) {
				continue
			}
			sum.OverdueNotes = append(sum.OverdueNotes, OverdueNote{ClientID: c.ID, ClientName: c.Name, Note: n})
		}
	}
	return sum, nil
}

func (s *dashboardService) Calendar(ctx context.Context, from, to time.Time) ([]domain.CalendarEvent, error) {
	clients, tasks, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.BuildCalendar(clients, tasks, from, to), nil
}
