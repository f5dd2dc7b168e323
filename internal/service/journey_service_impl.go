package service

import (
	"context"

	"github.com/alexanderramin/fulfill/internal/domain"
	"github.com/alexanderramin/fulfill/internal/repository"
)

// OutstandingPerSection is how many open items Progress lists per section.
const OutstandingPerSection = 3

type journeyService struct {
	gateway *repository.Gateway
	uow     repository.UnitOfWork
}

func NewJourneyService(gateway *repository.Gateway, uow repository.UnitOfWork) JourneyService {
	return &journeyService{gateway: gateway, uow: uow}
}

func (s *journeyService) Get(ctx context.Context, clientID string) (domain.WealthJourney, error) {
	clients, i, err := findClient(ctx, s.gateway, clientID)
	if err != nil {
		return nil, err
	}
	return clients[i].WealthJourney, nil
}

func (s *journeyService) Toggle(ctx context.Context, clientID string, key domain.SectionKey, itemID string) (domain.WealthJourney, error) {
	c, err := mutateClient(ctx, s.uow, clientID, func(_ context.Context, _ repository.Tx, c domain.Client) (domain.Client, error) {
		j, err := domain.ToggleItem(c.WealthJourney, key, itemID)
		if err != nil {
			return c, err
		}
		return domain.SetJourney(c, j), nil
	})
	if err != nil {
		return nil, err
	}
	return c.WealthJourney, nil
}

func (s *journeyService) Progress(ctx context.Context, clientID string) ([]domain.SectionProgress, error) {
	j, err := s.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return j.Progress(OutstandingPerSection), nil
}
