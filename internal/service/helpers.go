package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/fulfill/internal/domain"
	"github.com/alexanderramin/fulfill/internal/repository"
)

// findClient loads clients and returns them with the index of id.
func findClient(ctx context.Context, g *repository.Gateway, id string) ([]domain.Client, int, error) {
	clients, err := g.LoadClients(ctx)
	if err != nil {
		return nil, -1, err
	}
	i := domain.FindClient(clients, id)
	if i < 0 {
		return nil, -1, &domain.NotFoundError{Kind: "client", ID: id}
	}
	return clients, i, nil
}

// mutateClient runs the load, mutate, save cycle for one client inside a
// unit of work. fn may also use tx for related writes.
func mutateClient(ctx context.Context, uow repository.UnitOfWork, id string, fn func(ctx context.Context, tx repository.Tx, c domain.Client) (domain.Client, error)) (domain.Client, error) {
	var out domain.Client
	err := uow.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		clients, i, err := findClient(ctx, tx.Gateway, id)
		if err != nil {
			return err
		}
		updated, err := fn(ctx, tx, clients[i])
		if err != nil {
			return err
		}
		clients[i] = updated
		if err := tx.Gateway.SaveClients(ctx, clients); err != nil {
			return err
		}
		out = updated
		return nil
	})
	return out, err
}

func sortClientsByName(clients []domain.Client, descending bool) {
	sort.SliceStable(clients, func(i, j int) bool {
		a, b := strings.ToLower(clients[i].Name), strings.ToLower(clients[j].Name)
		if descending {
			return a > b
		}
		return a < b
	})
}

func countStatus(c *StatusCounts, s domain.Status) {
	switch s {
	case domain.StatusInProgress:
		c.InProgress++
	case domain.StatusCompleted:
		c.Completed++
	default:
		c.NotStarted++
	}
}

func idTaken[T any](items []T, idOf func(T) string) func(string) bool {
	return func(id string) bool {
		for _, it := range items {
			if idOf(it) == id {
				return true
			}
		}
		return false
	}
}

func nowUTC() time.Time { return time.Now().UTC() }
