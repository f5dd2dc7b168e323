package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/fulfill/internal/domain"
	"github.com/alexanderramin/fulfill/internal/repository"
)

type clientService struct {
	gateway  *repository.Gateway
	uow      repository.UnitOfWork
	starter  domain.StarterSet
	observer UseCaseObserver
}

// NewClientService returns a ClientService that gives manually created
// clients the journey of the named starter set.
func NewClientService(
	gateway *repository.Gateway,
	uow repository.UnitOfWork,
	starter domain.StarterSet,
	observers ...UseCaseObserver,
) ClientService {
	return &clientService{
		gateway:  gateway,
		uow:      uow,
		starter:  starter,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *clientService) Create(ctx context.Context, fields domain.ClientFields) (client *domain.Client, err error) {
	defer observe(ctx, s.observer, "create-client", map[string]any{"starter_set": string(s.starter)}, &err)()

	if err = fields.Validate(); err != nil {
		return nil, err
	}
	var journey domain.WealthJourney
	journey, err = domain.StarterJourney(s.starter)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		clients, err := tx.Gateway.LoadClients(ctx)
		if err != nil {
			return err
		}
		id := domain.UniqueTimestampID(nowUTC(), idTaken(clients, func(c domain.Client) string { return c.ID }))
		c, err := domain.NewClient(id, fields, journey)
		if err != nil {
			return err
		}
		if err := tx.Gateway.SaveClients(ctx, append(clients, c)); err != nil {
			return fmt.Errorf("saving new client: %w", err)
		}
		client = &c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	clients, i, err := findClient(ctx, s.gateway, id)
	if err != nil {
		return nil, err
	}
	return &clients[i], nil
}

func (s *clientService) List(ctx context.Context, opts ListOptions) ([]domain.Client, error) {
	clients, err := s.gateway.LoadClients(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Client, 0, len(clients))
	for _, c := range clients {
		if c.MatchesSearch(opts.Search) {
			out = append(out, c)
		}
	}
	sortClientsByName(out, opts.Descending)
	return out, nil
}

func (s *clientService) Update(ctx context.Context, id string, edit domain.ClientEdit) (*domain.Client, error) {
	c, err := mutateClient(ctx, s.uow, id, func(_ context.Context, _ repository.Tx, c domain.Client) (domain.Client, error) {
		return domain.UpdateClient(c, edit)
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete removes the client, every task that refers to it and the stored
// bytes of its attachments in one unit of work.
func (s *clientService) Delete(ctx context.Context, id string) (res *DeleteResult, err error) {
	fields := map[string]any{"client_id": id}
	defer observe(ctx, s.observer, "delete-client", fields, &err)()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		clients, i, err := findClient(ctx, tx.Gateway, id)
		if err != nil {
			return err
		}
		tasks, err := tx.Gateway.LoadTasks(ctx)
		if err != nil {
			return err
		}

		removed := clients[i]
		r := &DeleteResult{Client: removed}

		kept := tasks[:0]
		for _, t := range tasks {
			if t.ClientID == id {
				r.TasksRemoved++
				continue
			}
			kept = append(kept, t)
		}
		for _, a := range removed.Attachments {
			if !a.Stored() {
				continue
			}
			if err := tx.Blobs.Delete(ctx, a.BlobKey); err != nil {
				return err
			}
			r.BlobsRemoved++
		}

		clients = append(clients[:i], clients[i+1:]...)
		if err := tx.Gateway.SaveClients(ctx, clients); err != nil {
			return err
		}
		if err := tx.Gateway.SaveTasks(ctx, kept); err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["tasks_removed"] = res.TasksRemoved
	fields["blobs_removed"] = res.BlobsRemoved
	return res, nil
}

func (s *clientService) AddNote(ctx context.Context, clientID string, in domain.NoteInput) (*domain.Note, error) {
	var note domain.Note
	_, err := mutateClient(ctx, s.uow, clientID, func(_ context.Context, _ repository.Tx, c domain.Client) (domain.Client, error) {
		id := domain.UniqueTimestampID(nowUTC(), idTaken(c.Notes, func(n domain.Note) string { return n.ID }))
		n, err := domain.NewNote(id, in, nowUTC())
		if err != nil {
			return c, err
		}
		note = n
		return domain.AddNote(c, n), nil
	})
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *clientService) EditNote(ctx context.Context, clientID, noteID string, in domain.NoteInput) (*domain.Note, error) {
	c, err := mutateClient(ctx, s.uow, clientID, func(_ context.Context, _ repository.Tx, c domain.Client) (domain.Client, error) {
		return domain.EditNote(c, noteID, in)
	})
	if err != nil {
		return nil, err
	}
	n, _ := c.Note(noteID)
	return &n, nil
}

func (s *clientService) DeleteNote(ctx context.Context, clientID, noteID string) error {
	_, err := mutateClient(ctx, s.uow, clientID, func(_ context.Context, _ repository.Tx, c domain.Client) (domain.Client, error) {
		return domain.DeleteNote(c, noteID)
	})
	return err
}
