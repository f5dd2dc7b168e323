package service

import (
	"context"

	"github.com/alexanderramin/fulfill/internal/domain"
	"github.com/alexanderramin/fulfill/internal/repository"
)

type taskService struct {
	gateway *repository.Gateway
	uow     repository.UnitOfWork
}

func NewTaskService(gateway *repository.Gateway, uow repository.UnitOfWork) TaskService {
	return &taskService{gateway: gateway, uow: uow}
}

// Create requires the referenced client to exist at creation time.
func (s *taskService) Create(ctx context.Context, in domain.TaskInput) (*domain.Task, error) {
	var task domain.Task
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		probe, err := domain.NewTask("", in)
		if err != nil {
			return err
		}
		if _, _, err := findClient(ctx, tx.Gateway, probe.ClientID); err != nil {
			return err
		}
		tasks, err := tx.Gateway.LoadTasks(ctx)
		if err != nil {
			return err
		}
		probe.ID = domain.UniqueTimestampID(nowUTC(), idTaken(tasks, func(t domain.Task) string { return t.ID }))
		task = probe
		return tx.Gateway.SaveTasks(ctx, append(tasks, task))
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *taskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	tasks, err := s.gateway.LoadTasks(ctx)
	if err != nil {
		return nil, err
	}
	i := domain.FindTask(tasks, id)
	if i < 0 {
		return nil, &domain.NotFoundError{Kind: "task", ID: id}
	}
	return &tasks[i], nil
}

// List returns matching tasks in stored order.
func (s *taskService) List(ctx context.Context, filter TaskFilter) ([]domain.Task, error) {
	tasks, err := s.gateway.LoadTasks(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.ClientID != "" && t.ClientID != filter.ClientID {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *taskService) SetStatus(ctx context.Context, id string, status domain.Status) (*domain.Task, error) {
	if !domain.ValidStatuses[status] {
		return nil, &domain.ValidationError{Field: "status", Message: "unknown status " + string(status)}
	}
	return s.mutate(ctx, id, func(t domain.Task) (domain.Task, error) {
		t.Status = status
		return t, nil
	})
}

// Update replaces every editable field of the task. An empty ClientID keeps
// the current client.
func (s *taskService) Update(ctx context.Context, id string, in domain.TaskInput) (*domain.Task, error) {
	return s.mutateTx(ctx, id, func(ctx context.Context, tx repository.Tx, t domain.Task) (domain.Task, error) {
		if in.ClientID == "" {
			in.ClientID = t.ClientID
		}
		if in.ClientID != t.ClientID {
			if _, _, err := findClient(ctx, tx.Gateway, in.ClientID); err != nil {
				return t, err
			}
		}
		return domain.NewTask(t.ID, in)
	})
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		tasks, err := tx.Gateway.LoadTasks(ctx)
		if err != nil {
			return err
		}
		i := domain.FindTask(tasks, id)
		if i < 0 {
			return &domain.NotFoundError{Kind: "task", ID: id}
		}
		return tx.Gateway.SaveTasks(ctx, append(tasks[:i], tasks[i+1:]...))
	})
}

func (s *taskService) mutate(ctx context.Context, id string, fn func(domain.Task) (domain.Task, error)) (*domain.Task, error) {
	return s.mutateTx(ctx, id, func(_ context.Context, _ repository.Tx, t domain.Task) (domain.Task, error) {
		return fn(t)
	})
}

func (s *taskService) mutateTx(ctx context.Context, id string, fn func(context.Context, repository.Tx, domain.Task) (domain.Task, error)) (*domain.Task, error) {
	var out domain.Task
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		tasks, err := tx.Gateway.LoadTasks(ctx)
		if err != nil {
			return err
		}
		i := domain.FindTask(tasks, id)
		if i < 0 {
			return &domain.NotFoundError{Kind: "task", ID: id}
		}
		updated, err := fn(ctx, tx, tasks[i])
		if err != nil {
			return err
		}
		tasks[i] = updated
		out = updated
		return tx.Gateway.SaveTasks(ctx, tasks)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
