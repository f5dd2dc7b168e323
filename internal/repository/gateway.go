package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/fulfill/internal/domain"
)

// Gateway reads and writes whole collections as JSON arrays over a KV.
type Gateway struct {
	kv KV
}

func NewGateway(kv KV) *Gateway {
	return &Gateway{kv: kv}
}

// Load decodes collection c into out, which must point to a slice. A missing
// key leaves out as an empty slice.
func (g *Gateway) Load(ctx context.Context, c Collection, out any) error {
	if !c.Valid() {
		return fmt.Errorf("loading %q: %w", string(c), ErrUnknownCollection)
	}
	raw, found, err := g.kv.Get(ctx, string(c))
	if err != nil {
		return fmt.Errorf("loading %s: %w", c, err)
	}
	if !found {
		raw = "[]"
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return &StorageCorruptError{Collection: c, Err: err}
	}
	return nil
}

// Save replaces collection c with the JSON encoding of v.
func (g *Gateway) Save(ctx context.Context, c Collection, v any) error {
	if !c.Valid() {
		return fmt.Errorf("saving %q: %w", string(c), ErrUnknownCollection)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c, err)
	}
	if err := g.kv.Set(ctx, string(c), string(data)); err != nil {
		return fmt.Errorf("saving %s: %w", c, err)
	}
	return nil
}

// LoadClients returns the stored clients, normalized.
func (g *Gateway) LoadClients(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	if err := g.Load(ctx, CollectionClients, &clients); err != nil {
		return nil, err
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	for i := range clients {
		clients[i] = clients[i].Normalize()
	}
	return clients, nil
}

func (g *Gateway) SaveClients(ctx context.Context, clients []domain.Client) error {
	if clients == nil {
		clients = []domain.Client{}
	}
	return g.Save(ctx, CollectionClients, clients)
}

func (g *Gateway) LoadTasks(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := g.Load(ctx, CollectionTasks, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

func (g *Gateway) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return g.Save(ctx, CollectionTasks, tasks)
}

func (g *Gateway) LoadUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := g.Load(ctx, CollectionUsers, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (g *Gateway) SaveUsers(ctx context.Context, users []domain.User) error {
	if users == nil {
		users = []domain.User{}
	}
	return g.Save(ctx, CollectionUsers, users)
}
