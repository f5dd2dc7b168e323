package testutil

import (
	"context"

	"github.com/alexanderramin/fulfill/internal/repository"
)

// FailingKV wraps a KV and returns GetErr from every Get and SetErr from
// every Set when they are non-nil.
type FailingKV struct {
	repository.KV
	GetErr error
	SetErr error
}

func (f *FailingKV) Get(ctx context.Context, key string) (string, bool, error) {
	if f.GetErr != nil {
		return "", false, f.GetErr
	}
	return f.KV.Get(ctx, key)
}

func (f *FailingKV) Set(ctx context.Context, key, value string) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	return f.KV.Set(ctx, key, value)
}

// MemoryKV is a map-backed KV.
type MemoryKV map[string]string

func (m MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m MemoryKV) Set(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}
