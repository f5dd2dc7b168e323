package repository

import "context"

// Collection names one top-level persisted list.
type Collection string

const (
	CollectionClients Collection = "clients"
	CollectionTasks   Collection = "tasks"
	CollectionUsers   Collection = "users"
)

// Collections lists every collection the gateway accepts.
var Collections = []Collection{CollectionClients, CollectionTasks, CollectionUsers}

// Valid reports whether c is one of Collections.
func (c Collection) Valid() bool {
	switch c {
	case CollectionClients, CollectionTasks, CollectionUsers:
		return true
	}
	return false
}

// KV is a string key-value store. Get reports found=false for a missing key.
type KV interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
