package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/fulfill/internal/domain"
	"github.com/alexanderramin/fulfill/internal/repository"
	"github.com/alexanderramin/fulfill/internal/testutil"
)

// backends runs fn once per storage backend.
func backends(t *testing.T, fn func(t *testing.T, b *repository.Backend)) {
	t.Run("sqlite", func(t *testing.T) { fn(t, testutil.NewTestBackend(t)) })
	t.Run("redis", func(t *testing.T) { fn(t, testutil.NewRedisTestBackend(t)) })
}

func TestGateway_LoadMissingIsEmpty(t *testing.T) {
	backends(t, func(t *testing.T, b *repository.Backend) {
		ctx := context.Background()

		clients, err := b.Gateway.LoadClients(ctx)
		require.NoError(t, err)
		assert.NotNil(t, clients)
		assert.Empty(t, clients)

		tasks, err := b.Gateway.LoadTasks(ctx)
		require.NoError(t, err)
		assert.Empty(t, tasks)

		users, err := b.Gateway.LoadUsers(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}

func TestGateway_ClientsRoundTripInOrder(t *testing.T) {
	backends(t, func(t *testing.T, b *repository.Backend) {
		ctx := context.Background()
		a := testutil.NewTestClient("Amy Lin", testutil.WithStarterJourney(), testutil.WithPhone("555-0101"))
		c := testutil.NewTestClient("Doe, Jane",
			testutil.WithFamilyMembers(3),
			testutil.WithNotes(testutil.NewTestNote("Call back", testutil.WithNoteDueDate("2025-07-01"))),
			testutil.WithAttachments(domain.Attachment{ID: "att1", Name: "w2.pdf", BlobKey: "k1", Size: 10}),
		)

		require.NoError(t, b.Gateway.SaveClients(ctx, []domain.Client{a, c}))

		got, err := b.Gateway.LoadClients(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, a.ID, got[0].ID)
		assert.Equal(t, c.ID, got[1].ID)
		assert.Equal(t, a.ClientFields, got[0].ClientFields)
		assert.Equal(t, a.WealthJourney, got[0].WealthJourney)
		assert.Empty(t, got[0].Attachments)
		assert.Equal(t, c.Attachments, got[1].Attachments)
		require.Len(t, got[1].Notes, 1)
		assert.Equal(t, "Call back", got[1].Notes[0].Content)
		assert.True(t, c.Notes[0].CreatedAt.Equal(got[1].Notes[0].CreatedAt))
	})
}

func TestGateway_SaveReplacesWholeCollection(t *testing.T) {
	backends(t, func(t *testing.T, b *repository.Backend) {
		ctx := context.Background()
		require.NoError(t, b.Gateway.SaveTasks(ctx, []domain.Task{
			testutil.NewTestTask("c1", "one"), testutil.NewTestTask("c1", "two"),
		}))
		require.NoError(t, b.Gateway.SaveTasks(ctx, []domain.Task{testutil.NewTestTask("c1", "three")}))

		tasks, err := b.Gateway.LoadTasks(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "three", tasks[0].Title)

		require.NoError(t, b.Gateway.SaveTasks(ctx, nil))
		tasks, err = b.Gateway.LoadTasks(ctx)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})
}

func TestGateway_Users(t *testing.T) {
	backends(t, func(t *testing.T, b *repository.Backend) {
		ctx := context.Background()
		users := []domain.User{{ID: "u1", Username: "advisor"}}
		require.NoError(t, b.Gateway.SaveUsers(ctx, users))

		got, err := b.Gateway.LoadUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, users, got)
	})
}

func TestGateway_UnknownCollection(t *testing.T) {
	g := repository.NewGateway(testutil.MemoryKV{})
	ctx := context.Background()

	var out []string
	err := g.Load(ctx, repository.Collection("invoices"), &out)
	assert.ErrorIs(t, err, repository.ErrUnknownCollection)

	err = g.Save(ctx, repository.Collection("invoices"), []string{})
	assert.ErrorIs(t, err, repository.ErrUnknownCollection)
}

func TestGateway_CorruptValue(t *testing.T) {
	kv := testutil.MemoryKV{"clients": "{not json", "tasks": `{"id":"1"}`}
	g := repository.NewGateway(kv)
	ctx := context.Background()

	_, err := g.LoadClients(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrStorageCorrupt)

	var corrupt *repository.StorageCorruptError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, repository.CollectionClients, corrupt.Collection)

	_, err = g.LoadTasks(ctx)
	assert.ErrorIs(t, err, repository.ErrStorageCorrupt, "an object where an array belongs is corrupt")

	assert.Equal(t, "{not json", kv["clients"], "corrupt data is left in place")
}

func TestGateway_NormalizesLegacyClients(t *testing.T) {
	kv := testutil.MemoryKV{"clients": `[{"id":"1","name":"A","email":"a@b.c",
		"wealthJourney":{"taxReturn2024":{"items":[{"id":"1","description":"x","completed":false}]}},
		"notes":[{"id":"n","content":"c","createdAt":"2024-01-02T03:04:05Z","dueDate":null,"completed":false,"status":"Completed"}]}]`}
	g := repository.NewGateway(kv)

	clients, err := g.LoadClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 1)
	c := clients[0]
	assert.Len(t, c.WealthJourney, 4)
	assert.Len(t, c.WealthJourney[domain.SectionTaxReturn].Items, 1)
	assert.NotNil(t, c.Attachments)
	assert.True(t, c.Notes[0].Completed, "completed follows status")
}

func TestGateway_PropagatesStorageErrors(t *testing.T) {
	boom := errors.New("disk gone")
	g := repository.NewGateway(&testutil.FailingKV{KV: testutil.MemoryKV{}, GetErr: boom, SetErr: boom})
	ctx := context.Background()

	_, err := g.LoadClients(ctx)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, g.SaveClients(ctx, nil), boom)
}
