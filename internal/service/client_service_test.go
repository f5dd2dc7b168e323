package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/fulfill/internal/domain"
)

func TestClientService_CreateRoundTrip(t *testing.T) {
	eachBackend(t, func(t *testing.T, s *services) {
		ctx := context.Background()

		created, err := s.clients.Create(ctx, domain.ClientFields{Name: "Amy Lin", Email: "amy@x.com"})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)

		got, err := s.clients.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, created.ClientFields, got.ClientFields)
		assert.Empty(t, got.Attachments)
		require.Len(t, got.WealthJourney, 4)
		assert.Len(t, got.WealthJourney[domain.SectionTaxReturn].Items, 3)

		e := s.observed.last(t)
		assert.Equal(t, "create-client", e.Name)
		assert.True(t, e.Success)
	})
}

func TestClientService_CreateUniqueIDs(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		c, err := s.clients.Create(ctx, domain.ClientFields{Name: "Same", Email: "s@x.com"})
		require.NoError(t, err)
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestClientService_CreateValidation(t *testing.T) {
	s := setupServices(t)
	_, err := s.clients.Create(context.Background(), domain.ClientFields{Name: "No Email"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	list, err := s.clients.List(context.Background(), ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, list, "nothing persisted")
	assert.False(t, s.observed.last(t).Success)
}

func TestClientService_ExtendedStarterSet(t *testing.T) {
	s := setupServices(t)
	svc := NewClientService(s.backend.Gateway, s.backend.UoW, domain.StarterExtended)

	c, err := svc.Create(context.Background(), domain.ClientFields{Name: "A", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Len(t, c.WealthJourney[domain.SectionTaxReturn].Items, 25)
}

func TestClientService_ListSearchAndSort(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	for _, f := range []domain.ClientFields{
		{Name: "charlie Brown", Email: "cb@peanuts.com"},
		{Name: "Alice Smith", Email: "alice@example.com"},
		{Name: "bob Jones", Email: "BOB@example.com"},
	} {
		_, err := s.clients.Create(ctx, f)
		require.NoError(t, err)
	}

	names := func(cs []domain.Client) []string {
		out := make([]string, len(cs))
		for i, c := range cs {
			out[i] = c.Name
		}
		return out
	}

	all, err := s.clients.List(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice Smith", "bob Jones", "charlie Brown"}, names(all))

	desc, err := s.clients.List(ctx, ListOptions{Descending: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"charlie Brown", "bob Jones", "Alice Smith"}, names(desc))

	found, err := s.clients.List(ctx, ListOptions{Search: "EXAMPLE"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice Smith", "bob Jones"}, names(found))
}

func TestClientService_Update(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	c, err := s.clients.Create(ctx, domain.ClientFields{Name: "A", Email: "a@x.com", Phone: "1"})
	require.NoError(t, err)

	updated, err := s.clients.Update(ctx, c.ID, domain.ClientEdit{Fields: domain.ClientFields{Name: "B", Email: "b@x.com"}})
	require.NoError(t, err)
	assert.Equal(t, "B", updated.Name)
	assert.Equal(t, "", updated.Phone)
	assert.Equal(t, c.WealthJourney, updated.WealthJourney)

	got, err := s.clients.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "B", got.Name)

	_, err = s.clients.Update(ctx, "missing", domain.ClientEdit{Fields: domain.ClientFields{Name: "B", Email: "b@x.com"}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientService_GetNotFound(t *testing.T) {
	s := setupServices(t)
	_, err := s.clients.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), `client "nope" not found`)
}

func TestClientService_DeleteCascades(t *testing.T) {
	eachBackend(t, func(t *testing.T, s *services) {
		ctx := context.Background()
		doomed, err := s.clients.Create(ctx, domain.ClientFields{Name: "Doomed", Email: "d@x.com"})
		require.NoError(t, err)
		keeper, err := s.clients.Create(ctx, domain.ClientFields{Name: "Keeper", Email: "k@x.com"})
		require.NoError(t, err)

		_, err = s.tasks.Create(ctx, domain.TaskInput{ClientID: doomed.ID, Title: "t1"})
		require.NoError(t, err)
		_, err = s.tasks.Create(ctx, domain.TaskInput{ClientID: doomed.ID, Title: "t2"})
		require.NoError(t, err)
		kept, err := s.tasks.Create(ctx, domain.TaskInput{ClientID: keeper.ID, Title: "t3"})
		require.NoError(t, err)
		att, err := s.attachments.Attach(ctx, doomed.ID, "w2.pdf", "application/pdf", stringsReader("pdf"))
		require.NoError(t, err)
		_, err = s.attachments.Link(ctx, doomed.ID, "site", "https://example.com/doc")
		require.NoError(t, err)

		res, err := s.clients.Delete(ctx, doomed.ID)
		require.NoError(t, err)
		assert.Equal(t, doomed.ID, res.Client.ID)
		assert.Equal(t, 2, res.TasksRemoved)
		assert.Equal(t, 1, res.BlobsRemoved)

		_, err = s.clients.Get(ctx, doomed.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		tasks, err := s.tasks.List(ctx, TaskFilter{})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, kept.ID, tasks[0].ID)

		_, err = s.backend.Blobs.Get(ctx, att.BlobKey)
		assert.Error(t, err, "blob removed with its client")

		e := s.observed.last(t)
		assert.Equal(t, "delete-client", e.Name)
		assert.Equal(t, 2, e.Fields["tasks_removed"])
	})
}

func TestClientService_DeleteMissing(t *testing.T) {
	s := setupServices(t)
	_, err := s.clients.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientService_Notes(t *testing.T) {
	eachBackend(t, func(t *testing.T, s *services) {
		ctx := context.Background()
		c, err := s.clients.Create(ctx, domain.ClientFields{Name: "A", Email: "a@x.com"})
		require.NoError(t, err)

		due := "2025-07-01"
		n, err := s.clients.AddNote(ctx, c.ID, domain.NoteInput{Content: "  Send letter ", DueDate: &due})
		require.NoError(t, err)
		assert.Equal(t, "Send letter", n.Content)
		assert.Equal(t, domain.StatusNotStarted, n.Status)
		assert.False(t, n.CreatedAt.IsZero())

		edited, err := s.clients.EditNote(ctx, c.ID, n.ID, domain.NoteInput{Content: "Letter sent", Status: domain.StatusCompleted})
		require.NoError(t, err)
		assert.True(t, edited.Completed)
		assert.Nil(t, edited.DueDate)

		got, err := s.clients.Get(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, got.Notes, 1)
		assert.Equal(t, "Letter sent", got.Notes[0].Content)
		assert.True(t, got.Notes[0].Completed)
		assert.True(t, n.CreatedAt.Equal(got.Notes[0].CreatedAt))

		_, err = s.clients.EditNote(ctx, c.ID, "missing", domain.NoteInput{Content: "x"})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		require.NoError(t, s.clients.DeleteNote(ctx, c.ID, n.ID))
		got, err = s.clients.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Notes)

		assert.ErrorIs(t, s.clients.DeleteNote(ctx, c.ID, n.ID), domain.ErrNotFound)
	})
}

func TestClientService_AddNoteRejectsEmpty(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	c, err := s.clients.Create(ctx, domain.ClientFields{Name: "A", Email: "a@x.com"})
	require.NoError(t, err)

	_, err = s.clients.AddNote(ctx, c.ID, domain.NoteInput{Content: "   "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := s.clients.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Notes)
}
