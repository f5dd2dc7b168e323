package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/fulfill/internal/domain"
	"github.com/alexanderramin/fulfill/internal/importer"
	"github.com/alexanderramin/fulfill/internal/repository"
	"github.com/alexanderramin/fulfill/internal/testutil"
)

const sampleCSV = `First Name,Last Name,Email,Phone Number,Family Members
Jane,Doe,jane@doe.com,555-0100,abc
John,Smith,,555-0101,2
Ann,Lee,ann@lee.com,,3 kids
`

func TestImportService_ImportCSV(t *testing.T) {
	eachBackend(t, func(t *testing.T, s *services) {
		ctx := context.Background()
		existing, err := s.clients.Create(ctx, domain.ClientFields{Name: "Existing", Email: "e@x.com"})
		require.NoError(t, err)

		res, err := s.imports.ImportCSV(ctx, strings.NewReader(sampleCSV))
		require.NoError(t, err)
		require.Len(t, res.Imported, 2)
		require.Len(t, res.Skipped, 1)
		assert.Equal(t, importer.SkippedRow{Line: 3, Reason: "missing Email"}, res.Skipped[0])

		assert.Equal(t, "Doe, Jane", res.Imported[0].Name)
		assert.Equal(t, 0, res.Imported[0].FamilyMembers)
		assert.Equal(t, "Lee, Ann", res.Imported[1].Name)
		assert.Equal(t, 3, res.Imported[1].FamilyMembers)

		all, err := s.backend.Gateway.LoadClients(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, existing.ID, all[0].ID, "imports are appended")
		assert.Empty(t, all[1].WealthJourney[domain.SectionTaxReturn].Items)

		e := s.observed.last(t)
		assert.Equal(t, "import-csv", e.Name)
		assert.Equal(t, 2, e.Fields["imported"])
		assert.Equal(t, 1, e.Fields["skipped"])
	})
}

func TestImportService_ImportFile(t *testing.T) {
	s := setupServices(t)
	path := filepath.Join(t.TempDir(), "clients.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	res, err := s.imports.ImportFile(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, res.Imported, 2)

	_, err = s.imports.ImportFile(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestImportService_NothingEligibleWritesNothing(t *testing.T) {
	s := setupServices(t)
	res, err := s.imports.ImportCSV(context.Background(), strings.NewReader("First Name,Last Name\nA,B\n"))
	require.NoError(t, err)
	assert.Empty(t, res.Imported)
	assert.Len(t, res.Skipped, 1)

	var n int
	require.NoError(t, s.backendDB(t).QueryRow(`SELECT COUNT(*) FROM collections`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestImportService_SaveFailureIsReported(t *testing.T) {
	database := testutil.NewTestDB(t)
	boom := errors.New("disk full")
	uow := repository.NewSQLiteUnitOfWork(&testutil.FailOnNthExecUoW{DB: database, FailOn: 1, Err: boom})
	svc := NewImportService(uow)

	_, err := svc.ImportCSV(context.Background(), strings.NewReader(sampleCSV))
	assert.ErrorIs(t, err, boom)

	clients, err := repository.NewGateway(repository.NewSQLiteKV(database)).LoadClients(context.Background())
	require.NoError(t, err)
	assert.Empty(t, clients)
}
