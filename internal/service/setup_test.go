package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/fulfill/internal/domain"
	"github.com/alexanderramin/fulfill/internal/repository"
	"github.com/alexanderramin/fulfill/internal/testutil"
)

type services struct {
	backend     *repository.Backend
	clients     ClientService
	attachments AttachmentService
	journeys    JourneyService
	tasks       TaskService
	imports     ImportService
	dashboard   DashboardService
	users       UserService
	observed    *recordingObserver
	db          *sql.DB
}

func newServices(t *testing.T, b *repository.Backend, now time.Time) *services {
	t.Helper()
	obs := &recordingObserver{}
	return &services{
		backend:     b,
		clients:     NewClientService(b.Gateway, b.UoW, domain.StarterStandard, obs),
		attachments: NewAttachmentService(b.Gateway, b.Blobs, b.UoW, obs),
		journeys:    NewJourneyService(b.Gateway, b.UoW),
		tasks:       NewTaskService(b.Gateway, b.UoW),
		imports:     NewImportService(b.UoW, obs),
		dashboard:   NewDashboardService(b.Gateway, func() time.Time { return now }),
		users:       NewUserService(b.Gateway, b.UoW),
		observed:    obs,
	}
}

// setupServices wires every service to an in-memory SQLite backend.
func setupServices(t *testing.T) *services {
	t.Helper()
	return setupServicesAt(t, time.Now())
}

func setupServicesAt(t *testing.T, now time.Time) *services {
	t.Helper()
	database := testutil.NewTestDB(t)
	s := newServices(t, repository.NewSQLiteBackend(database), now)
	s.db = database
	return s
}

func (s *services) backendDB(t *testing.T) *sql.DB {
	t.Helper()
	require.NotNil(t, s.db, "not a SQLite backed setup")
	return s.db
}

// eachBackend runs fn against SQLite and Redis backed services.
func eachBackend(t *testing.T, fn func(t *testing.T, s *services)) {
	t.Run("sqlite", func(t *testing.T) { fn(t, newServices(t, testutil.NewTestBackend(t), time.Now())) })
	t.Run("redis", func(t *testing.T) { fn(t, newServices(t, testutil.NewRedisTestBackend(t), time.Now())) })
}
