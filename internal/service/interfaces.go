package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/fulfill/internal/domain"
	"github.com/alexanderramin/fulfill/internal/importer"
	"github.com/alexanderramin/fulfill/internal/repository"
)

// ListOptions filters and orders ClientService.List. Search matches name or
// email, ignoring case. Results sort by lowercase name.
type ListOptions struct {
	Search     string
	Descending bool
}

type ClientService interface {
	Create(ctx context.Context, fields domain.ClientFields) (*domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context, opts ListOptions) ([]domain.Client, error)
	Update(ctx context.Context, id string, edit domain.ClientEdit) (*domain.Client, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)

	AddNote(ctx context.Context, clientID string, in domain.NoteInput) (*domain.Note, error)
	EditNote(ctx context.Context, clientID, noteID string, in domain.NoteInput) (*domain.Note, error)
	DeleteNote(ctx context.Context, clientID, noteID string) error
}

// DeleteResult reports what a client delete removed along with the client.
type DeleteResult struct {
	Client       domain.Client
	TasksRemoved int
	BlobsRemoved int
}

type AttachmentService interface {
	Attach(ctx context.Context, clientID, name, contentType string, r io.Reader) (*domain.Attachment, error)
	Link(ctx context.Context, clientID, name, url string) (*domain.Attachment, error)
	Rename(ctx context.Context, clientID, attachmentID, name string) (*domain.Attachment, error)
	Remove(ctx context.Context, clientID, attachmentID string) error
	Open(ctx context.Context, clientID, attachmentID string) (*repository.Blob, error)
}

type JourneyService interface {
	Get(ctx context.Context, clientID string) (domain.WealthJourney, error)
	Toggle(ctx context.Context, clientID string, key domain.SectionKey, itemID string) (domain.WealthJourney, error)
	Progress(ctx context.Context, clientID string) ([]domain.SectionProgress, error)
}

// TaskFilter narrows TaskService.List. Zero fields match everything.
type TaskFilter struct {
	ClientID string
	Status   domain.Status
}

type TaskService interface {
	Create(ctx context.Context, in domain.TaskInput) (*domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	SetStatus(ctx context.Context, id string, status domain.Status) (*domain.Task, error)
	Update(ctx context.Context, id string, in domain.TaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

// ImportResult holds the outcome of a CSV import.
type ImportResult struct {
	Imported []domain.Client
	Skipped  []importer.SkippedRow
}

type ImportService interface {
	ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error)
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
}

// StatusCounts tallies items per workflow status.
type StatusCounts struct {
	NotStarted int
	InProgress int
	Completed  int
}

func (c StatusCounts) Total() int { return c.NotStarted + c.InProgress + c.Completed }

// DashboardSummary is the overview shown on the dashboard.
type DashboardSummary struct {
	Clients      int
	Tasks        StatusCounts
	Notes        StatusCounts
	OverdueTasks []domain.Task
	OverdueNotes []OverdueNote
}

// OverdueNote is an open note whose due date has passed.
type OverdueNote struct {
	ClientID   string
	ClientName string
	Note       domain.Note
}

type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
	Calendar(ctx context.Context, from, to time.Time) ([]domain.CalendarEvent, error)
}

type UserService interface {
	Add(ctx context.Context, username, displayName string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
