package testutil

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/fulfill/internal/domain"
)

var testIDCounter atomic.Int64

func nextID(prefix string) string {
	return prefix + strconv.FormatInt(testIDCounter.Add(1), 10)
}

// Client options
type ClientOption func(*domain.Client)

func WithEmail(email string) ClientOption {
	return func(c *domain.Client) {
		c.Email = email
	}
}

func WithPhone(phone string) ClientOption {
	return func(c *domain.Client) {
		c.Phone = phone
	}
}

func WithBusinessName(name string) ClientOption {
	return func(c *domain.Client) {
		c.BusinessName = name
	}
}

func WithFamilyMembers(n int) ClientOption {
	return func(c *domain.Client) {
		c.FamilyMembers = n
	}
}

func WithJourney(j domain.WealthJourney) ClientOption {
	return func(c *domain.Client) {
		c.WealthJourney = j.Clone()
	}
}

func WithStarterJourney() ClientOption {
	return func(c *domain.Client) {
		j, _ := domain.StarterJourney(domain.StarterStandard)
		c.WealthJourney = j
	}
}

func WithNotes(notes ...domain.Note) ClientOption {
	return func(c *domain.Client) {
		for _, n := range notes {
			*c = domain.AddNote(*c, n)
		}
	}
}

func WithAttachments(atts ...domain.Attachment) ClientOption {
	return func(c *domain.Client) {
		*c = domain.SetAttachments(*c, append(c.Attachments, atts...))
	}
}

func WithClientID(id string) ClientOption {
	return func(c *domain.Client) {
		c.ID = id
	}
}

// NewTestClient builds a valid client with an empty journey. The email
// defaults to a lowercased form of name at example.com.
func NewTestClient(name string, opts ...ClientOption) domain.Client {
	email := strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(name, ",", ""), " ", ".")) + "@example.com"
	c, err := domain.NewClient(nextID("client-"), domain.ClientFields{Name: name, Email: email}, nil)
	if err != nil {
		panic("testutil: invalid client fixture: " + err.Error())
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Note options
type NoteOption func(*domain.Note)

func WithNoteStatus(s domain.Status) NoteOption {
	return func(n *domain.Note) {
		n.Status = s
		n.Completed = s == domain.StatusCompleted
	}
}

func WithNoteDueDate(d string) NoteOption {
	return func(n *domain.Note) {
		n.DueDate = &d
	}
}

func WithNoteCreatedAt(t time.Time) NoteOption {
	return func(n *domain.Note) {
		n.CreatedAt = t
	}
}

func NewTestNote(content string, opts ...NoteOption) domain.Note {
	n, err := domain.NewNote(nextID("note-"), domain.NoteInput{Content: content}, time.Now())
	if err != nil {
		panic("testutil: invalid note fixture: " + err.Error())
	}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskStatus(s domain.Status) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithTaskDueDate(d string) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = d
	}
}

func NewTestTask(clientID, title string, opts ...TaskOption) domain.Task {
	t, err := domain.NewTask(nextID("task-"), domain.TaskInput{ClientID: clientID, Title: title})
	if err != nil {
		panic("testutil: invalid task fixture: " + err.Error())
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
