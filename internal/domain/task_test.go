package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask_Defaults(t *testing.T) {
	task, err := NewTask("t1", TaskInput{ClientID: " c1 ", Title: "  Collect W-2s "})
	require.NoError(t, err)

	assert.Equal(t, "t1", task.ID)
	assert.Equal(t, "c1", task.ClientID)
	assert.Equal(t, "Collect W-2s", task.Title)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.Equal(t, StatusNotStarted, task.Status)
	assert.Equal(t, "", task.DueDate)
}

func TestNewTask_Validation(t *testing.T) {
	cases := []struct {
		name  string
		in    TaskInput
		field string
	}{
		{"missing title", TaskInput{ClientID: "c1"}, "title"},
		{"missing client", TaskInput{Title: "x"}, "clientId"},
		{"bad due date", TaskInput{ClientID: "c1", Title: "x", DueDate: "tomorrow"}, "dueDate"},
		{"bad status", TaskInput{ClientID: "c1", Title: "x", Status: "Paused"}, "status"},
		{"bad priority", TaskInput{ClientID: "c1", Title: "x", Priority: "Urgent"}, "priority"},
		{"lowercase priority", TaskInput{ClientID: "c1", Title: "x", Priority: "high"}, "priority"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTask("t", tc.in)
			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("")
	require.NoError(t, err)
	assert.Equal(t, PriorityMedium, p)

	p, err = ParsePriority("HIGH")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	_, err = ParsePriority("urgent")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFindTaskAndClientName(t *testing.T) {
	tasks := []Task{{ID: "a"}, {ID: "b"}}
	assert.Equal(t, 1, FindTask(tasks, "b"))
	assert.Equal(t, -1, FindTask(tasks, "z"))

	clients := []Client{{ID: "c1", ClientFields: ClientFields{Name: "Doe, Jane"}}}
	assert.Equal(t, "Doe, Jane", ClientName(clients, "c1"))
	assert.Equal(t, "", ClientName(clients, "missing"))
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC)
	assert.True(t, IsOverdue("2025-06-14", now))
	assert.False(t, IsOverdue("2025-06-15", now))
	assert.False(t, IsOverdue("2025-06-16", now))
	assert.False(t, IsOverdue("", now))
	assert.False(t, IsOverdue("garbage", now))
}
