package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, _ := ParseDate(s)
	return d
}

func calendarFixture() ([]Client, []Task) {
	created := time.Date(2025, 6, 2, 15, 30, 0, 0, time.UTC)
	due := "2025-06-10"
	clients := []Client{{
		ID:           "c1",
		ClientFields: ClientFields{Name: "Doe, Jane"},
		Notes: []Note{
			{ID: "n1", Content: "Send engagement letter", CreatedAt: created, DueDate: &due, Status: StatusInProgress},
			{ID: "n2", Content: "Intro call", CreatedAt: created, Status: StatusCompleted, Completed: true},
		},
	}}
	tasks := []Task{
		{ID: "t1", ClientID: "c1", Title: "File extension", DueDate: "2025-06-10", Status: StatusNotStarted},
		{ID: "t2", ClientID: "c1", Title: "Undated"},
		{ID: "t3", ClientID: "c1", Title: "Next month", DueDate: "2025-07-01"},
	}
	return clients, tasks
}

func TestBuildCalendar_AllEvents(t *testing.T) {
	clients, tasks := calendarFixture()

	events := BuildCalendar(clients, tasks, time.Time{}, time.Time{})
	require.Len(t, events, 4, "undated task is omitted")

	assert.Equal(t, "n2", events[0].ID)
	assert.Equal(t, day("2025-06-02"), events[0].Date, "note without due date falls on its creation day")
	assert.Equal(t, "Doe, Jane: Intro call", events[0].Title)
	require.NotNil(t, events[0].CreatedAt)

	assert.Equal(t, EventTask, events[1].Kind, "task sorts before note on the same day")
	assert.Equal(t, "t1", events[1].ID)
	assert.Equal(t, EventNote, events[2].Kind)
	assert.Equal(t, "n1", events[2].ID)
	assert.Equal(t, StatusInProgress, events[2].Status)
	assert.Nil(t, events[1].CreatedAt)

	assert.Equal(t, "t3", events[3].ID)
}

func TestBuildCalendar_Range(t *testing.T) {
	clients, tasks := calendarFixture()

	events := BuildCalendar(clients, tasks, day("2025-06-10"), day("2025-06-30"))
	require.Len(t, events, 2)
	assert.Equal(t, "t1", events[0].ID)
	assert.Equal(t, "n1", events[1].ID)

	events = BuildCalendar(clients, tasks, day("2025-06-11"), time.Time{})
	require.Len(t, events, 1)
	assert.Equal(t, "t3", events[0].ID)
}

func TestBuildCalendar_Empty(t *testing.T) {
	assert.Empty(t, BuildCalendar(nil, nil, time.Time{}, time.Time{}))
}
