package domain

import "strings"

// Task is stored in its own collection and refers to a client by id.
// The reference is not enforced by storage.
type Task struct {
	ID          string   `json:"id"`
	ClientID    string   `json:"clientId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
	DueDate     string   `json:"dueDate"`
}

// TaskInput carries the user-editable parts of a task.
type TaskInput struct {
	ClientID    string
	Title       string
	Description string
	Priority    Priority
	Status      Status
	DueDate     string
}

// NewTask validates in and fills the Medium / Not Started defaults.
func NewTask(id string, in TaskInput) (Task, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.DueDate = strings.TrimSpace(in.DueDate)
	if err := required("title", in.Title); err != nil {
		return Task{}, err
	}
	if err := required("clientId", in.ClientID); err != nil {
		return Task{}, err
	}
	if in.DueDate != "" {
		if _, ok := ParseDate(in.DueDate); !ok {
			return Task{}, &ValidationError{Field: "dueDate", Message: "invalid date " + quote(in.DueDate) + " (expected YYYY-MM-DD)"}
		}
	}
	if in.Priority == "" {
		in.Priority = PriorityMedium
	}
	if in.Status == "" {
		in.Status = StatusNotStarted
	}
	if !ValidPriorities[in.Priority] {
		return Task{}, &ValidationError{Field: "priority", Message: "unknown priority " + quote(string(in.Priority))}
	}
	if !ValidStatuses[in.Status] {
		return Task{}, &ValidationError{Field: "status", Message: "unknown status " + quote(string(in.Status))}
	}
	return Task{
		ID:          id,
		ClientID:    in.ClientID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Status:      in.Status,
		DueDate:     in.DueDate,
	}, nil
}

// FindTask returns the index of the task with id, or -1.
func FindTask(tasks []Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// FindClient returns the index of the client with id, or -1.
func FindClient(clients []Client, id string) int {
	for i, c := range clients {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// ClientName resolves a client id to its name by linear scan.
func ClientName(clients []Client, id string) string {
	if i := FindClient(clients, id); i >= 0 {
		return clients[i].Name
	}
	return ""
}
