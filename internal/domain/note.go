package domain

import (
	"strings"
	"time"
)

// DateLayout is the date-only format used for due dates and birthdays.
const DateLayout = "2006-01-02"

// Note is a dated remark on a client. Completed always equals
// Status == StatusCompleted.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	DueDate   *string   `json:"dueDate"`
	Completed bool      `json:"completed"`
	Status    Status    `json:"status"`
}

// NoteInput carries the user-editable parts of a note.
type NoteInput struct {
	Content string
	DueDate *string
	Status  Status
}

// normalize trims content, checks the due date format and defaults the status.
func (in NoteInput) normalize() (NoteInput, error) {
	in.Content = strings.TrimSpace(in.Content)
	if err := required("content", in.Content); err != nil {
		return in, err
	}
	if in.DueDate != nil {
		due := strings.TrimSpace(*in.DueDate)
		if due == "" {
			in.DueDate = nil
		} else {
			if _, ok := ParseDate(due); !ok {
				return in, &ValidationError{Field: "dueDate", Message: "invalid date " + quote(due) + " (expected YYYY-MM-DD)"}
			}
			in.DueDate = &due
		}
	}
	if in.Status == "" {
		in.Status = StatusNotStarted
	}
	if !ValidStatuses[in.Status] {
		return in, &ValidationError{Field: "status", Message: "unknown status " + quote(string(in.Status))}
	}
	return in, nil
}

// NewNote builds a note created at now.
func NewNote(id string, in NoteInput, now time.Time) (Note, error) {
	in, err := in.normalize()
	if err != nil {
		return Note{}, err
	}
	return Note{
		ID:        id,
		Content:   in.Content,
		CreatedAt: now.UTC(),
		DueDate:   in.DueDate,
		Status:    in.Status,
		Completed: in.Status == StatusCompleted,
	}, nil
}

// AddNote appends n to the client's notes.
func AddNote(c Client, n Note) Client {
	out := c.Clone()
	n.Completed = n.Status == StatusCompleted
	out.Notes = append(out.Notes, n)
	return out
}

// EditNote replaces content, due date and status of the note with noteID.
// CreatedAt is kept.
func EditNote(c Client, noteID string, in NoteInput) (Client, error) {
	in, err := in.normalize()
	if err != nil {
		return c, err
	}
	out := c.Clone()
	for i := range out.Notes {
		if out.Notes[i].ID != noteID {
			continue
		}
		out.Notes[i].Content = in.Content
		out.Notes[i].DueDate = in.DueDate
		out.Notes[i].Status = in.Status
		out.Notes[i].Completed = in.Status == StatusCompleted
		return out, nil
	}
	return c, &NotFoundError{Kind: "note", ID: noteID}
}

// DeleteNote removes the note with noteID.
func DeleteNote(c Client, noteID string) (Client, error) {
	out := c.Clone()
	for i := range out.Notes {
		if out.Notes[i].ID == noteID {
			out.Notes = append(out.Notes[:i], out.Notes[i+1:]...)
			return out, nil
		}
	}
	return c, &NotFoundError{Kind: "note", ID: noteID}
}

// Note returns the note with the given id.
func (c Client) Note(id string) (Note, bool) {
	for _, n := range c.Notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func cloneNotes(in []Note) []Note {
	out := make([]Note, len(in))
	copy(out, in)
	for i := range out {
		if in[i].DueDate != nil {
			d := *in[i].DueDate
			out[i].DueDate = &d
		}
	}
	return out
}

func projectCompleted(notes []Note) {
	for i := range notes {
		if notes[i].Status == "" {
			notes[i].Status = StatusNotStarted
			if notes[i].Completed {
				notes[i].Status = StatusCompleted
			}
		}
		notes[i].Completed = notes[i].Status == StatusCompleted
	}
}
