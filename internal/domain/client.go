package domain

import (
	"strings"
	"time"
)

// Attachment is a file or link owned by a client. Exactly one of BlobKey
// (bytes held in the blob store) or URL (external reference) is set.
type Attachment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BlobKey     string `json:"blobKey,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	Size        int64  `json:"size,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Stored reports whether the attachment bytes live in the blob store.
func (a Attachment) Stored() bool { return a.BlobKey != "" }

// ClientFields are the scalar fields replaced wholesale by an edit.
type ClientFields struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	SSN           string `json:"ssn"`
	FinancialGoal string `json:"financialGoal"`
	Birthday      string `json:"birthday"`
	FamilyMembers int    `json:"familyMembers"`
	BusinessName  string `json:"businessName"`
}

// Validate requires a non-blank name and email.
func (f ClientFields) Validate() error {
	if err := required("name", strings.TrimSpace(f.Name)); err != nil {
		return err
	}
	return required("email", strings.TrimSpace(f.Email))
}

func (f ClientFields) normalized() ClientFields {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	if f.FamilyMembers < 0 {
		f.FamilyMembers = 0
	}
	return f
}

// Client is the aggregate root: contact fields plus owned attachments,
// wealth journey and notes.
type Client struct {
	ID string `json:"id"`
	ClientFields
	Attachments   []Attachment  `json:"attachments"`
	WealthJourney WealthJourney `json:"wealthJourney"`
	Notes         []Note        `json:"notes"`
}

// NewClient builds a client from fields with defaults for everything else.
// It does not persist.
func NewClient(id string, fields ClientFields, journey WealthJourney) (Client, error) {
	if err := fields.Validate(); err != nil {
		return Client{}, err
	}
	if journey == nil {
		journey = EmptyJourney()
	}
	return Client{
		ID:            id,
		ClientFields:  fields.normalized(),
		Attachments:   []Attachment{},
		WealthJourney: journey.Clone(),
		Notes:         []Note{},
	}, nil
}

// ClientEdit is an edit payload. Nil owned collections are carried over.
type ClientEdit struct {
	Fields        ClientFields
	Attachments   []Attachment
	WealthJourney WealthJourney
	Notes         []Note
}

// UpdateClient replaces every scalar field of existing with edit.Fields.
func UpdateClient(existing Client, edit ClientEdit) (Client, error) {
	if err := edit.Fields.Validate(); err != nil {
		return existing, err
	}
	out := existing.Clone()
	out.ClientFields = edit.Fields.normalized()
	if edit.Attachments != nil {
		out.Attachments = cloneAttachments(edit.Attachments)
	}
	if edit.WealthJourney != nil {
		out.WealthJourney = edit.WealthJourney.Clone()
	}
	if edit.Notes != nil {
		out.Notes = cloneNotes(edit.Notes)
		projectCompleted(out.Notes)
	}
	return out, nil
}

// SetAttachments replaces the attachment list.
func SetAttachments(c Client, attachments []Attachment) Client {
	out := c.Clone()
	out.Attachments = cloneAttachments(attachments)
	return out
}

// SetJourney replaces the wealth journey.
func SetJourney(c Client, j WealthJourney) Client {
	out := c.Clone()
	out.WealthJourney = j.Clone()
	return out
}

// Attachment returns the attachment with the given id.
func (c Client) Attachment(id string) (Attachment, bool) {
	for _, a := range c.Attachments {
		if a.ID == id {
			return a, true
		}
	}
	return Attachment{}, false
}

// Clone returns a deep copy of the client.
func (c Client) Clone() Client {
	out := c
	out.Attachments = cloneAttachments(c.Attachments)
	out.WealthJourney = c.WealthJourney.Clone()
	out.Notes = cloneNotes(c.Notes)
	return out
}

// Normalize repairs data loaded from older or hand-edited stores: missing
// slices become empty, missing journey sections are added and each note's
// completed flag is re-derived from its status.
func (c Client) Normalize() Client {
	out := c.Clone()
	projectCompleted(out.Notes)
	return out
}

// MatchesSearch reports whether term occurs in the name or email,
// ignoring case. An empty term matches everything.
func (c Client) MatchesSearch(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Email), term)
}

// OpenNotes returns notes that are not completed.
func (c Client) OpenNotes() []Note {
	var out []Note
	for _, n := range c.Notes {
		if !n.Completed {
			out = append(out, n)
		}
	}
	return out
}

// IsOverdue reports whether a date-only due string falls before today.
func IsOverdue(due string, now time.Time) bool {
	d, ok := ParseDate(due)
	if !ok {
		return false
	}
	y, m, dd := now.Date()
	today := time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
	return d.Before(today)
}

func cloneAttachments(in []Attachment) []Attachment {
	out := make([]Attachment, len(in))
	copy(out, in)
	return out
}
