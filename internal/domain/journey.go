package domain

import (
	"encoding/json"
	"fmt"
)

// Item is one checklist entry. Ids are unique only within their section.
type Item struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Section is an ordered checklist. Order is display order only.
type Section struct {
	Items []Item `json:"items"`
}

// WealthJourney holds exactly the four sections named by SectionKeys.
type WealthJourney map[SectionKey]Section

// EmptyJourney returns a journey with all four sections and no items.
func EmptyJourney() WealthJourney {
	j := make(WealthJourney, len(SectionKeys))
	for _, k := range SectionKeys {
		j[k] = Section{Items: []Item{}}
	}
	return j
}

// Clone returns a deep copy so callers can mutate without aliasing.
func (j WealthJourney) Clone() WealthJourney {
	out := make(WealthJourney, len(SectionKeys))
	for _, k := range SectionKeys {
		items := make([]Item, len(j[k].Items))
		copy(items, j[k].Items)
		out[k] = Section{Items: items}
	}
	return out
}

// Normalize fills in missing sections and drops unknown keys.
func (j WealthJourney) Normalize() WealthJourney {
	return j.Clone()
}

// UnmarshalJSON accepts canonical and legacy section keys and always yields
// all four sections.
func (j *WealthJourney) UnmarshalJSON(data []byte) error {
	var raw map[string]Section
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := EmptyJourney()
	for name, sec := range raw {
		key, err := ParseSectionKey(name)
		if err != nil {
			continue
		}
		if sec.Items == nil {
			sec.Items = []Item{}
		}
		out[key] = sec
	}
	*j = out
	return nil
}

// ToggleItem flips the completed flag of the first item in sectionKey whose
// id matches. The input journey is not modified. An unknown section or item
// yields a *NotFoundError and the journey unchanged.
func ToggleItem(j WealthJourney, sectionKey SectionKey, itemID string) (WealthJourney, error) {
	if _, ok := SectionTitles[sectionKey]; !ok {
		return j, &NotFoundError{Kind: "journey section", ID: string(sectionKey)}
	}
	out := j.Clone()
	sec := out[sectionKey]
	for i := range sec.Items {
		if sec.Items[i].ID == itemID {
			sec.Items[i].Completed = !sec.Items[i].Completed
			out[sectionKey] = sec
			return out, nil
		}
	}
	return j, &NotFoundError{Kind: "checklist item", ID: fmt.Sprintf("%s/%s", sectionKey, itemID)}
}

// CompletedCount returns the number of completed items.
func (s Section) CompletedCount() int {
	n := 0
	for _, it := range s.Items {
		if it.Completed {
			n++
		}
	}
	return n
}

// CompletionRatio returns completed/total, or 0 for an empty section.
func CompletionRatio(s Section) float64 {
	if len(s.Items) == 0 {
		return 0
	}
	return float64(s.CompletedCount()) / float64(len(s.Items))
}

// TopOutstanding returns up to n incomplete items in stored order.
func TopOutstanding(s Section, n int) []Item {
	out := []Item{}
	if n <= 0 {
		return out
	}
	for _, it := range s.Items {
		if it.Completed {
			continue
		}
		out = append(out, it)
		if len(out) == n {
			break
		}
	}
	return out
}

// SectionProgress summarizes one section for display.
type SectionProgress struct {
	Key         SectionKey
	Title       string
	Completed   int
	Total       int
	Ratio       float64
	Outstanding []Item
}

// Progress returns per-section progress in display order, with up to
// topN outstanding items each.
func (j WealthJourney) Progress(topN int) []SectionProgress {
	out := make([]SectionProgress, 0, len(SectionKeys))
	for _, k := range SectionKeys {
		sec := j[k]
		out = append(out, SectionProgress{
			Key:         k,
			Title:       SectionTitles[k],
			Completed:   sec.CompletedCount(),
			Total:       len(sec.Items),
			Ratio:       CompletionRatio(sec),
			Outstanding: TopOutstanding(sec, topN),
		})
	}
	return out
}
