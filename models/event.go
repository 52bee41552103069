package models

import (
	"strings"
	"time"
)

// Event is one volunteer opportunity from the source CSV. Events are
// immutable after the catalog is loaded.
type Event struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OrgTitle    string    `json:"org_title"`
	StartDate   time.Time `json:"start_date"`
	Location    string    `json:"location"`
	Theme       string    `json:"theme"`
	Mood        string    `json:"mood"`
}

// Key returns the identifier ratings use to reference this event. Row
// indices shift whenever the CSV is regenerated, so the key is derived
// from title and organization instead.
func (e Event) Key() string {
	return EventKey(e.Title, e.OrgTitle)
}

// EventKey builds the stable event identifier from a title and an
// organization name.
func EventKey(title, org string) string {
	return normalize(title) + "@" + normalize(org)
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

// FilterCriteria carries the constraints of a single query. Zero-valued
// fields mean "no constraint".
type FilterCriteria struct {
	Keyword  string
	Theme    string
	Mood     string
	DateFrom time.Time
	DateTo   time.Time
	Location string
}

// SynonymTable maps a canonical keyword to equivalent search terms. It is
// loaded once from configuration and never modified afterwards.
type SynonymTable map[string][]string

// Expand returns the term itself followed by any synonyms registered under
// its lowercased form. Duplicates are dropped so a term never counts twice
// during scoring.
func (t SynonymTable) Expand(term string) []string {
	seen := map[string]bool{strings.ToLower(term): true}
	terms := []string{term}
	for _, s := range t[strings.ToLower(term)] {
		low := strings.ToLower(s)
		if !seen[low] {
			seen[low] = true
			terms = append(terms, s)
		}
	}
	return terms
}
