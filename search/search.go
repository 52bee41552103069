package search

import (
	"sort"
	"strings"

	"event-agent/models"
)

// Weights tunes how keyword relevance and stored rating averages combine
// into a recommendation score.
type Weights struct {
	Keyword float64
	Rating  float64
}

// ScoredEvent pairs an event with its recommendation score.
type ScoredEvent struct {
	models.Event
	Score float64 `json:"score"`
}

// Filter returns the events satisfying every active criterion, preserving
// table order. It is a pure function: no matches means an empty result,
// never an error, and no input is modified.
func Filter(events []models.Event, c models.FilterCriteria, synonyms models.SynonymTable) []models.Event {
	var terms []string
	if c.Keyword != "" {
		terms = synonyms.Expand(c.Keyword)
	}

	matched := make([]models.Event, 0)
	for _, e := range events {
		if matches(e, c, terms) {
			matched = append(matched, e)
		}
	}
	return matched
}

func matches(e models.Event, c models.FilterCriteria, terms []string) bool {
	if len(terms) > 0 && TermHits(e, terms) == 0 {
		return false
	}
	if c.Theme != "" && e.Theme != c.Theme {
		return false
	}
	if c.Mood != "" && e.Mood != c.Mood {
		return false
	}
	if !c.DateFrom.IsZero() && e.StartDate.Before(c.DateFrom) {
		return false
	}
	if !c.DateTo.IsZero() && e.StartDate.After(c.DateTo) {
		return false
	}
	if c.Location != "" && !containsFold(e.Location, c.Location) {
		return false
	}
	return true
}

// TermHits counts how many of the given terms appear in the event's title,
// description, or organization name. Each term counts at most once.
func TermHits(e models.Event, terms []string) int {
	n := 0
	for _, t := range terms {
		if t == "" {
			continue
		}
		if containsFold(e.Title, t) || containsFold(e.Description, t) || containsFold(e.OrgTitle, t) {
			n++
		}
	}
	return n
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Rank orders events by descending score, where score = term match count ×
// keyword weight + stored rating average × rating weight. Unrated events
// contribute 0 for the rating component. The sort is stable, so equal
// scores keep the incoming order. The rating averages are read, never
// written.
func Rank(events []models.Event, terms []string, averages map[string]float64, w Weights) []ScoredEvent {
	scored := make([]ScoredEvent, 0, len(events))
	for _, e := range events {
		s := float64(TermHits(e, terms))*w.Keyword + averages[e.Key()]*w.Rating
		scored = append(scored, ScoredEvent{Event: e, Score: s})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
