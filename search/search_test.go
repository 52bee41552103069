package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-agent/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func testEvents() []models.Event {
	return []models.Event{
		{
			Title:       "Beach Cleanup",
			Description: "Help clean up the shoreline",
			OrgTitle:    "NYC Parks",
			StartDate:   date("2026-06-01"),
			Location:    "Coney Island, Brooklyn",
			Theme:       "Environment",
			Mood:        "Outdoorsy",
		},
		{
			Title:       "Food Drive",
			Description: "Sort donations at the pantry",
			OrgTitle:    "City Harvest",
			StartDate:   date("2026-06-15"),
			Location:    "Queens",
			Theme:       "Social",
			Mood:        "Hands-on",
		},
		{
			Title:       "Park Gardening Day",
			Description: "Plant flowers with neighbors",
			OrgTitle:    "Brooklyn Green Collective",
			StartDate:   date("2026-07-04"),
			Location:    "Prospect Park, Brooklyn",
			Theme:       "Environment",
			Mood:        "Social",
		},
	}
}

func TestFilterNoCriteriaReturnsFullTableInOrder(t *testing.T) {
	events := testEvents()
	got := Filter(events, models.FilterCriteria{}, nil)
	assert.Equal(t, events, got)
}

func TestFilterKeywordMatchesTitleDescriptionOrg(t *testing.T) {
	events := testEvents()

	tests := []struct {
		name    string
		keyword string
		want    []string
	}{
		{"title match", "cleanup", []string{"Beach Cleanup"}},
		{"case insensitive", "BEACH", []string{"Beach Cleanup"}},
		{"description match", "pantry", []string{"Food Drive"}},
		{"org match", "harvest", []string{"Food Drive"}},
		{"multiple matches", "park", []string{"Beach Cleanup", "Park Gardening Day"}},
		{"no match", "astronomy", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(events, models.FilterCriteria{Keyword: tt.keyword}, nil)
			titles := make([]string, 0, len(got))
			for _, e := range got {
				titles = append(titles, e.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestFilterSynonymExpansionIsMonotonic(t *testing.T) {
	events := testEvents()
	synonyms := models.SynonymTable{
		"environment": {"cleanup", "garden"},
	}

	plain := Filter(events, models.FilterCriteria{Keyword: "environment"}, nil)
	expanded := Filter(events, models.FilterCriteria{Keyword: "environment"}, synonyms)

	// Expansion only adds matches, it never removes any.
	for _, e := range plain {
		assert.Contains(t, expanded, e)
	}
	assert.GreaterOrEqual(t, len(expanded), len(plain))

	// "environment" matches nothing literally, but its synonyms do.
	assert.Empty(t, plain)
	require.Len(t, expanded, 2)
	assert.Equal(t, "Beach Cleanup", expanded[0].Title)
	assert.Equal(t, "Park Gardening Day", expanded[1].Title)
}

func TestFilterThemeExactMatch(t *testing.T) {
	events := testEvents()

	got := Filter(events, models.FilterCriteria{Theme: "Environment"}, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "Beach Cleanup", got[0].Title)
	assert.Equal(t, "Park Gardening Day", got[1].Title)

	// Equality, not substring: a partial theme value matches nothing.
	assert.Empty(t, Filter(events, models.FilterCriteria{Theme: "Environ"}, nil))
}

func TestFilterMoodExactMatch(t *testing.T) {
	got := Filter(testEvents(), models.FilterCriteria{Mood: "Hands-on"}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Food Drive", got[0].Title)
}

func TestFilterDateRangeIsInclusive(t *testing.T) {
	events := testEvents()

	got := Filter(events, models.FilterCriteria{
		DateFrom: date("2026-06-01"),
		DateTo:   date("2026-06-15"),
	}, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "Beach Cleanup", got[0].Title)
	assert.Equal(t, "Food Drive", got[1].Title)

	// Open-ended lower bound.
	got = Filter(events, models.FilterCriteria{DateTo: date("2026-06-01")}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Beach Cleanup", got[0].Title)

	// Open-ended upper bound.
	got = Filter(events, models.FilterCriteria{DateFrom: date("2026-07-01")}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Park Gardening Day", got[0].Title)
}

func TestFilterLocationSubstring(t *testing.T) {
	got := Filter(testEvents(), models.FilterCriteria{Location: "brooklyn"}, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "Beach Cleanup", got[0].Title)
	assert.Equal(t, "Park Gardening Day", got[1].Title)
}

func TestFilterCombinesConditionsWithAnd(t *testing.T) {
	got := Filter(testEvents(), models.FilterCriteria{
		Keyword:  "brooklyn",
		Theme:    "Environment",
		DateFrom: date("2026-07-01"),
	}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Park Gardening Day", got[0].Title)
}

func TestFilterNoMatchesReturnsEmptyNotNil(t *testing.T) {
	got := Filter(testEvents(), models.FilterCriteria{Theme: "Nonexistent"}, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTermHitsCountsEachTermOnce(t *testing.T) {
	e := models.Event{
		Title:       "Dog Walking at the Dog Run",
		Description: "Walk shelter dogs",
		OrgTitle:    "Animal Care Centers",
	}

	// "dog" appears in several fields but counts once.
	assert.Equal(t, 1, TermHits(e, []string{"dog"}))
	assert.Equal(t, 2, TermHits(e, []string{"dog", "animal"}))
	assert.Equal(t, 0, TermHits(e, []string{"cat"}))
	assert.Equal(t, 1, TermHits(e, []string{"", "shelter"}))
}

func TestRankOrdersByBlendedScore(t *testing.T) {
	events := testEvents()
	weights := Weights{Keyword: 1.0, Rating: 0.5}

	// Gardening matches both terms, Cleanup one; Cleanup's rating average
	// is not enough to overtake at these weights.
	averages := map[string]float64{
		events[0].Key(): 1.0,
	}
	scored := Rank(events, []string{"park", "garden"}, averages, weights)

	require.Len(t, scored, 3)
	assert.Equal(t, "Park Gardening Day", scored[0].Title)
	assert.Equal(t, 2.0, scored[0].Score)
	assert.Equal(t, "Beach Cleanup", scored[1].Title)
	assert.Equal(t, 1.5, scored[1].Score)
	assert.Equal(t, "Food Drive", scored[2].Title)
	assert.Equal(t, 0.0, scored[2].Score)
}

func TestRankRatingAverageBreaksKeywordTies(t *testing.T) {
	events := testEvents()
	averages := map[string]float64{
		events[2].Key(): 5.0,
	}
	scored := Rank(events, []string{"park"}, averages, Weights{Keyword: 1.0, Rating: 0.5})

	require.Len(t, scored, 3)
	assert.Equal(t, "Park Gardening Day", scored[0].Title)
	assert.Equal(t, "Beach Cleanup", scored[1].Title)
}

func TestRankIsStableOnEqualScores(t *testing.T) {
	events := testEvents()

	// No terms, no ratings: every score is zero and table order survives.
	scored := Rank(events, nil, nil, Weights{Keyword: 1.0, Rating: 0.5})
	require.Len(t, scored, 3)
	for i, e := range events {
		assert.Equal(t, e.Title, scored[i].Title)
		assert.Equal(t, 0.0, scored[i].Score)
	}
}

func TestRankDoesNotMutateInputs(t *testing.T) {
	events := testEvents()
	averages := map[string]float64{events[1].Key(): 4.0}

	Rank(events, []string{"food"}, averages, Weights{Keyword: 1.0, Rating: 1.0})

	assert.Equal(t, testEvents(), events)
	assert.Equal(t, map[string]float64{events[1].Key(): 4.0}, averages)
}
