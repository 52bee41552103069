package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"event-agent/models"
)

// Column names as exported by the upstream event pipeline.
const (
	colTitle       = "title"
	colDescription = "description"
	colOrg         = "org_title"
	colStartDate   = "start_date_date"
	colLocation    = "primary_loc"
	colTheme       = "Topical Theme"
	colMood        = "Mood/Intent"
)

var requiredColumns = []string{
	colTitle, colDescription, colOrg, colStartDate, colLocation, colTheme, colMood,
}

// Date layouts seen in the source exports, most common first.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// Catalog is the immutable in-memory event table, loaded once per process.
type Catalog struct {
	events []models.Event
	byKey  map[string]int
}

// Load reads the events CSV into memory. A missing file or a missing
// required column is returned as an error; the caller treats it as fatal.
// Blank or unparsable dates are kept as zero values rather than failing
// the whole load.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open events file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read events header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("events file missing required column %q", col)
		}
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read events rows: %w", err)
	}

	field := func(row []string, col string) string {
		if i := idx[col]; i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	cat := &Catalog{
		events: make([]models.Event, 0, len(rows)),
		byKey:  make(map[string]int, len(rows)),
	}
	for _, row := range rows {
		e := models.Event{
			Title:       field(row, colTitle),
			Description: field(row, colDescription),
			OrgTitle:    field(row, colOrg),
			StartDate:   parseDate(field(row, colStartDate)),
			Location:    field(row, colLocation),
			Theme:       field(row, colTheme),
			Mood:        field(row, colMood),
		}
		cat.events = append(cat.events, e)
		// First occurrence wins when two rows share a key.
		if _, ok := cat.byKey[e.Key()]; !ok {
			cat.byKey[e.Key()] = len(cat.events) - 1
		}
	}
	return cat, nil
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Events returns the full table in source order. Callers must not modify
// the returned slice.
func (c *Catalog) Events() []models.Event {
	return c.events
}

// Len returns the number of loaded events.
func (c *Catalog) Len() int {
	return len(c.events)
}

// ByKey looks an event up by its stable key.
func (c *Catalog) ByKey(key string) (models.Event, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return models.Event{}, false
	}
	return c.events[i], true
}

// Themes returns the distinct non-empty theme values, sorted.
func (c *Catalog) Themes() []string {
	return c.distinct(func(e models.Event) string { return e.Theme })
}

// Moods returns the distinct non-empty mood values, sorted.
func (c *Catalog) Moods() []string {
	return c.distinct(func(e models.Event) string { return e.Mood })
}

// Locations returns the distinct non-empty location values, sorted.
func (c *Catalog) Locations() []string {
	return c.distinct(func(e models.Event) string { return e.Location })
}

func (c *Catalog) distinct(get func(models.Event) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, e := range c.events {
		v := get(e)
		if v != "" && !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}
