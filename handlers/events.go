package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"event-agent/models"
	"event-agent/search"
)

const dateLayout = "2006-01-02"

// GetEvents filters the catalog by the query parameters and returns the
// matches in table order, or ranked by recommendation score when rank=true.
// No matches is an empty list, not an error.
func (h *Handler) GetEvents(c *gin.Context) {
	criteria, err := criteriaFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	rank, _ := strconv.ParseBool(c.DefaultQuery("rank", "false"))

	results := search.Filter(h.catalog.Events(), criteria, h.synonyms)

	if rank {
		averages, err := h.store.AverageAll()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load rating averages"})
			return
		}
		var terms []string
		if criteria.Keyword != "" {
			terms = h.synonyms.Expand(criteria.Keyword)
		}
		scored := search.Rank(results, terms, averages, h.weights)
		if limit > 0 && len(scored) > limit {
			scored = scored[:limit]
		}
		c.JSON(http.StatusOK, scored)
		return
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	c.JSON(http.StatusOK, results)
}

// GetEvent returns a single event with its rating average and count.
func (h *Handler) GetEvent(c *gin.Context) {
	key := c.Param("key")
	event, ok := h.catalog.ByKey(key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	avg, err := h.store.Average(key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load rating average"})
		return
	}
	stored, err := h.store.ByEvent(key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ratings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"event":          event,
		"average_rating": avg,
		"rating_count":   len(stored),
	})
}

// GetFilters returns the distinct theme, mood, and location values for
// populating selection widgets.
func (h *Handler) GetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"themes":    h.catalog.Themes(),
		"moods":     h.catalog.Moods(),
		"locations": h.catalog.Locations(),
	})
}

func criteriaFromQuery(c *gin.Context) (models.FilterCriteria, error) {
	criteria := models.FilterCriteria{
		Keyword:  c.Query("q"),
		Theme:    c.Query("theme"),
		Mood:     c.Query("mood"),
		Location: c.Query("location"),
	}

	if from := c.Query("date_from"); from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			return criteria, fmt.Errorf("invalid date_from %q, want YYYY-MM-DD", from)
		}
		criteria.DateFrom = t
	}
	if to := c.Query("date_to"); to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			return criteria, fmt.Errorf("invalid date_to %q, want YYYY-MM-DD", to)
		}
		criteria.DateTo = t
	}
	return criteria, nil
}
