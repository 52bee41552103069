package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStats returns a catalog and rating overview for the dashboard header.
func (h *Handler) GetStats(c *gin.Context) {
	byTheme := make(map[string]int)
	byMood := make(map[string]int)
	for _, e := range h.catalog.Events() {
		if e.Theme != "" {
			byTheme[e.Theme]++
		}
		if e.Mood != "" {
			byMood[e.Mood]++
		}
	}

	ratingCount, err := h.store.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count ratings"})
		return
	}
	averages, err := h.store.AverageAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load rating averages"})
		return
	}
	overall, err := h.store.OverallAverage()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load overall average"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_events":   h.catalog.Len(),
		"by_theme":       byTheme,
		"by_mood":        byMood,
		"rating_count":   ratingCount,
		"rated_events":   len(averages),
		"average_rating": overall,
	})
}
