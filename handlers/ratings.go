package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"event-agent/ratings"
)

type SubmitRatingRequest struct {
	Score   int    `json:"score" binding:"required"`
	Comment string `json:"comment"`
}

// SubmitRating appends a rating for an event in the catalog and returns
// the updated average. Out-of-range scores are rejected without touching
// the store.
func (h *Handler) SubmitRating(c *gin.Context) {
	key := c.Param("key")
	if _, ok := h.catalog.ByKey(key); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	rating, avg, err := h.store.Add(key, req.Score, req.Comment)
	if errors.Is(err, ratings.ErrScoreOutOfRange) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save rating"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"rating":         rating,
		"average_rating": avg,
	})
}

// GetRatings lists the stored ratings for an event, newest first.
func (h *Handler) GetRatings(c *gin.Context) {
	key := c.Param("key")
	if _, ok := h.catalog.ByKey(key); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	stored, err := h.store.ByEvent(key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ratings"})
		return
	}
	avg, err := h.store.Average(key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load rating average"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ratings":        stored,
		"average_rating": avg,
	})
}
