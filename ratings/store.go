package ratings

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"event-agent/models"
)

// ErrScoreOutOfRange rejects submissions outside the configured bounds.
var ErrScoreOutOfRange = errors.New("score out of range")

// Store persists ratings in an append-only table and serves per-event
// averages back to the recommendation scorer.
type Store struct {
	db  *gorm.DB
	min int
	max int
}

// NewStore wraps db with the accepted score range.
func NewStore(db *gorm.DB, minScore, maxScore int) *Store {
	return &Store{db: db, min: minScore, max: maxScore}
}

// Add validates and appends one rating, returning the stored record and
// the event's updated average. The store is untouched when validation
// fails.
func (s *Store) Add(eventKey string, score int, comment string) (models.Rating, float64, error) {
	if score < s.min || score > s.max {
		return models.Rating{}, 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrScoreOutOfRange, score, s.min, s.max)
	}

	r := models.Rating{
		ID:       uuid.NewString(),
		EventKey: eventKey,
		Score:    score,
		Comment:  comment,
	}
	if err := s.db.Create(&r).Error; err != nil {
		return models.Rating{}, 0, err
	}

	avg, err := s.Average(eventKey)
	return r, avg, err
}

// Average returns the mean stored score for the event, or 0 when unrated.
func (s *Store) Average(eventKey string) (float64, error) {
	var avg float64
	err := s.db.Model(&models.Rating{}).
		Where("event_key = ?", eventKey).
		Select("COALESCE(AVG(score), 0)").
		Scan(&avg).Error
	return avg, err
}

// AverageAll returns the average for every rated event, keyed by event.
func (s *Store) AverageAll() (map[string]float64, error) {
	var rows []struct {
		EventKey string
		Avg      float64
	}
	err := s.db.Model(&models.Rating{}).
		Select("event_key, AVG(score) AS avg").
		Group("event_key").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	averages := make(map[string]float64, len(rows))
	for _, row := range rows {
		averages[row.EventKey] = row.Avg
	}
	return averages, nil
}

// ByEvent lists the stored ratings for one event, newest first.
func (s *Store) ByEvent(eventKey string) ([]models.Rating, error) {
	var rs []models.Rating
	err := s.db.
		Where("event_key = ?", eventKey).
		Order("created_at DESC").
		Find(&rs).Error
	return rs, err
}

// Count returns the total number of stored ratings.
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.Model(&models.Rating{}).Count(&n).Error
	return n, err
}

// OverallAverage returns the mean of all stored scores, or 0 when the
// store is empty.
func (s *Store) OverallAverage() (float64, error) {
	var avg float64
	err := s.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0)").
		Scan(&avg).Error
	return avg, err
}
