package models

import "time"

// Rating is a user-submitted score for an event. Records are append-only:
// they are never updated or deleted once stored.
type Rating struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	EventKey  string    `json:"event_key" gorm:"index"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
