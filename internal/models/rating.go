package models

import "time"

// Rating score bounds accepted on submission.
const (
	MinScore = 1
	MaxScore = 5
)

// RatingDB represents a rating row in the database.
// At most one row exists per (user_id, movie_id), enforced by a unique constraint.
type RatingDB struct {
	RatingID  int64     `json:"rating_id" db:"rating_id"`   // Primary key
	UserID    int64     `json:"user_id" db:"user_id"`       // Rating author
	MovieID   int64     `json:"movie_id" db:"movie_id"`     // Rated movie
	Score     int       `json:"score" db:"score"`           // Score in [MinScore, MaxScore]
	CreatedAt time.Time `json:"created_at" db:"created_at"` // First submission timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last overwrite timestamp
}
