package models

// RatingEvent is the activity record published to Kafka when a rating is submitted.
type RatingEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Timestamp int64  `json:"timestamp"` // Unix timestamp of the submission
	UserID    int64  `json:"user_id"`   // Rating author
	MovieID   int64  `json:"movie_id"`  // Rated movie
	Score     int    `json:"score"`     // Submitted score
	Operation string `json:"operation"` // "created" or "updated"
}
