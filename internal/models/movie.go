package models

import (
	"database/sql"
	"time"
)

// MovieDB represents a movie row in the database.
// Movies are loaded by an external seeding job; this service only reads them.
type MovieDB struct {
	MovieID    int64        `json:"movie_id" db:"movie_id"`               // Primary key
	Title      string       `json:"title" db:"title"`                     // Display title, list ordering key
	ReleasedAt sql.NullTime `json:"released_at,omitempty" db:"released_at"` // Release date, may be unknown
	IMDBURL    sql.NullString `json:"imdb_url,omitempty" db:"imdb_url"`   // Link to the IMDB page, may be absent
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`           // Row creation timestamp
}
