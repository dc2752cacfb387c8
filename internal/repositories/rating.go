package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/whymsicalc/ratings/internal/logger"
	"github.com/whymsicalc/ratings/internal/models"
)

// RatingWriteRepository handles rating write operations.
type RatingWriteRepository struct {
	db *sqlx.DB
}

func NewRatingWriteRepository(db *sqlx.DB) *RatingWriteRepository {
	return &RatingWriteRepository{db: db}
}

// Upsert inserts a rating or overwrites the score of the existing row for the
// same (user_id, movie_id) pair. The unique constraint makes concurrent
// submissions for the same pair collapse into a single row. The returned bool
// is true when a new row was inserted, false when an existing one was updated.
func (r *RatingWriteRepository) Upsert(ctx context.Context, userID, movieID int64, score int) (models.RatingDB, bool, error) {
	const query = `
		INSERT INTO ratings (user_id, movie_id, score, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id, movie_id)
		DO UPDATE SET score = EXCLUDED.score, updated_at = NOW()
		RETURNING rating_id, user_id, movie_id, score, created_at, updated_at, (xmax = 0) AS inserted
	`
	args := []any{userID, movieID, score}

	var row struct {
		models.RatingDB
		Inserted bool `db:"inserted"`
	}
	err := r.db.GetContext(ctx, &row, query, args...)

	logger.Log.Infow("rating upsert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"inserted", row.Inserted,
		"error", err,
	)

	if err != nil {
		return models.RatingDB{}, false, err
	}

	return row.RatingDB, row.Inserted, nil
}

// RatingReadRepository handles rating read operations.
type RatingReadRepository struct {
	db *sqlx.DB
}

func NewRatingReadRepository(db *sqlx.DB) *RatingReadRepository {
	return &RatingReadRepository{db: db}
}

// ListByMovieID returns all ratings for a movie ordered by user id ascending.
func (r *RatingReadRepository) ListByMovieID(ctx context.Context, movieID int64) ([]models.RatingDB, error) {
	const query = `
		SELECT rating_id, user_id, movie_id, score, created_at, updated_at
		FROM ratings
		WHERE movie_id = $1
		ORDER BY user_id
	`

	var ratings []models.RatingDB
	err := r.db.SelectContext(ctx, &ratings, query, movieID)

	logger.Log.Infow("rating list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{movieID},
		"count", len(ratings),
		"error", err,
	)

	return ratings, err
}

// ListByUserID returns all ratings submitted by a user ordered by movie id.
func (r *RatingReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.RatingDB, error) {
	const query = `
		SELECT rating_id, user_id, movie_id, score, created_at, updated_at
		FROM ratings
		WHERE user_id = $1
		ORDER BY movie_id
	`

	var ratings []models.RatingDB
	err := r.db.SelectContext(ctx, &ratings, query, userID)

	logger.Log.Infow("rating list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"count", len(ratings),
		"error", err,
	)

	return ratings, err
}
