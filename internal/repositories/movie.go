package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/whymsicalc/ratings/internal/logger"
	"github.com/whymsicalc/ratings/internal/models"
)

// MovieReadRepository handles movie read operations. Movies are populated by
// an external loader, so there is no write counterpart.
type MovieReadRepository struct {
	db *sqlx.DB
}

func NewMovieReadRepository(db *sqlx.DB) *MovieReadRepository {
	return &MovieReadRepository{db: db}
}

// List returns all movies ordered by title ascending.
func (r *MovieReadRepository) List(ctx context.Context) ([]models.MovieDB, error) {
	const query = `
		SELECT movie_id, title, released_at, imdb_url, created_at
		FROM movies
		ORDER BY title
	`

	var movies []models.MovieDB
	err := r.db.SelectContext(ctx, &movies, query)

	logger.Log.Infow("movie list",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(movies),
		"error", err,
	)

	return movies, err
}

// GetByID returns the movie with the given id, or (nil, nil) when absent.
func (r *MovieReadRepository) GetByID(ctx context.Context, movieID int64) (*models.MovieDB, error) {
	const query = `
		SELECT movie_id, title, released_at, imdb_url, created_at
		FROM movies
		WHERE movie_id = $1
	`

	var movie models.MovieDB
	err := r.db.GetContext(ctx, &movie, query, movieID)

	logger.Log.Infow("movie lookup",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{movieID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &movie, nil
}
