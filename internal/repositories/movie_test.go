package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestMovieReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieReadRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"movie_id", "title", "released_at", "imdb_url", "created_at"}).
		AddRow(int64(2), "Alien", nil, nil, now).
		AddRow(int64(1), "Brazil", nil, nil, now)

	mock.ExpectQuery(`(?s)SELECT movie_id, title, released_at, imdb_url, created_at.*FROM movies.*ORDER BY title`).
		WillReturnRows(rows)

	movies, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, movies, 2)
	assert.Equal(t, "Alien", movies[0].Title)
	assert.Equal(t, "Brazil", movies[1].Title)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieReadRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"movie_id", "title", "released_at", "imdb_url", "created_at"}).
		AddRow(int64(7), "Casablanca", nil, "https://www.imdb.com/title/tt0034583/", now)

	mock.ExpectQuery(`(?s)SELECT movie_id, title, released_at, imdb_url, created_at.*FROM movies.*WHERE movie_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	movie, err := repo.GetByID(context.Background(), 7)
	assert.NoError(t, err)
	assert.NotNil(t, movie)
	assert.Equal(t, "Casablanca", movie.Title)
	assert.True(t, movie.IMDBURL.Valid)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieReadRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieReadRepository(db)

	mock.ExpectQuery(`(?s)SELECT movie_id, title, released_at, imdb_url, created_at.*FROM movies.*WHERE movie_id = \$1`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	movie, err := repo.GetByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, movie)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieReadRepository_List_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieReadRepository(db)

	mock.ExpectQuery(`(?s)SELECT movie_id, title, released_at, imdb_url, created_at.*FROM movies.*ORDER BY title`).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.List(context.Background())
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
