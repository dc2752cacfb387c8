package services

import (
	"context"

	"github.com/whymsicalc/ratings/internal/logger"
	"github.com/whymsicalc/ratings/internal/models"
)

// UserCatalogReader defines the user read operations the catalog needs.
type UserCatalogReader interface {
	List(ctx context.Context) ([]models.UserDB, error)
	GetByID(ctx context.Context, userID int64) (*models.UserDB, error)
}

// MovieCatalogReader defines the movie read operations the catalog needs.
type MovieCatalogReader interface {
	List(ctx context.Context) ([]models.MovieDB, error)
	GetByID(ctx context.Context, movieID int64) (*models.MovieDB, error)
}

// CatalogService serves the browse pages: user and movie listings and profiles.
type CatalogService struct {
	users  UserCatalogReader
	movies MovieCatalogReader
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(users UserCatalogReader, movies MovieCatalogReader) *CatalogService {
	return &CatalogService{users: users, movies: movies}
}

// ListUsers returns all registered users ordered by id.
func (s *CatalogService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// GetUser returns the user with the given id, or nil when absent. An absent
// user is not an error; the profile page renders an empty profile for it.
func (s *CatalogService) GetUser(ctx context.Context, userID int64) (*models.UserDB, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, err
	}
	return user, nil
}

// ListMovies returns all movies ordered by title ascending.
func (s *CatalogService) ListMovies(ctx context.Context) ([]models.MovieDB, error) {
	movies, err := s.movies.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list movies", "error", err)
		return nil, err
	}
	return movies, nil
}

// GetMovie returns the movie with the given id, or nil when absent.
func (s *CatalogService) GetMovie(ctx context.Context, movieID int64) (*models.MovieDB, error) {
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		logger.Log.Errorw("failed to get movie", "movie_id", movieID, "error", err)
		return nil, err
	}
	return movie, nil
}
