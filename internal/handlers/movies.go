package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/whymsicalc/ratings/internal/logger"
	"github.com/whymsicalc/ratings/internal/models"
)

// MovieLister defines the interface the movie list page needs.
type MovieLister interface {
	ListMovies(ctx context.Context) ([]models.MovieDB, error)
}

// MovieGetter defines the interface the movie profile page needs.
type MovieGetter interface {
	GetMovie(ctx context.Context, movieID int64) (*models.MovieDB, error)
}

// MovieRatingsLister lists the ratings submitted for a movie.
type MovieRatingsLister interface {
	ListForMovie(ctx context.Context, movieID int64) ([]models.RatingDB, error)
}

// NewMovieListHandler returns the handler for GET /movies.
// Movies are listed ordered by title ascending.
func NewMovieListHandler(rd *Renderer, svc MovieLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		movies, err := svc.ListMovies(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		rd.Render(w, r, "movie_list.html", "Movies", movies)
	}
}

// MovieProfileData is the payload for the movie profile page.
type MovieProfileData struct {
	Movie   *models.MovieDB
	Ratings []models.RatingDB
}

// NewMovieProfileHandler returns the handler for GET /movies/{movieID}.
// Ratings are listed ordered by user id ascending.
func NewMovieProfileHandler(rd *Renderer, movies MovieGetter, ratings MovieRatingsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
		if err != nil {
			rd.Render(w, r, "movie_profile.html", "Movie", MovieProfileData{})
			return
		}

		movie, err := movies.GetMovie(ctx, movieID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		data := MovieProfileData{Movie: movie}
		if movie != nil {
			if data.Ratings, err = ratings.ListForMovie(ctx, movie.MovieID); err != nil {
				logger.Log.Errorw("internal server error", "err", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
		}

		rd.Render(w, r, "movie_profile.html", "Movie", data)
	}
}
