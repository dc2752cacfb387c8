package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/whymsicalc/ratings/internal/logger"
	"github.com/whymsicalc/ratings/internal/middlewares"
	"github.com/whymsicalc/ratings/internal/services"
)

// RatingSubmitter defines the interface that the rating service must implement.
type RatingSubmitter interface {
	Submit(ctx context.Context, userID, movieID int64, score int) (bool, error)
}

// NewRateMovieHandler returns the handler for POST /movies/{movieID}.
// Requires an authenticated session; anonymous submissions are redirected to
// the login page instead of being written.
func NewRateMovieHandler(svc RatingSubmitter, notices FlashPusher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		moviePath := fmt.Sprintf("/movies/%d", movieID)

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		// A malformed score takes the same path as an out-of-range one.
		score, err := strconv.Atoi(r.PostFormValue("rating"))
		if err != nil {
			score = 0
		}

		userID := middlewares.UserIDFromContext(ctx)

		created, err := svc.Submit(ctx, userID, movieID, score)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAuthenticationRequired):
				flash(ctx, notices, "Log in to rate movies")
				http.Redirect(w, r, "/login-page", http.StatusSeeOther)
			case errors.Is(err, services.ErrInvalidScore):
				flash(ctx, notices, "Choose a rating between 1 and 5")
				http.Redirect(w, r, moviePath, http.StatusSeeOther)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
			return
		}

		if created {
			flash(ctx, notices, "Rating added")
		} else {
			flash(ctx, notices, "Rating updated")
		}
		http.Redirect(w, r, moviePath, http.StatusSeeOther)
	}
}
