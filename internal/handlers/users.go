package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/whymsicalc/ratings/internal/logger"
	"github.com/whymsicalc/ratings/internal/models"
)

// UserLister defines the interface the user list page needs.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
}

// UserGetter defines the interface the user profile page needs.
type UserGetter interface {
	GetUser(ctx context.Context, userID int64) (*models.UserDB, error)
}

// UserRatingsLister lists the ratings a user has submitted.
type UserRatingsLister interface {
	ListForUser(ctx context.Context, userID int64) ([]models.RatingDB, error)
}

// NewUserListHandler returns the handler for GET /users.
func NewUserListHandler(rd *Renderer, svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		rd.Render(w, r, "user_list.html", "Users", users)
	}
}

// UserProfileData is the payload for the user profile page.
type UserProfileData struct {
	User    *models.UserDB
	Ratings []models.RatingDB
}

// NewUserProfileHandler returns the handler for GET /users/{userID}.
// An unknown or malformed id renders the profile page with no user; there is
// no existence check that would turn the request into an error.
func NewUserProfileHandler(rd *Renderer, users UserGetter, ratings UserRatingsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
		if err != nil {
			rd.Render(w, r, "user_profile.html", "User", UserProfileData{})
			return
		}

		user, err := users.GetUser(ctx, userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		data := UserProfileData{User: user}
		if user != nil {
			if data.Ratings, err = ratings.ListForUser(ctx, user.UserID); err != nil {
				logger.Log.Errorw("internal server error", "err", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
		}

		rd.Render(w, r, "user_profile.html", "User", data)
	}
}
