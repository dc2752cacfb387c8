package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/whymsicalc/ratings/internal/logger"
	"github.com/whymsicalc/ratings/internal/middlewares"
	"github.com/whymsicalc/ratings/internal/models"
	"github.com/whymsicalc/ratings/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.UserDB, error)
}

// SessionBinder binds an authenticated user to the browser session.
type SessionBinder interface {
	SetUser(ctx context.Context, sessionID string, userID int64) error
	PushFlash(ctx context.Context, sessionID, message string) error
}

// NewLoginFormHandler returns the handler for GET /login-page.
func NewLoginFormHandler(rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, r, "login.html", "Log in", nil)
	}
}

// NewLoginHandler returns the handler for POST /login-page. On success the
// session is bound to the user and the browser lands on the user's profile;
// an unknown email and a wrong password surface as the same notice.
func NewLoginHandler(svc Loginer, store SessionBinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		email := r.PostFormValue("email")
		password := r.PostFormValue("password")

		user, err := svc.Login(ctx, email, password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrUserDoesNotExist):
				flash(ctx, store, "Incorrect email/password")
				http.Redirect(w, r, "/login-page", http.StatusSeeOther)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
			return
		}

		sessionID := middlewares.SessionIDFromContext(ctx)
		if err := store.SetUser(ctx, sessionID, user.UserID); err != nil {
			logger.Log.Errorw("failed to bind session", "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		flash(ctx, store, "Logged in")
		http.Redirect(w, r, fmt.Sprintf("/users/%d", user.UserID), http.StatusSeeOther)
	}
}
