package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/whymsicalc/ratings/internal/logger"
	"github.com/whymsicalc/ratings/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password string) error
}

// NewRegisterFormHandler returns the handler for GET /registration-form.
func NewRegisterFormHandler(rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, r, "registration_form.html", "Register", nil)
	}
}

// NewRegisterHandler returns the handler for POST /registration-form.
// Both outcomes land back on the homepage with a flash notice.
func NewRegisterHandler(svc Registerer, notices FlashPusher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		email := r.PostFormValue("email")
		password := r.PostFormValue("password")

		if email == "" || password == "" {
			flash(ctx, notices, "Email and password are required")
			http.Redirect(w, r, "/registration-form", http.StatusSeeOther)
			return
		}

		err := svc.Register(ctx, email, password)
		switch {
		case err == nil:
			flash(ctx, notices, "User added!")
		case errors.Is(err, services.ErrUserAlreadyExists):
			flash(ctx, notices, "User already exists")
		default:
			logger.Log.Errorw("internal server error", "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
