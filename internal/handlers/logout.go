package handlers

import (
	"context"
	"net/http"

	"github.com/whymsicalc/ratings/internal/logger"
	"github.com/whymsicalc/ratings/internal/middlewares"
)

// SessionEnder removes the user binding from the browser session.
type SessionEnder interface {
	ClearUser(ctx context.Context, sessionID string) error
	PushFlash(ctx context.Context, sessionID, message string) error
}

// NewLogoutHandler returns the handler for GET /logout. Logging out an
// already-anonymous session is a no-op, not an error.
func NewLogoutHandler(store SessionEnder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sessionID := middlewares.SessionIDFromContext(ctx)

		if err := store.ClearUser(ctx, sessionID); err != nil {
			logger.Log.Errorw("failed to clear session", "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		flash(ctx, store, "Successfully logged out!")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
