package middlewares

import (
	"context"
	"net/http"

	"github.com/whymsicalc/ratings/internal/jwt"
	"github.com/whymsicalc/ratings/internal/logger"
)

// SessionTokener defines the cookie token operations needed by the middleware.
type SessionTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetSessionID(ctx context.Context, tokenString string) (string, error)
	Generate(ctx context.Context, sessionID string) (string, error)
}

// SessionResolver defines the session store operations needed by the middleware.
type SessionResolver interface {
	NewSessionID() string
	User(ctx context.Context, sessionID string) (int64, error)
}

// SessionMiddleware attaches a session to every request. A missing, expired
// or tampered cookie gets a fresh anonymous session rather than an error:
// every page renders for guests. The session id and the authenticated user
// id (0 for anonymous) are placed in the request context.
func SessionMiddleware(tokener SessionTokener, store SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var sessionID string
			if tokenString, err := tokener.GetTokenFromRequest(ctx, r); err == nil {
				sessionID, err = tokener.GetSessionID(ctx, tokenString)
				if err != nil {
					logger.Log.Infow("session cookie rejected", "err", err)
					sessionID = ""
				}
			}

			if sessionID == "" {
				sessionID = store.NewSessionID()
				tokenString, err := tokener.Generate(ctx, sessionID)
				if err != nil {
					logger.Log.Errorw("failed to sign session token", "err", err)
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     jwt.CookieName,
					Value:    tokenString,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			userID, err := store.User(ctx, sessionID)
			if err != nil {
				logger.Log.Errorw("failed to resolve session user", "err", err)
				userID = 0
			}

			ctx = NewSessionContext(ctx, sessionID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{ name string }

var (
	sessionIDKey = contextKey{"sessionID"}
	userIDKey    = contextKey{"userID"}
)

// NewSessionContext returns a context carrying the given session id and user id.
func NewSessionContext(ctx context.Context, sessionID string, userID int64) context.Context {
	ctx = context.WithValue(ctx, sessionIDKey, sessionID)
	return context.WithValue(ctx, userIDKey, userID)
}

// SessionIDFromContext retrieves the session id from the context. Returns "" if not present.
func SessionIDFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(sessionIDKey).(string)
	return sessionID
}

// UserIDFromContext retrieves the authenticated user id from the context.
// Returns 0 for anonymous requests.
func UserIDFromContext(ctx context.Context) int64 {
	userID, _ := ctx.Value(userIDKey).(int64)
	return userID
}
