package handlers

import (
	"context"
	"html/template"
	"net/http"

	"github.com/whymsicalc/ratings/internal/logger"
	"github.com/whymsicalc/ratings/internal/middlewares"
)

// FlashPopper drains the session's queued one-shot notices at render time.
type FlashPopper interface {
	PopFlashes(ctx context.Context, sessionID string) ([]string, error)
}

// FlashPusher queues a one-shot notice for the session.
type FlashPusher interface {
	PushFlash(ctx context.Context, sessionID, message string) error
}

// Renderer executes page templates with the shared page envelope: the
// current user id, the drained flash notices, and the page payload.
type Renderer struct {
	tmpl    *template.Template
	flashes FlashPopper
}

// NewRenderer creates a Renderer over the parsed templates.
func NewRenderer(tmpl *template.Template, flashes FlashPopper) *Renderer {
	return &Renderer{tmpl: tmpl, flashes: flashes}
}

// page is the envelope every template receives.
type page struct {
	Title   string
	UserID  int64
	Flashes []string
	Data    any
}

// Render writes the named template to the response. Flash notices are
// consumed here, so they appear on exactly one rendered page.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, name, title string, data any) {
	ctx := r.Context()
	sessionID := middlewares.SessionIDFromContext(ctx)

	flashes, err := rd.flashes.PopFlashes(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to drain flashes", "err", err)
		flashes = nil
	}

	p := page{
		Title:   title,
		UserID:  middlewares.UserIDFromContext(ctx),
		Flashes: flashes,
		Data:    data,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := rd.tmpl.ExecuteTemplate(w, name, p); err != nil {
		logger.Log.Errorw("failed to render template", "template", name, "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// flash queues a notice and logs the failure; a lost notice never fails the request.
func flash(ctx context.Context, pusher FlashPusher, message string) {
	sessionID := middlewares.SessionIDFromContext(ctx)
	if err := pusher.PushFlash(ctx, sessionID, message); err != nil {
		logger.Log.Errorw("failed to queue flash", "message", message, "err", err)
	}
}
