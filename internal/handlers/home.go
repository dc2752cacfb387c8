package handlers

import "net/http"

// NewHomeHandler returns the handler for GET /.
func NewHomeHandler(rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, r, "homepage.html", "Home", nil)
	}
}
