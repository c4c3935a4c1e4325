package handler

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/cornergame/internal/web/templates/pages"
)

// HomeHandler serves the landing page
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home renders the landing page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	templ.Handler(pages.Home()).ServeHTTP(w, r)
}

// Lookup redirects the lookup form to the round's page
func (h *HomeHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/games/"+id, http.StatusSeeOther)
}
