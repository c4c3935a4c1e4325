package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/cornergame/internal/services/game"
	"github.com/mcoot/cornergame/internal/web/handler"
	"github.com/mcoot/cornergame/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
}

// RegisterRoutes mounts the HTML pages on an existing router
func RegisterRoutes(r *mux.Router, cfg RouterConfig) {
	homeHandler := handler.NewHomeHandler()
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.Logger)

	pages := r.NewRoute().Subrouter()
	pages.Use(middleware.Recovery(cfg.Logger))
	pages.Use(middleware.Logging(cfg.Logger))

	pages.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	pages.HandleFunc("/games", homeHandler.Lookup).Methods(http.MethodGet)
	pages.HandleFunc("/games/{id}", gameHandler.View).Methods(http.MethodGet)
}

// NewRouter creates a router serving only the HTML pages
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	RegisterRoutes(r, cfg)
	return r
}
