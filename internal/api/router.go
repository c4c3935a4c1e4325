package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/cornergame/internal/api/handler"
	"github.com/mcoot/cornergame/internal/api/middleware"
	"github.com/mcoot/cornergame/internal/dependencies/random"
	sharedmw "github.com/mcoot/cornergame/internal/middleware"
	"github.com/mcoot/cornergame/internal/services/auth"
	"github.com/mcoot/cornergame/internal/services/bot"
	"github.com/mcoot/cornergame/internal/services/game"
	"github.com/mcoot/cornergame/internal/web/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	Random         random.Random
	AuthService    *auth.Service
	GameController *game.Controller
	BotService     *bot.Service
	HubManager     *sse.HubManager
}

// RegisterRoutes mounts the API under /api/v1 on an existing router
func RegisterRoutes(r *mux.Router, cfg RouterConfig) {
	playerHandler := handler.NewPlayerHandler(cfg.AuthService, cfg.GameController)
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.BotService, cfg.HubManager)

	authMiddleware := middleware.Auth(cfg.AuthService)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	if cfg.Random != nil {
		api.Use(sharedmw.RequestID(cfg.Random))
	}
	api.Use(sharedmw.Logging(cfg.Logger))

	// Player routes (no auth required for creating players/logging in)
	api.HandleFunc("/players/guest", playerHandler.CreateGuest).Methods(http.MethodPost)
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)

	players := api.PathPrefix("/players").Subrouter()
	players.Use(authMiddleware)
	players.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)
	players.HandleFunc("/me/rounds", playerHandler.ListRounds).Methods(http.MethodGet)

	// Round routes (all require auth; mutations also require ownership)
	games := api.PathPrefix("/games").Subrouter()
	games.Use(authMiddleware)
	games.HandleFunc("", gameHandler.Create).Methods(http.MethodPost)
	games.HandleFunc("/{id}", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	games.HandleFunc("/{id}/start", gameHandler.Start).Methods(http.MethodPost)
	games.HandleFunc("/{id}/select", gameHandler.Select).Methods(http.MethodPost)
	games.HandleFunc("/{id}/hint", gameHandler.Hint).Methods(http.MethodPost)
	games.HandleFunc("/{id}/tick", gameHandler.Tick).Methods(http.MethodPost)
	games.HandleFunc("/{id}/reshuffle", gameHandler.Reshuffle).Methods(http.MethodPost)
	games.HandleFunc("/{id}/reset", gameHandler.Reset).Methods(http.MethodPost)
	games.HandleFunc("/{id}/end", gameHandler.End).Methods(http.MethodPost)
	games.HandleFunc("/{id}/autoplay", gameHandler.Autoplay).Methods(http.MethodPost)
	games.HandleFunc("/{id}/events", gameHandler.Events).Methods(http.MethodGet)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
}

// NewRouter creates a router serving only the API
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	RegisterRoutes(r, cfg)
	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
