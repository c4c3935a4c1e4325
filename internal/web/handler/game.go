package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/mcoot/cornergame/internal/model"
	"github.com/mcoot/cornergame/internal/services/game"
	"github.com/mcoot/cornergame/internal/web/templates/pages"
)

// GameHandler renders round status pages
type GameHandler struct {
	gameController *game.Controller
	logger         *slog.Logger
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(gameController *game.Controller, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		logger:         logger,
	}
}

// View renders the status page of a round
func (h *GameHandler) View(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			templ.Handler(pages.Error("Round not found", "No round with ID "+string(id)+" exists."),
				templ.WithStatus(http.StatusNotFound)).ServeHTTP(w, r)
			return
		}
		h.logger.Error("failed to load round", slog.String("game_id", string(id)), slog.Any("error", err))
		templ.Handler(pages.Error("Error", "The round could not be loaded."),
			templ.WithStatus(http.StatusInternalServerError)).ServeHTTP(w, r)
		return
	}

	templ.Handler(pages.Game(g)).ServeHTTP(w, r)
}
