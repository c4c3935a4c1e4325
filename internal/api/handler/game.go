package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/cornergame/internal/api/middleware"
	"github.com/mcoot/cornergame/internal/api/request"
	"github.com/mcoot/cornergame/internal/api/response"
	"github.com/mcoot/cornergame/internal/model"
	"github.com/mcoot/cornergame/internal/services/bot"
	"github.com/mcoot/cornergame/internal/services/game"
	"github.com/mcoot/cornergame/internal/web/sse"
)

// GameHandler handles round endpoints
type GameHandler struct {
	gameController *game.Controller
	botService     *bot.Service
	hubManager     *sse.HubManager
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller, botService *bot.Service, hubManager *sse.HubManager) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		botService:     botService,
		hubManager:     hubManager,
	}
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.CreateGameRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.gameController.CreateGame(r.Context(), player.ID, req.Size)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameStateFromModel(g))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.GetGame(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromModel(g))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	id := gameID(r)

	if err := h.gameController.DeleteGame(r.Context(), id, player.ID); err != nil {
		WriteError(w, err)
		return
	}
	if h.hubManager != nil {
		h.hubManager.RemoveHub(id)
	}

	response.NoContent(w)
}

// Select handles POST /api/v1/games/{id}/select
func (h *GameHandler) Select(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	id := gameID(r)

	var req request.SelectRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.gameController.Select(r.Context(), id, player.ID, req.Cells)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SelectResponseFromModel(result, g))
}

// Hint handles POST /api/v1/games/{id}/hint
func (h *GameHandler) Hint(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	bounds, err := h.gameController.Hint(r.Context(), gameID(r), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HintResponse{Bounds: bounds})
}

// Autoplay handles POST /api/v1/games/{id}/autoplay
func (h *GameHandler) Autoplay(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	id := gameID(r)

	var req request.AutoplayRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if h.botService == nil {
		WriteError(w, NewInvalidRequestError("autoplay is disabled"))
		return
	}
	if req.Strategy == "" {
		req.Strategy = model.BotStrategyGreedy
	}
	if req.Moves == 0 {
		req.Moves = 1
	}

	actions, err := h.botService.Play(r.Context(), id, player.ID, req.Strategy, req.Moves)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AutoplayResponseFromActions(actions, g))
}

// handleRoundAction runs a controller call that returns the updated round
func (h *GameHandler) handleRoundAction(action func(*http.Request, model.GameID, model.PlayerID) (*model.GameState, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := middleware.MustGetPlayer(r.Context())

		g, err := action(r, gameID(r), player.ID)
		if err != nil {
			WriteError(w, err)
			return
		}

		response.JSON(w, http.StatusOK, response.GameStateFromModel(g))
	}
}

// Start handles POST /api/v1/games/{id}/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.handleRoundAction(func(r *http.Request, id model.GameID, pid model.PlayerID) (*model.GameState, error) {
		return h.gameController.Start(r.Context(), id, pid)
	})(w, r)
}

// Tick handles POST /api/v1/games/{id}/tick
func (h *GameHandler) Tick(w http.ResponseWriter, r *http.Request) {
	h.handleRoundAction(func(r *http.Request, id model.GameID, pid model.PlayerID) (*model.GameState, error) {
		return h.gameController.Tick(r.Context(), id, pid)
	})(w, r)
}

// Reshuffle handles POST /api/v1/games/{id}/reshuffle
func (h *GameHandler) Reshuffle(w http.ResponseWriter, r *http.Request) {
	h.handleRoundAction(func(r *http.Request, id model.GameID, pid model.PlayerID) (*model.GameState, error) {
		return h.gameController.Reshuffle(r.Context(), id, pid)
	})(w, r)
}

// Reset handles POST /api/v1/games/{id}/reset
func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.handleRoundAction(func(r *http.Request, id model.GameID, pid model.PlayerID) (*model.GameState, error) {
		return h.gameController.Reset(r.Context(), id, pid)
	})(w, r)
}

// End handles POST /api/v1/games/{id}/end
func (h *GameHandler) End(w http.ResponseWriter, r *http.Request) {
	h.handleRoundAction(func(r *http.Request, id model.GameID, pid model.PlayerID) (*model.GameState, error) {
		return h.gameController.EndRound(r.Context(), id, pid)
	})(w, r)
}

// Events handles GET /api/v1/games/{id}/events as a server-sent event stream
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	id := gameID(r)

	if _, err := h.gameController.GetGame(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	if h.hubManager == nil {
		WriteError(w, NewInvalidRequestError("event streaming is disabled"))
		return
	}

	sse.ServeSSE(w, r, h.hubManager.GetOrCreateHub(id), player.ID)
}
