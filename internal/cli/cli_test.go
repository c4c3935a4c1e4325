package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/cornergame/internal/api"
	"github.com/mcoot/cornergame/internal/factory"
	"github.com/mcoot/cornergame/internal/model"
)

type cliHarness struct {
	app       *factory.TestApp
	serverURL string
	tokenFile string
}

func newCLIHarness(t *testing.T) *cliHarness {
	t.Helper()
	t.Setenv("CGAME_TOKEN", "")

	app := factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Random:         app.Random,
		AuthService:    app.AuthService,
		GameController: app.GameController,
		BotService:     app.BotService,
		HubManager:     app.HubManager,
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &cliHarness{
		app:       app,
		serverURL: server.URL,
		tokenFile: filepath.Join(t.TempDir(), "token"),
	}
}

func (h *cliHarness) run(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--server", h.serverURL, "--token-file", h.tokenFile}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (h *cliHarness) runJSON(t *testing.T, dest any, args ...string) {
	t.Helper()
	out, err := h.run(append([]string{"-o", "json"}, args...)...)
	require.NoError(t, err, "output: %s", out)
	require.NoError(t, json.Unmarshal([]byte(out), dest), "output: %s", out)
}

func TestParseCell(t *testing.T) {
	cell, err := parseCell("3,5")
	require.NoError(t, err)
	assert.Equal(t, Cell{X: 3, Y: 5}, cell)

	cell, err = parseCell(" 0 , 1 ")
	require.NoError(t, err)
	assert.Equal(t, Cell{X: 0, Y: 1}, cell)

	for _, bad := range []string{"", "3", "a,1", "1,b", "1;2"} {
		_, err := parseCell(bad)
		assert.Error(t, err, bad)
	}
}

func TestGamePath(t *testing.T) {
	assert.Equal(t, "/api/v1/games/g_1", gamePath("g_1"))
	assert.Equal(t, "/api/v1/games/g_1/select", gamePath("g_1", "select"))
}

func TestPrintBoardLabelsRowsTopDown(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput("text", &buf)
	out.printBoard(Board{Size: 2, Rows: []string{"RG", "BY"}})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, " 1 | RG |", lines[1])
	assert.Equal(t, " 0 | BY |", lines[2])
	assert.Equal(t, "     0 1 ", lines[4])
}

func TestPrintMessageJSON(t *testing.T) {
	var buf bytes.Buffer
	NewOutput("json", &buf).PrintMessage("hello")
	assert.JSONEq(t, `{"message":"hello"}`, buf.String())
}

func TestCLI_Health(t *testing.T) {
	h := newCLIHarness(t)

	var result HealthResult
	h.runJSON(t, &result, "health")
	assert.Equal(t, "ok", result.Status)

	out, err := h.run("health")
	require.NoError(t, err)
	assert.Equal(t, "Status: ok\n", out)
}

func TestCLI_PlayerCommands(t *testing.T) {
	h := newCLIHarness(t)

	var auth AuthResult
	h.runJSON(t, &auth, "player", "guest", "--name", "Alice")
	assert.Equal(t, "Alice", auth.Player.DisplayName)
	assert.True(t, auth.Player.IsGuest)
	assert.NotEmpty(t, auth.SessionToken)

	// Token was saved to the token file
	var me Player
	h.runJSON(t, &me, "player", "me")
	assert.Equal(t, auth.Player.ID, me.ID)

	var registered AuthResult
	h.runJSON(t, &registered, "player", "register", "--user", "bob", "--pass", "secret123")
	assert.Equal(t, "bob", registered.Player.DisplayName)
	assert.False(t, registered.Player.IsGuest)

	var loggedIn AuthResult
	h.runJSON(t, &loggedIn, "player", "login", "--user", "bob", "--pass", "secret123")
	assert.Equal(t, registered.Player.ID, loggedIn.Player.ID)

	_, err := h.run("player", "login", "--user", "bob", "--pass", "nope-nope")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
}

func TestCLI_RoundFlow(t *testing.T) {
	h := newCLIHarness(t)

	var auth AuthResult
	h.runJSON(t, &auth, "player", "guest", "--name", "Alice")

	var created GameState
	h.runJSON(t, &created, "game", "new", "--size", "2")
	assert.Equal(t, 2, created.Board.Size)
	assert.Len(t, created.Board.Rows, 2)

	// Selecting before the countdown is over is refused
	_, err := h.run("game", "select", created.ID, "0,0", "0,1", "1,0", "1,1")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "ROUND_NOT_PLAYING", apiErr.Code)

	var started GameState
	h.runJSON(t, &started, "game", "start", created.ID)
	assert.Equal(t, created.ID, started.ID)

	require.NoError(t, h.app.PlaceBoard(context.Background(), model.GameID(created.ID), "RR", "RR"))

	var hint HintResult
	h.runJSON(t, &hint, "game", "hint", created.ID)
	assert.Equal(t, Bounds{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}, hint.Bounds)

	var selected SelectResult
	h.runJSON(t, &selected, "game", "select", created.ID, "0,0", "0,1", "1,0", "1,1")
	require.True(t, selected.Accepted)
	require.NotNil(t, selected.Score)
	assert.True(t, selected.Score.Perfect)
	assert.Equal(t, 6, selected.Score.Points)
	assert.Equal(t, 6, selected.Game.Score)

	var ended GameState
	h.runJSON(t, &ended, "game", "end", created.ID)

	var rounds RoundsResult
	h.runJSON(t, &rounds, "player", "rounds", "--limit", "5")
	require.Len(t, rounds.Rounds, 1)
	assert.Equal(t, created.ID, rounds.Rounds[0].GameID)
	assert.Equal(t, 6, rounds.Rounds[0].Score)

	out, err := h.run("game", "delete", created.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted game "+created.ID)

	_, err = h.run("game", "get", created.ID)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestCLI_Autoplay(t *testing.T) {
	h := newCLIHarness(t)

	var auth AuthResult
	h.runJSON(t, &auth, "player", "guest", "--name", "Bot")

	var created GameState
	h.runJSON(t, &created, "game", "new", "--size", "2")
	h.runJSON(t, &created, "game", "start", created.ID)
	require.NoError(t, h.app.PlaceBoard(context.Background(), model.GameID(created.ID), "RR", "RR"))

	var result AutoplayResult
	h.runJSON(t, &result, "game", "autoplay", created.ID, "--strategy", "greedy")
	require.Len(t, result.Actions, 1)
	assert.Equal(t, "select", result.Actions[0].Type)
	require.NotNil(t, result.Actions[0].Score)
	assert.Equal(t, 6, result.Actions[0].Score.Points)
	assert.Equal(t, 6, result.Game.Score)

	out, err := h.run("game", "autoplay", created.ID, "--moves", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "1. ")
	assert.Contains(t, out, "Game: "+created.ID)

	_, err = h.run("game", "autoplay", created.ID, "--strategy", "psychic")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "UNKNOWN_STRATEGY", apiErr.Code)

	_, err = h.run("game", "autoplay", created.ID, "--moves", "0")
	assert.ErrorContains(t, err, "--moves must be positive")
}

func TestCLI_TextOutput(t *testing.T) {
	h := newCLIHarness(t)

	_, err := h.run("player", "guest", "--name", "Alice")
	require.NoError(t, err)

	var created GameState
	h.runJSON(t, &created, "game", "new", "--size", "3")

	out, err := h.run("game", "get", created.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Game: "+created.ID)
	assert.Contains(t, out, " 2 | "+created.Board.Rows[0]+" |")
	assert.Contains(t, out, " 0 | "+created.Board.Rows[2]+" |")
}

func TestCLI_SelectArgumentValidation(t *testing.T) {
	h := newCLIHarness(t)

	_, err := h.run("game", "select", "g_1", "0,0", "0,1", "1,0")
	assert.Error(t, err)

	_, err = h.run("game", "select", "g_1", "0,0", "0,1", "1,0", "x")
	assert.ErrorContains(t, err, "invalid cell")

	_, err = h.run("player", "rounds", "--limit", "0")
	assert.ErrorContains(t, err, "--limit must be positive")
}
