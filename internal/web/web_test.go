package web_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/cornergame/internal/factory"
	"github.com/mcoot/cornergame/internal/model"
	"github.com/mcoot/cornergame/internal/web"
)

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
}

// newWebTestServer creates a new test server with all dependencies wired
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := factory.NewTestApp()

	router := web.NewRouter(web.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
	})

	return &webTestServer{
		t:       t,
		handler: router,
		app:     app,
	}
}

func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// createRound creates a round for a fresh guest and pins its board layout
func (ts *webTestServer) createRound(id string, rows ...string) *model.GameState {
	ts.t.Helper()
	ctx := context.Background()

	session, err := ts.app.AuthService.CreateGuestPlayer(ctx, "Viewer")
	require.NoError(ts.t, err)

	ts.app.MockRandom.QueueString(id)
	g, err := ts.app.GameController.CreateGame(ctx, session.Player.ID, len(rows))
	require.NoError(ts.t, err)
	require.NoError(ts.t, ts.app.PlaceBoard(ctx, g.ID, rows...))

	g, err = ts.app.GameController.GetGame(ctx, g.ID)
	require.NoError(ts.t, err)
	return g
}

// parseHTML parses an HTML response body
func parseHTML(body io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		panic(err)
	}
	return doc
}

// assertContainsText checks that an element containing the given text exists
func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	found := false
	doc.Find(selector).Each(func(i int, s *goquery.Selection) {
		if strings.Contains(s.Text(), text) {
			found = true
		}
	})
	assert.True(t, found, "expected %q to contain text %q", selector, text)
}

func TestHomePage(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "h1", "Corner Game")
	assert.Equal(t, 1, doc.Find("form#lookup input[name=id]").Length())
}

func TestLookupRedirectsToRound(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/games?id=ABC123")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/games/ABC123", rr.Header().Get("Location"))

	rr = ts.get("/games?id=")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}
