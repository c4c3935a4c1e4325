package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/cornergame/internal/dependencies/mocks"
	"github.com/mcoot/cornergame/internal/testutil"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	rnd := mocks.NewMockRandom()
	rnd.QueueString("abc123def456")

	var seen string
	h := RequestID(rnd)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "abc123def456", seen)
	assert.Equal(t, "abc123def456", rec.Header().Get("X-Request-ID"))
}

func TestRequestID_ReusesCallerHeader(t *testing.T) {
	var seen string
	h := RequestID(mocks.NewMockRandom())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "from-client")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "from-client", seen)
}

func TestLogging_CapturesStatusAndSize(t *testing.T) {
	var wrapped *ResponseWriter
	h := Logging(testutil.NopLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wrapped = w.(*ResponseWriter)
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, http.StatusTeapot, wrapped.Status())
	assert.Equal(t, len("short and stout"), wrapped.Size())
}

func TestRecovery_WritesPanicResponse(t *testing.T) {
	h := Recovery(testutil.NopLogger(), DefaultPanicHandler)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
