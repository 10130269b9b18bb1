package serverapp

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smp46/slaythecli/internal/config"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	h, _, err := NewHandler(Options{
		Config: config.Default(),
		Logger: zerolog.Nop(),
		Seed:   1,
	})
	require.NoError(t, err)
	return h
}

func TestNewHandler_RequiresConfig(t *testing.T) {
	_, _, err := NewHandler(Options{Logger: zerolog.Nop()})
	assert.Error(t, err)
}

func TestHandler_Healthz(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"), "middleware chain is wired")
}

func TestHandler_FullCombatOverHTTP(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/sessions",
		jsonBody(t, map[string]any{"character": "ironclad"})))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var snap struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	require.NotEmpty(t, snap.ID)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/sessions/"+snap.ID+"/end-turn", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/watch/"+snap.ID, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/watch/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_AdminRoutes(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/_/admin/routes.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var routes []struct {
		Method  string `json:"method"`
		Pattern string `json:"pattern"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &routes))
	assert.NotEmpty(t, routes)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/_/admin", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/sessions")
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}
