package internalhttp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixtureHandler(t *testing.T) {
	s := NewServer(Config{Host: "127.0.0.1", Port: 0})

	t.Run("serves the fixture array", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		rec := httptest.NewRecorder()
		s.srv.Handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var records []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
		require.NotEmpty(t, records)
		for _, r := range records {
			require.Contains(t, r, "id")
			require.Contains(t, r, "start")
			require.Contains(t, r, "user_det")
		}
	})

	t.Run("rejects non-GET", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/events", nil)
		rec := httptest.NewRecorder()
		s.srv.Handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("unknown path", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/other", nil)
		rec := httptest.NewRecorder()
		s.srv.Handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
