package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inscripcli/internal/services"
)

func TestHealthCheck(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("cold start reports nil snapshot", func(t *testing.T) {
		stub := &stubEnrollmentService{serviceErr: services.ErrNoData}
		h := NewHealthHandler(stub, logger, "1.0.0")

		rec := httptest.NewRecorder()
		h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "1.0.0", body["version"])
		assert.Nil(t, body["snapshot"])
	})

	t.Run("warm reports snapshot summary", func(t *testing.T) {
		stub := &stubEnrollmentService{snapshot: okSnapshot()}
		h := NewHealthHandler(stub, logger, "1.0.0")

		rec := httptest.NewRecorder()
		h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		snapshot, ok := body["snapshot"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "gen-1", snapshot["generation"])
		assert.Equal(t, float64(1), snapshot["records"])
	})
}
