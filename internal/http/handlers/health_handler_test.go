package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripteller/internal/ai"
)

func TestHealthHandler_Check(t *testing.T) {
	h := NewHealthHandler(ai.IdentityGemini, true, false, false, true)
	r := gin.New()
	r.GET("/api/health", h.Check)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "gemini", resp["ai_service"])
	assert.Equal(t, true, resp["maps"])
	assert.Equal(t, false, resp["weather"])
	assert.Equal(t, true, resp["elevenlabs"])
}

func TestHealthHandler_Degraded(t *testing.T) {
	h := NewHealthHandler(ai.IdentityNone, false, false, false, false)
	r := gin.New()
	r.GET("/api/health", h.Check)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "none", resp["ai_service"])
}
