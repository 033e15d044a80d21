package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightbridge/server/internal/bridge/dispatch"
	"github.com/brightbridge/server/internal/bridge/model"
	"github.com/brightbridge/server/internal/core"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	d := dispatch.New(model.ModeMock, nil, 0)
	cfg := model.ServerConfig{MaxMessageChars: 2000, MaxNameChars: 50, MaxHistoryTurns: 10}
	return New(d, cfg, core.Testing, false).Router()
}

func postChat(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatHappyPath(t *testing.T) {
	r := testRouter(t)

	w := postChat(t, r, map[string]any{
		"category":  "therapy",
		"message":   "I feel worried",
		"user_name": "Sam",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res model.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, "therapy", res.Category)
	assert.Equal(t, model.ModeMock, res.Mode)
	assert.Contains(t, res.Reply, "Sam")
}

func TestChatBlankMessageRejected(t *testing.T) {
	r := testRouter(t)

	for _, msg := range []string{"", "   "} {
		w := postChat(t, r, map[string]any{"message": msg})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.NotEmpty(t, body["reply"])
	}
}

func TestChatOversizeMessageRejected(t *testing.T) {
	r := testRouter(t)

	w := postChat(t, r, map[string]any{"message": strings.Repeat("a", 2001)})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatMalformedBodyRejected(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatTruncatesNameAndHistory(t *testing.T) {
	r := testRouter(t)

	history := make([]model.HistoryTurn, 15)
	for i := range history {
		history[i] = model.HistoryTurn{Role: "user", Content: "turn"}
	}
	w := postChat(t, r, map[string]any{
		"message":              "hello",
		"user_name":            strings.Repeat("x", 80),
		"conversation_history": history,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res model.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Contains(t, res.Reply, strings.Repeat("x", 50))
	assert.NotContains(t, res.Reply, strings.Repeat("x", 51))
}

func TestHealth(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "mock", body["mode"])
	assert.Equal(t, "testing", body["environment"])
}

func TestCORSPreflight(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héllo", truncateRunes("héllo", 10))
	assert.Equal(t, "hél", truncateRunes("héllo", 3))
	assert.Equal(t, "héllo", truncateRunes("héllo", 0))
}
