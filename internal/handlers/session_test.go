package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SpeedyGonzale5/game-captcha/internal/game"
	"github.com/SpeedyGonzale5/game-captcha/internal/models"
)

func newSessionFixture() (*gin.Engine, *game.Store) {
	store := game.NewStore(time.Minute, zap.NewNop())
	catalog := &models.PromptCatalog{Prompts: []models.Prompt{
		{Text: "a fish", Category: "animal"},
	}}

	router := gin.New()
	router.Use(sessions.Sessions("captcha_session", cookie.NewStore([]byte("test-secret"))))
	handler := NewSessionHandler(zap.NewNop(), store, catalog)
	router.POST("/api/session", handler.Create)
	router.GET("/api/prompts", handler.RandomPrompt)
	return router, store
}

func TestCreateSession_ShooterDefault(t *testing.T) {
	router, store := newSessionFixture()

	w := postJSON(t, router, "/api/session", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SessionID   string `json:"sessionId"`
		GameType    string `json:"gameType"`
		TargetScore int    `json:"targetScore"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, game.TypeShooter, resp.GameType)
	assert.Equal(t, game.TargetScore, resp.TargetScore)

	session, ok := store.Get(resp.SessionID)
	require.True(t, ok)
	assert.False(t, session.Verified())

	// The session cookie binds the client to the new session.
	assert.NotEmpty(t, w.Result().Cookies())
}

func TestCreateSession_DrawingGetsPrompt(t *testing.T) {
	router, _ := newSessionFixture()

	w := postJSON(t, router, "/api/session", gin.H{"gameType": "drawing"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		GameType string `json:"gameType"`
		Prompt   string `json:"prompt"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, game.TypeDrawing, resp.GameType)
	assert.Equal(t, "a fish", resp.Prompt)
}

func TestCreateSession_ExplicitPromptKept(t *testing.T) {
	router, store := newSessionFixture()

	w := postJSON(t, router, "/api/session", gin.H{"gameType": "drawing", "prompt": "a rocket"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SessionID string `json:"sessionId"`
		Prompt    string `json:"prompt"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a rocket", resp.Prompt)

	session, ok := store.Get(resp.SessionID)
	require.True(t, ok)
	assert.Equal(t, "a rocket", session.Prompt)
}

func TestCreateSession_RejectsUnknownGameType(t *testing.T) {
	router, _ := newSessionFixture()

	w := postJSON(t, router, "/api/session", gin.H{"gameType": "chess"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRandomPrompt(t *testing.T) {
	router, _ := newSessionFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/prompts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Prompt   string `json:"prompt"`
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a fish", resp.Prompt)
	assert.Equal(t, "animal", resp.Category)
}
