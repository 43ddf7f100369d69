package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SpeedyGonzale5/game-captcha/internal/game"
	"github.com/SpeedyGonzale5/game-captcha/internal/models"
)

type SessionHandler struct {
	log     *zap.Logger
	store   *game.Store
	catalog *models.PromptCatalog
}

func NewSessionHandler(log *zap.Logger, store *game.Store, catalog *models.PromptCatalog) *SessionHandler {
	return &SessionHandler{log: log, store: store, catalog: catalog}
}

type createSessionRequest struct {
	GameType string `json:"gameType"`
	Prompt   string `json:"prompt"`
}

// Create starts a new verification session and binds it to the client via
// the session cookie. Drawing sessions without a prompt get one from the
// catalog.
func (h *SessionHandler) Create(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.GameType == "" {
		req.GameType = game.TypeShooter
	}
	if req.GameType != game.TypeShooter && req.GameType != game.TypeDrawing {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown game type"})
		return
	}
	if req.GameType == game.TypeDrawing && req.Prompt == "" {
		req.Prompt = h.catalog.Random().Text
	}

	gameSession := h.store.Create(req.GameType, req.Prompt)

	cookieSession := sessions.Default(c)
	cookieSession.Set("sessionID", gameSession.ID)
	if err := cookieSession.Save(); err != nil {
		h.log.Error("Failed to save session cookie", zap.Error(err))
	}

	h.log.Info("Session created",
		zap.String("sessionID", gameSession.ID),
		zap.String("gameType", gameSession.GameType),
	)

	response := gin.H{
		"sessionId": gameSession.ID,
		"gameType":  gameSession.GameType,
	}
	if gameSession.GameType == game.TypeShooter {
		response["targetScore"] = game.TargetScore
	} else {
		response["prompt"] = gameSession.Prompt
	}
	c.JSON(http.StatusOK, response)
}

// RandomPrompt serves a drawing prompt from the catalog.
func (h *SessionHandler) RandomPrompt(c *gin.Context) {
	prompt := h.catalog.Random()
	c.JSON(http.StatusOK, gin.H{
		"prompt":   prompt.Text,
		"category": prompt.Category,
	})
}
