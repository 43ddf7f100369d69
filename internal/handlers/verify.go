// server-side verification endpoint
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SpeedyGonzale5/game-captcha/internal/analysis"
	"github.com/SpeedyGonzale5/game-captcha/internal/config"
	"github.com/SpeedyGonzale5/game-captcha/internal/events"
	"github.com/SpeedyGonzale5/game-captcha/internal/game"
	"github.com/SpeedyGonzale5/game-captcha/internal/models"
	"github.com/SpeedyGonzale5/game-captcha/internal/utils"
)

type VerifyHandler struct {
	log   *zap.Logger
	store *game.Store
	ring  *events.Ring
}

func NewVerifyHandler(log *zap.Logger, store *game.Store, ring *events.Ring) *VerifyHandler {
	return &VerifyHandler{log: log, store: store, ring: ring}
}

// verifyRequest is the transport payload for a verification call. The
// analytics field is decoded per game type into the matching snapshot.
type verifyRequest struct {
	SessionID string              `json:"sessionId"`
	GameType  string              `json:"gameType"`
	Score     int                 `json:"score"`
	Prompt    string              `json:"prompt"`
	Analytics json.RawMessage     `json:"analytics"`
	Drawing   *models.DrawingData `json:"drawing"`
}

// Verify scores a finalized telemetry snapshot and returns the
// verification verdict with its full breakdown.
func (h *VerifyHandler) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Failed to bind verification request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if len(req.Analytics) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Analytics data is required"})
		return
	}
	if req.GameType == "" {
		req.GameType = game.TypeShooter
	}

	// Thresholds are read per request so config hot reloads take effect.
	analyzer := analysis.New(config.Conf.Security.AnalyzerConfig())

	var result models.HumanVerificationResult
	gameData := gin.H{"type": req.GameType, "finalScore": req.Score}

	switch req.GameType {
	case game.TypeShooter:
		var analytics models.ShooterAnalytics
		if err := json.Unmarshal(req.Analytics, &analytics); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shooter analytics"})
			return
		}
		if problem := utils.ValidateShooterSnapshot(&analytics); problem != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": problem})
			return
		}
		result = analyzer.ScoreShooterSession(analytics)

		accuracy := 0.0
		if analytics.Shots > 0 {
			accuracy = float64(analytics.Hits) / float64(analytics.Shots)
		}
		gameData["shots"] = analytics.Shots
		gameData["hits"] = analytics.Hits
		gameData["accuracy"] = accuracy
		if analytics.EndTime > 0 {
			gameData["duration"] = analytics.EndTime - analytics.StartTime
		}

	case game.TypeDrawing:
		var analytics models.DrawingAnalytics
		if err := json.Unmarshal(req.Analytics, &analytics); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid drawing analytics"})
			return
		}
		drawing := req.Drawing
		if drawing == nil {
			drawing = &models.DrawingData{Strokes: analytics.Strokes}
		}
		if problem := utils.ValidateDrawingSnapshot(drawing); problem != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": problem})
			return
		}
		result = analyzer.ScoreDrawingSession(*drawing, req.Prompt, analytics)

		gameData["strokes"] = len(drawing.Strokes)
		gameData["prompt"] = req.Prompt
		if analytics.EndTime > 0 {
			gameData["duration"] = analytics.EndTime - analytics.StartTime
		}

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown game type"})
		return
	}

	sessionID := h.resolveSessionID(c, req.SessionID)
	if session, ok := h.store.Get(sessionID); ok {
		if !session.RecordResult(result) {
			h.log.Warn("Session already verified", zap.String("sessionID", sessionID))
		}
	}

	h.ring.Append(events.Event{
		ID:        events.NewEventID(),
		SessionID: sessionID,
		EventType: "verification",
		Data: map[string]any{
			"gameType":   req.GameType,
			"humanScore": result.TotalScore,
			"isHuman":    result.IsHuman,
		},
		Timestamp: float64(time.Now().UnixMilli()),
		UserAgent: c.Request.UserAgent(),
		RemoteIP:  c.ClientIP(),
	})

	h.log.Info("Verification attempt",
		zap.String("sessionID", sessionID),
		zap.String("gameType", req.GameType),
		zap.Int("humanScore", result.TotalScore),
		zap.Bool("isHuman", result.IsHuman),
		zap.String("confidence", string(result.Confidence)),
	)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"verification": gin.H{
			"isHuman":        result.IsHuman,
			"score":          result.TotalScore,
			"confidence":     result.Confidence,
			"recommendation": result.Recommendation,
			"sessionId":      sessionID,
			"timestamp":      time.Now().UTC().Format(time.RFC3339),
		},
		"analytics": gin.H{
			"breakdown": result.Breakdown,
			"gameData":  gameData,
		},
	})
}

// resolveSessionID prefers the explicit request ID, falls back to the
// session cookie, and mints a fresh ID for cold verification calls.
func (h *VerifyHandler) resolveSessionID(c *gin.Context, requested string) string {
	if requested != "" {
		return requested
	}
	session := sessions.Default(c)
	if id, ok := session.Get("sessionID").(string); ok && id != "" {
		return id
	}
	return game.NewSessionID()
}
