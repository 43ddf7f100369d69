package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SpeedyGonzale5/game-captcha/internal/events"
)

type AnalyticsHandler struct {
	log  *zap.Logger
	ring *events.Ring
}

func NewAnalyticsHandler(log *zap.Logger, ring *events.Ring) *AnalyticsHandler {
	return &AnalyticsHandler{log: log, ring: ring}
}

type analyticsEventRequest struct {
	SessionID string         `json:"sessionId"`
	EventType string         `json:"eventType"`
	Data      map[string]any `json:"data"`
	Timestamp float64        `json:"timestamp"`
}

// SaveEvent ingests one analytics event into the bounded event log.
func (h *AnalyticsHandler) SaveEvent(c *gin.Context) {
	var req analyticsEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Failed to bind analytics event", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.SessionID == "" || req.EventType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "SessionId and eventType are required"})
		return
	}
	if req.Timestamp == 0 {
		req.Timestamp = float64(time.Now().UnixMilli())
	}

	event := events.Event{
		ID:        events.NewEventID(),
		SessionID: req.SessionID,
		EventType: req.EventType,
		Data:      req.Data,
		Timestamp: req.Timestamp,
		UserAgent: c.Request.UserAgent(),
		RemoteIP:  c.ClientIP(),
	}
	h.ring.Append(event)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"eventId": event.ID,
	})
}

// QueryEvents returns recent analytics events, optionally filtered by
// session ID, with summary statistics.
func (h *AnalyticsHandler) QueryEvents(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	results := h.ring.Query(c.Query("sessionId"), limit)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"events":     results,
		"statistics": events.Summarize(results),
	})
}
