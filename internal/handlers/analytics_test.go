package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SpeedyGonzale5/game-captcha/internal/events"
)

func newAnalyticsFixture() (*gin.Engine, *events.Ring) {
	ring := events.NewRing(100)
	router := gin.New()
	handler := NewAnalyticsHandler(zap.NewNop(), ring)
	router.POST("/api/analytics", handler.SaveEvent)
	router.GET("/api/analytics", handler.QueryEvents)
	return router, ring
}

func TestSaveEvent(t *testing.T) {
	router, ring := newAnalyticsFixture()

	w := postJSON(t, router, "/api/analytics", gin.H{
		"sessionId": "session_1",
		"eventType": "game_start",
		"data":      gin.H{"gameType": "shooter"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		EventID string `json:"eventId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.EventID)

	require.Equal(t, 1, ring.Len())
	stored := ring.Snapshot()[0]
	assert.Equal(t, "session_1", stored.SessionID)
	assert.Equal(t, "game_start", stored.EventType)
	// A missing client timestamp is backfilled server-side.
	assert.Greater(t, stored.Timestamp, 0.0)
}

func TestSaveEvent_RequiresSessionAndType(t *testing.T) {
	router, ring := newAnalyticsFixture()

	w := postJSON(t, router, "/api/analytics", gin.H{"eventType": "click"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, router, "/api/analytics", gin.H{"sessionId": "session_1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, 0, ring.Len())
}

func TestQueryEvents(t *testing.T) {
	router, ring := newAnalyticsFixture()
	for i, sessionID := range []string{"s1", "s2", "s1", "s1"} {
		ring.Append(events.Event{
			ID:        events.NewEventID(),
			SessionID: sessionID,
			EventType: "click",
			Timestamp: float64(i + 1),
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/api/analytics?sessionId=s1&limit=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success    bool           `json:"success"`
		Events     []events.Event `json:"events"`
		Statistics events.Stats   `json:"statistics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	require.Len(t, resp.Events, 2)
	for _, e := range resp.Events {
		assert.Equal(t, "s1", e.SessionID)
	}
	assert.Equal(t, 2, resp.Statistics.TotalEvents)
}

func TestQueryEvents_RejectsBadLimit(t *testing.T) {
	router, _ := newAnalyticsFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/analytics?limit=zero", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
