package handlers

import (
	"bytes"
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

	"github.com/SpeedyGonzale5/game-captcha/internal/analysis"
	"github.com/SpeedyGonzale5/game-captcha/internal/config"
	"github.com/SpeedyGonzale5/game-captcha/internal/events"
	"github.com/SpeedyGonzale5/game-captcha/internal/game"
)

func init() {
	gin.SetMode(gin.TestMode)

	def := analysis.DefaultConfig()
	config.Conf = &config.Config{
		Security: config.SecurityConfig{
			MinReactionTime:     def.MinReactionTime,
			MaxReactionTime:     def.MaxReactionTime,
			MinAccuracy:         def.MinAccuracy,
			HumanScoreThreshold: def.HumanScoreThreshold,
			MaxMouseSpeed:       def.MaxMouseSpeed,
			MinMouseVariance:    def.MinMouseVariance,
		},
	}
}

type verifyFixture struct {
	router *gin.Engine
	store  *game.Store
	ring   *events.Ring
}

func newVerifyFixture() verifyFixture {
	store := game.NewStore(time.Minute, zap.NewNop())
	ring := events.NewRing(100)

	router := gin.New()
	router.Use(sessions.Sessions("captcha_session", cookie.NewStore([]byte("test-secret"))))
	handler := NewVerifyHandler(zap.NewNop(), store, ring)
	router.POST("/api/verify", handler.Verify)

	return verifyFixture{router: router, store: store, ring: ring}
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestVerify_RejectsMissingAnalytics(t *testing.T) {
	f := newVerifyFixture()

	w := postJSON(t, f.router, "/api/verify", gin.H{"gameType": "shooter"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Analytics data is required")
}

func TestVerify_RejectsUnknownGameType(t *testing.T) {
	f := newVerifyFixture()

	w := postJSON(t, f.router, "/api/verify", gin.H{
		"gameType":  "chess",
		"analytics": gin.H{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown game type")
}

func TestVerify_RejectsInconsistentShooterSnapshot(t *testing.T) {
	f := newVerifyFixture()

	w := postJSON(t, f.router, "/api/verify", gin.H{
		"gameType":  "shooter",
		"analytics": gin.H{"shots": 2, "hits": 5},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerify_ShooterVerdict(t *testing.T) {
	f := newVerifyFixture()
	session := f.store.Create(game.TypeShooter, "")

	w := postJSON(t, f.router, "/api/verify", gin.H{
		"sessionId": session.ID,
		"gameType":  "shooter",
		"score":     3,
		"analytics": gin.H{
			"shots": 10,
			"hits":  6,
			"reactionTimes": []float64{250, 400, 310, 520, 280},
			"clickTimes":    []float64{0, 500, 1700, 2000, 4100},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success      bool `json:"success"`
		Verification struct {
			IsHuman   bool   `json:"isHuman"`
			Score     int    `json:"score"`
			SessionID string `json:"sessionId"`
		} `json:"verification"`
		Analytics struct {
			Breakdown map[string]json.RawMessage `json:"breakdown"`
			GameData  map[string]any             `json:"gameData"`
		} `json:"analytics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, session.ID, resp.Verification.SessionID)
	assert.GreaterOrEqual(t, resp.Verification.Score, 0)
	assert.LessOrEqual(t, resp.Verification.Score, 100)
	assert.Len(t, resp.Analytics.Breakdown, 4)
	assert.Equal(t, 0.6, resp.Analytics.GameData["accuracy"])

	// The verdict lands on the session and in the event log.
	result, ok := session.Result()
	require.True(t, ok)
	assert.Equal(t, resp.Verification.Score, result.TotalScore)
	assert.Equal(t, 1, f.ring.Len())
	assert.Equal(t, "verification", f.ring.Snapshot()[0].EventType)
}

func TestVerify_DrawingUsesAnalyticsStrokes(t *testing.T) {
	f := newVerifyFixture()

	w := postJSON(t, f.router, "/api/verify", gin.H{
		"gameType": "drawing",
		"prompt":   "a fish",
		"analytics": gin.H{
			"strokes": []gin.H{
				{
					"points": []gin.H{
						{"x": 10, "y": 10, "timestamp": 0},
						{"x": 60, "y": 20, "timestamp": 40},
						{"x": 120, "y": 15, "timestamp": 90},
					},
					"startTime": 0,
					"endTime":   90,
				},
			},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Verification struct {
			SessionID string `json:"sessionId"`
		} `json:"verification"`
		Analytics struct {
			Breakdown map[string]json.RawMessage `json:"breakdown"`
			GameData  map[string]any             `json:"gameData"`
		} `json:"analytics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Len(t, resp.Analytics.Breakdown, 3)
	assert.Equal(t, float64(1), resp.Analytics.GameData["strokes"])
	// Cold verification calls without a session still get an identifier.
	assert.NotEmpty(t, resp.Verification.SessionID)
}

func TestVerify_SecondAttemptKeepsFirstResult(t *testing.T) {
	f := newVerifyFixture()
	session := f.store.Create(game.TypeShooter, "")

	body := gin.H{
		"sessionId": session.ID,
		"gameType":  "shooter",
		"analytics": gin.H{"shots": 10, "hits": 6},
	}
	require.Equal(t, http.StatusOK, postJSON(t, f.router, "/api/verify", body).Code)
	first, ok := session.Result()
	require.True(t, ok)

	body["analytics"] = gin.H{"shots": 10, "hits": 10, "reactionTimes": []float64{1, 1, 1}}
	require.Equal(t, http.StatusOK, postJSON(t, f.router, "/api/verify", body).Code)

	second, ok := session.Result()
	require.True(t, ok)
	assert.Equal(t, first, second)
}
