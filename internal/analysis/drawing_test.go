package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpeedyGonzale5/game-captcha/internal/models"
)

func TestScoreDrawingSession_EmptyInput(t *testing.T) {
	a := NewDefault()

	result := a.ScoreDrawingSession(models.DrawingData{}, "a fish", models.DrawingAnalytics{})
	// Strokes 0, timing 50, content 0: 0*0.3 + 50*0.3 + 0*0.4 = 15.
	assert.Equal(t, 15, result.TotalScore)
	assert.False(t, result.IsHuman)
	assert.Equal(t, models.ConfidenceVeryLow, result.Confidence)
	assert.Equal(t, "Automated or suspicious drawing behavior detected", result.Recommendation)

	require.Len(t, result.Breakdown, 3)
	assert.Equal(t, "No drawing data", result.Breakdown["strokes"].Reason)
	assert.Equal(t, "No timing data", result.Breakdown["timing"].Reason)
	assert.Equal(t, "No drawing content", result.Breakdown["content"].Reason)
}

func TestScoreDrawingSession_AnalyticsStrokesFallback(t *testing.T) {
	a := NewDefault()

	drawing := wideFishDrawing()
	analytics := models.DrawingAnalytics{Strokes: drawing.Strokes}
	empty := models.DrawingData{Dimensions: drawing.Dimensions}

	fromDrawing := a.ScoreDrawingSession(drawing, "a fish", models.DrawingAnalytics{})
	fromAnalytics := a.ScoreDrawingSession(empty, "a fish", analytics)

	assert.Equal(t, fromDrawing, fromAnalytics)
}

func TestScoreDrawingSession_ThresholdBoundary(t *testing.T) {
	cfg := DefaultConfig()
	drawing := wideFishDrawing()

	baseline := New(cfg).ScoreDrawingSession(drawing, "a fish", models.DrawingAnalytics{})

	cfg.HumanScoreThreshold = float64(baseline.TotalScore)
	pass := New(cfg).ScoreDrawingSession(drawing, "a fish", models.DrawingAnalytics{})
	assert.True(t, pass.IsHuman)

	cfg.HumanScoreThreshold = float64(baseline.TotalScore) + 1
	fail := New(cfg).ScoreDrawingSession(drawing, "a fish", models.DrawingAnalytics{})
	assert.False(t, fail.IsHuman)
	assert.Equal(t, pass.TotalScore, fail.TotalScore)
}

func TestScoreDrawingSession_BoundedAndConsistent(t *testing.T) {
	a := NewDefault()

	inputs := []models.DrawingData{
		{},
		wideFishDrawing(),
		{
			Strokes:    []models.Stroke{uniformStroke(5, 0), uniformStroke(5, 1000)},
			Dimensions: models.Dimensions{Width: 350, Height: 200},
		},
	}
	for _, drawing := range inputs {
		result := a.ScoreDrawingSession(drawing, "a cat", models.DrawingAnalytics{})
		assert.GreaterOrEqual(t, result.TotalScore, 0)
		assert.LessOrEqual(t, result.TotalScore, 100)
		assert.Equal(t, result.IsHuman, float64(result.TotalScore) >= a.Threshold())
	}
}

func TestScoreDrawingSession_Idempotent(t *testing.T) {
	a := NewDefault()
	drawing := wideFishDrawing()

	first := a.ScoreDrawingSession(drawing, "a fish", models.DrawingAnalytics{})
	second := a.ScoreDrawingSession(drawing, "a fish", models.DrawingAnalytics{})
	assert.Equal(t, first, second)
}
