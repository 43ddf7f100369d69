package analysis

import (
	"math"

	"github.com/SpeedyGonzale5/game-captcha/internal/models"
)

// Sub-score weights for the drawing aggregator. They sum to 1.0.
const (
	drawingStrokesWeight = 0.3
	drawingTimingWeight  = 0.3
	drawingContentWeight = 0.4
)

// ScoreDrawingSession combines the stroke, timing, and content analyzers
// into a final verification result. The analytics snapshot supplies the
// strokes when the drawing payload omits them.
func (a *Analyzer) ScoreDrawingSession(drawing models.DrawingData, prompt string, analytics models.DrawingAnalytics) models.HumanVerificationResult {
	if len(drawing.Strokes) == 0 && len(analytics.Strokes) > 0 {
		drawing.Strokes = analytics.Strokes
	}

	strokes := a.AnalyzeDrawingStrokes(drawing.Strokes)
	timing := a.AnalyzeDrawingTiming(drawing.Strokes)
	content := a.AnalyzeDrawingContent(drawing, prompt)

	total := math.Round(strokes.Score*drawingStrokesWeight +
		timing.Score*drawingTimingWeight +
		content.Score*drawingContentWeight)
	isHuman := total >= a.cfg.HumanScoreThreshold

	return models.HumanVerificationResult{
		TotalScore: int(total),
		IsHuman:    isHuman,
		Breakdown: map[string]models.ScoreBreakdown{
			"strokes": strokes,
			"timing":  timing,
			"content": content,
		},
		Confidence:     models.ConfidenceForScore(total),
		Recommendation: drawingRecommendation(total, isHuman),
	}
}

func drawingRecommendation(score float64, isHuman bool) string {
	switch {
	case isHuman && score >= 85:
		return "Excellent creative expression with natural human drawing patterns"
	case isHuman:
		return "Verified human creativity with acceptable drawing behavior"
	case score >= 60:
		return "Drawing patterns require additional verification"
	default:
		return "Automated or suspicious drawing behavior detected"
	}
}
