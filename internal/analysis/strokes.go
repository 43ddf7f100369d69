package analysis

import (
	"fmt"

	"github.com/SpeedyGonzale5/game-captcha/internal/models"
)

// AnalyzeDrawingStrokes scores stroke-length and drawing-speed variation.
// Human strokes vary in length and pace; uniform ones look synthesized.
func (a *Analyzer) AnalyzeDrawingStrokes(strokes []models.Stroke) models.ScoreBreakdown {
	if len(strokes) == 0 {
		return models.ScoreBreakdown{
			Score:  0,
			Reason: "No drawing data",
		}
	}

	score := 50.0
	strokeCount := len(strokes)

	totalPoints := 0
	strokeLengths := make([]float64, 0, strokeCount)
	for _, stroke := range strokes {
		totalPoints += len(stroke.Points)
		strokeLengths = append(strokeLengths, float64(len(stroke.Points)))
	}
	avgStrokeLength := float64(totalPoints) / float64(strokeCount)
	strokeVariance := StdDev(strokeLengths)

	if strokeVariance > 3 {
		score += 15
	} else if strokeVariance < 1 {
		score -= 20 // too uniform
	}

	// Instantaneous speeds across all strokes, skipping degenerate deltas.
	var speeds []float64
	for _, stroke := range strokes {
		for i := 1; i < len(stroke.Points); i++ {
			prev := stroke.Points[i-1]
			curr := stroke.Points[i]
			if curr.Timestamp-prev.Timestamp > 0 {
				speeds = append(speeds, Speed(prev, curr))
			}
		}
	}

	speedVariance := 0.0
	if len(speeds) > 5 {
		speedVariance = StdDev(speeds)
		if speedVariance > 0.1 {
			score += 20
		} else if speedVariance < 0.02 {
			score -= 25 // constant pace, likely replayed
		}
	}

	if strokeCount >= 3 && strokeCount <= 20 {
		score += 10
	} else if strokeCount > 50 {
		score -= 15 // over-segmentation suggests automation
	}

	strokeAnalysis := "Low variation"
	if strokeVariance > 3 {
		strokeAnalysis = "Natural variation"
	}
	speedAnalysis := "Consistent speed"
	if speedVariance > 0.1 {
		speedAnalysis = "Human-like speed changes"
	}

	return models.ScoreBreakdown{
		Score:      clampScore(score),
		SampleSize: strokeCount,
		Metrics: map[string]float64{
			"strokeCount":         float64(strokeCount),
			"totalPoints":         float64(totalPoints),
			"averageStrokeLength": avgStrokeLength,
			"strokeVariance":      strokeVariance,
			"speedVariance":       speedVariance,
		},
		Details: map[string]string{
			"strokeAnalysis": strokeAnalysis,
			"speedAnalysis":  speedAnalysis,
			"strokeCount":    fmt.Sprintf("%d strokes", strokeCount),
		},
	}
}
