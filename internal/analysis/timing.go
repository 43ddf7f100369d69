package analysis

import (
	"github.com/SpeedyGonzale5/game-captcha/internal/models"
)

// AnalyzeDrawingTiming scores inter-stroke pauses and total elapsed drawing
// time against human-plausible ranges. Humans pause to think between
// strokes; automation draws in one burst.
func (a *Analyzer) AnalyzeDrawingTiming(strokes []models.Stroke) models.ScoreBreakdown {
	if len(strokes) == 0 {
		return models.ScoreBreakdown{
			Score:  50,
			Reason: "No timing data",
		}
	}

	score := 50.0
	var pauses []float64
	for i := 1; i < len(strokes); i++ {
		prev := strokes[i-1]
		curr := strokes[i]
		if prev.EndTime > 0 && curr.StartTime > 0 {
			pauses = append(pauses, curr.StartTime-prev.EndTime)
		}
	}

	avgPause := 0.0
	if len(pauses) > 0 {
		avgPause = Mean(pauses)
		pauseVariance := Variance(pauses)

		if pauseVariance > 10000 {
			score += 20
		} else if pauseVariance < 1000 {
			score -= 20 // metronome pacing
		}

		avgPauseSeconds := avgPause / 1000
		if avgPauseSeconds >= 0.2 && avgPauseSeconds <= 3 {
			score += 15 // realistic thinking time
		} else if avgPauseSeconds < 0.1 {
			score -= 15
		}
	}

	first := strokes[0]
	last := strokes[len(strokes)-1]
	if first.StartTime > 0 && last.EndTime > 0 {
		totalSeconds := (last.EndTime - first.StartTime) / 1000
		switch {
		case totalSeconds >= 5 && totalSeconds <= 60:
			score += 15
		case totalSeconds < 2:
			score -= 25 // implausibly fast
		case totalSeconds > 120:
			score += 5 // taking time is human, if a bit slow
		}
	}

	return models.ScoreBreakdown{
		Score:      clampScore(score),
		SampleSize: len(strokes),
		Metrics: map[string]float64{
			"totalStrokes": float64(len(strokes)),
			"pauseCount":   float64(len(pauses)),
			"averagePause": avgPause,
		},
	}
}
