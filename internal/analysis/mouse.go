package analysis

import (
	"math"

	"github.com/SpeedyGonzale5/game-captcha/internal/models"
)

// AnalyzeMouseMovement scores pointer-movement smoothness. Humans show
// natural micro-variations in speed; near-constant velocity or impossible
// speeds are penalized.
func (a *Analyzer) AnalyzeMouseMovement(moves []models.InteractionPoint) models.ScoreBreakdown {
	if len(moves) < 5 {
		return models.ScoreBreakdown{
			Score:      50,
			Reason:     "Insufficient mouse data",
			SampleSize: len(moves),
		}
	}

	var totalSpeed, speedChanges float64
	prevSpeed := 0.0
	for i := 1; i < len(moves); i++ {
		speed := Speed(moves[i-1], moves[i])
		totalSpeed += speed
		if i > 1 {
			speedChanges += math.Abs(speed - prevSpeed)
		}
		prevSpeed = speed
	}

	avgSpeed := totalSpeed / float64(len(moves)-1)
	speedVariance := speedChanges / float64(len(moves)-2)

	score := 50.0
	if speedVariance < a.cfg.MinMouseVariance {
		score -= 20 // too consistent, likely scripted
	}
	if avgSpeed > a.cfg.MaxMouseSpeed {
		score -= 30 // faster than a human can move a pointer
	}
	if speedVariance > a.cfg.MinMouseVariance*2 {
		score += 20 // healthy natural variance
	}

	return models.ScoreBreakdown{
		Score:      clampScore(score),
		SampleSize: len(moves),
		Metrics: map[string]float64{
			"avgSpeed":      avgSpeed,
			"speedVariance": speedVariance,
			"dataPoints":    float64(len(moves)),
		},
	}
}

// AnalyzeReactionTimes scores the distribution of stimulus-to-response
// durations. Human reactions land in a bounded window with natural spread;
// near-identical timings indicate scripting.
func (a *Analyzer) AnalyzeReactionTimes(reactionTimes []float64) models.ScoreBreakdown {
	if len(reactionTimes) == 0 {
		return models.ScoreBreakdown{
			Score:  0,
			Reason: "No reaction time data",
		}
	}

	avg := Mean(reactionTimes)
	stdDev := StdDev(reactionTimes)

	score := 50.0
	if avg >= a.cfg.MinReactionTime && avg <= a.cfg.MaxReactionTime {
		score += 20
	} else {
		score -= 30 // too fast or too slow
	}

	if stdDev > 50 {
		score += 15
	} else {
		score -= 15 // too consistent
	}

	tooConsistent := true
	for _, t := range reactionTimes {
		if math.Abs(t-avg) >= 10 {
			tooConsistent = false
			break
		}
	}
	if tooConsistent && len(reactionTimes) > 2 {
		score -= 40 // machine-grade timing
	}

	return models.ScoreBreakdown{
		Score:      clampScore(score),
		SampleSize: len(reactionTimes),
		Metrics: map[string]float64{
			"average": avg,
			"stdDev":  stdDev,
			"samples": float64(len(reactionTimes)),
		},
	}
}

// AnalyzeClickPatterns scores the regularity of inter-click intervals.
func (a *Analyzer) AnalyzeClickPatterns(clickTimes []float64) models.ScoreBreakdown {
	if len(clickTimes) == 0 {
		return models.ScoreBreakdown{
			Score:  50,
			Reason: "No click data",
		}
	}

	score := 50.0
	intervals := make([]float64, 0, len(clickTimes)-1)
	for i := 1; i < len(clickTimes); i++ {
		intervals = append(intervals, clickTimes[i]-clickTimes[i-1])
	}

	if len(intervals) > 0 {
		avgInterval := Mean(intervals)
		intervalVariance := Variance(intervals)

		if intervalVariance > 10000 {
			score += 15
		} else {
			score -= 20 // too consistent
		}

		tooRegular := true
		for _, interval := range intervals {
			if math.Abs(interval-avgInterval) >= 50 {
				tooRegular = false
				break
			}
		}
		if tooRegular && len(intervals) > 2 {
			score -= 30 // mechanical cadence
		}
	}

	return models.ScoreBreakdown{
		Score:      clampScore(score),
		SampleSize: len(clickTimes),
		Metrics: map[string]float64{
			"clickCount": float64(len(clickTimes)),
			"intervals":  float64(len(intervals)),
		},
	}
}

// AnalyzeAccuracy scores the hit ratio. Perfect accuracy over more than a
// couple of shots is suspicious; a human band is rewarded.
func (a *Analyzer) AnalyzeAccuracy(shots, hits int) models.ScoreBreakdown {
	if shots == 0 {
		return models.ScoreBreakdown{
			Score:  50,
			Reason: "No shots fired",
		}
	}

	accuracy := float64(hits) / float64(shots)
	score := 50.0

	switch {
	case accuracy == 1.0 && shots > 2:
		score -= 25 // humans miss sometimes
	case accuracy >= a.cfg.MinAccuracy && accuracy <= 0.8:
		score += 20
	case accuracy < a.cfg.MinAccuracy:
		score -= 15
	}

	return models.ScoreBreakdown{
		Score:      clampScore(score),
		SampleSize: shots,
		Metrics: map[string]float64{
			"accuracy": accuracy,
			"shots":    float64(shots),
			"hits":     float64(hits),
		},
	}
}
