package analysis

import (
	"math"

	"github.com/SpeedyGonzale5/game-captcha/internal/models"
)

// Sub-score weights for the shooter aggregator. They sum to 1.0.
const (
	shooterMouseWeight    = 0.3
	shooterReactionWeight = 0.3
	shooterClicksWeight   = 0.2
	shooterAccuracyWeight = 0.2
)

// ScoreShooterSession combines the four shooter sub-analyzers into a final
// verification result. It never fails: sparse input surfaces as low or
// neutral sub-scores with reasons in the breakdown.
func (a *Analyzer) ScoreShooterSession(analytics models.ShooterAnalytics) models.HumanVerificationResult {
	mouse := a.AnalyzeMouseMovement(analytics.MouseMoves)
	reaction := a.AnalyzeReactionTimes(analytics.ReactionTimes)
	clicks := a.AnalyzeClickPatterns(analytics.ClickTimes)
	accuracy := a.AnalyzeAccuracy(analytics.Shots, analytics.Hits)

	total := math.Round(mouse.Score*shooterMouseWeight +
		reaction.Score*shooterReactionWeight +
		clicks.Score*shooterClicksWeight +
		accuracy.Score*shooterAccuracyWeight)
	isHuman := total >= a.cfg.HumanScoreThreshold

	return models.HumanVerificationResult{
		TotalScore: int(total),
		IsHuman:    isHuman,
		Breakdown: map[string]models.ScoreBreakdown{
			"mouse":    mouse,
			"reaction": reaction,
			"clicks":   clicks,
			"accuracy": accuracy,
		},
		Confidence:     models.ConfidenceForScore(total),
		Recommendation: shooterRecommendation(total, isHuman),
	}
}

func shooterRecommendation(score float64, isHuman bool) string {
	switch {
	case isHuman && score >= 85:
		return "Verified human with excellent interaction patterns"
	case isHuman:
		return "Verified human with acceptable interaction patterns"
	case score >= 60:
		return "Possible human but interaction patterns need verification"
	default:
		return "Likely automated behavior detected - verification failed"
	}
}
