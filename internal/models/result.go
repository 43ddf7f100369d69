package models

// Confidence buckets a numeric human score for reporting.
type Confidence string

const (
	ConfidenceVeryLow  Confidence = "Very Low"
	ConfidenceLow      Confidence = "Low"
	ConfidenceMedium   Confidence = "Medium"
	ConfidenceHigh     Confidence = "High"
	ConfidenceVeryHigh Confidence = "Very High"
)

// ConfidenceForScore maps a 0-100 score to its confidence bucket.
func ConfidenceForScore(score float64) Confidence {
	switch {
	case score >= 90:
		return ConfidenceVeryHigh
	case score >= 80:
		return ConfidenceHigh
	case score >= 70:
		return ConfidenceMedium
	case score >= 50:
		return ConfidenceLow
	default:
		return ConfidenceVeryLow
	}
}

// ScoreBreakdown is the result of a single analyzer pass. Score is always
// clamped to [0,100]. Reason is set when the analyzer degraded to a neutral
// or zero score on sparse input. Metrics carries numeric diagnostics,
// Details qualitative labels.
type ScoreBreakdown struct {
	Score      float64            `json:"score"`
	Reason     string             `json:"reason,omitempty"`
	SampleSize int                `json:"sampleSize,omitempty"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
	Details    map[string]string  `json:"details,omitempty"`
}

// HumanVerificationResult is the final output of a verification call.
type HumanVerificationResult struct {
	TotalScore     int                       `json:"totalScore"`
	IsHuman        bool                      `json:"isHuman"`
	Breakdown      map[string]ScoreBreakdown `json:"breakdown"`
	Confidence     Confidence                `json:"confidence"`
	Recommendation string                    `json:"recommendation"`
}
