// Package analysis is the behavioral scoring core. It converts finalized
// telemetry snapshots into bounded human-likelihood scores. Every analyzer
// is a pure function of its input: malformed or sparse data degrades to a
// neutral or zero score with a diagnostic reason, never an error.
package analysis

// Config holds the heuristic thresholds. The values are empirically chosen
// starting points, not calibrated security guarantees; hosts are expected
// to tune them.
type Config struct {
	// MinReactionTime and MaxReactionTime bound the plausible human
	// reaction window in milliseconds.
	MinReactionTime float64
	MaxReactionTime float64
	// MinAccuracy is the hit ratio below which shooting looks like noise.
	MinAccuracy float64
	// HumanScoreThreshold is the minimum total score to pass verification.
	HumanScoreThreshold float64
	// MaxMouseSpeed is the fastest plausible pointer speed in px/ms.
	MaxMouseSpeed float64
	// MinMouseVariance is the minimum natural speed-change variance.
	MinMouseVariance float64
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		MinReactionTime:     100,
		MaxReactionTime:     2000,
		MinAccuracy:         0.3,
		HumanScoreThreshold: 70,
		MaxMouseSpeed:       1000,
		MinMouseVariance:    5,
	}
}

// Analyzer scores telemetry snapshots against a fixed set of thresholds.
// It is stateless and safe for concurrent use.
type Analyzer struct {
	cfg Config
}

// New returns an Analyzer using the given thresholds.
func New(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// NewDefault returns an Analyzer with the stock thresholds.
func NewDefault() *Analyzer {
	return New(DefaultConfig())
}

// Threshold exposes the configured pass threshold.
func (a *Analyzer) Threshold() float64 {
	return a.cfg.HumanScoreThreshold
}
