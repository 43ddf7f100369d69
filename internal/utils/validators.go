package utils

import (
	"github.com/SpeedyGonzale5/game-captcha/internal/models"
)

// Boundary validation for telemetry snapshots. The scoring core tolerates
// sparse data; these checks only reject payloads that are structurally
// nonsensical and therefore a transport-layer concern.

// ValidateShooterSnapshot returns a human-readable problem description for
// an invalid snapshot, or "" when the snapshot is acceptable.
func ValidateShooterSnapshot(a *models.ShooterAnalytics) string {
	if a == nil {
		return "analytics data is required"
	}
	if a.Shots < 0 || a.Hits < 0 {
		return "shots and hits must be non-negative"
	}
	if a.Hits > a.Shots {
		return "hits cannot exceed shots"
	}
	for _, t := range a.ReactionTimes {
		if t < 0 {
			return "reaction times must be non-negative"
		}
	}
	for _, t := range a.ClickTimes {
		if t < 0 {
			return "click times must be non-negative"
		}
	}
	return ""
}

// ValidateDrawingSnapshot returns a problem description for an invalid
// drawing payload, or "" when it is acceptable.
func ValidateDrawingSnapshot(d *models.DrawingData) string {
	if d == nil {
		return "drawing data is required"
	}
	if d.Dimensions.Width < 0 || d.Dimensions.Height < 0 {
		return "canvas dimensions must be non-negative"
	}
	for _, stroke := range d.Strokes {
		if len(stroke.Points) == 0 {
			return "every stroke must contain at least one point"
		}
	}
	return ""
}
