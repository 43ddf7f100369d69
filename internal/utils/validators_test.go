package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SpeedyGonzale5/game-captcha/internal/models"
)

func TestValidateShooterSnapshot(t *testing.T) {
	cases := []struct {
		name     string
		snapshot *models.ShooterAnalytics
		problem  string
	}{
		{"nil snapshot", nil, "analytics data is required"},
		{"negative shots", &models.ShooterAnalytics{Shots: -1}, "shots and hits must be non-negative"},
		{"hits exceed shots", &models.ShooterAnalytics{Shots: 2, Hits: 5}, "hits cannot exceed shots"},
		{"negative reaction time", &models.ShooterAnalytics{ReactionTimes: []float64{-5}}, "reaction times must be non-negative"},
		{"negative click time", &models.ShooterAnalytics{ClickTimes: []float64{-1}}, "click times must be non-negative"},
		{"empty snapshot is fine", &models.ShooterAnalytics{}, ""},
		{"consistent snapshot", &models.ShooterAnalytics{Shots: 10, Hits: 6, ReactionTimes: []float64{250}}, ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.problem, ValidateShooterSnapshot(tc.snapshot), tc.name)
	}
}

func TestValidateDrawingSnapshot(t *testing.T) {
	valid := &models.DrawingData{
		Strokes: []models.Stroke{{
			Points: []models.InteractionPoint{{X: 1, Y: 1, Timestamp: 10}},
		}},
		Dimensions: models.Dimensions{Width: 350, Height: 200},
	}
	assert.Empty(t, ValidateDrawingSnapshot(valid))

	assert.Equal(t, "drawing data is required", ValidateDrawingSnapshot(nil))
	assert.Equal(t, "canvas dimensions must be non-negative",
		ValidateDrawingSnapshot(&models.DrawingData{Dimensions: models.Dimensions{Width: -1}}))
	assert.Equal(t, "every stroke must contain at least one point",
		ValidateDrawingSnapshot(&models.DrawingData{Strokes: []models.Stroke{{}}}))
}
