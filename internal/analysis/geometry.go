package analysis

import (
	"math"

	"github.com/SpeedyGonzale5/game-captcha/internal/models"
)

// Distance returns the Euclidean distance between two sampled points.
func Distance(p1, p2 models.InteractionPoint) float64 {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Speed returns the pixel-per-millisecond speed between two sampled points.
// A zero or negative time delta yields 0 rather than a division blow-up.
func Speed(p1, p2 models.InteractionPoint) float64 {
	dt := p2.Timestamp - p1.Timestamp
	if dt <= 0 {
		return 0
	}
	return Distance(p1, p2) / dt
}

// Mean returns the arithmetic mean of values, 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variance returns the population variance of values. Empty and
// single-element inputs yield 0.
func Variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	avg := Mean(values)
	var sumSquaredDiff float64
	for _, v := range values {
		diff := v - avg
		sumSquaredDiff += diff * diff
	}
	return sumSquaredDiff / float64(len(values))
}

// StdDev returns the population standard deviation of values.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// Box is an axis-aligned bounding box.
type Box struct {
	MinX   float64
	MaxX   float64
	MinY   float64
	MaxY   float64
	Width  float64
	Height float64
}

// BoundingBox computes the bounding box of a point set. An empty set yields
// a degenerate zero-sized box.
func BoundingBox(points []models.InteractionPoint) Box {
	if len(points) == 0 {
		return Box{}
	}
	box := Box{
		MinX: points[0].X,
		MaxX: points[0].X,
		MinY: points[0].Y,
		MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		box.MinX = math.Min(box.MinX, p.X)
		box.MaxX = math.Max(box.MaxX, p.X)
		box.MinY = math.Min(box.MinY, p.Y)
		box.MaxY = math.Max(box.MaxY, p.Y)
	}
	box.Width = box.MaxX - box.MinX
	box.Height = box.MaxY - box.MinY
	return box
}

// clampScore bounds a score to the [0,100] range every analyzer guarantees.
func clampScore(score float64) float64 {
	return math.Max(0, math.Min(100, score))
}
