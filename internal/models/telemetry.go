package models

// InteractionPoint is a single sampled pointer position. Timestamps are
// client-side epoch milliseconds.
type InteractionPoint struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Timestamp float64 `json:"timestamp"`
}

// Stroke is one continuous pointer-down-to-pointer-up drawing gesture.
// EndTime is zero while the pointer is still held.
type Stroke struct {
	ID         string             `json:"id,omitempty"`
	Points     []InteractionPoint `json:"points"`
	BrushSize  float64            `json:"brushSize,omitempty"`
	BrushColor string             `json:"brushColor,omitempty"`
	StartTime  float64            `json:"startTime"`
	EndTime    float64            `json:"endTime,omitempty"`
}

// Interaction is a coarse UI event recorded alongside the drawing
// (undo, clear, color change and the like).
type Interaction struct {
	Type      string  `json:"type"`
	Timestamp float64 `json:"timestamp"`
}

// DrawingAnalytics is the finalized telemetry snapshot of one drawing
// session. Strokes are in creation order.
type DrawingAnalytics struct {
	StartTime    float64            `json:"startTime"`
	EndTime      float64            `json:"endTime,omitempty"`
	Strokes      []Stroke           `json:"strokes"`
	MouseMoves   []InteractionPoint `json:"mouseMoves,omitempty"`
	Interactions []Interaction      `json:"interactions,omitempty"`
}

// ShooterAnalytics is the finalized telemetry snapshot of one shooter
// session. ClickTimes are millisecond offsets from game start.
type ShooterAnalytics struct {
	Shots         int                `json:"shots"`
	Hits          int                `json:"hits"`
	MouseMoves    []InteractionPoint `json:"mouseMoves"`
	ClickTimes    []float64          `json:"clickTimes"`
	ReactionTimes []float64          `json:"reactionTimes"`
	StartTime     float64            `json:"startTime,omitempty"`
	EndTime       float64            `json:"endTime,omitempty"`
}

// Dimensions describes the drawing canvas size in pixels.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DrawingData is the canvas snapshot handed to content analysis.
type DrawingData struct {
	Strokes    []Stroke   `json:"strokes"`
	Dimensions Dimensions `json:"dimensions"`
}
