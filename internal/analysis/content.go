package analysis

import (
	"strings"

	"github.com/SpeedyGonzale5/game-captcha/internal/models"
)

// ObjectCategory is the closed set of drawable object classes the content
// analyzer knows shape heuristics for. Unknown prompts fall back to
// CategoryGeneral.
type ObjectCategory int

const (
	CategoryGeneral ObjectCategory = iota
	CategoryFish
	CategoryCat
	CategoryHouse
	CategoryTree
	CategoryCar
)

func (c ObjectCategory) String() string {
	switch c {
	case CategoryFish:
		return "fish"
	case CategoryCat:
		return "cat"
	case CategoryHouse:
		return "house"
	case CategoryTree:
		return "tree"
	case CategoryCar:
		return "car"
	default:
		return "general"
	}
}

// CategoryFromPrompt extracts the target object from a free-text prompt.
// The keyword is the first non-article token of the lower-cased prompt,
// falling back to "object" for empty prompts.
func CategoryFromPrompt(prompt string) (ObjectCategory, string) {
	keyword := "object"
	for _, word := range strings.Fields(strings.ToLower(prompt)) {
		if word == "a" || word == "an" || word == "the" {
			continue
		}
		keyword = word
		break
	}

	switch keyword {
	case "fish":
		return CategoryFish, keyword
	case "cat":
		return CategoryCat, keyword
	case "house":
		return CategoryHouse, keyword
	case "tree":
		return CategoryTree, keyword
	case "car":
		return CategoryCar, keyword
	default:
		return CategoryGeneral, keyword
	}
}

// shapeAnalysis captures geometric plausibility metrics of a stroke trace.
type shapeAnalysis struct {
	complexity       float64
	boundingBoxRatio float64
	strokeDensity    float64
	width            float64
	height           float64
}

func analyzeShapeComplexity(strokes []models.Stroke, dims models.Dimensions) shapeAnalysis {
	var allPoints []models.InteractionPoint
	for _, stroke := range strokes {
		allPoints = append(allPoints, stroke.Points...)
	}
	if len(allPoints) == 0 {
		return shapeAnalysis{}
	}

	box := BoundingBox(allPoints)
	area := box.Width * box.Height
	canvasArea := dims.Width * dims.Height

	analysis := shapeAnalysis{
		complexity: float64(len(strokes)) + float64(len(allPoints))/10,
		width:      box.Width,
		height:     box.Height,
	}
	if canvasArea > 0 {
		analysis.boundingBoxRatio = area / canvasArea
	}
	if area > 0 {
		analysis.strokeDensity = float64(len(allPoints)) / area
	}
	return analysis
}

// AnalyzeDrawingContent scores how geometrically plausible the trace is for
// the object named in the prompt. This is a cheap stand-in for image
// recognition: category heuristics reward expected complexity and aspect
// ratio, plus good canvas utilization.
func (a *Analyzer) AnalyzeDrawingContent(drawing models.DrawingData, prompt string) models.ScoreBreakdown {
	if len(drawing.Strokes) == 0 {
		return models.ScoreBreakdown{
			Score:  0,
			Reason: "No drawing content",
		}
	}

	category, keyword := CategoryFromPrompt(prompt)
	analysis := analyzeShapeComplexity(drawing.Strokes, drawing.Dimensions)

	var score float64
	switch category {
	case CategoryFish:
		score = scoreFish(analysis)
	case CategoryCat:
		score = scoreCat(analysis)
	case CategoryHouse:
		score = scoreHouse(analysis)
	case CategoryTree:
		score = scoreTree(analysis)
	case CategoryCar:
		score = scoreCar(analysis)
	default:
		score = scoreGeneral(analysis)
	}

	if analysis.boundingBoxRatio > 0.1 && analysis.boundingBoxRatio < 0.9 {
		score += 10 // good use of canvas space
	}

	return models.ScoreBreakdown{
		Score:      clampScore(score),
		SampleSize: len(drawing.Strokes),
		Metrics: map[string]float64{
			"complexity":    analysis.complexity,
			"coverage":      analysis.boundingBoxRatio,
			"strokeDensity": analysis.strokeDensity,
		},
		Details: map[string]string{
			"objectType": keyword,
			"category":   category.String(),
		},
	}
}

func scoreFish(analysis shapeAnalysis) float64 {
	score := 70.0
	// Body plus tail wants at least two distinct shapes.
	if analysis.complexity >= 5 {
		score += 15
	}
	if analysis.boundingBoxRatio > 0.15 {
		score += 10
	}
	if analysis.width > analysis.height {
		score += 5 // fish are wider than tall
	}
	return score
}

func scoreCat(analysis shapeAnalysis) float64 {
	score := 70.0
	// Body, head, ears and tail make cats comparatively complex.
	if analysis.complexity >= 8 {
		score += 15
	}
	if analysis.boundingBoxRatio > 0.2 {
		score += 10
	}
	return score
}

func scoreHouse(analysis shapeAnalysis) float64 {
	score := 70.0
	if analysis.complexity >= 4 && analysis.complexity <= 12 {
		score += 15 // houses are a few geometric shapes
	}
	if analysis.height > analysis.width*0.6 {
		score += 5
	}
	return score
}

func scoreTree(analysis shapeAnalysis) float64 {
	score := 70.0
	if analysis.complexity >= 3 {
		score += 15 // trunk plus foliage
	}
	if analysis.height > analysis.width {
		score += 10 // trees are taller than wide
	}
	return score
}

func scoreCar(analysis shapeAnalysis) float64 {
	score := 70.0
	if analysis.complexity >= 5 {
		score += 15
	}
	if analysis.width > analysis.height {
		score += 10 // cars are wider than tall
	}
	return score
}

func scoreGeneral(analysis shapeAnalysis) float64 {
	score := 60.0
	if analysis.complexity >= 3 {
		score += 20
	}
	if analysis.boundingBoxRatio > 0.1 {
		score += 15
	}
	return score
}
