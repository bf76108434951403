package graph

// DefaultColor is the fill color for categories outside the known set.
const DefaultColor = "#CCCCCC"

// categoryColors maps each known category to its fill color.
var categoryColors = map[string]string{
	"Natural Language Processing":  "#00D084",
	"Computer Vision":              "#FF6B6B",
	"Graph & Network":              "#4ECDC4",
	"Machine Learning":             "#A78BFA",
	"Robotics & Control":           "#FF9F40",
	"AI in Healthcare":             "#FF6EC7",
	"Explainable & Trustworthy AI": "#FFD93D",
	"Optimization & Theory":        "#8D99AE",
}

// ColorFor returns the fill color for a category. Unknown categories,
// including the empty string, get DefaultColor; the function is total.
func ColorFor(category string) string {
	if color, ok := categoryColors[category]; ok {
		return color
	}
	return DefaultColor
}
