package pptx

// shapePaths maps preset geometry names onto outlines drawn in a 200x200
// viewBox, the coordinate space presentation editors scale shape paths
// from. Only the presets that draw differently from a rectangle need an
// entry of their own.
var shapePaths = map[string]string{
	"rect":           "M 0 0 L 200 0 L 200 200 L 0 200 Z",
	"roundRect":      "M 40 0 L 160 0 Q 200 0 200 40 L 200 160 Q 200 200 160 200 L 40 200 Q 0 200 0 160 L 0 40 Q 0 0 40 0 Z",
	"ellipse":        "M 100 0 A 100 100 0 1 1 100 200 A 100 100 0 1 1 100 0 Z",
	"triangle":       "M 100 0 L 0 200 L 200 200 Z",
	"rtTriangle":     "M 0 0 L 0 200 L 200 200 Z",
	"diamond":        "M 100 0 L 200 100 L 100 200 L 0 100 Z",
	"parallelogram":  "M 50 0 L 200 0 L 150 200 L 0 200 Z",
	"trapezoid":      "M 50 0 L 150 0 L 200 200 L 0 200 Z",
	"pentagon":       "M 100 0 L 200 76 L 162 200 L 38 200 L 0 76 Z",
	"hexagon":        "M 50 0 L 150 0 L 200 100 L 150 200 L 50 200 L 0 100 Z",
	"octagon":        "M 60 0 L 140 0 L 200 60 L 200 140 L 140 200 L 60 200 L 0 140 L 0 60 Z",
	"chevron":        "M 0 0 L 150 0 L 200 100 L 150 200 L 0 200 L 50 100 Z",
	"homePlate":      "M 0 0 L 150 0 L 200 100 L 150 200 L 0 200 Z",
	"rightArrow":     "M 0 70 L 120 70 L 120 30 L 200 100 L 120 170 L 120 130 L 0 130 Z",
	"leftArrow":      "M 200 70 L 80 70 L 80 30 L 0 100 L 80 170 L 80 130 L 200 130 Z",
	"upArrow":        "M 70 200 L 70 80 L 30 80 L 100 0 L 170 80 L 130 80 L 130 200 Z",
	"downArrow":      "M 70 0 L 70 120 L 30 120 L 100 200 L 170 120 L 130 120 L 130 0 Z",
	"leftRightArrow": "M 40 70 L 160 70 L 160 30 L 200 100 L 160 170 L 160 130 L 40 130 L 40 170 L 0 100 L 40 30 Z",
	"plus":           "M 70 0 L 130 0 L 130 70 L 200 70 L 200 130 L 130 130 L 130 200 L 70 200 L 70 130 L 0 130 L 0 70 L 70 70 Z",
	"star5":          "M 100 0 L 124 68 L 200 76 L 141 124 L 162 200 L 100 155 L 38 200 L 59 124 L 0 76 L 76 68 Z",
	"heart":          "M 100 60 Q 100 0 50 0 Q 0 0 0 60 Q 0 120 100 200 Q 200 120 200 60 Q 200 0 150 0 Q 100 0 100 60 Z",
	"pie":            "M 100 100 L 100 0 A 100 100 0 1 1 0 100 Z",
	"frame":          "M 0 0 L 200 0 L 200 200 L 0 200 Z M 30 30 L 30 170 L 170 170 L 170 30 Z",
}

// presetPath returns the viewBox outline for a preset geometry. Unknown
// presets draw as rectangles; their preset name is still carried on the
// element so callers can special-case them.
func presetPath(preset string) string {
	if p, ok := shapePaths[preset]; ok {
		return p
	}
	return shapePaths["rect"]
}
