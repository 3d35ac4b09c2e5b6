package model

// ElementType identifies the concrete variant of an Element.
type ElementType int

const (
	TypeText ElementType = iota
	TypeShape
	TypeImage
	TypeLine
)

// String returns a human-readable element type name.
func (t ElementType) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeShape:
		return "shape"
	case TypeImage:
		return "image"
	case TypeLine:
		return "line"
	default:
		return "unknown"
	}
}

// Geometry is the placement every element variant shares: a presentation-
// unique id, position and size in points, clockwise rotation in degrees, and
// mirroring flags. Group transforms have already been applied by the time a
// Geometry reaches a consumer.
type Geometry struct {
	ID       string
	Left     float64
	Top      float64
	Width    float64
	Height   float64
	Rotation float64
	FlipH    bool
	FlipV    bool
}

// Geom returns the element's shared geometry. It is promoted into every
// variant through embedding.
func (g *Geometry) Geom() *Geometry { return g }

func (g *Geometry) element() {}

// Element is one piece of slide content. The variant set is closed: only the
// types in this package implement it, so a type switch over TextElement,
// ShapeElement, ImageElement and LineElement is exhaustive.
type Element interface {
	Type() ElementType
	Geom() *Geometry
	element()
}

// TextElement is a block of styled paragraphs.
type TextElement struct {
	Geometry
	Paragraphs      []Paragraph
	DefaultFontName string
	DefaultColor    string // canonical rgba, "" when unset
	VerticalAlign   string // "top", "middle", "bottom", "" when unset
	Placeholder     string // source placeholder type ("title", "body", ...)
}

func (e *TextElement) Type() ElementType { return TypeText }

// Text returns the element's plain text, paragraphs joined by newlines.
func (e *TextElement) Text() string {
	out := ""
	for i, p := range e.Paragraphs {
		if i > 0 {
			out += "\n"
		}
		for _, r := range p.Runs {
			out += r.Text
		}
	}
	return out
}

// Paragraph is one paragraph of a text element.
type Paragraph struct {
	Runs       []Run
	Alignment  string // "left", "center", "right", "justify", "" when unset
	Level      int    // indent level, 0 = top
	Bullet     bool
	BulletChar string // custom bullet character, "" for the default
	Numbered   bool
}

// Run is a span of text with uniform styling. Zero values mean the property
// was not set in the source and the consumer's defaults apply.
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
	FontSize  float64 // points, 0 when unset
	Color     string  // canonical rgba, "" when unset
	FontName  string
	Link      string // resolved hyperlink target, "" when none
}

// ShapeElement is a geometric shape with a resolved fill. Path is expressed
// in the fixed 200x200 view box the downstream editor scales to the
// element's real size.
type ShapeElement struct {
	Geometry
	Preset   string // source preset geometry name ("rect", "ellipse", ...)
	Path     string
	Fill     string // canonical rgba, "" when the shape has no fill
	Gradient *GradientFill
	Outline  *Outline
}

func (e *ShapeElement) Type() ElementType { return TypeShape }

// Outline is a stroke around a shape.
type Outline struct {
	Color string  // canonical rgba
	Width float64 // points
}

// ImageElement is an embedded picture. Src is a data URL when extraction
// succeeded and the raw relationship target otherwise, so consumers always
// have something addressable.
type ImageElement struct {
	Geometry
	Src     string
	Data    *ImageData // nil when extraction was skipped or failed
	Crop    *CropRect
	AltText string
}

func (e *ImageElement) Type() ElementType { return TypeImage }

// CropRect is a source crop expressed as inset fractions of the image
// extent, each in [0,1].
type CropRect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// LineElement is a connector or straight line. Start and End are offsets in
// points from the element's position; Points names the marker at each end
// ("" for none, "arrow" or "dot" otherwise).
type LineElement struct {
	Geometry
	Start  [2]float64
	End    [2]float64
	Color  string
	Width  float64
	Points [2]string
}

func (e *LineElement) Type() ElementType { return TypeLine }

// BackgroundType identifies how a slide background is painted.
type BackgroundType int

const (
	BackgroundSolid BackgroundType = iota
	BackgroundGradient
	BackgroundImage
)

func (t BackgroundType) String() string {
	switch t {
	case BackgroundSolid:
		return "solid"
	case BackgroundGradient:
		return "gradient"
	case BackgroundImage:
		return "image"
	default:
		return "solid"
	}
}

// Background describes a slide's backdrop. Exactly one of Color, Gradient
// or Image is meaningful, selected by Type.
type Background struct {
	Type     BackgroundType
	Color    string // canonical rgba
	Gradient *GradientFill
	Image    string // data URL or raw relationship target
}

// GradientFill is a resolved gradient: stops sorted ascending by position.
type GradientFill struct {
	Angle float64 // degrees
	Stops []GradientStop
}

// GradientStop is one gradient stop. Position is a fraction in [0,1].
type GradientStop struct {
	Position float64
	Color    string // canonical rgba
}
