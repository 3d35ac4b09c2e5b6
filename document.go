package scaena

import (
	"strings"

	"github.com/tsawler/scaena/colors"
	"github.com/tsawler/scaena/model"
)

// Document is the editor-facing form of a decoded presentation, shaped for
// direct JSON serialization. Every coordinate is in points and every color
// is a canonical rgba string.
type Document struct {
	Title  string          `json:"title"`
	Width  float64         `json:"width"`
	Height float64         `json:"height"`
	Slides []DocumentSlide `json:"slides"`
	Theme  DocumentTheme   `json:"theme"`
}

// DocumentSlide is one slide of the editor document. Elements holds the
// concrete element JSON structs (TextJSON, ShapeJSON, ImageJSON, LineJSON)
// in slide document order. Remark carries the speaker notes.
type DocumentSlide struct {
	ID         string          `json:"id"`
	Elements   []interface{}   `json:"elements"`
	Background *BackgroundJSON `json:"background,omitempty"`
	Remark     string          `json:"remark,omitempty"`
}

// DocumentTheme is the deck-level theme block: the body font and the ten
// scheme color slots the editor exposes as its palette.
type DocumentTheme struct {
	FontName   string            `json:"fontName"`
	ThemeColor map[string]string `json:"themeColor"`
}

// elementJSON is the placement block shared by every element variant.
type elementJSON struct {
	Type   string  `json:"type"`
	ID     string  `json:"id"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Rotate float64 `json:"rotate"`
	FlipH  bool    `json:"flipH,omitempty"`
	FlipV  bool    `json:"flipV,omitempty"`
}

// TextJSON is a text element in editor form.
type TextJSON struct {
	elementJSON
	Paragraphs      []ParagraphJSON `json:"paragraphs"`
	DefaultFontName string          `json:"defaultFontName,omitempty"`
	DefaultColor    string          `json:"defaultColor,omitempty"`
	VerticalAlign   string          `json:"verticalAlign,omitempty"`
}

// ParagraphJSON is one paragraph of a text element.
type ParagraphJSON struct {
	Runs       []RunJSON `json:"runs"`
	Align      string    `json:"align,omitempty"`
	Level      int       `json:"level,omitempty"`
	Bullet     bool      `json:"bullet,omitempty"`
	BulletChar string    `json:"bulletChar,omitempty"`
	Numbered   bool      `json:"numbered,omitempty"`
}

// RunJSON is a styled span of text.
type RunJSON struct {
	Text      string  `json:"text"`
	Bold      bool    `json:"bold,omitempty"`
	Italic    bool    `json:"italic,omitempty"`
	Underline bool    `json:"underline,omitempty"`
	Strike    bool    `json:"strike,omitempty"`
	Size      float64 `json:"size,omitempty"`
	FontName  string  `json:"fontName,omitempty"`
	Color     string  `json:"color,omitempty"`
	Link      string  `json:"link,omitempty"`
}

// ShapeJSON is a shape element in editor form. ViewBox, FixedRatio and
// EnableShrink are fixed values the consuming editor requires on every
// shape: paths are expressed in a 200x200 box the editor scales to the
// element's real size.
type ShapeJSON struct {
	elementJSON
	ViewBox      [2]float64    `json:"viewBox"`
	Path         string        `json:"path"`
	Fill         string        `json:"fill,omitempty"`
	Gradient     *GradientJSON `json:"gradient,omitempty"`
	Outline      *OutlineJSON  `json:"outline,omitempty"`
	FixedRatio   bool          `json:"fixedRatio"`
	EnableShrink bool          `json:"enableShrink"`
}

// OutlineJSON is a stroke around a shape.
type OutlineJSON struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// GradientJSON is a gradient fill, stops ascending by position.
type GradientJSON struct {
	Rotate float64             `json:"rotate"`
	Colors []GradientColorJSON `json:"colors"`
}

// GradientColorJSON is one gradient stop. Pos is a fraction in [0,1].
type GradientColorJSON struct {
	Pos   float64 `json:"pos"`
	Color string  `json:"color"`
}

// ImageJSON is an image element in editor form. Src is a data URL when the
// payload was extracted and the raw package location otherwise. Crop, when
// present, is the [left, top, right, bottom] inset fractions of the source.
type ImageJSON struct {
	elementJSON
	Src        string      `json:"src"`
	FixedRatio bool        `json:"fixedRatio"`
	Crop       *[4]float64 `json:"crop,omitempty"`
	Alt        string      `json:"alt,omitempty"`
}

// LineJSON is a connector or straight line in editor form. Start and End
// are offsets in points from (Left, Top); Width is the stroke width.
// Points names the marker at each end ("" for none).
type LineJSON struct {
	Type   string     `json:"type"`
	ID     string     `json:"id"`
	Left   float64    `json:"left"`
	Top    float64    `json:"top"`
	Start  [2]float64 `json:"start"`
	End    [2]float64 `json:"end"`
	Width  float64    `json:"width"`
	Color  string     `json:"color"`
	Points [2]string  `json:"points"`
}

// BackgroundJSON is a slide background. Type selects which of the other
// fields is meaningful ("solid", "gradient", "image").
type BackgroundJSON struct {
	Type      string        `json:"type"`
	Color     string        `json:"color,omitempty"`
	Gradient  *GradientJSON `json:"gradient,omitempty"`
	Image     string        `json:"image,omitempty"`
	ImageSize string        `json:"imageSize,omitempty"`
}

// buildDocument converts a decoded presentation into the editor document.
func buildDocument(pres *model.Presentation) *Document {
	doc := &Document{
		Title:  documentTitle(pres),
		Width:  pres.SlideWidth,
		Height: pres.SlideHeight,
		Slides: make([]DocumentSlide, 0, len(pres.Slides)),
		Theme:  convertTheme(pres.Theme),
	}

	for _, slide := range pres.Slides {
		doc.Slides = append(doc.Slides, convertSlide(slide))
	}

	return doc
}

// documentTitle picks the document title: the core-properties title when
// set, otherwise the text of the first title placeholder in the deck.
func documentTitle(pres *model.Presentation) string {
	if t := strings.TrimSpace(pres.Metadata.Title); t != "" {
		return t
	}

	for _, slide := range pres.Slides {
		for _, el := range slide.Elements {
			t, ok := el.(*model.TextElement)
			if !ok {
				continue
			}
			if t.Placeholder != "title" && t.Placeholder != "ctrTitle" {
				continue
			}
			if s := strings.TrimSpace(t.Text()); s != "" {
				return s
			}
		}
	}

	return ""
}

func convertSlide(slide *model.Slide) DocumentSlide {
	out := DocumentSlide{
		ID:       slide.ID,
		Elements: make([]interface{}, 0, len(slide.Elements)),
		Remark:   slide.Notes,
	}

	if slide.Background != nil {
		out.Background = convertBackground(slide.Background)
	}
	for _, el := range slide.Elements {
		out.Elements = append(out.Elements, convertElement(el))
	}

	return out
}

func convertElement(el model.Element) interface{} {
	switch t := el.(type) {
	case *model.TextElement:
		return convertText(t)
	case *model.ShapeElement:
		return convertShape(t)
	case *model.ImageElement:
		return convertImage(t)
	case *model.LineElement:
		return convertLine(t)
	default:
		return baseJSON(el, el.Type().String())
	}
}

func baseJSON(el model.Element, typ string) elementJSON {
	g := el.Geom()
	return elementJSON{
		Type:   typ,
		ID:     g.ID,
		Left:   g.Left,
		Top:    g.Top,
		Width:  g.Width,
		Height: g.Height,
		Rotate: g.Rotation,
		FlipH:  g.FlipH,
		FlipV:  g.FlipV,
	}
}

func convertText(t *model.TextElement) TextJSON {
	out := TextJSON{
		elementJSON:     baseJSON(t, "text"),
		Paragraphs:      make([]ParagraphJSON, 0, len(t.Paragraphs)),
		DefaultFontName: t.DefaultFontName,
		DefaultColor:    t.DefaultColor,
		VerticalAlign:   t.VerticalAlign,
	}

	for _, p := range t.Paragraphs {
		para := ParagraphJSON{
			Runs:       make([]RunJSON, 0, len(p.Runs)),
			Align:      p.Alignment,
			Level:      p.Level,
			Bullet:     p.Bullet,
			BulletChar: p.BulletChar,
			Numbered:   p.Numbered,
		}
		for _, r := range p.Runs {
			para.Runs = append(para.Runs, RunJSON{
				Text:      r.Text,
				Bold:      r.Bold,
				Italic:    r.Italic,
				Underline: r.Underline,
				Strike:    r.Strike,
				Size:      r.FontSize,
				FontName:  r.FontName,
				Color:     r.Color,
				Link:      r.Link,
			})
		}
		out.Paragraphs = append(out.Paragraphs, para)
	}

	return out
}

func convertShape(s *model.ShapeElement) ShapeJSON {
	return ShapeJSON{
		elementJSON:  baseJSON(s, "shape"),
		ViewBox:      [2]float64{200, 200},
		Path:         s.Path,
		Fill:         s.Fill,
		Gradient:     convertGradient(s.Gradient),
		Outline:      convertOutline(s.Outline),
		FixedRatio:   false,
		EnableShrink: true,
	}
}

func convertImage(img *model.ImageElement) ImageJSON {
	out := ImageJSON{
		elementJSON: baseJSON(img, "image"),
		Src:         img.Src,
		FixedRatio:  true,
		Alt:         img.AltText,
	}

	if img.Crop != nil {
		out.Crop = &[4]float64{img.Crop.Left, img.Crop.Top, img.Crop.Right, img.Crop.Bottom}
	}

	return out
}

func convertLine(l *model.LineElement) LineJSON {
	return LineJSON{
		Type:   "line",
		ID:     l.ID,
		Left:   l.Left,
		Top:    l.Top,
		Start:  l.Start,
		End:    l.End,
		Width:  l.Width,
		Color:  l.Color,
		Points: l.Points,
	}
}

func convertOutline(o *model.Outline) *OutlineJSON {
	if o == nil {
		return nil
	}
	return &OutlineJSON{Color: o.Color, Width: o.Width}
}

func convertGradient(g *model.GradientFill) *GradientJSON {
	if g == nil {
		return nil
	}

	out := &GradientJSON{
		Rotate: g.Angle,
		Colors: make([]GradientColorJSON, 0, len(g.Stops)),
	}
	for _, stop := range g.Stops {
		out.Colors = append(out.Colors, GradientColorJSON{Pos: stop.Position, Color: stop.Color})
	}

	return out
}

func convertBackground(bg *model.Background) *BackgroundJSON {
	out := &BackgroundJSON{Type: bg.Type.String()}

	switch bg.Type {
	case model.BackgroundGradient:
		out.Gradient = convertGradient(bg.Gradient)
	case model.BackgroundImage:
		out.Image = bg.Image
		out.ImageSize = "cover"
	default:
		out.Color = bg.Color
	}

	return out
}

// convertTheme maps the resolved theme onto the slots the editor palette
// shows. Hex slot values become canonical rgba strings.
func convertTheme(t *model.Theme) DocumentTheme {
	slots := []string{
		"dk1", "lt1", "dk2", "lt2",
		"accent1", "accent2", "accent3", "accent4", "accent5", "accent6",
	}

	themeColor := make(map[string]string, len(slots))
	for _, slot := range slots {
		themeColor[slot] = colors.ToRGBA(t.SchemeColor(slot))
	}

	return DocumentTheme{
		FontName:   t.MinorFont(),
		ThemeColor: themeColor,
	}
}
