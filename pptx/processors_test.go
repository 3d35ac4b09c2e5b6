package pptx

import (
	"testing"

	"github.com/tsawler/scaena/model"
)

func TestShapeWithText(t *testing.T) {
	sp := `      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="4" name="Rounded Rectangle 3"/>
          <p:cNvSpPr/>
          <p:nvPr/>
        </p:nvSpPr>
        <p:spPr>
          <a:xfrm>
            <a:off x="1270000" y="635000"/>
            <a:ext cx="2540000" cy="1270000"/>
          </a:xfrm>
          <a:prstGeom prst="roundRect"><a:avLst/></a:prstGeom>
          <a:solidFill><a:srgbClr val="FF0000"/></a:solidFill>
        </p:spPr>
        <p:txBody>
          <a:bodyPr anchor="ctr"/>
          <a:p><a:r><a:rPr lang="en-US" b="1" sz="2400"/><a:t>Hello</a:t></a:r></a:p>
        </p:txBody>
      </p:sp>`

	res := parseDeck(t, buildDeck(t, []string{slideXML(sp)}, nil), Options{})
	slide := oneSlide(t, res)

	if len(slide.Elements) != 2 {
		t.Fatalf("Expected 2 elements, got %d", len(slide.Elements))
	}

	shape, ok := slide.Elements[0].(*model.ShapeElement)
	if !ok {
		t.Fatalf("Element 0 is %T, want *model.ShapeElement", slide.Elements[0])
	}
	if shape.ID != "4" {
		t.Errorf("Shape ID = %q, want 4", shape.ID)
	}
	if shape.Left != 100 || shape.Top != 50 || shape.Width != 200 || shape.Height != 100 {
		t.Errorf("Shape geometry = %v %v %v %v, want 100 50 200 100",
			shape.Left, shape.Top, shape.Width, shape.Height)
	}
	if shape.Preset != "roundRect" {
		t.Errorf("Preset = %q, want roundRect", shape.Preset)
	}
	if shape.Fill != "rgba(255,0,0,1)" {
		t.Errorf("Fill = %q, want rgba(255,0,0,1)", shape.Fill)
	}
	if shape.Path == "" {
		t.Error("Shape has no path")
	}

	text, ok := slide.Elements[1].(*model.TextElement)
	if !ok {
		t.Fatalf("Element 1 is %T, want *model.TextElement", slide.Elements[1])
	}
	if text.ID != "4_text" {
		t.Errorf("Text ID = %q, want 4_text", text.ID)
	}
	if text.Left != shape.Left || text.Top != shape.Top ||
		text.Width != shape.Width || text.Height != shape.Height {
		t.Error("Text element does not share the shape's footprint")
	}
	if text.VerticalAlign != "middle" {
		t.Errorf("VerticalAlign = %q, want middle", text.VerticalAlign)
	}
	if text.DefaultFontName != "Calibri" {
		t.Errorf("DefaultFontName = %q, want Calibri", text.DefaultFontName)
	}
	if text.DefaultColor != "rgba(0,0,0,1)" {
		t.Errorf("DefaultColor = %q, want rgba(0,0,0,1)", text.DefaultColor)
	}
	if len(text.Paragraphs) != 1 || len(text.Paragraphs[0].Runs) != 1 {
		t.Fatalf("Unexpected paragraph structure: %+v", text.Paragraphs)
	}
	run := text.Paragraphs[0].Runs[0]
	if run.Text != "Hello" || !run.Bold || run.FontSize != 24 {
		t.Errorf("Run = %+v, want Hello, bold, 24pt", run)
	}
}

func TestShapeWithoutFillOrText(t *testing.T) {
	sp := `      <p:sp>
        <p:nvSpPr><p:cNvPr id="2" name=""/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>
        <p:spPr>
          <a:xfrm><a:off x="0" y="0"/><a:ext cx="12700" cy="12700"/></a:xfrm>
          <a:prstGeom prst="rect"><a:avLst/></a:prstGeom>
          <a:noFill/>
        </p:spPr>
        <p:txBody><a:bodyPr/><a:p/></p:txBody>
      </p:sp>`

	res := parseDeck(t, buildDeck(t, []string{slideXML(sp)}, nil), Options{})
	slide := oneSlide(t, res)

	if len(slide.Elements) != 0 {
		t.Errorf("Expected no elements, got %d", len(slide.Elements))
	}
}

func TestTextOnlyShape(t *testing.T) {
	// A text box: no fill, no outline, no style. The element keeps the plain
	// shape id since no shape element competes for it.
	sp := `      <p:sp>
        <p:nvSpPr><p:cNvPr id="6" name="TextBox 5"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>
        <p:spPr>
          <a:xfrm><a:off x="127000" y="127000"/><a:ext cx="1270000" cy="635000"/></a:xfrm>
          <a:prstGeom prst="rect"><a:avLst/></a:prstGeom>
          <a:noFill/>
        </p:spPr>
        <p:txBody>
          <a:bodyPr/>
          <a:p><a:r><a:t>Just words</a:t></a:r></a:p>
        </p:txBody>
      </p:sp>`

	res := parseDeck(t, buildDeck(t, []string{slideXML(sp)}, nil), Options{})
	slide := oneSlide(t, res)

	if len(slide.Elements) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(slide.Elements))
	}
	text, ok := slide.Elements[0].(*model.TextElement)
	if !ok {
		t.Fatalf("Element is %T, want *model.TextElement", slide.Elements[0])
	}
	if text.ID != "6" {
		t.Errorf("ID = %q, want 6", text.ID)
	}
	if got := text.Text(); got != "Just words" {
		t.Errorf("Text = %q, want Just words", got)
	}
}

func TestNoFillSuppressesStyleFill(t *testing.T) {
	// An explicit noFill wins over the style fill reference.
	sp := `      <p:sp>
        <p:nvSpPr><p:cNvPr id="3" name=""/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>
        <p:spPr>
          <a:xfrm><a:off x="0" y="0"/><a:ext cx="127000" cy="127000"/></a:xfrm>
          <a:noFill/>
        </p:spPr>
        <p:style>
          <a:fillRef idx="1"><a:schemeClr val="accent1"/></a:fillRef>
        </p:style>
        <p:txBody>
          <a:bodyPr/>
          <a:p><a:r><a:t>label</a:t></a:r></a:p>
        </p:txBody>
      </p:sp>`

	res := parseDeck(t, buildDeck(t, []string{slideXML(sp)}, nil), Options{})
	slide := oneSlide(t, res)

	if len(slide.Elements) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(slide.Elements))
	}
	if _, ok := slide.Elements[0].(*model.TextElement); !ok {
		t.Errorf("Element is %T, want *model.TextElement", slide.Elements[0])
	}
}

func TestStyleReferenceFill(t *testing.T) {
	sp := `      <p:sp>
        <p:nvSpPr><p:cNvPr id="5" name=""/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>
        <p:spPr>
          <a:xfrm><a:off x="0" y="0"/><a:ext cx="1270000" cy="1270000"/></a:xfrm>
          <a:prstGeom prst="ellipse"><a:avLst/></a:prstGeom>
        </p:spPr>
        <p:style>
          <a:lnRef idx="2"><a:schemeClr val="accent1"><a:shade val="50000"/></a:schemeClr></a:lnRef>
          <a:fillRef idx="1"><a:schemeClr val="accent2"/></a:fillRef>
          <a:effectRef idx="0"><a:schemeClr val="accent2"/></a:effectRef>
          <a:fontRef idx="minor"><a:schemeClr val="lt1"/></a:fontRef>
        </p:style>
        <p:txBody><a:bodyPr/><a:p/></p:txBody>
      </p:sp>`

	res := parseDeck(t, buildDeck(t, []string{slideXML(sp)}, nil), Options{})
	slide := oneSlide(t, res)

	if len(slide.Elements) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(slide.Elements))
	}
	shape, ok := slide.Elements[0].(*model.ShapeElement)
	if !ok {
		t.Fatalf("Element is %T, want *model.ShapeElement", slide.Elements[0])
	}
	// accent2 through the fill reference.
	if shape.Fill != "rgba(237,125,49,1)" {
		t.Errorf("Fill = %q, want rgba(237,125,49,1)", shape.Fill)
	}
	if shape.Outline == nil {
		t.Fatal("Expected an outline from the line reference")
	}
	// accent1 at 50% shade.
	if shape.Outline.Color != "rgba(34,57,98,1)" {
		t.Errorf("Outline color = %q, want rgba(34,57,98,1)", shape.Outline.Color)
	}
	if shape.Outline.Width != 1 {
		t.Errorf("Outline width = %v, want 1", shape.Outline.Width)
	}
}

func TestStyleReferenceIndexZeroIgnored(t *testing.T) {
	sp := `      <p:sp>
        <p:nvSpPr><p:cNvPr id="5" name=""/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>
        <p:spPr>
          <a:xfrm><a:off x="0" y="0"/><a:ext cx="1270000" cy="1270000"/></a:xfrm>
        </p:spPr>
        <p:style>
          <a:fillRef idx="0"><a:schemeClr val="accent1"/></a:fillRef>
        </p:style>
        <p:txBody><a:bodyPr/><a:p/></p:txBody>
      </p:sp>`

	res := parseDeck(t, buildDeck(t, []string{slideXML(sp)}, nil), Options{})
	slide := oneSlide(t, res)

	if len(slide.Elements) != 0 {
		t.Errorf("Expected no elements for idx 0 style ref, got %d", len(slide.Elements))
	}
}

func TestGradientFill(t *testing.T) {
	// Stops arrive out of order; the parsed gradient is sorted by position.
	sp := `      <p:sp>
        <p:nvSpPr><p:cNvPr id="7" name=""/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>
        <p:spPr>
          <a:xfrm><a:off x="0" y="0"/><a:ext cx="1270000" cy="1270000"/></a:xfrm>
          <a:gradFill>
            <a:gsLst>
              <a:gs pos="100000"><a:srgbClr val="0000FF"/></a:gs>
              <a:gs pos="0"><a:srgbClr val="FF0000"/></a:gs>
            </a:gsLst>
            <a:lin ang="5400000" scaled="1"/>
          </a:gradFill>
        </p:spPr>
        <p:txBody><a:bodyPr/><a:p/></p:txBody>
      </p:sp>`

	res := parseDeck(t, buildDeck(t, []string{slideXML(sp)}, nil), Options{})
	slide := oneSlide(t, res)

	if len(slide.Elements) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(slide.Elements))
	}
	shape := slide.Elements[0].(*model.ShapeElement)
	if shape.Fill != "" {
		t.Errorf("Fill = %q, want empty for gradient shapes", shape.Fill)
	}
	g := shape.Gradient
	if g == nil {
		t.Fatal("Expected a gradient")
	}
	if g.Angle != 90 {
		t.Errorf("Angle = %v, want 90", g.Angle)
	}
	if len(g.Stops) != 2 {
		t.Fatalf("Expected 2 stops, got %d", len(g.Stops))
	}
	if g.Stops[0].Position != 0 || g.Stops[0].Color != "rgba(255,0,0,1)" {
		t.Errorf("Stop 0 = %+v, want position 0 red", g.Stops[0])
	}
	if g.Stops[1].Position != 1 || g.Stops[1].Color != "rgba(0,0,255,1)" {
		t.Errorf("Stop 1 = %+v, want position 1 blue", g.Stops[1])
	}
}

func textShape(id, body string) string {
	return `      <p:sp>
        <p:nvSpPr><p:cNvPr id="` + id + `" name=""/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>
        <p:spPr>
          <a:xfrm><a:off x="0" y="0"/><a:ext cx="2540000" cy="1270000"/></a:xfrm>
        </p:spPr>
        <p:txBody>
          <a:bodyPr/>
` + body + `
        </p:txBody>
      </p:sp>`
}

func parseTextShape(t *testing.T, body string) *model.TextElement {
	t.Helper()
	res := parseDeck(t, buildDeck(t, []string{slideXML(textShape("9", body))}, nil), Options{})
	slide := oneSlide(t, res)
	if len(slide.Elements) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(slide.Elements))
	}
	text, ok := slide.Elements[0].(*model.TextElement)
	if !ok {
		t.Fatalf("Element is %T, want *model.TextElement", slide.Elements[0])
	}
	return text
}

func TestParagraphBullets(t *testing.T) {
	text := parseTextShape(t, `          <a:p>
            <a:pPr lvl="1"/>
            <a:r><a:t>indented</a:t></a:r>
          </a:p>
          <a:p>
            <a:pPr lvl="1"><a:buNone/></a:pPr>
            <a:r><a:t>switched off</a:t></a:r>
          </a:p>
          <a:p>
            <a:pPr><a:buChar char="-"/></a:pPr>
            <a:r><a:t>dashed</a:t></a:r>
          </a:p>
          <a:p>
            <a:pPr><a:buAutoNum type="arabicPeriod"/></a:pPr>
            <a:r><a:t>numbered</a:t></a:r>
          </a:p>`)

	if len(text.Paragraphs) != 4 {
		t.Fatalf("Expected 4 paragraphs, got %d", len(text.Paragraphs))
	}

	p := text.Paragraphs[0]
	if p.Level != 1 || !p.Bullet || p.BulletChar != "" {
		t.Errorf("Indented paragraph = %+v, want level 1 with default bullet", p)
	}
	p = text.Paragraphs[1]
	if p.Bullet || p.Numbered {
		t.Errorf("buNone paragraph = %+v, want no bullet", p)
	}
	p = text.Paragraphs[2]
	if !p.Bullet || p.BulletChar != "-" {
		t.Errorf("buChar paragraph = %+v, want dash bullet", p)
	}
	p = text.Paragraphs[3]
	if !p.Numbered || p.Bullet {
		t.Errorf("buAutoNum paragraph = %+v, want numbered", p)
	}
}

func TestParagraphAlignment(t *testing.T) {
	text := parseTextShape(t, `          <a:p>
            <a:pPr algn="ctr"/>
            <a:r><a:t>centered</a:t></a:r>
          </a:p>
          <a:p>
            <a:pPr algn="just"/>
            <a:r><a:t>justified</a:t></a:r>
          </a:p>`)

	if got := text.Paragraphs[0].Alignment; got != "center" {
		t.Errorf("Alignment = %q, want center", got)
	}
	if got := text.Paragraphs[1].Alignment; got != "justify" {
		t.Errorf("Alignment = %q, want justify", got)
	}
}

func TestRunsFieldsAndBreaks(t *testing.T) {
	// Field runs contribute their cached text; br becomes a newline run.
	text := parseTextShape(t, `          <a:p>
            <a:r><a:t>Page </a:t></a:r>
            <a:fld id="{F2F4F4A0-99AD-4A43-B7C4-B3C4B7A2A6D1}" type="slidenum">
              <a:t>1</a:t>
            </a:fld>
            <a:br/>
            <a:r><a:rPr i="1" u="sng" strike="sngStrike"/><a:t>end</a:t></a:r>
          </a:p>`)

	runs := text.Paragraphs[0].Runs
	if len(runs) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(runs))
	}
	if runs[0].Text != "Page " || runs[1].Text != "1" {
		t.Errorf("Run texts = %q, %q; want \"Page \", \"1\"", runs[0].Text, runs[1].Text)
	}
	if runs[2].Text != "\n" {
		t.Errorf("Break run text = %q, want newline", runs[2].Text)
	}
	last := runs[3]
	if last.Text != "end" || !last.Italic || !last.Underline || !last.Strike {
		t.Errorf("Styled run = %+v, want italic underlined struck \"end\"", last)
	}
	if got := text.Text(); got != "Page 1\nend" {
		t.Errorf("Text = %q, want \"Page 1\\nend\"", got)
	}
}

func TestRunHyperlink(t *testing.T) {
	rels := `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="https://example.com/page" TargetMode="External"/>
</Relationships>`
	body := `          <a:p>
            <a:r>
              <a:rPr><a:hlinkClick r:id="rId2"/></a:rPr>
              <a:t>click me</a:t>
            </a:r>
          </a:p>`

	deck := buildDeck(t, []string{slideXML(textShape("9", body))}, map[string]string{
		"ppt/slides/_rels/slide1.xml.rels": rels,
	})
	res := parseDeck(t, deck, Options{})
	slide := oneSlide(t, res)

	text := slide.Elements[0].(*model.TextElement)
	run := text.Paragraphs[0].Runs[0]
	if run.Link != "https://example.com/page" {
		t.Errorf("Link = %q, want https://example.com/page", run.Link)
	}
}

func TestRunThemeFont(t *testing.T) {
	text := parseTextShape(t, `          <a:p>
            <a:r><a:rPr><a:latin typeface="+mj-lt"/></a:rPr><a:t>heading</a:t></a:r>
            <a:r><a:rPr><a:latin typeface="Consolas"/></a:rPr><a:t>mono</a:t></a:r>
          </a:p>`)

	runs := text.Paragraphs[0].Runs
	if runs[0].FontName != "Calibri Light" {
		t.Errorf("Theme font = %q, want Calibri Light", runs[0].FontName)
	}
	if runs[1].FontName != "Consolas" {
		t.Errorf("Literal font = %q, want Consolas", runs[1].FontName)
	}
}

func TestTitlePlaceholderDefaults(t *testing.T) {
	sp := `      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="2" name="Title 1"/>
          <p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr>
          <p:nvPr><p:ph type="title"/></p:nvPr>
        </p:nvSpPr>
        <p:spPr>
          <a:xfrm><a:off x="0" y="0"/><a:ext cx="2540000" cy="635000"/></a:xfrm>
        </p:spPr>
        <p:txBody>
          <a:bodyPr/>
          <a:p><a:r><a:t>Quarterly Review</a:t></a:r></a:p>
        </p:txBody>
      </p:sp>`

	res := parseDeck(t, buildDeck(t, []string{slideXML(sp)}, nil), Options{})
	slide := oneSlide(t, res)

	text := slide.Elements[0].(*model.TextElement)
	if text.Placeholder != "title" {
		t.Errorf("Placeholder = %q, want title", text.Placeholder)
	}
	if text.DefaultFontName != "Calibri Light" {
		t.Errorf("DefaultFontName = %q, want the major font", text.DefaultFontName)
	}
}

func TestShapeRotationAndFlip(t *testing.T) {
	sp := `      <p:sp>
        <p:nvSpPr><p:cNvPr id="8" name=""/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>
        <p:spPr>
          <a:xfrm rot="2700000" flipH="1">
            <a:off x="0" y="0"/><a:ext cx="1270000" cy="1270000"/>
          </a:xfrm>
          <a:solidFill><a:srgbClr val="00FF00"/></a:solidFill>
        </p:spPr>
        <p:txBody><a:bodyPr/><a:p/></p:txBody>
      </p:sp>`

	res := parseDeck(t, buildDeck(t, []string{slideXML(sp)}, nil), Options{})
	slide := oneSlide(t, res)

	shape := slide.Elements[0].(*model.ShapeElement)
	if shape.Rotation != 45 {
		t.Errorf("Rotation = %v, want 45", shape.Rotation)
	}
	if !shape.FlipH || shape.FlipV {
		t.Errorf("Flips = %v %v, want flipH only", shape.FlipH, shape.FlipV)
	}
}

func TestUnknownPresetFallsBackToRect(t *testing.T) {
	if presetPath("weirdNewShape42") != shapePaths["rect"] {
		t.Error("Unknown preset should fall back to the rect path")
	}
	if presetPath("heart") == shapePaths["rect"] {
		t.Error("Known preset should have its own path")
	}
}
