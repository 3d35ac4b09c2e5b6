package pptx

import (
	"strconv"
	"strings"

	"github.com/tsawler/scaena/colors"
	"github.com/tsawler/scaena/model"
	"github.com/tsawler/scaena/xmlnode"
)

// parseTextBody converts a txBody into a text element with its paragraphs,
// run formatting and body-level defaults filled in; geometry and id are the
// caller's business. Bodies whose paragraphs carry no text yield nil, since
// every autoshape owns an empty txBody and those must not become elements.
func parseTextBody(body *xmlnode.Node, ctx *Context, placeholder string) *model.TextElement {
	if body == nil {
		return nil
	}

	el := &model.TextElement{Placeholder: placeholder}
	if bodyPr := body.Child("bodyPr"); bodyPr != nil {
		switch bodyPr.Attr("anchor") {
		case "t":
			el.VerticalAlign = "top"
		case "ctr":
			el.VerticalAlign = "middle"
		case "b":
			el.VerticalAlign = "bottom"
		}
	}

	for _, p := range body.ChildAll("p") {
		el.Paragraphs = append(el.Paragraphs, parseParagraph(p, ctx))
	}
	if strings.TrimSpace(el.Text()) == "" {
		return nil
	}

	if isTitlePlaceholder(placeholder) {
		el.DefaultFontName = ctx.Theme.MajorFont()
	} else {
		el.DefaultFontName = ctx.Theme.MinorFont()
	}
	el.DefaultColor = colors.ToRGBA(ctx.Theme.SchemeColor("tx1"))
	return el
}

func parseParagraph(p *xmlnode.Node, ctx *Context) model.Paragraph {
	var para model.Paragraph

	if pPr := p.Child("pPr"); pPr != nil {
		switch pPr.Attr("algn") {
		case "l":
			para.Alignment = "left"
		case "ctr":
			para.Alignment = "center"
		case "r":
			para.Alignment = "right"
		case "just", "dist":
			para.Alignment = "justify"
		}
		if lvl := pPr.Attr("lvl"); lvl != "" {
			if n, err := strconv.Atoi(lvl); err == nil && n > 0 {
				para.Level = n
			}
		}
		switch {
		case pPr.Child("buNone") != nil:
		case pPr.Child("buChar") != nil:
			para.Bullet = true
			para.BulletChar = pPr.Child("buChar").Attr("char")
		case pPr.Child("buAutoNum") != nil:
			para.Numbered = true
		default:
			// Indented levels inherit a bullet from the master unless the
			// paragraph switches it off.
			if para.Level > 0 {
				para.Bullet = true
			}
		}
	}

	for _, child := range p.Children {
		switch child.Local() {
		case "r", "fld":
			para.Runs = append(para.Runs, parseRun(child, ctx))
		case "br":
			para.Runs = append(para.Runs, model.Run{Text: "\n"})
		}
	}
	return para
}

// parseRun reads one text run, including the cached text of field runs
// (slide numbers, dates).
func parseRun(r *xmlnode.Node, ctx *Context) model.Run {
	run := model.Run{Text: r.Child("t").TextContent()}

	rPr := r.Child("rPr")
	if rPr == nil {
		return run
	}
	run.Bold = boolAttr(rPr, "b")
	run.Italic = boolAttr(rPr, "i")
	if u := rPr.Attr("u"); u != "" && u != "none" {
		run.Underline = true
	}
	if s := rPr.Attr("strike"); s != "" && s != "noStrike" {
		run.Strike = true
	}
	if sz := rPr.Attr("sz"); sz != "" {
		// Run sizes are stored in hundredths of a point.
		if f, err := strconv.ParseFloat(sz, 64); err == nil && f > 0 {
			run.FontSize = f / 100
		}
	}
	if sf := rPr.Child("solidFill"); sf != nil {
		run.Color = colors.Resolve(sf, ctx.Theme)
	}
	if latin := rPr.Child("latin"); latin != nil {
		run.FontName = resolveTypeface(latin.Attr("typeface"), ctx)
	}
	if link := rPr.Child("hlinkClick"); link != nil {
		if id := link.Attr("id"); id != "" {
			run.Link = ctx.Rels.Target(id)
		}
	}
	return run
}

// resolveTypeface maps theme font placeholders (+mj-lt, +mn-lt) onto the
// theme's concrete fonts; anything else passes through.
func resolveTypeface(tf string, ctx *Context) string {
	switch {
	case strings.HasPrefix(tf, "+mj"):
		return ctx.Theme.MajorFont()
	case strings.HasPrefix(tf, "+mn"):
		return ctx.Theme.MinorFont()
	}
	return tf
}

// textOf flattens a text body to plain text, one line per paragraph, with
// surrounding whitespace trimmed.
func textOf(body *xmlnode.Node) string {
	if body == nil {
		return ""
	}
	var lines []string
	for _, p := range body.ChildAll("p") {
		var b strings.Builder
		for _, child := range p.Children {
			switch child.Local() {
			case "r", "fld":
				b.WriteString(child.Child("t").TextContent())
			case "br":
				b.WriteByte('\n')
			}
		}
		lines = append(lines, b.String())
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
