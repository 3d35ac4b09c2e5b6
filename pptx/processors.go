package pptx

import (
	"strconv"
	"strings"

	"github.com/tsawler/scaena/colors"
	"github.com/tsawler/scaena/emu"
	"github.com/tsawler/scaena/model"
	"github.com/tsawler/scaena/xmlnode"
)

// Processor converts one shape-tree node into document elements. Processors
// are consulted in order and the first one whose CanProcess claims the node
// wins, so more specific processors sit ahead of general ones.
type Processor interface {
	// Name identifies the processor in warnings and diagnostics.
	Name() string

	// CanProcess reports whether the processor claims this node.
	CanProcess(n *xmlnode.Node) bool

	// Process converts the node into zero or more elements. A returned
	// error is scoped to the node: the caller records it and moves on.
	Process(n *xmlnode.Node, ctx *Context) ([]model.Element, error)
}

// defaultProcessors returns the built-in chain: pictures first, then
// connectors, then general shapes.
func defaultProcessors() []Processor {
	return []Processor{
		&ImageProcessor{},
		&LineProcessor{},
		&ShapeProcessor{},
	}
}

// parseGeometry reads a shape's placement from its transform and maps it
// through the accumulated group transform into absolute slide coordinates,
// in points. Shapes without an explicit transform (placeholders deferring
// to their layout) come back zero-sized at the group origin.
func parseGeometry(n *xmlnode.Node, ctx *Context) model.Geometry {
	var g model.Geometry
	if xfrm := xmlnode.FindPath(n, "spPr", "xfrm"); xfrm != nil {
		if off := xfrm.Child("off"); off != nil {
			g.Left = emu.AttrToPoints(off.Attr("x"))
			g.Top = emu.AttrToPoints(off.Attr("y"))
		}
		if ext := xfrm.Child("ext"); ext != nil {
			g.Width = emu.AttrToPoints(ext.Attr("cx"))
			g.Height = emu.AttrToPoints(ext.Attr("cy"))
		}
		g.Rotation = rotAttr(xfrm)
		g.FlipH = boolAttr(xfrm, "flipH")
		g.FlipV = boolAttr(xfrm, "flipV")
	}

	t := ctx.Transform
	g.Left, g.Top = t.Apply(g.Left, g.Top)
	g.Width *= t.ScaleX
	g.Height *= t.ScaleY
	g.Rotation += t.Rotation
	if t.FlipH {
		g.FlipH = !g.FlipH
	}
	if t.FlipV {
		g.FlipV = !g.FlipV
	}
	return g
}

// elementID derives an element's id from its non-visual drawing properties
// and claims it from the presentation-wide generator, which suffixes
// duplicates so ids stay unique across the whole deck.
func elementID(n *xmlnode.Node, ctx *Context, kind string) string {
	pr := xmlnode.FindNode(n, "cNvPr")
	desired := pr.Attr("id")
	if desired == "" {
		desired = pr.Attr("name")
	}
	if desired == "" {
		desired = kind
	}
	return ctx.IDs.Claim(desired)
}

// placeholderType returns the shape's placeholder class ("title", "body",
// "sldImg", ...) or "" when the shape is not a placeholder. Placeholders
// carrying only an index default to "body".
func placeholderType(n *xmlnode.Node) string {
	ph := xmlnode.FindNode(n, "ph")
	if ph == nil {
		return ""
	}
	if t := ph.Attr("type"); t != "" {
		return t
	}
	return "body"
}

func isTitlePlaceholder(ph string) bool {
	return ph == "title" || ph == "ctrTitle"
}

// boolAttr reads an OOXML boolean attribute ("1"/"true" are set).
func boolAttr(n *xmlnode.Node, name string) bool {
	v := n.Attr(name)
	return v == "1" || strings.EqualFold(v, "true")
}

// rotAttr reads a node's rot attribute, stored in 60000ths of a degree,
// into degrees.
func rotAttr(n *xmlnode.Node) float64 {
	v := n.Attr("rot")
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f / 60000
}

// ShapeProcessor handles general sp nodes: autoshapes, text boxes and
// placeholders. A shape with both visible styling and text yields two
// elements sharing one footprint, the text riding on the shape under a
// derived id.
type ShapeProcessor struct{}

// Name identifies the processor.
func (p *ShapeProcessor) Name() string { return "shape" }

// CanProcess claims every sp node. Connector-styled shapes are picked off
// earlier in the chain by the line processor.
func (p *ShapeProcessor) CanProcess(n *xmlnode.Node) bool {
	return n.Local() == "sp"
}

// Process converts a shape node into its elements.
func (p *ShapeProcessor) Process(n *xmlnode.Node, ctx *Context) ([]model.Element, error) {
	spPr := n.Child("spPr")
	style := n.Child("style")

	preset := "rect"
	if pg := spPr.Child("prstGeom"); pg != nil && pg.Attr("prst") != "" {
		preset = pg.Attr("prst")
	}

	fill, gradient := parseFill(spPr, style, ctx)
	outline := parseOutline(spPr, style, ctx)
	text := parseTextBody(n.Child("txBody"), ctx, placeholderType(n))

	visual := fill != "" || gradient != nil || outline != nil
	if !visual && text == nil {
		return nil, nil
	}

	geom := parseGeometry(n, ctx)
	id := elementID(n, ctx, "shape")

	var out []model.Element
	if visual {
		shape := &model.ShapeElement{
			Geometry: geom,
			Preset:   preset,
			Path:     presetPath(preset),
			Fill:     fill,
			Gradient: gradient,
			Outline:  outline,
		}
		shape.ID = id
		out = append(out, shape)
	}
	if text != nil {
		text.Geometry = geom
		text.ID = id
		if visual {
			text.ID = ctx.IDs.Claim(id + "_text")
		}
		out = append(out, text)
	}
	return out, nil
}

// parseFill resolves a shape's effective fill: an explicit fill on spPr
// wins, an explicit noFill suppresses everything including the style
// fallback, and otherwise the shape's style fill reference supplies the
// themed default.
func parseFill(spPr, style *xmlnode.Node, ctx *Context) (string, *model.GradientFill) {
	if spPr != nil {
		if spPr.Child("noFill") != nil {
			return "", nil
		}
		if sf := spPr.Child("solidFill"); sf != nil {
			return colors.Resolve(sf, ctx.Theme), nil
		}
		if gf := spPr.Child("gradFill"); gf != nil {
			return "", colors.Gradient(gf, ctx.Theme)
		}
	}
	if ref := styleRef(style, "fillRef"); ref != nil {
		if c := colors.Resolve(ref, ctx.Theme); c != "" {
			return c, nil
		}
	}
	return "", nil
}

// parseOutline resolves a shape's border from its ln properties or, absent
// those, its style line reference. Only solid strokes are kept.
func parseOutline(spPr, style *xmlnode.Node, ctx *Context) *model.Outline {
	if spPr != nil {
		if ln := spPr.Child("ln"); ln != nil {
			if ln.Child("noFill") != nil {
				return nil
			}
			if sf := ln.Child("solidFill"); sf != nil {
				if c := colors.Resolve(sf, ctx.Theme); c != "" {
					return &model.Outline{Color: c, Width: lineWidth(ln)}
				}
			}
		}
	}
	if ref := styleRef(style, "lnRef"); ref != nil {
		if c := colors.Resolve(ref, ctx.Theme); c != "" {
			return &model.Outline{Color: c, Width: 1}
		}
	}
	return nil
}

// styleRef returns the named style reference when it points at a real
// format slot. Index 0 means "no format from the style matrix".
func styleRef(style *xmlnode.Node, name string) *xmlnode.Node {
	if style == nil {
		return nil
	}
	ref := style.Child(name)
	if ref == nil {
		return nil
	}
	if idx := ref.Attr("idx"); idx == "" || idx == "0" {
		return nil
	}
	return ref
}

// lineWidth reads a ln node's stroke width in points, defaulting to 1.
func lineWidth(ln *xmlnode.Node) float64 {
	if w := ln.Attr("w"); w != "" {
		return emu.AttrToPoints(w)
	}
	return 1
}
