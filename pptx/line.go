package pptx

import (
	"strings"

	"github.com/tsawler/scaena/colors"
	"github.com/tsawler/scaena/model"
	"github.com/tsawler/scaena/xmlnode"
)

// LineProcessor handles connector shapes (cxnSp) and plain shapes whose
// preset geometry is a line. It sits ahead of the shape processor so line
// presets never render as filled shapes.
type LineProcessor struct{}

// Name identifies the processor.
func (p *LineProcessor) Name() string { return "line" }

// CanProcess claims every connector node and any sp carrying a line-shaped
// preset geometry.
func (p *LineProcessor) CanProcess(n *xmlnode.Node) bool {
	switch n.Local() {
	case "cxnSp":
		return true
	case "sp":
		return isLinePreset(presetOf(n))
	}
	return false
}

// Process converts a connector into a line element. The bounding box plus
// flip flags encode which corners the line runs between.
func (p *LineProcessor) Process(n *xmlnode.Node, ctx *Context) ([]model.Element, error) {
	geom := parseGeometry(n, ctx)
	spPr := n.Child("spPr")

	line := &model.LineElement{Geometry: geom, Width: 1}
	line.ID = elementID(n, ctx, "line")

	if ln := spPr.Child("ln"); ln != nil {
		line.Width = lineWidth(ln)
		if sf := ln.Child("solidFill"); sf != nil {
			line.Color = colors.Resolve(sf, ctx.Theme)
		}
		line.Points[0] = lineEndType(ln.Child("headEnd"))
		line.Points[1] = lineEndType(ln.Child("tailEnd"))
	}
	if line.Color == "" {
		if ref := styleRef(n.Child("style"), "lnRef"); ref != nil {
			line.Color = colors.Resolve(ref, ctx.Theme)
		}
	}
	if line.Color == "" {
		line.Color = colors.ToRGBA(ctx.Theme.SchemeColor("tx1"))
	}

	x1, y1 := 0.0, 0.0
	x2, y2 := geom.Width, geom.Height
	if geom.FlipH {
		x1, x2 = x2, x1
	}
	if geom.FlipV {
		y1, y2 = y2, y1
	}
	line.Start = [2]float64{x1, y1}
	line.End = [2]float64{x2, y2}

	return []model.Element{line}, nil
}

// isLinePreset reports whether a preset geometry renders as a stroke
// rather than a filled outline.
func isLinePreset(prst string) bool {
	if prst == "line" {
		return true
	}
	return strings.HasPrefix(prst, "straightConnector") ||
		strings.HasPrefix(prst, "bentConnector") ||
		strings.HasPrefix(prst, "curvedConnector")
}

func presetOf(n *xmlnode.Node) string {
	return xmlnode.FindPath(n, "spPr", "prstGeom").Attr("prst")
}

// lineEndType maps a connector end decoration onto the editor vocabulary.
func lineEndType(end *xmlnode.Node) string {
	switch end.Attr("type") {
	case "triangle", "arrow", "stealth":
		return "arrow"
	case "oval":
		return "dot"
	}
	return ""
}
