package colors

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tsawler/scaena/model"
	"github.com/tsawler/scaena/xmlnode"
)

// colorOrder is the resolution order when a container holds more than one
// color form. Well-formed files carry exactly one; the order only matters
// for malformed input.
var colorOrder = []string{"srgbClr", "scrgbClr", "hslClr", "prstClr", "schemeClr", "sysClr"}

// Resolve turns a color container (a solidFill, a gradient stop, a style
// reference, a run property) into a canonical rgba string. It finds the
// container's color form, converts it to hex, applies the modifier children
// (tint, shade, alpha, lumMod, lumOff) and canonicalizes the result. It
// returns "" when the container holds no resolvable color, including the
// phClr placeholder slot, so callers can distinguish "no fill" from black.
func Resolve(n *xmlnode.Node, theme *model.Theme) string {
	if n == nil {
		return ""
	}
	for _, name := range colorOrder {
		c := n.Child(name)
		if c == nil {
			continue
		}
		base := baseColor(c, theme)
		if base == "" {
			return ""
		}
		return ToRGBA(applyModifiers(base, c))
	}
	return ""
}

// baseColor extracts the unmodified hex value of one color element.
func baseColor(c *xmlnode.Node, theme *model.Theme) string {
	switch c.Local() {
	case "srgbClr":
		return strings.TrimSpace(c.Attr("val"))
	case "scrgbClr":
		r, okR := pctAttr(c, "r")
		g, okG := pctAttr(c, "g")
		b, okB := pctAttr(c, "b")
		if !okR && !okG && !okB {
			return ""
		}
		return fmt.Sprintf("%02X%02X%02X",
			clampChannel(r*255), clampChannel(g*255), clampChannel(b*255))
	case "hslClr":
		hue := 0.0
		if raw := strings.TrimSpace(c.Attr("hue")); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				hue = v / 60000
			}
		}
		sat, _ := pctAttr(c, "sat")
		lum, _ := pctAttr(c, "lum")
		r, g, b := HSLToRGB(hue, sat, lum)
		return fmt.Sprintf("%02X%02X%02X", r, g, b)
	case "prstClr":
		return PresetHex(c.Attr("val"))
	case "schemeClr":
		slot := strings.TrimSpace(c.Attr("val"))
		if strings.EqualFold(slot, "phClr") {
			return ""
		}
		return theme.SchemeColor(slot)
	case "sysClr":
		if last := strings.TrimSpace(c.Attr("lastClr")); last != "" {
			return last
		}
		switch strings.TrimSpace(c.Attr("val")) {
		case "window":
			return "FFFFFF"
		case "windowText":
			return "000000"
		}
		return ""
	default:
		return ""
	}
}

// applyModifiers applies a color element's modifier children in document
// order. The lumMod/lumOff pair is combined and applied once, matching how
// themes emit it.
func applyModifiers(color string, c *xmlnode.Node) string {
	lumMod, lumOff := 1.0, 0.0
	hasLum := false
	for _, m := range c.Children {
		v, ok := pctAttr(m, "val")
		if !ok {
			continue
		}
		switch m.Local() {
		case "tint":
			// val is the fraction of the original color kept.
			color = ApplyTint(color, 1-v)
		case "shade":
			color = ApplyShade(color, 1-v)
		case "alpha":
			color = ApplyAlpha(color, v)
		case "lumMod":
			lumMod, hasLum = v, true
		case "lumOff":
			lumOff, hasLum = v, true
		}
	}
	if hasLum {
		color = ApplyLum(color, lumMod, lumOff)
	}
	return color
}

// Gradient parses a gradFill node into stops sorted by ascending position
// plus the linear angle in degrees. It returns nil when the node carries no
// stops.
func Gradient(n *xmlnode.Node, theme *model.Theme) *model.GradientFill {
	if n == nil {
		return nil
	}
	var stops []model.GradientStop
	if lst := n.Child("gsLst"); lst != nil {
		for _, gs := range lst.ChildAll("gs") {
			pos := 0.0
			if v, ok := pctAttr(gs, "pos"); ok {
				pos = clamp01(v)
			}
			stops = append(stops, model.GradientStop{
				Position: pos,
				Color:    Resolve(gs, theme),
			})
		}
	}
	if len(stops) == 0 {
		return nil
	}
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Position < stops[j].Position
	})
	g := &model.GradientFill{Stops: stops}
	if lin := n.Child("lin"); lin != nil {
		if raw := strings.TrimSpace(lin.Attr("ang")); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				g.Angle = v / 60000
			}
		}
	}
	return g
}

// pctAttr parses a percentage attribute. The native form is thousandths of
// a percent ("50000" is 50%); some producers write a literal "50%".
func pctAttr(n *xmlnode.Node, name string) (float64, bool) {
	raw := strings.TrimSpace(n.Attr(name))
	if raw == "" {
		return 0, false
	}
	if strings.HasSuffix(raw, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
		if err != nil {
			return 0, false
		}
		return v / 100, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v / 100000, true
}
