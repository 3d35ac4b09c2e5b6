package pptx

import (
	"fmt"

	"github.com/tsawler/scaena/model"
	"github.com/tsawler/scaena/xmlnode"
)

const (
	presentationPart = "ppt/presentation.xml"
	defaultThemePath = "ppt/theme/theme1.xml"
)

// findThemePath locates the presentation's theme part: the presentation
// part's theme relationship when declared, else the conventional location.
// An empty return means the package carries no theme at all.
func findThemePath(c *Container) string {
	if rels, err := c.Relationships(presentationPart); err == nil {
		if rel, ok := rels.FirstOfType("/theme"); ok {
			if target := rels.Target(rel.ID); target != "" && !rel.External {
				return target
			}
		}
	}
	if c.HasPart(defaultThemePath) {
		return defaultThemePath
	}
	return ""
}

// ParseTheme reads and decodes the theme part at themePath. Pass "" to
// discover the part from the presentation relationships or its conventional
// location; a package that declares no theme anywhere yields (nil, nil) and
// the caller substitutes defaults. A theme that is declared but cannot be
// read or parsed is an error.
func ParseTheme(c *Container, themePath string) (*model.Theme, error) {
	if themePath == "" {
		themePath = findThemePath(c)
		if themePath == "" {
			return nil, nil
		}
	}

	data, err := c.ReadPart(themePath)
	if err != nil {
		return nil, fmt.Errorf("reading theme %s: %w", themePath, err)
	}
	root, err := xmlnode.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing theme %s: %w", themePath, err)
	}

	theme := &model.Theme{Name: root.Attr("name")}

	elements := root.Child("themeElements")
	if elements == nil {
		// Some producers omit themeElements entirely; the scheme nodes are
		// then searched from the root.
		elements = root
	}
	theme.Colors = parseColorScheme(xmlnode.FindNode(elements, "clrScheme"))
	if fonts := xmlnode.FindNode(elements, "fontScheme"); fonts != nil {
		theme.Fonts.Major = parseFontSet(fonts.Child("majorFont"))
		theme.Fonts.Minor = parseFontSet(fonts.Child("minorFont"))
	}
	return theme, nil
}

func parseColorScheme(n *xmlnode.Node) model.ColorScheme {
	var cs model.ColorScheme
	if n == nil {
		return cs
	}
	cs.Dark1 = slotHex(n.Child("dk1"))
	cs.Light1 = slotHex(n.Child("lt1"))
	cs.Dark2 = slotHex(n.Child("dk2"))
	cs.Light2 = slotHex(n.Child("lt2"))
	cs.Accent1 = slotHex(n.Child("accent1"))
	cs.Accent2 = slotHex(n.Child("accent2"))
	cs.Accent3 = slotHex(n.Child("accent3"))
	cs.Accent4 = slotHex(n.Child("accent4"))
	cs.Accent5 = slotHex(n.Child("accent5"))
	cs.Accent6 = slotHex(n.Child("accent6"))
	cs.Hyperlink = slotHex(n.Child("hlink"))
	cs.FollowedHyperlink = slotHex(n.Child("folHlink"))
	return cs
}

// slotHex extracts the hex value of one color scheme slot. Slots hold either
// a literal srgbClr or a sysClr whose lastClr records what the system color
// rendered as most recently.
func slotHex(slot *xmlnode.Node) string {
	if slot == nil {
		return ""
	}
	if c := slot.Child("srgbClr"); c != nil {
		return c.Attr("val")
	}
	if c := slot.Child("sysClr"); c != nil {
		if last := c.Attr("lastClr"); last != "" {
			return last
		}
		switch c.Attr("val") {
		case "window":
			return "FFFFFF"
		case "windowText":
			return "000000"
		}
	}
	return ""
}

func parseFontSet(n *xmlnode.Node) model.FontSet {
	var fs model.FontSet
	if n == nil {
		return fs
	}
	if latin := n.Child("latin"); latin != nil {
		fs.Latin = latin.Attr("typeface")
	}
	if ea := n.Child("ea"); ea != nil {
		fs.EastAsian = ea.Attr("typeface")
	}
	if cs := n.Child("cs"); cs != nil {
		fs.ComplexScript = cs.Attr("typeface")
	}
	return fs
}
