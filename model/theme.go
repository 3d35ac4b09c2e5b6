package model

import "strings"

// ColorScheme holds the 12 named color slots of a theme as bare hex values
// ("RRGGBB", no #). Values stay hex rather than rgba because scheme colors
// are inputs to further tint/shade arithmetic, not final output.
type ColorScheme struct {
	Dark1             string
	Light1            string
	Dark2             string
	Light2            string
	Accent1           string
	Accent2           string
	Accent3           string
	Accent4           string
	Accent5           string
	Accent6           string
	Hyperlink         string
	FollowedHyperlink string
}

// FontSet names the typefaces for one theme font role.
type FontSet struct {
	Latin         string
	EastAsian     string
	ComplexScript string
}

// FontScheme holds the theme's heading (major) and body (minor) font sets.
type FontScheme struct {
	Major FontSet
	Minor FontSet
}

// Theme is a presentation's color and font scheme. Built once per
// presentation and shared read-only by every slide parse.
type Theme struct {
	Name   string
	Colors ColorScheme
	Fonts  FontScheme
}

// DefaultTheme returns the scheme used when a presentation declares no theme
// or a theme part omits slots. The values are the stock Office theme:
//
//	dk1 000000  lt1 FFFFFF  dk2 44546A  lt2 E7E6E6
//	accent1..6  4472C4 ED7D31 A5A5A5 FFC000 5B9BD5 70AD47
//	hlink 0563C1  folHlink 954F72
//	major Calibri Light, minor Calibri
func DefaultTheme() *Theme {
	return &Theme{
		Name: "Office",
		Colors: ColorScheme{
			Dark1:             "000000",
			Light1:            "FFFFFF",
			Dark2:             "44546A",
			Light2:            "E7E6E6",
			Accent1:           "4472C4",
			Accent2:           "ED7D31",
			Accent3:           "A5A5A5",
			Accent4:           "FFC000",
			Accent5:           "5B9BD5",
			Accent6:           "70AD47",
			Hyperlink:         "0563C1",
			FollowedHyperlink: "954F72",
		},
		Fonts: FontScheme{
			Major: FontSet{Latin: "Calibri Light"},
			Minor: FontSet{Latin: "Calibri"},
		},
	}
}

// SchemeColor resolves a scheme slot reference to a hex value. It accepts
// the slot names used by theme parts (dk1, lt1, accent3, hlink, folHlink)
// and the text/background aliases shapes use (tx1->dk1, bg1->lt1, tx2->dk2,
// bg2->lt2). A nil theme or an unset slot falls back to the default scheme;
// a name outside the 12 slots returns "". Lookup never errors.
func (t *Theme) SchemeColor(slot string) string {
	scheme := &DefaultTheme().Colors
	if t != nil {
		scheme = &t.Colors
	}
	v := scheme.slot(slot)
	if v == "" {
		v = DefaultTheme().Colors.slot(slot)
	}
	return v
}

// MajorFont returns the heading typeface, defaulting when unset.
func (t *Theme) MajorFont() string {
	if t != nil && t.Fonts.Major.Latin != "" {
		return t.Fonts.Major.Latin
	}
	return DefaultTheme().Fonts.Major.Latin
}

// MinorFont returns the body typeface, defaulting when unset.
func (t *Theme) MinorFont() string {
	if t != nil && t.Fonts.Minor.Latin != "" {
		return t.Fonts.Minor.Latin
	}
	return DefaultTheme().Fonts.Minor.Latin
}

func (s *ColorScheme) slot(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dk1", "tx1":
		return s.Dark1
	case "lt1", "bg1":
		return s.Light1
	case "dk2", "tx2":
		return s.Dark2
	case "lt2", "bg2":
		return s.Light2
	case "accent1":
		return s.Accent1
	case "accent2":
		return s.Accent2
	case "accent3":
		return s.Accent3
	case "accent4":
		return s.Accent4
	case "accent5":
		return s.Accent5
	case "accent6":
		return s.Accent6
	case "hlink":
		return s.Hyperlink
	case "folhlink":
		return s.FollowedHyperlink
	default:
		return ""
	}
}
