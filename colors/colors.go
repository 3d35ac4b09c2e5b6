// Package colors normalizes the color vocabulary of OOXML fills into one
// canonical form.
//
// Every function here is total: any input string, including empty or garbage
// input, maps to a well-formed "rgba(r,g,b,a)" value with integer channels in
// [0,255] and alpha in [0,1]. Color handling sits on every fill, text run,
// and background path, and a throwing color routine would turn a cosmetic
// defect in one shape into a lost slide, so the no-error contract is load
// bearing, not a convenience.
//
// [ToRGBA] is idempotent: feeding its output back in reproduces it exactly.
// The transform primitives ([ApplyTint], [ApplyShade], [ApplyAlpha]) accept
// any parseable color form and emit canonical output.
package colors

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// rgba is the internal working form: integer channels plus fractional alpha.
type rgba struct {
	r, g, b int
	a       float64
}

const (
	opaqueBlack      = "rgba(0,0,0,1)"
	transparentBlack = "rgba(0,0,0,0)"
)

// ToRGBA converts any color string to the canonical rgba form. The mapping
// never fails:
//
//	empty, "null", "undefined", whitespace  -> rgba(0,0,0,1)
//	"none", "transparent"                   -> rgba(0,0,0,0)
//	hex (bare or #, 3/4/6/8 digits)         -> normalized, alpha from digits
//	rgb(...) / rgba(...)                    -> channels clamped; a missing
//	                                           alpha defaults to 1
//	anything else                           -> rgba(0,0,0,1)
func ToRGBA(s string) string {
	c, ok := parse(s)
	if !ok {
		return opaqueBlack
	}
	return format(c)
}

func parse(s string) (rgba, bool) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch lower {
	case "", "null", "undefined":
		return rgba{a: 1}, true
	case "none", "transparent":
		return rgba{}, true
	}
	if c, ok := parseHex(s); ok {
		return c, true
	}
	if c, ok := parseFunc(lower); ok {
		return c, true
	}
	return rgba{}, false
}

func format(c rgba) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.r, c.g, c.b, formatAlpha(c.a))
}

// formatAlpha prints alpha rounded to two decimals without trailing zeros,
// so the output reparses to the identical value.
func formatAlpha(a float64) string {
	a = clamp01(math.Round(a*100) / 100)
	if a == math.Trunc(a) {
		return strconv.Itoa(int(a))
	}
	return strconv.FormatFloat(a, 'f', -1, 64)
}

func parseHex(s string) (rgba, bool) {
	s = strings.TrimPrefix(s, "#")
	for _, r := range s {
		if !isHexDigit(r) {
			return rgba{}, false
		}
	}
	hx := func(sub string) int {
		v, _ := strconv.ParseUint(sub, 16, 16)
		return int(v)
	}
	switch len(s) {
	case 3:
		return rgba{hx(s[0:1]) * 17, hx(s[1:2]) * 17, hx(s[2:3]) * 17, 1}, true
	case 4:
		return rgba{hx(s[0:1]) * 17, hx(s[1:2]) * 17, hx(s[2:3]) * 17, float64(hx(s[3:4])*17) / 255}, true
	case 6:
		return rgba{hx(s[0:2]), hx(s[2:4]), hx(s[4:6]), 1}, true
	case 8:
		return rgba{hx(s[0:2]), hx(s[2:4]), hx(s[4:6]), float64(hx(s[6:8])) / 255}, true
	}
	return rgba{}, false
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// parseFunc handles rgb(...) and rgba(...), tolerating a missing alpha in
// either spelling.
func parseFunc(lower string) (rgba, bool) {
	var body string
	switch {
	case strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(lower, ")"):
		body = lower[5 : len(lower)-1]
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		body = lower[4 : len(lower)-1]
	default:
		return rgba{}, false
	}

	parts := strings.Split(body, ",")
	if len(parts) < 3 || len(parts) > 4 {
		return rgba{}, false
	}
	var ch [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil || math.IsNaN(v) {
			return rgba{}, false
		}
		ch[i] = clampChannel(v)
	}
	a := 1.0
	if len(parts) == 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || math.IsNaN(v) {
			return rgba{}, false
		}
		a = clamp01(v)
	}
	return rgba{ch[0], ch[1], ch[2], a}, true
}

func clampChannel(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(math.Round(v))
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ApplyTint blends a color toward white by the given fraction: 0 leaves it
// unchanged, 1 yields white. Alpha is preserved.
func ApplyTint(color string, factor float64) string {
	c, ok := parse(color)
	if !ok {
		c = rgba{a: 1}
	}
	f := clamp01(factor)
	c.r = clampChannel(float64(c.r) + (255-float64(c.r))*f)
	c.g = clampChannel(float64(c.g) + (255-float64(c.g))*f)
	c.b = clampChannel(float64(c.b) + (255-float64(c.b))*f)
	return format(c)
}

// ApplyShade blends a color toward black by the given fraction: 0 leaves it
// unchanged, 1 yields black. Alpha is preserved.
func ApplyShade(color string, factor float64) string {
	c, ok := parse(color)
	if !ok {
		c = rgba{a: 1}
	}
	keep := 1 - clamp01(factor)
	c.r = clampChannel(float64(c.r) * keep)
	c.g = clampChannel(float64(c.g) * keep)
	c.b = clampChannel(float64(c.b) * keep)
	return format(c)
}

// ApplyAlpha sets a color's alpha channel to the given fraction, clamped to
// [0,1].
func ApplyAlpha(color string, factor float64) string {
	c, ok := parse(color)
	if !ok {
		c = rgba{a: 1}
	}
	c.a = clamp01(factor)
	return format(c)
}

// ApplyLum scales then shifts a color's HSL luminance (the lumMod/lumOff
// pair used heavily by recent Office themes). Either argument may be
// negative or beyond 1; the resulting luminance is clamped.
func ApplyLum(color string, mod, off float64) string {
	c, ok := parse(color)
	if !ok {
		c = rgba{a: 1}
	}
	h, s, l := rgbToHSL(c.r, c.g, c.b)
	l = clamp01(l*mod + off)
	c.r, c.g, c.b = HSLToRGB(h, s, l)
	return format(c)
}

// HSLToRGB converts hue in degrees, saturation and lightness in [0,1] into
// integer RGB channels. Hue wraps; saturation and lightness clamp.
func HSLToRGB(h, s, l float64) (int, int, int) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp01(s)
	l = clamp01(l)

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return clampChannel((r + m) * 255), clampChannel((g + m) * 255), clampChannel((b + m) * 255)
}

func rgbToHSL(r, g, b int) (h, s, l float64) {
	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255
	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	l = (max + min) / 2

	if max == min {
		return 0, 0, l
	}
	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}
	switch max {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	return h * 60, s, l
}
