// Package emu converts English Metric Units, the native length unit of OOXML
// containers, into points.
//
// The format's various consumers disagree on the conversion factor; this
// package applies the nominal OOXML definition of 12700 EMU per point
// uniformly, everywhere. 914400 EMU is one inch, 9144000 x 6858000 is the
// classic 10x7.5 inch slide, and both map onto round point values under this
// constant (720x540).
package emu

import (
	"math"
	"strconv"
	"strings"
)

// PerPoint is the number of EMU in one typographic point.
const PerPoint = 12700

// ToPoints converts an EMU length to points, rounded to two decimals.
func ToPoints(v int64) float64 {
	return ToPointsPrecision(v, 2)
}

// ToPointsPrecision converts an EMU length to points, rounded to the given
// number of decimal digits. Negative precision is treated as zero.
func ToPointsPrecision(v int64, precision int) float64 {
	if precision < 0 {
		precision = 0
	}
	p := math.Pow10(precision)
	return math.Round(float64(v)/PerPoint*p) / p
}

// AttrToPoints converts an attribute string holding an EMU length to points.
// Unparseable input converts to 0; coordinate attributes are optional all
// over the format and absence means origin.
func AttrToPoints(s string) float64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return ToPoints(v)
}

// AttrToEMU parses an attribute string holding an EMU length, returning 0
// for unparseable input.
func AttrToEMU(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
