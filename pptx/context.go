package pptx

import (
	"fmt"
	"io"

	"github.com/tsawler/scaena/geometry"
	"github.com/tsawler/scaena/model"
	"github.com/tsawler/scaena/ocr"
)

// Options configures a [Parser]. The zero value parses everything with
// default limits.
type Options struct {
	// Slides selects which slides to parse by 1-based deck position.
	// Empty means all slides.
	Slides []int

	// SkipImages leaves image payloads unextracted. Image elements still
	// appear, carrying the raw relationship target as their source.
	SkipImages bool

	// SkipNotes leaves speaker notes unread.
	SkipNotes bool

	// ImageWorkers bounds how many embedded images are decoded at once.
	// Zero or negative selects the default of 4.
	ImageWorkers int

	// OCR runs text recognition over extracted images whose markup carries
	// no alternative text. It requires the library to be built with the
	// ocr tag; without it the option is a no-op.
	OCR bool

	// OCRLanguages selects OCR language models; empty means English.
	OCRLanguages []string

	// Diagnostics receives a line-oriented trace of the parse when set.
	// Output is unaffected by whether a sink is attached.
	Diagnostics io.Writer
}

// defaultImageWorkers bounds concurrent image decodes per batch.
const defaultImageWorkers = 4

func (o Options) imageWorkers() int {
	if o.ImageWorkers <= 0 {
		return defaultImageWorkers
	}
	return o.ImageWorkers
}

// wantSlide reports whether the 1-based slide number is selected.
func (o Options) wantSlide(n int) bool {
	if len(o.Slides) == 0 {
		return true
	}
	for _, s := range o.Slides {
		if s == n {
			return true
		}
	}
	return false
}

// Context is the per-slide parsing session: the container and this slide's
// relationship set, the shared read-only theme, the accumulated group
// transform for the subtree being walked, and the presentation-wide id
// generator and warnings collector. A Context is created per slide and
// copied (with a new Transform) when the walk descends into a group.
type Context struct {
	Container *Container
	SlideNum  int // 1-based deck position
	SlideID   string
	Theme     *model.Theme
	Rels      *Relationships
	Transform geometry.GroupTransform
	IDs       *idGen
	Warnings  *model.WarningCollector
	Opts      Options

	images map[string]BatchResult
	ocr    *ocr.Client
	diag   io.Writer
}

// withTransform returns a copy of the context carrying the given composed
// transform, for walking a group's children.
func (c *Context) withTransform(t geometry.GroupTransform) *Context {
	cp := *c
	cp.Transform = t
	return &cp
}

// Warn records a warning scoped to this slide.
func (c *Context) Warn(context, format string, args ...interface{}) {
	c.Warnings.Addf(c.SlideNum, context, format, args...)
}

// Diag writes one trace line to the diagnostics sink, if any.
func (c *Context) Diag(format string, args ...interface{}) {
	if c.diag == nil {
		return
	}
	fmt.Fprintf(c.diag, "slide %d: "+format+"\n", append([]interface{}{c.SlideNum}, args...)...)
}
