package scaena

import (
	"io"

	"github.com/tsawler/scaena/pptx"
)

// ExtractOptions holds configuration for presentation decoding.
type ExtractOptions struct {
	// Slide selection (1-indexed in API, stored as-is)
	slides []int

	// Content filtering
	skipImages bool
	skipNotes  bool

	// Processing options
	imageWorkers int
	ocr          bool
	ocrLanguages []string
	diagnostics  io.Writer
}

// defaultOptions returns the default decoding options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		slides:       nil, // nil means all slides
		skipImages:   false,
		skipNotes:    false,
		imageWorkers: 0, // 0 means the parser picks
		ocr:          false,
		ocrLanguages: nil,
		diagnostics:  nil,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		skipImages:   o.skipImages,
		skipNotes:    o.skipNotes,
		imageWorkers: o.imageWorkers,
		ocr:          o.ocr,
		diagnostics:  o.diagnostics,
	}

	// Deep copy slices
	if o.slides != nil {
		newOpts.slides = make([]int, len(o.slides))
		copy(newOpts.slides, o.slides)
	}
	if o.ocrLanguages != nil {
		newOpts.ocrLanguages = make([]string, len(o.ocrLanguages))
		copy(newOpts.ocrLanguages, o.ocrLanguages)
	}

	return newOpts
}

// parserOptions converts the extractor configuration into the option
// struct the pptx parser consumes.
func (o ExtractOptions) parserOptions() pptx.Options {
	return pptx.Options{
		Slides:       o.slides,
		SkipImages:   o.skipImages,
		SkipNotes:    o.skipNotes,
		ImageWorkers: o.imageWorkers,
		OCR:          o.ocr,
		OCRLanguages: o.ocrLanguages,
		Diagnostics:  o.diagnostics,
	}
}
