package scaena

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tsawler/scaena/model"
	"github.com/tsawler/scaena/pptx"
)

// Extractor provides a fluent interface for decoding PowerPoint presentations.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source (a filename, or container bytes already in memory)
	filename string
	data     []byte
	hasData  bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Stats from the most recent terminal operation
	stats model.Stats
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	newExt := &Extractor{
		filename: e.filename,
		data:     e.data,
		hasData:  e.hasData,
		options:  e.options.clone(),
		err:      e.err,
		stats:    e.stats,
	}
	return newExt
}

// input returns the container bytes, reading the file when the source is
// a filename.
func (e *Extractor) input() ([]byte, error) {
	if e.hasData {
		return e.data, nil
	}
	if e.filename == "" {
		return nil, fmt.Errorf("no input specified")
	}
	data, err := os.ReadFile(e.filename)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", e.filename, err)
	}
	return data, nil
}

// run executes a parse with the configured options and records its stats.
func (e *Extractor) run() (*pptx.Result, error) {
	data, err := e.input()
	if err != nil {
		return nil, err
	}

	res, err := pptx.NewParser(e.options.parserOptions()).Parse(data)
	if err != nil {
		return nil, err
	}

	e.stats = res.Stats
	return res, nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Slides specifies which slides to decode (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	doc, _, err := scaena.Open("talk.pptx").Slides(1, 3, 5).Document()
func (e *Extractor) Slides(slides ...int) *Extractor {
	newExt := e.clone()
	newExt.options.slides = append(newExt.options.slides, slides...)
	return newExt
}

// SlideRange specifies a range of slides to decode (1-indexed, inclusive).
//
// Example:
//
//	doc, _, err := scaena.Open("talk.pptx").SlideRange(5, 10).Document()
func (e *Extractor) SlideRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.slides = append(newExt.options.slides, i)
	}
	return newExt
}

// WithoutImages configures the extractor to skip image payload extraction.
// Image elements still appear in the output, carrying their raw package
// location instead of embedded data. This is substantially faster for
// image-heavy decks when only text and structure are needed.
//
// Example:
//
//	doc, _, err := scaena.Open("talk.pptx").WithoutImages().Document()
func (e *Extractor) WithoutImages() *Extractor {
	newExt := e.clone()
	newExt.options.skipImages = true
	return newExt
}

// WithoutNotes configures the extractor to skip speaker notes.
//
// Example:
//
//	doc, _, err := scaena.Open("talk.pptx").WithoutNotes().Document()
func (e *Extractor) WithoutNotes() *Extractor {
	newExt := e.clone()
	newExt.options.skipNotes = true
	return newExt
}

// ImageWorkers bounds how many embedded images are decoded concurrently.
// Zero or negative selects the default.
//
// Example:
//
//	doc, _, err := scaena.Open("talk.pptx").ImageWorkers(8).Document()
func (e *Extractor) ImageWorkers(n int) *Extractor {
	newExt := e.clone()
	newExt.options.imageWorkers = n
	return newExt
}

// WithOCR configures the extractor to run text recognition over images
// that carry no alternative text in the source markup. Requires the
// library to be built with the ocr tag; without it the option is a no-op.
//
// Example:
//
//	text, _, err := scaena.Open("scanned.pptx").WithOCR().Text()
func (e *Extractor) WithOCR() *Extractor {
	newExt := e.clone()
	newExt.options.ocr = true
	return newExt
}

// OCRLanguages selects the language models OCR should load; empty means
// English. Multiple calls are cumulative. Has no effect unless WithOCR
// is also configured.
//
// Example:
//
//	text, _, err := scaena.Open("talk.pptx").WithOCR().OCRLanguages("eng", "deu").Text()
func (e *Extractor) OCRLanguages(langs ...string) *Extractor {
	newExt := e.clone()
	newExt.options.ocrLanguages = append(newExt.options.ocrLanguages, langs...)
	return newExt
}

// Diagnostics attaches a writer that receives a line-oriented trace of
// the parse. Useful for debugging decks that decode unexpectedly; output
// is unaffected by whether a sink is attached.
//
// Example:
//
//	doc, _, err := scaena.Open("talk.pptx").Diagnostics(os.Stderr).Document()
func (e *Extractor) Diagnostics(w io.Writer) *Extractor {
	newExt := e.clone()
	newExt.options.diagnostics = w
	return newExt
}

// ============================================================================
// Terminal Operations (execute the parse and return results)
// ============================================================================

// Presentation decodes the deck and returns the full model: metadata,
// slide size, slides with their elements, and the resolved theme.
//
// Returns the presentation, any warnings encountered during processing,
// and an error if decoding failed. Warnings indicate non-fatal issues
// (e.g., a slide that would not parse) where decoding succeeded but
// results may be incomplete.
//
// Example:
//
//	pres, warnings, err := scaena.Open("talk.pptx").Presentation()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", scaena.FormatWarnings(warnings))
//	}
func (e *Extractor) Presentation() (*model.Presentation, []model.Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	res, err := e.run()
	if err != nil {
		return nil, nil, err
	}

	return res.Presentation, res.Warnings, nil
}

// Document decodes the deck and returns the editor document: the flat,
// JSON-ready structure a browser-based presentation editor loads
// directly. All coordinates are in points.
//
// Example:
//
//	doc, warnings, err := scaena.Open("talk.pptx").Document()
//	for _, slide := range doc.Slides {
//	    fmt.Printf("%s: %d elements\n", slide.ID, len(slide.Elements))
//	}
func (e *Extractor) Document() (*Document, []model.Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	res, err := e.run()
	if err != nil {
		return nil, nil, err
	}

	return buildDocument(res.Presentation), res.Warnings, nil
}

// JSON decodes the deck and returns the editor document serialized as
// JSON.
//
// Example:
//
//	data, warnings, err := scaena.Open("talk.pptx").JSON()
//	os.WriteFile("talk.json", data, 0644)
func (e *Extractor) JSON() ([]byte, []model.Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return nil, warnings, err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, warnings, fmt.Errorf("marshaling document: %w", err)
	}

	return data, warnings, nil
}

// Text decodes the deck and returns its plain text: the text of each
// slide's elements in document order, followed by the slide's speaker
// notes, with slides separated by blank lines. With OCR configured,
// text recognized from images is included.
//
// Example:
//
//	text, warnings, err := scaena.Open("talk.pptx").Text()
func (e *Extractor) Text() (string, []model.Warning, error) {
	if e.err != nil {
		return "", nil, e.err
	}

	run := e.clone()
	// Image payloads only matter for text output when OCR is on.
	if !run.options.ocr {
		run.options.skipImages = true
	}

	res, err := run.run()
	if err != nil {
		return "", nil, err
	}
	e.stats = run.stats

	var result strings.Builder
	for _, slide := range res.Presentation.Slides {
		var parts []string
		for _, el := range slide.Elements {
			switch t := el.(type) {
			case *model.TextElement:
				if s := strings.TrimSpace(t.Text()); s != "" {
					parts = append(parts, s)
				}
			case *model.ImageElement:
				if run.options.ocr {
					if s := strings.TrimSpace(t.AltText); s != "" {
						parts = append(parts, s)
					}
				}
			}
		}
		if notes := strings.TrimSpace(slide.Notes); notes != "" {
			parts = append(parts, notes)
		}

		slideText := strings.Join(parts, "\n")
		if result.Len() > 0 && len(slideText) > 0 {
			result.WriteString("\n\n")
		}
		result.WriteString(slideText)
	}

	return result.String(), res.Warnings, nil
}

// Metadata opens the deck and returns only its document properties,
// without decoding any slides. This is much cheaper than a full parse
// when only the title, author, or timestamps are needed.
//
// Example:
//
//	md, err := scaena.Open("talk.pptx").Metadata()
//	fmt.Println(md.Title, md.Creator)
func (e *Extractor) Metadata() (*model.Metadata, error) {
	if e.err != nil {
		return nil, e.err
	}

	data, err := e.input()
	if err != nil {
		return nil, err
	}

	return pptx.ReadMetadata(data)
}

// Stats returns counters from the most recent terminal operation on
// this Extractor value. The zero value is returned before any terminal
// operation has run.
//
// Example:
//
//	ext := scaena.Open("talk.pptx")
//	doc, _, err := ext.Document()
//	fmt.Printf("%d slides, %d elements\n", ext.Stats().Slides, ext.Stats().Elements)
func (e *Extractor) Stats() model.Stats {
	return e.stats
}
