// Package scaena provides a fluent API for decoding PowerPoint (.pptx)
// presentations into an editor-friendly document model.
//
// Basic usage:
//
//	doc, warnings, err := scaena.Open("talk.pptx").Document()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", scaena.FormatWarnings(warnings))
//	}
//
// With options:
//
//	data, _, err := scaena.Open("talk.pptx").
//	    Slides(1, 2, 3).
//	    WithoutNotes().
//	    JSON()
//
// For advanced use cases, the lower-level pptx package is also available.
package scaena

import (
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/scaena/model"
)

// Open prepares a .pptx file for decoding and returns an Extractor for
// fluent configuration. The file is read when a terminal operation like
// Document() or Text() runs.
//
// Example:
//
//	pres, warnings, err := scaena.Open("talk.pptx").Presentation()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes creates an Extractor over container bytes already in memory.
// This is useful when the deck arrives over the network or from a blob
// store rather than the filesystem.
//
// Example:
//
//	doc, warnings, err := scaena.FromBytes(data).Document()
func FromBytes(data []byte) *Extractor {
	return &Extractor{
		data:    data,
		hasData: true,
		options: defaultOptions(),
	}
}

// FromReader creates an Extractor by buffering the reader fully into
// memory; the container format needs random access. The caller remains
// responsible for closing r if it needs closing.
//
// Example:
//
//	doc, warnings, err := scaena.FromReader(resp.Body).Document()
func FromReader(r io.Reader) *Extractor {
	data, err := io.ReadAll(r)
	e := &Extractor{
		data:    data,
		hasData: true,
		options: defaultOptions(),
	}
	if err != nil {
		e.err = fmt.Errorf("reading input: %w", err)
	}
	return e
}

// FormatWarnings renders warnings one per line for logging.
func FormatWarnings(warnings []model.Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	md := scaena.Must(scaena.Open("talk.pptx").Metadata())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustJSON is a helper that wraps a call to JSON() or another terminal
// operation and panics if the error is non-nil. It discards warnings and
// returns just the value. It is intended for use in scripts or tests
// where error handling would be cumbersome.
//
// Example:
//
//	data := scaena.MustJSON(scaena.Open("talk.pptx").JSON())
func MustJSON[T any](val T, _ []model.Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
