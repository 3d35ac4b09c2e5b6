package model

import "time"

// Presentation is the fully decoded deck: document metadata, the slide
// canvas size in points, the slides in deck order, and the resolved theme.
type Presentation struct {
	Metadata    Metadata
	SlideWidth  float64
	SlideHeight float64
	Slides      []*Slide
	Theme       *Theme
}

// Slide is one decoded slide. ID is the slide part's base name ("slide3"),
// Number its 1-based position in deck order. Elements preserve the document
// order of the slide's shape tree. Notes carries the plain text of the
// slide's notes page, empty when there is none.
type Slide struct {
	ID         string
	Number     int
	Elements   []Element
	Background *Background
	Notes      string
}

// Metadata is the document-properties block from docProps/core.xml and
// docProps/app.xml. Dates stay in their raw W3CDTF string form; callers
// that want time values parse them with their own tolerance for the
// malformed stamps some producers write.
type Metadata struct {
	Title          string
	Subject        string
	Creator        string
	LastModifiedBy string
	Created        string
	Modified       string
	Application    string
	AppVersion     string
	Company        string
	SlideCount     int
	WordCount      int
}

// Stats summarizes one extraction run.
type Stats struct {
	Slides   int
	Elements int
	Images   int
	Elapsed  time.Duration
}

// ElementCount returns the number of elements across all slides.
func (p *Presentation) ElementCount() int {
	n := 0
	for _, s := range p.Slides {
		n += len(s.Elements)
	}
	return n
}

// ImageCount returns the number of image elements across all slides.
func (p *Presentation) ImageCount() int {
	n := 0
	for _, s := range p.Slides {
		for _, el := range s.Elements {
			if el.Type() == TypeImage {
				n++
			}
		}
	}
	return n
}
