// Package pptx decodes PowerPoint OOXML packages: the zip container and
// its content-type manifest, slide parts in deck order, themes,
// relationships, shape trees and embedded media. The result is the neutral
// document model in package model, which the root scaena package turns
// into editor-ready JSON.
//
// Parsing is deliberately forgiving. Only three things are fatal: input
// that is not an OOXML package at all, a container that holds some other
// document kind, and a theme that is declared but unreadable. Everything
// else degrades to warnings scoped to one slide or one shape node.
package pptx

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tsawler/scaena/emu"
	"github.com/tsawler/scaena/format"
	"github.com/tsawler/scaena/geometry"
	"github.com/tsawler/scaena/model"
	"github.com/tsawler/scaena/ocr"
	"github.com/tsawler/scaena/xmlnode"
)

// Parser decodes PowerPoint packages. A Parser is reusable across
// presentations; its option set is fixed at construction.
type Parser struct {
	opts  Options
	procs []Processor
}

// NewParser returns a parser with the given options.
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts, procs: defaultProcessors()}
}

// Register puts a custom processor ahead of the built-in chain, so it
// outranks the built-ins for any node it claims.
func (p *Parser) Register(proc Processor) {
	p.procs = append([]Processor{proc}, p.procs...)
}

// Result is a parsed presentation plus everything non-fatal that happened
// on the way there.
type Result struct {
	Presentation *model.Presentation
	Warnings     []model.Warning
	Stats        model.Stats
}

// Parse decodes a presentation held in memory.
func (p *Parser) Parse(data []byte) (*Result, error) {
	return p.ParseReader(bytes.NewReader(data), int64(len(data)))
}

// ParseReader decodes a presentation from a random-access reader.
func (p *Parser) ParseReader(r io.ReaderAt, size int64) (*Result, error) {
	start := time.Now()

	c, err := NewContainer(r, size)
	if err != nil {
		return nil, classifyOpenError(r, size, err)
	}
	if !c.HasPart(presentationPart) {
		return nil, notPresentationError(c)
	}

	warnings := &model.WarningCollector{}

	theme, err := ParseTheme(c, "")
	if err != nil {
		return nil, err
	}
	if theme == nil {
		warnings.Addf(0, "theme", "no theme part; using built-in defaults")
		theme = model.DefaultTheme()
	}

	pres := &model.Presentation{Theme: theme, Metadata: parseMetadata(c)}
	pres.SlideWidth, pres.SlideHeight = parseDeckSize(c, warnings)

	var ocrClient *ocr.Client
	if p.opts.OCR {
		client, err := ocr.New()
		if err != nil {
			warnings.Addf(0, "ocr", "unavailable: %v", err)
		} else {
			defer client.Close()
			if len(p.opts.OCRLanguages) > 0 {
				if err := client.SetLanguage(strings.Join(p.opts.OCRLanguages, "+")); err != nil {
					warnings.Addf(0, "ocr", "setting languages: %v", err)
				}
			}
			ocrClient = client
		}
	}

	parts := c.SlideParts()
	if len(parts) == 0 {
		warnings.Addf(0, "presentation", "deck has no slides")
	}
	for _, n := range p.opts.Slides {
		if n < 1 || n > len(parts) {
			return nil, fmt.Errorf("slide %d out of range (1-%d)", n, len(parts))
		}
	}

	ids := newIDGen()
	for i, part := range parts {
		num := i + 1
		if !p.opts.wantSlide(num) {
			continue
		}
		rels, err := c.Relationships(part)
		if err != nil {
			warnings.Addf(num, "rels", "%v", err)
			rels = &Relationships{}
		}
		ctx := &Context{
			Container: c,
			SlideNum:  num,
			SlideID:   slideID(part),
			Theme:     theme,
			Rels:      rels,
			Transform: geometry.Identity(),
			IDs:       ids,
			Warnings:  warnings,
			Opts:      p.opts,
			ocr:       ocrClient,
			diag:      p.opts.Diagnostics,
		}
		slide, err := p.parseSlide(ctx, part)
		if err != nil {
			warnings.Addf(num, "slide", "%v", err)
			continue
		}
		pres.Slides = append(pres.Slides, slide)
	}

	return &Result{
		Presentation: pres,
		Warnings:     warnings.List(),
		Stats: model.Stats{
			Slides:   len(pres.Slides),
			Elements: pres.ElementCount(),
			Images:   pres.ImageCount(),
			Elapsed:  time.Since(start),
		},
	}, nil
}

// classifyOpenError turns a zip open failure into the right sentinel.
// Legacy binary PowerPoint gets its own error since callers commonly catch
// it to suggest converting the file.
func classifyOpenError(r io.ReaderAt, size int64, err error) error {
	var magic [8]byte
	if _, rerr := r.ReadAt(magic[:], 0); rerr != nil {
		return err
	}
	if !format.IsOLEMagic(magic[:]) {
		return err
	}
	if f, derr := format.DetectFromReader(r, size); derr == nil {
		switch f {
		case format.PPT:
			return ErrLegacyPowerPoint
		case format.DOC, format.XLS:
			return fmt.Errorf("%w: container holds a %s file", ErrNotPresentation, f)
		}
	}
	return fmt.Errorf("%w: unrecognized OLE compound document", ErrNotPresentation)
}

// notPresentationError names what an intact zip actually holds when it is
// not a deck.
func notPresentationError(c *Container) error {
	switch {
	case c.HasPart("word/document.xml"):
		return fmt.Errorf("%w: container holds a Word document", ErrNotPresentation)
	case c.HasPart("xl/workbook.xml"):
		return fmt.Errorf("%w: container holds an Excel workbook", ErrNotPresentation)
	case c.HasPart("mimetype"):
		if data, err := c.ReadPart("mimetype"); err == nil &&
			strings.Contains(string(data), "opendocument.presentation") {
			return fmt.Errorf("%w: container holds an OpenDocument presentation", ErrNotPresentation)
		}
		return fmt.Errorf("%w: container holds an OpenDocument file", ErrNotPresentation)
	}
	return ErrNotPresentation
}

// parseDeckSize reads the deck's slide size in points, defaulting to the
// 16:9 layout new decks are created with.
func parseDeckSize(c *Container, warnings *model.WarningCollector) (float64, float64) {
	const defaultW, defaultH = 960, 540

	data, err := c.ReadPart(presentationPart)
	if err != nil {
		warnings.Addf(0, "presentation", "reading %s: %v", presentationPart, err)
		return defaultW, defaultH
	}
	root, err := xmlnode.Parse(data)
	if err != nil {
		warnings.Addf(0, "presentation", "parsing %s: %v", presentationPart, err)
		return defaultW, defaultH
	}
	sldSz := xmlnode.FindNode(root, "sldSz")
	if sldSz == nil {
		return defaultW, defaultH
	}
	w := emu.AttrToPoints(sldSz.Attr("cx"))
	h := emu.AttrToPoints(sldSz.Attr("cy"))
	if w <= 0 || h <= 0 {
		return defaultW, defaultH
	}
	return w, h
}

// ReadMetadata opens a presentation and returns only its document
// properties, without parsing any slides. Input that is not a deck fails
// with the same classified errors as Parse.
func ReadMetadata(data []byte) (*model.Metadata, error) {
	r := bytes.NewReader(data)
	c, err := NewContainer(r, int64(len(data)))
	if err != nil {
		return nil, classifyOpenError(r, int64(len(data)), err)
	}
	if !c.HasPart(presentationPart) {
		return nil, notPresentationError(c)
	}
	md := parseMetadata(c)
	return &md, nil
}

// parseMetadata reads the document property parts. Both are optional and
// purely descriptive, so everything here is best effort.
func parseMetadata(c *Container) model.Metadata {
	var md model.Metadata
	if data, err := c.ReadPart("docProps/core.xml"); err == nil {
		if root, err := xmlnode.Parse(data); err == nil {
			md.Title = childText(root, "title")
			md.Subject = childText(root, "subject")
			md.Creator = childText(root, "creator")
			md.LastModifiedBy = childText(root, "lastModifiedBy")
			md.Created = childText(root, "created")
			md.Modified = childText(root, "modified")
		}
	}
	if data, err := c.ReadPart("docProps/app.xml"); err == nil {
		if root, err := xmlnode.Parse(data); err == nil {
			md.Application = childText(root, "Application")
			md.AppVersion = childText(root, "AppVersion")
			md.Company = childText(root, "Company")
			md.SlideCount = childInt(root, "Slides")
			md.WordCount = childInt(root, "Words")
		}
	}
	return md
}

func childText(root *xmlnode.Node, local string) string {
	return strings.TrimSpace(root.Child(local).TextContent())
}

func childInt(root *xmlnode.Node, local string) int {
	v := childText(root, local)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
