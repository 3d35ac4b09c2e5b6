// Package format provides container format detection for the scaena library.
package format

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/richardlehane/mscfb"
)

// Format represents a recognized document container format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PPTX indicates a Microsoft PowerPoint (.pptx) presentation.
	PPTX
	// PPT indicates a legacy binary PowerPoint (.ppt) presentation.
	PPT
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// DOC indicates a legacy binary Word (.doc) document.
	DOC
	// XLSX indicates a Microsoft Excel (.xlsx) workbook.
	XLSX
	// XLS indicates a legacy binary Excel (.xls) workbook.
	XLS
	// ODP indicates an OpenDocument (.odp) presentation.
	ODP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PPTX:
		return "PPTX"
	case PPT:
		return "PPT"
	case DOCX:
		return "DOCX"
	case DOC:
		return "DOC"
	case XLSX:
		return "XLSX"
	case XLS:
		return "XLS"
	case ODP:
		return "ODP"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PPTX:
		return ".pptx"
	case PPT:
		return ".ppt"
	case DOCX:
		return ".docx"
	case DOC:
		return ".doc"
	case XLSX:
		return ".xlsx"
	case XLS:
		return ".xls"
	case ODP:
		return ".odp"
	default:
		return ""
	}
}

// IsPresentation reports whether the format is a presentation of any kind.
func (f Format) IsPresentation() bool {
	return f == PPTX || f == PPT || f == ODP
}

// Detect determines file format from the filename extension. Template and
// slideshow extensions map to their base format, since the containers are
// identical.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pptx", ".ppsx", ".potx":
		return PPTX
	case ".ppt", ".pps", ".pot":
		return PPT
	case ".docx":
		return DOCX
	case ".doc":
		return DOC
	case ".xlsx":
		return XLSX
	case ".xls":
		return XLS
	case ".odp":
		return ODP
	default:
		return Unknown
	}
}

var (
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// IsZipMagic reports whether data starts with a ZIP local file header. All
// OOXML and OpenDocument containers are ZIP archives, so this alone cannot
// name the format; use DetectFromReader for that.
func IsZipMagic(data []byte) bool {
	return bytes.HasPrefix(data, zipMagic)
}

// IsOLEMagic reports whether data starts with an OLE compound file header,
// the container of the legacy binary Office formats.
func IsOLEMagic(data []byte) bool {
	return bytes.HasPrefix(data, oleMagic)
}

// DetectFromReader inspects the content to determine format. This is more
// reliable than extension-based detection: it opens ZIP containers to
// distinguish PPTX, DOCX, XLSX and ODP, and walks OLE compound files to
// distinguish the legacy binary formats.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 8)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if IsZipMagic(magic) {
		return detectZIPFormat(r, size)
	}
	if IsOLEMagic(magic) {
		return detectOLEFormat(r)
	}
	return Unknown, nil
}

// detectZIPFormat inspects a ZIP archive to determine if it's PPTX, DOCX,
// XLSX, ODP, or something else.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	// OpenDocument archives carry a mimetype file at the start.
	for _, f := range zr.File {
		if f.Name == "mimetype" {
			rc, err := f.Open()
			if err == nil {
				data := make([]byte, 256)
				n, _ := rc.Read(data)
				rc.Close()
				if strings.Contains(string(data[:n]), "application/vnd.oasis.opendocument.presentation") {
					return ODP, nil
				}
			}
		}
	}

	// Office Open XML containers are distinguished by their part prefixes.
	for _, f := range zr.File {
		switch {
		case strings.HasPrefix(f.Name, "ppt/"):
			return PPTX, nil
		case strings.HasPrefix(f.Name, "word/"):
			return DOCX, nil
		case strings.HasPrefix(f.Name, "xl/"):
			return XLSX, nil
		}
	}

	return Unknown, nil
}

// detectOLEFormat walks an OLE compound file's directory entries. The legacy
// Office formats each carry a characteristic stream name.
func detectOLEFormat(r io.ReaderAt) (Format, error) {
	doc, err := mscfb.New(r)
	if err != nil {
		return Unknown, err
	}

	found := Unknown
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		switch entry.Name {
		case "PowerPoint Document":
			return PPT, nil
		case "WordDocument":
			found = DOC
		case "Workbook", "Book":
			found = XLS
		}
	}
	return found, nil
}
