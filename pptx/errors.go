package pptx

import "errors"

// Sentinel errors returned by [Parser.Parse] and the container layer. Wrap
// details are attached with fmt.Errorf("%w: ...", err), so callers test with
// errors.Is.
var (
	// ErrInvalidContainer means the input is not a readable zip package.
	ErrInvalidContainer = errors.New("pptx: invalid or corrupt container")

	// ErrNotPresentation means the input is a valid container of some other
	// document type (a Word document, a workbook, a plain archive).
	ErrNotPresentation = errors.New("pptx: not a PowerPoint presentation")

	// ErrLegacyPowerPoint means the input is a binary .ppt file, which uses
	// the OLE compound format rather than the zip package this library reads.
	ErrLegacyPowerPoint = errors.New("pptx: legacy binary PowerPoint format not supported")

	// ErrMissingPart means a part referenced by name is absent from the
	// container.
	ErrMissingPart = errors.New("pptx: missing part")
)
