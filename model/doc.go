// Package model provides the decoded representation of a presentation.
//
// All parsing ultimately produces these types, making them the primary API
// for consuming decoded content. The shape of the model mirrors what a
// presentation editor works with: a [Presentation] holds ordered [Slide]
// values, each slide holds ordered [Element] values in source document
// order, and every length has already been converted to points and every
// color to the canonical rgba form.
//
// # Elements
//
// Slide content is a closed set of variants implementing the [Element]
// interface:
//
//   - [TextElement] - paragraphs of styled runs
//   - [ShapeElement] - preset geometry with a resolved fill
//   - [ImageElement] - an embedded picture, extracted or referenced
//   - [LineElement] - a connector or straight line
//
// Every variant embeds [Geometry] (id, position, size, rotation, flip), so
// consumers can treat placement uniformly via [Element.Geom] and switch on
// the concrete type for the payload. The interface carries an unexported
// method: the variant set is fixed here, and an exhaustive type switch over
// it is safe.
//
// # Theme
//
// [Theme] carries the 12 scheme color slots and the major/minor font pairs.
// [Theme.SchemeColor] resolves slot references including the tx1/bg1 style
// aliases, falling back to documented defaults so color resolution never
// fails.
//
// # Warnings
//
// Recoverable defects (a skipped slide, an unresolvable image) become
// [Warning] values in a [WarningCollector] rather than errors; parsing
// continues and the caller decides how loud a partial success should be.
package model
