// Package sanitizer provides small string transformations that normalize form
// input before it is validated.
//
// The helpers cover trimming, character removal, full-width to half-width
// folding, newline normalization and whitespace collapsing. Each one is a
// plain func(string) string, so they combine freely with the generic Apply and
// Compose pipelines:
//
//	normalizePhone := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.ToHalfWidth,
//	)
//
//	phone := normalizePhone(" ０３－１２３４－５６７８ ") // "03-1234-5678"
//
// None of the helpers returns an error and there is no global state, so they
// are safe for concurrent use.
package sanitizer
