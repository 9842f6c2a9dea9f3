// Package sanitizer normalizes raw form input before validation.
//
// Helpers are small pure functions over strings and numbers that can be
// chained with the generic Apply and Compose pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.CollapseWhitespace,
//	    sanitizer.ToLower,
//	)
//	clean("  Mixed CASE   Input\n") // "mixed case input"
//
// Normalizer names pipelines per field so a whole form's cleanup can be
// declared once and handed to a form validator. None of the helpers
// returns an error; they always fall back to the original input when a
// transformation does not apply.
package sanitizer
