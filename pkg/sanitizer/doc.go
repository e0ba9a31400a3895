// Package sanitizer holds string helpers used across API code: blank
// checks, truncation, accent removal, slugs, masking, random tokens and
// normalisation of user-typed identifiers before validation.
//
//	sanitizer.Truncate("Hello, world", 8)           // "Hello..."
//	sanitizer.Slugify("Crème Brûlée")               // "creme-brulee"
//	sanitizer.Mask("FR7630006000011234567890189", 4, '*')
//	sanitizer.NormalizeIBAN("fr76 3000 6000 0112") // "FR76300060000112"
//
// Apply and Compose chain transforms of the same type:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.NormalizeWhitespace)
package sanitizer
