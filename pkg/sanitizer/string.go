package sanitizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const ellipsis = "..."

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	nonSlugRegex    = regexp.MustCompile(`[^a-z0-9-]`)
	dashesRegex     = regexp.MustCompile(`-+`)
)

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNotBlank is the negation of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Truncate shortens s to at most maxLength runes. A truncated result ends
// with "..." which counts toward maxLength. When maxLength leaves no room
// for the ellipsis the string is cut without it.
func Truncate(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= maxLength {
		return s
	}
	if maxLength <= len(ellipsis) {
		return string(r[:maxLength])
	}
	return string(r[:maxLength-len(ellipsis)]) + ellipsis
}

// RemoveAccents strips combining diacritical marks: "Élève" becomes "Eleve".
// Letters without a decomposition, such as "ø" or "ß", are kept.
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Slugify converts s to a URL-friendly identifier: accents removed,
// lowercase, whitespace runs replaced by a single dash and every other
// character outside [a-z0-9-] dropped.
//
//	Slugify("Crème Brûlée à Paris") // "creme-brulee-a-paris"
func Slugify(s string) string {
	s = RemoveAccents(strings.ToLower(strings.TrimSpace(s)))
	s = whitespaceRegex.ReplaceAllString(s, "-")
	s = nonSlugRegex.ReplaceAllString(s, "")
	s = dashesRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Mask hides the middle of s, keeping visible runes at each end.
// Strings too short to hide anything are returned unchanged.
//
//	Mask("0612345678", 2, '*') // "06******78"
func Mask(s string, visible int, maskChar rune) string {
	if visible < 0 {
		visible = 0
	}
	r := []rune(s)
	if len(r) <= 2*visible {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(string(r[:visible]))
	b.WriteString(strings.Repeat(string(maskChar), len(r)-2*visible))
	b.WriteString(string(r[len(r)-visible:]))
	return b.String()
}

// NormalizeWhitespace collapses whitespace runs to single spaces and trims.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars drops control characters except newline, carriage
// return and tab.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// Clean trims s and removes control characters. Request binders apply it to
// every decoded string field.
var Clean = Compose(RemoveControlChars, Trim)
