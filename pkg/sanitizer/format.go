package sanitizer

import (
	"regexp"
	"strings"
)

var (
	dotRegex           = regexp.MustCompile(`\.+`)
	phoneSeparatorsRgx = regexp.MustCompile(`[\s.\-()]`)
)

// NormalizeEmail trims and lowercases an address and collapses repeated
// dots in the local part. Inputs without exactly one "@" are only trimmed
// and lowercased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}
	local = strings.Trim(dotRegex.ReplaceAllString(local, "."), ".")
	return local + "@" + domain
}

// NormalizePhone removes the separators people type inside phone numbers
// (spaces, dots, dashes and parentheses): "06 12.34-56 78" becomes
// "0612345678". A leading "+" is kept.
func NormalizePhone(phone string) string {
	return phoneSeparatorsRgx.ReplaceAllString(strings.TrimSpace(phone), "")
}

// NormalizeIBAN removes all whitespace and uppercases the result.
func NormalizeIBAN(iban string) string {
	return strings.ToUpper(whitespaceRegex.ReplaceAllString(iban, ""))
}

// NormalizePostalCode trims the code and removes inner spaces.
func NormalizePostalCode(code string) string {
	return whitespaceRegex.ReplaceAllString(code, "")
}
