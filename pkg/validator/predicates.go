package validator

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// ISODateLayout is the yyyy-MM-dd calendar date layout.
const ISODateLayout = time.DateOnly

var (
	emailRegex            = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,6}$`)
	frenchPhoneRegex      = regexp.MustCompile(`^(\+33|0)[1-9][0-9]{8}$`)
	frenchPostalCodeRegex = regexp.MustCompile(`^[0-9]{5}$`)
	ibanRegex             = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{1,30}$`)
	whitespaceRegex       = regexp.MustCompile(`[\s\v]`)
)

// Every predicate treats the empty string as absent and therefore valid.
// Pair them with Required when the field is mandatory.

// IsEmail matches local@domain.tld with a 2 to 6 letter TLD. Only ASCII
// letters and digits are accepted, in either case.
func IsEmail(value string) bool {
	return value == "" || emailRegex.MatchString(value)
}

// IsFrenchPhone matches +33 or 0 followed by a non-zero digit and eight
// digits, without separators.
func IsFrenchPhone(value string) bool {
	return value == "" || frenchPhoneRegex.MatchString(value)
}

// IsFrenchPostalCode matches exactly five digits.
func IsFrenchPostalCode(value string) bool {
	return value == "" || frenchPostalCodeRegex.MatchString(value)
}

// IsUUID accepts only the canonical 8-4-4-4-12 hyphenated hex form.
func IsUUID(value string) bool {
	if value == "" {
		return true
	}
	if len(value) != 36 || value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}

// IsIBAN checks the IBAN shape after removing ASCII whitespace, vertical tab
// included: country letters, two check digits and 1 to 30 alphanumerics. The
// MOD-97 checksum is not verified and lowercase input is rejected.
func IsIBAN(value string) bool {
	if value == "" {
		return true
	}
	return ibanRegex.MatchString(whitespaceRegex.ReplaceAllString(value, ""))
}

// IsISODate accepts an existing yyyy-MM-dd calendar date, leap years included.
func IsISODate(value string) bool {
	if value == "" {
		return true
	}
	_, err := time.Parse(ISODateLayout, value)
	return err == nil
}
