package validator

import (
	"fmt"
	"reflect"
	"strings"
)

func builtin(name string) Constraint {
	for _, c := range builtins {
		if c.Name == name {
			return c
		}
	}
	panic("validator: missing built-in rule " + name)
}

// StrictEmail validates an email address. Empty values pass.
func StrictEmail(field, value string) Rule {
	return builtin(RuleEmail).Rule(field, value)
}

// FrenchPhone validates a French phone number. Empty values pass.
func FrenchPhone(field, value string) Rule {
	return builtin(RuleFrenchPhone).Rule(field, value)
}

// FrenchPostalCode validates a five digit postal code. Empty values pass.
func FrenchPostalCode(field, value string) Rule {
	return builtin(RuleFrenchPostalCode).Rule(field, value)
}

// ValidUUID validates a canonical UUID string. Empty values pass.
func ValidUUID(field, value string) Rule {
	return builtin(RuleUUID).Rule(field, value)
}

// ValidIBAN validates the IBAN format without checksum. Empty values pass.
func ValidIBAN(field, value string) Rule {
	return builtin(RuleIBAN).Rule(field, value)
}

// ValidISODate validates a yyyy-MM-dd date. Empty values pass.
func ValidISODate(field, value string) Rule {
	return builtin(RuleISODate).Rule(field, value)
}

// Required fails for empty or whitespace-only strings.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{
			Field:             field,
			Message:           "must not be empty",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// NotNil fails for nil values, including typed nil pointers, maps and slices.
func NotNil(field string, value any) Rule {
	return Rule{
		Check: func() bool { return !isNil(value) },
		Error: ValidationError{
			Field:             field,
			Message:           "must not be null",
			TranslationKey:    "validation.not_null",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Range fails when value is outside [minVal, maxVal].
func Range[T Numeric](field string, value, minVal, maxVal T) Rule {
	return Rule{
		Check: func() bool { return value >= minVal && value <= maxVal },
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %v and %v", minVal, maxVal),
			TranslationKey: "validation.range",
			TranslationValues: map[string]any{
				"field": field,
				"min":   minVal,
				"max":   maxVal,
			},
		},
	}
}

// MaxLength fails when value has more than n characters.
func MaxLength(field, value string, n int) Rule {
	return Rule{
		Check: func() bool { return len([]rune(value)) <= n },
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters", n),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   n,
			},
		},
	}
}

// When returns rule if cond holds and an always-passing rule otherwise.
func When(cond bool, rule Rule) Rule {
	if cond {
		return rule
	}
	return Rule{Check: func() bool { return true }, Error: rule.Error}
}
