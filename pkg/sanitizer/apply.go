package sanitizer

// Apply runs value through transforms in order. Nil transforms are skipped.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		if transform != nil {
			value = transform(value)
		}
	}
	return value
}

// Compose builds a reusable pipeline from transforms, e.g. the cleanup run
// on a string field before validation.
func Compose[T any](transforms ...func(T) T) func(T) T {
	steps := make([]func(T) T, 0, len(transforms))
	for _, t := range transforms {
		if t != nil {
			steps = append(steps, t)
		}
	}
	return func(value T) T {
		return Apply(value, steps...)
	}
}

// Strings applies transforms to every element of values in place and
// returns it.
func Strings(values []string, transforms ...func(string) string) []string {
	for i, v := range values {
		values[i] = Apply(v, transforms...)
	}
	return values
}
