// Package dateutil parses, formats and compares calendar dates using ISO and
// French (dd/MM/yyyy) layouts.
package dateutil
