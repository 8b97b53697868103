package utils

import "unicode/utf8"

// TruncatedSuffix is appended to text shortened by Truncate.
const TruncatedSuffix = "... [truncated]"

// Truncate shortens s to at most maxLength bytes followed by TruncatedSuffix.
// The cut never splits a UTF-8 sequence. A zero maxLength disables truncation.
func Truncate(s string, maxLength uint64) string {
	if maxLength == 0 || uint64(len(s)) <= maxLength {
		return s
	}

	cut := int(maxLength) //nolint:gosec // maxLength is smaller than len(s) here.
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut] + TruncatedSuffix
}

// Map applies a transformation function to each element of a slice and returns a new slice with the results.
func Map[E, S any](v []E, transformFunc func(E) S) []S {
	result := make([]S, len(v))
	for i := range v {
		result[i] = transformFunc(v[i])
	}

	return result
}
