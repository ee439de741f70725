package common

import "unicode/utf8"

// Ptr returns a pointer to the given value.
func Ptr[T any](v T) *T {
	return &v
}

// Truncate shortens s to at most max bytes without splitting a UTF-8 sequence, marking the cut with "...".
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max] + "..."
}

// Deref returns the value p points to, or the zero value when p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
