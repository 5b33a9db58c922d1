package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// TrimmedOrEmpty trims an optional request string; nil becomes "".
func TrimmedOrEmpty(s *string) string {
	return strings.TrimSpace(Coalesce(s, ""))
}
