// Package shared provides common utility functions used across multiple
// packages in the krgdb-parser codebase.
package shared

import (
	"fmt"
	"strings"
)

// HTTPStatusError creates a formatted error for non-2xx HTTP responses.
func HTTPStatusError(status int, url string) error {
	return fmt.Errorf("status=%d url=%s", status, url)
}

// LastPathSegment returns the part of href after its last "/", ignoring a
// query string, a fragment and trailing slashes. "/snp/rs123?x=1"
// yields "rs123".
func LastPathSegment(href string) string {
	value := strings.TrimSpace(href)
	if idx := strings.IndexAny(value, "?#"); idx >= 0 {
		value = value[:idx]
	}
	value = strings.TrimRight(value, "/")
	if idx := strings.LastIndex(value, "/"); idx >= 0 {
		return value[idx+1:]
	}
	return value
}
