package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// All user-supplied free text is stored as plain text; any markup is stripped.
var strict = bluemonday.StrictPolicy()

// Text strips HTML from user-supplied free text and trims whitespace.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// Fields sanitizes each string in place and returns the slice.
func Fields(values []string) []string {
	for i, v := range values {
		values[i] = Text(v)
	}
	return values
}
