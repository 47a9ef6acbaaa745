package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputPath validates an output artifact path.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No control characters or null bytes
//   - Maximum length of 500 characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}

// ValidateColumnName validates a table column name used for record lookup.
// Column names are matched exactly; this only rejects names that could never
// appear in a well-formed header row.
func ValidateColumnName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "column name cannot be empty")
	}

	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidInput, "column name cannot have leading or trailing whitespace: %q", name)
	}

	return nil
}
