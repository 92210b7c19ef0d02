package errors

import (
	"strings"
	"unicode"
)

// ValidateIndex checks that index lies in [0, length).
// name identifies the index in the error message (e.g. "drop").
func ValidateIndex(name string, index, length int) error {
	if index < 0 || index >= length {
		return New(ErrCodeIndexOutOfRange, "%s index %d outside [0, %d)", name, index, length)
	}
	return nil
}

// ValidateScenarioName validates a regression scenario name.
//
// Names are shown in test output and used as cache key components, so they
// must be non-empty single-line text of at most 200 characters.
func ValidateScenarioName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidScenario, "scenario name cannot be empty")
	}

	if len(name) > 200 {
		return New(ErrCodeInvalidScenario, "scenario name too long (max 200 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidScenario, "scenario name contains invalid control characters")
		}
	}

	return nil
}

// ValidatePath validates an output or input file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
