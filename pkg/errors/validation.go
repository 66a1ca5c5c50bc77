package errors

import (
	"strings"
	"unicode"
)

// ValidateSceneName validates a scene name for registration and lookup.
// Scene names follow Go identifier conventions (e.g., "CoincidentLine"):
// letters and digits only, starting with a letter.
func ValidateSceneName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "scene name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "scene name too long (max 128 characters)")
	}

	for i, r := range name {
		if i == 0 && !unicode.IsLetter(r) {
			return New(ErrCodeInvalidInput, "scene name must start with a letter: %q", name)
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return New(ErrCodeInvalidInput, "scene name contains invalid character %q", r)
		}
	}

	return nil
}

// ValidateOutputPath validates a render output path for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidInput, "output path cannot contain path traversal sequences (..)")
	}

	return nil
}
