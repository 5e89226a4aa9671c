package errors

import (
	"strings"
	"unicode"
)

// ValidateStem validates a base name used to derive output file names.
// It rejects anything that could escape the output directory or produce a
// hidden file.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 200 characters
//   - No control characters
//   - No path separators or traversal sequences
//   - No leading dot
func ValidateStem(stem string) error {
	if stem == "" {
		return New(ErrCodeInvalidName, "name cannot be empty")
	}

	const maxStemLength = 200
	if len(stem) > maxStemLength {
		return New(ErrCodeInvalidName, "name too long (max %d characters)", maxStemLength)
	}

	for _, r := range stem {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "name contains invalid control characters")
		}
	}

	if strings.ContainsAny(stem, `/\`) {
		return New(ErrCodeInvalidName, "name cannot contain path separators")
	}
	if strings.Contains(stem, "..") {
		return New(ErrCodeInvalidName, "name cannot contain path traversal sequences (..)")
	}
	if strings.HasPrefix(stem, ".") {
		return New(ErrCodeInvalidName, "name cannot be a hidden file")
	}

	return nil
}
