package errors

import (
	"strings"
	"testing"
)

func TestValidateStem(t *testing.T) {
	tests := []struct {
		name    string
		stem    string
		wantErr bool
	}{
		{"simple", "trait_42", false},
		{"with dots", "hat.v2", false},
		{"unicode", "épée", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 201), true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"traversal", "..", true},
		{"embedded traversal", "a..b", true},
		{"hidden", ".secret", true},
		{"control", "a\x00b", true},
		{"newline", "a\nb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStem(tt.stem)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStem(%q) error = %v, wantErr %v", tt.stem, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("ValidateStem(%q) code = %q, want %q", tt.stem, GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidDocument,
		ErrCodeInvalidOption,
		ErrCodeInvalidName,
		ErrCodeFileNotFound,
		ErrCodeIO,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
