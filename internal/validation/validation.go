// Package validation checks user-supplied paths before they reach the file
// system.
package validation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Limits on user input.
const (
	// MaxFileSize is the maximum decoded size of a GABC source (16 MB).
	MaxFileSize = 16 << 20
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
)

// Common validation errors.
var (
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrNotDirectory     = errors.New("not a directory")
)

// ValidatePath performs path validation without requiring a base directory.
// It checks length limits and rejects null bytes and control characters.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}

	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}

	return nil
}

// ValidateDir validates path and checks that it names an existing directory.
// It returns the cleaned path.
func ValidateDir(path string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}
	clean := filepath.Clean(path)
	info, err := os.Stat(clean)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, clean)
	}
	return clean, nil
}
