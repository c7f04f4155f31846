package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// designExtensions lists the file extensions accepted for design briefs.
var designExtensions = map[string]bool{
	".toml": true,
	".yaml": true,
	".yml":  true,
	".json": true,
}

// ValidateOutputPath validates a path the CLI is asked to write to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
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

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path must name a file, not a directory")
	}

	return nil
}

// ValidateDesignFilename checks that a design brief has a supported extension.
func ValidateDesignFilename(name string) error {
	if name == "" {
		return New(ErrCodeInvalidDesign, "design filename cannot be empty")
	}
	ext := strings.ToLower(filepath.Ext(name))
	if !designExtensions[ext] {
		return New(ErrCodeInvalidDesign, "unsupported design file %q (must be .toml, .yaml, .yml or .json)", filepath.Base(name))
	}
	return nil
}
