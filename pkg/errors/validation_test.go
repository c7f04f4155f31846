package errors

import (
	"testing"
)

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "plan.svg", false},
		{"valid nested", "out/designs/plan.png", false},
		{"valid absolute", "/tmp/plan.pdf", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"directory", "out/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateOutputPath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateDesignFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"toml", "village.toml", false},
		{"yaml", "village.yaml", false},
		{"yml", "designs/village.yml", false},
		{"json", "village.JSON", false},

		{"empty", "", true},
		{"no extension", "village", true},
		{"csv", "village.csv", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDesignFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDesignFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidFormat,
		ErrCodeInvalidStyle,
		ErrCodeInvalidVizType,
		ErrCodeInvalidDesign,
		ErrCodeInvalidPath,
		ErrCodeRequestTooLarge,
		ErrCodeDegenerateResult,
		ErrCodeNotFound,
		ErrCodeFileNotFound,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
