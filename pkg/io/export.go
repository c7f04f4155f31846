package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/wetland/pkg/errors"
	"github.com/matzehuels/wetland/pkg/wetland"
)

// WriteResult encodes a sizing result as indented JSON and writes it to w.
func WriteResult(w io.Writer, r wetland.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportResult writes a sizing result to a JSON file at path.
// This is a convenience wrapper around [WriteResult] for file-based output.
func ExportResult(path string, r wetland.Result) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteResult(f, r)
}

// WriteDesign encodes a brief in the given format and writes it to w.
// Numeric inputs are written as numbers.
func WriteDesign(w io.Writer, d Design, format string) error {
	f := fileFromDesign(d)

	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(f); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	default:
		return errors.New(errors.ErrCodeInvalidDesign, "unsupported design format %q", format)
	}
	return nil
}

// ExportDesign writes a brief to path in the format implied by its extension.
func ExportDesign(path string, d Design) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteDesign(f, d, format)
}
