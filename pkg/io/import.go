package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/wetland/pkg/errors"
)

// ReadDesign decodes a design brief in the given format from r.
//
// Unknown keys are rejected for TOML and JSON so that a misspelled input
// name surfaces as an error instead of an empty field. ReadDesign does not
// close r and does not validate the inputs; pass Design.Inputs to
// wetland.ParseInputs for that.
func ReadDesign(r io.Reader, format string) (Design, error) {
	var f designFile

	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&f)
		if err != nil {
			return Design{}, errors.Wrap(errors.ErrCodeInvalidDesign, err, "decode toml design")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Design{}, errors.New(errors.ErrCodeInvalidDesign, "unknown key %q in toml design", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return Design{}, errors.Wrap(errors.ErrCodeInvalidDesign, err, "decode yaml design")
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return Design{}, errors.Wrap(errors.ErrCodeInvalidDesign, err, "decode json design")
		}
	default:
		return Design{}, errors.New(errors.ErrCodeInvalidDesign, "unsupported design format %q", format)
	}

	return f.design(), nil
}

// ImportDesign reads the design brief at path, choosing the format from the
// file extension.
func ImportDesign(path string) (Design, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Design{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Design{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "design file not found: %s", path)
		}
		return Design{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadDesign(f, format)
}
