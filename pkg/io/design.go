package io

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matzehuels/wetland/pkg/errors"
	"github.com/matzehuels/wetland/pkg/wetland"
)

// Design brief formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Design is a named set of sizing inputs with optional render settings.
type Design struct {
	Name   string
	Notes  string
	Inputs wetland.RawInputs
	Render RenderSettings
}

// RenderSettings are the render options a brief may pin. Empty fields leave
// the caller's defaults in place.
type RenderSettings struct {
	VizType string   `json:"viz,omitempty" yaml:"viz,omitempty" toml:"viz,omitempty"`
	Style   string   `json:"style,omitempty" yaml:"style,omitempty" toml:"style,omitempty"`
	Formats []string `json:"formats,omitempty" yaml:"formats,omitempty" toml:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty" yaml:"scale,omitempty" toml:"scale,omitempty"`
}

// designFile is the on-disk shape. Input values are decoded loosely so that
// both `population = 1000` and `population = "1000"` are accepted.
type designFile struct {
	Name          string          `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Notes         string          `json:"notes,omitempty" yaml:"notes,omitempty" toml:"notes,omitempty"`
	Population    any             `json:"population" yaml:"population" toml:"population"`
	PerCapitaFlow any             `json:"per_capita_flow" yaml:"per_capita_flow" toml:"per_capita_flow"`
	InfluentConc  any             `json:"influent_concentration" yaml:"influent_concentration" toml:"influent_concentration"`
	EffluentConc  any             `json:"effluent_concentration" yaml:"effluent_concentration" toml:"effluent_concentration"`
	Regime        any             `json:"regime" yaml:"regime" toml:"regime"`
	Render        *RenderSettings `json:"render,omitempty" yaml:"render,omitempty" toml:"render,omitempty"`
}

func (f designFile) design() Design {
	d := Design{
		Name:  f.Name,
		Notes: f.Notes,
		Inputs: wetland.RawInputs{
			Population:    scalar(f.Population),
			PerCapitaFlow: scalar(f.PerCapitaFlow),
			InfluentConc:  scalar(f.InfluentConc),
			EffluentConc:  scalar(f.EffluentConc),
			Regime:        scalar(f.Regime),
		},
	}
	if f.Render != nil {
		d.Render = *f.Render
	}
	return d
}

func fileFromDesign(d Design) designFile {
	f := designFile{
		Name:          d.Name,
		Notes:         d.Notes,
		Population:    number(d.Inputs.Population),
		PerCapitaFlow: number(d.Inputs.PerCapitaFlow),
		InfluentConc:  number(d.Inputs.InfluentConc),
		EffluentConc:  number(d.Inputs.EffluentConc),
		Regime:        d.Inputs.Regime,
	}
	if !d.Render.empty() {
		r := d.Render
		f.Render = &r
	}
	return f
}

func (r RenderSettings) empty() bool {
	return r.VizType == "" && r.Style == "" && len(r.Formats) == 0 && r.Scale == 0
}

// scalar renders a decoded value as the text a form would have submitted.
// Non-scalar values are kept in printed form so input parsing rejects them
// by field name.
func scalar(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// number turns numeric text back into a number for export, leaving anything
// else as text.
func number(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// FormatFromPath returns the brief format implied by a file extension.
func FormatFromPath(path string) (string, error) {
	if err := errors.ValidateDesignFilename(path); err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatJSON, nil
	}
}

// DesignFromInputs builds a brief from already parsed inputs.
func DesignFromInputs(name string, in wetland.Inputs) Design {
	return Design{Name: name, Inputs: in.Raw()}
}
