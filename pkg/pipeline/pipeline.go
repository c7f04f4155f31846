// Package pipeline provides the size → layout → render pipeline for wetland.
//
// The CLI, the interactive form and the HTTP server all go through this
// package, so a design sized from any entry point produces the same numbers
// and the same artifacts.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Size: Run the wetland sizing calculation on validated inputs
//  2. Layout: Convert the sized sections into a proportional plan
//  3. Render: Generate output in the requested formats (SVG, PNG, PDF, JSON, HTML, DOT)
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Inputs:  in,
//	    VizType: pipeline.VizPlan,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wetland/pkg/errors"
	"github.com/matzehuels/wetland/pkg/render/plan"
	"github.com/matzehuels/wetland/pkg/render/styles"
	"github.com/matzehuels/wetland/pkg/wetland"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

// Visualization types.
const (
	VizPlan      = "plan"
	VizSchematic = "schematic"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatHTML = "html"
	FormatDOT  = "dot"
)

const (
	// DefaultVizType is the default visualization type.
	DefaultVizType = VizPlan

	// DefaultStyle is the default plan style.
	DefaultStyle = styles.NameLabeled

	// DefaultScale is the default number of pixels per metre.
	DefaultScale = plan.DefaultScale

	// DefaultPNGScale is the raster scale factor used for PNG output.
	DefaultPNGScale = 2.0
)

// ValidFormats lists the formats each visualization type can produce.
var ValidFormats = map[string]map[string]bool{
	VizPlan: {
		FormatSVG: true, FormatPNG: true, FormatPDF: true,
		FormatJSON: true, FormatHTML: true,
	},
	VizSchematic: {
		FormatSVG: true, FormatPNG: true, FormatPDF: true,
		FormatJSON: true, FormatDOT: true,
	},
}

// ValidStyles is the set of supported plan styles.
var ValidStyles = map[string]bool{
	styles.NameLabeled: true,
	styles.NamePlain:   true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Size options
	Inputs wetland.Inputs `json:"inputs"`

	// Layout options
	VizType string  `json:"viz_type,omitempty"`
	Scale   float64 `json:"scale,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Title   string   `json:"title,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Sizing is the computed bed geometry.
	Sizing wetland.Result

	// Layout is the proportional plan of the sections.
	Layout plan.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Sections   int
	SizeTime   time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if _, ok := ValidFormats[vizType]; !ok {
		return errors.New(errors.ErrCodeInvalidVizType,
			"invalid viz type: %q (must be one of: %s, %s)", vizType, VizPlan, VizSchematic)
	}
	return nil
}

// ValidateFormat checks that a format can be produced for the given
// visualization type.
func ValidateFormat(vizType, format string) error {
	if err := ValidateVizType(vizType); err != nil {
		return err
	}
	if !ValidFormats[vizType][format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format for %s: %q (must be one of: %s)", vizType, format, formatList(vizType))
	}
	return nil
}

// ValidateFormats checks that all formats are valid for the visualization type.
func ValidateFormats(vizType string, formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(vizType, f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: %s, %s)", style, styles.NameLabeled, styles.NamePlain)
	}
	return nil
}

// ValidateScale checks that a plan scale is a positive finite number.
func ValidateScale(scale float64) error {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "invalid scale: %v (must be positive)", scale)
	}
	return nil
}

func formatList(vizType string) string {
	var out []string
	for _, f := range []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatHTML, FormatDOT} {
		if ValidFormats[vizType][f] {
			out = append(out, f)
		}
	}
	return strings.Join(out, ", ")
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the render options and fills in defaults.
// Sizing inputs are validated by the sizer itself so that every offending
// field is reported together. Calling it twice has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.VizType, o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if err := ValidateScale(o.Scale); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults fills zero values with their defaults. A zero Scale means unset;
// callers that accept a user-supplied scale validate it with [ValidateScale]
// first.
func (o *Options) SetDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// IsPlan returns true if this is a plan visualization.
func (o *Options) IsPlan() bool {
	return o.VizType == "" || o.VizType == VizPlan
}

// IsSchematic returns true if this is a flow schematic.
func (o *Options) IsSchematic() bool {
	return o.VizType == VizSchematic
}
