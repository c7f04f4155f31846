// Package styles defines how plan blocks look in SVG and HTML output.
//
// Two styles are provided. [Labeled] draws light-green beds with a green border
// and a white caption box in the top-left corner of every section. [Plain]
// draws bare outlines with the caption centered inside.
package styles

import (
	"bytes"

	"github.com/matzehuels/wetland/pkg/errors"
	"github.com/matzehuels/wetland/pkg/render/plan"
)

// Style names accepted by [ByName].
const (
	NameLabeled = "labeled"
	NamePlain   = "plain"
)

// Style defines the visual appearance of plan blocks.
type Style interface {
	// Name returns the style identifier.
	Name() string
	// RenderDefs writes SVG <defs> content, if any.
	RenderDefs(buf *bytes.Buffer)
	// RenderBlock writes the SVG for a single section rectangle.
	RenderBlock(buf *bytes.Buffer, b plan.Block)
	// RenderLabel writes the SVG for a section's title and dimensions.
	RenderLabel(buf *bytes.Buffer, b plan.Block)
	// BlockCSS returns inline CSS for an HTML section element.
	BlockCSS(b plan.Block) string
	// LabelCSS returns inline CSS for an HTML section label.
	LabelCSS() string
}

// ByName returns the style with the given name.
func ByName(name string) (Style, error) {
	switch name {
	case NameLabeled, "":
		return Labeled{}, nil
	case NamePlain:
		return Plain{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (must be %q or %q)", name, NameLabeled, NamePlain)
}
