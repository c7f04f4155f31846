// Package plan lays out wetland bed sections as proportional pixel blocks.
//
// Each section becomes one block whose width and height are the section's
// width and length in meters multiplied by a fixed scale (20 px/m by default).
// Blocks sit side by side in section order, separated by a margin.
package plan

import (
	"fmt"

	"github.com/matzehuels/wetland/pkg/wetland"
)

const (
	// DefaultScale is the plan scale in pixels per meter.
	DefaultScale = 20.0

	// DefaultMargin is the gap around and between blocks in pixels.
	DefaultMargin = 5.0
)

// Block is one section in plan view. Coordinates are SVG user units with the
// origin at the top-left corner.
type Block struct {
	Index   int     // 1-based section number
	Left    float64 // x of the left edge
	Top     float64 // y of the top edge
	Width   float64 // px, section width × scale
	Height  float64 // px, section length × scale
	WidthM  float64 // section width in meters
	LengthM float64 // section length in meters
}

// Label returns the section title, e.g. "Section 2".
func (b Block) Label() string { return fmt.Sprintf("Section %d", b.Index) }

// Caption returns the literal dimensions, e.g. "15.00 m × 51.17 m".
func (b Block) Caption() string { return fmt.Sprintf("%.2f m × %.2f m", b.WidthM, b.LengthM) }

// CenterX returns the horizontal center of the block.
func (b Block) CenterX() float64 { return b.Left + b.Width/2 }

// CenterY returns the vertical center of the block.
func (b Block) CenterY() float64 { return b.Top + b.Height/2 }

// Layout is a complete plan: the blocks plus the frame that contains them.
type Layout struct {
	Scale       float64
	Margin      float64
	FrameWidth  float64
	FrameHeight float64
	Blocks      []Block
}

// Option configures [Build].
type Option func(*builder)

type builder struct {
	scale  float64
	margin float64
}

// WithScale sets the pixels-per-meter scale. Non-positive values are ignored.
func WithScale(s float64) Option {
	return func(b *builder) {
		if s > 0 {
			b.scale = s
		}
	}
}

// WithMargin sets the gap around and between blocks. Negative values are ignored.
func WithMargin(m float64) Option {
	return func(b *builder) {
		if m >= 0 {
			b.margin = m
		}
	}
}

// Build lays out the sections of r.
func Build(r wetland.Result, opts ...Option) Layout {
	cfg := builder{scale: DefaultScale, margin: DefaultMargin}
	for _, opt := range opts {
		opt(&cfg)
	}

	w := r.SectionWidth * cfg.scale
	h := r.SectionLength * cfg.scale

	l := Layout{
		Scale:  cfg.scale,
		Margin: cfg.margin,
		Blocks: make([]Block, 0, r.SectionCount),
	}
	x := cfg.margin
	for i := 0; i < r.SectionCount; i++ {
		l.Blocks = append(l.Blocks, Block{
			Index:   i + 1,
			Left:    x,
			Top:     cfg.margin,
			Width:   w,
			Height:  h,
			WidthM:  r.SectionWidth,
			LengthM: r.SectionLength,
		})
		x += w + cfg.margin
	}
	l.FrameWidth = x
	l.FrameHeight = h + 2*cfg.margin
	return l
}
