package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/wetland/pkg/render/plan"
	"github.com/matzehuels/wetland/pkg/render/styles"
)

const sectionHoverCSS = `
    .section { transition: stroke-width 0.2s ease; }
    .section:hover { stroke-width: 3; }`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style  styles.Style
	title  string
	labels bool
}

// WithStyle selects the block style.
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithTitle adds an SVG <title> element for accessibility.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// WithoutLabels suppresses section titles and dimensions.
func WithoutLabels() SVGOption { return func(r *svgRenderer) { r.labels = false } }

// RenderSVG renders the plan as an SVG document sized to the layout frame.
func RenderSVG(l plan.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.FrameWidth, l.FrameHeight, l.FrameWidth, l.FrameHeight)

	if r.title != "" {
		buf.WriteString("  <title>")
		escapeText(&buf, r.title)
		buf.WriteString("</title>\n")
	}

	r.style.RenderDefs(&buf)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", sectionHoverCSS)

	for _, b := range l.Blocks {
		r.style.RenderBlock(&buf, b)
	}
	if r.labels {
		for _, b := range l.Blocks {
			r.style.RenderLabel(&buf, b)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Labeled{}, labels: true}
	for _, opt := range opts {
		opt(&r)
	}
	if r.style == nil {
		r.style = styles.Labeled{}
	}
	return r
}
