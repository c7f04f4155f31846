// Package render turns wetland sizing results into visual output.
//
// # Overview
//
// A sizing result is rendered in two steps: a layout stage converts section
// geometry in meters into pixel blocks, and a sink writes those blocks in an
// output format. This package holds the shared format conversion; the stages
// live in subpackages:
//
//   - [plan]: proportional plan view of the bed sections (20 px per meter)
//   - [sink]: SVG, HTML, JSON, PNG and PDF writers for a plan
//   - [styles]: labeled and plain block styles
//   - [summary]: the textual design summary
//   - [schematic]: Graphviz flow schematic (influent → sections → effluent)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). Both the plan sinks and the
// schematic renderer use them.
//
//	svg := sink.RenderSVG(layout)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [plan]: github.com/matzehuels/wetland/pkg/render/plan
// [sink]: github.com/matzehuels/wetland/pkg/render/sink
// [styles]: github.com/matzehuels/wetland/pkg/render/styles
// [summary]: github.com/matzehuels/wetland/pkg/render/summary
// [schematic]: github.com/matzehuels/wetland/pkg/render/schematic
package render
