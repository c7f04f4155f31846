// Package sink provides output format renderers for wetland plans.
//
// # Overview
//
// A "sink" transforms a computed [plan.Layout] into a final output format.
// This package provides renderers for:
//
//   - SVG: one rectangle per section with its title and dimensions
//   - HTML: the same sections as inline-styled <div> blocks for web pages
//   - JSON: layout and sizing data for external tools
//   - PDF: Print-ready output (requires rsvg-convert)
//   - PNG: Raster image output (requires rsvg-convert)
//
// # SVG Output
//
//	svg := sink.RenderSVG(layout, sink.WithStyle(styles.Plain{}))
//
// Without [WithStyle] the [styles.Labeled] style is used.
//
// # JSON Output
//
//	data, err := sink.RenderJSON(layout, sink.WithJSONResult(result))
//
// # Raster and Print Output
//
// [RenderPNG] and [RenderPDF] render SVG first and convert it with
// rsvg-convert. They fail with installation instructions when the tool is
// missing.
package sink
