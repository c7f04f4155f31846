package pipeline

import (
	"fmt"

	"github.com/matzehuels/wetland/pkg/render/plan"
	"github.com/matzehuels/wetland/pkg/render/schematic"
	"github.com/matzehuels/wetland/pkg/render/sink"
	"github.com/matzehuels/wetland/pkg/render/styles"
	"github.com/matzehuels/wetland/pkg/wetland"
)

// renderPlan generates plan outputs.
func renderPlan(sized wetland.Result, l plan.Layout, opts Options) (map[string][]byte, error) {
	style, err := styles.ByName(opts.Style)
	if err != nil {
		return nil, err
	}
	svgOpts := []sink.SVGOption{sink.WithStyle(style)}
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(l, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(DefaultPNGScale))
		case FormatPDF:
			data, err = sink.RenderPDF(l, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(l, sink.WithJSONResult(sized), sink.WithJSONStyle(style.Name()))
		case FormatHTML:
			data, err = sink.RenderHTML(l, svgOpts...)
		default:
			return nil, fmt.Errorf("unsupported plan format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// renderSchematic generates flow schematic outputs. The DOT source is built
// once and shared by every format.
func renderSchematic(sized wetland.Result, l plan.Layout, opts Options) (map[string][]byte, error) {
	dot := schematic.ToDOT(sized)

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = schematic.RenderSVG(dot)
		case FormatPNG:
			data, err = schematic.RenderPNG(dot, DefaultPNGScale)
		case FormatPDF:
			data, err = schematic.RenderPDF(dot)
		case FormatJSON:
			data, err = sink.RenderJSON(l, sink.WithJSONResult(sized))
		default:
			return nil, fmt.Errorf("unsupported schematic format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
