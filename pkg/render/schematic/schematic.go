// Package schematic renders a wetland design as a process-flow diagram.
//
// The diagram reads top to bottom: influent, a distribution chamber, one node
// per parallel bed section, a collection chamber and the treated effluent.
// Edges carry the flow split between sections.
//
//	dot := schematic.ToDOT(result)
//	svg, err := schematic.RenderSVG(dot)
package schematic

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/wetland/pkg/render"
	"github.com/matzehuels/wetland/pkg/wetland"
)

// Node IDs used in the generated DOT graph.
const (
	NodeInfluent   = "influent"
	NodeDistribute = "distribution"
	NodeCollect    = "collection"
	NodeEffluent   = "effluent"
)

// SectionNodeID returns the DOT node ID for the i-th (1-based) section.
func SectionNodeID(i int) string { return fmt.Sprintf("section_%d", i) }

// ToDOT converts a sizing result to a Graphviz DOT process-flow graph.
func ToDOT(r wetland.Result) string {
	var buf bytes.Buffer
	buf.WriteString("digraph wetland {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\", fontsize=14];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\", fontsize=11];\n")
	buf.WriteString("\n")

	in := r.Inputs
	fmt.Fprintf(&buf, "  %q [label=%q, shape=invhouse];\n", NodeInfluent,
		fmt.Sprintf("Influent\n%.2f m³/day\nBOD %.1f mg/L", r.DailyFlow, in.InfluentConc))
	fmt.Fprintf(&buf, "  %q [label=%q];\n", NodeDistribute, "Distribution")
	fmt.Fprintf(&buf, "  %q [label=%q];\n", NodeCollect, "Collection")
	fmt.Fprintf(&buf, "  %q [label=%q, shape=house];\n", NodeEffluent,
		fmt.Sprintf("Effluent\nBOD %.1f mg/L", in.EffluentConc))

	buf.WriteString("\n  { rank=same;")
	for i := 1; i <= r.SectionCount; i++ {
		fmt.Fprintf(&buf, " %q;", SectionNodeID(i))
	}
	buf.WriteString(" }\n")
	for i := 1; i <= r.SectionCount; i++ {
		label := fmt.Sprintf("Section %d\n%s\n%.2f m × %.2f m\n%.2f m²",
			i, in.Regime.Name(), r.SectionWidth, r.SectionLength, r.SectionArea)
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=lightgreen, color=green];\n", SectionNodeID(i), label)
	}

	buf.WriteString("\n")
	fmt.Fprintf(&buf, "  %q -> %q;\n", NodeInfluent, NodeDistribute)
	share := r.DailyFlow / float64(r.SectionCount)
	for i := 1; i <= r.SectionCount; i++ {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", NodeDistribute, SectionNodeID(i), fmt.Sprintf("%.2f m³/day", share))
		fmt.Fprintf(&buf, "  %q -> %q;\n", SectionNodeID(i), NodeCollect)
	}
	fmt.Fprintf(&buf, "  %q -> %q;\n", NodeCollect, NodeEffluent)

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with one whose
// viewBox starts at the origin and whose size matches it.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
