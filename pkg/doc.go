// Package pkg provides the libraries behind the wetland sizer.
//
// # Overview
//
// Wetland sizes constructed-wetland beds for domestic wastewater and draws a
// proportional plan of the result. The pkg directory is organized into:
//
//  1. [wetland] - The sizing calculation (pure, no I/O)
//  2. [render] - Plan layout, summaries, SVG/HTML/PNG/PDF/JSON sinks, flow schematic
//  3. [pipeline] - Orchestration (size → layout → render)
//  4. [io] - Design briefs in TOML, YAML and JSON; result export
//  5. [server] - Browser form and JSON API
//
// Supporting packages: [errors] for structured error codes, [observability]
// for pipeline and HTTP hooks, [buildinfo] for version stamping.
//
// # Architecture
//
// The typical data flow:
//
//	Flags / design brief / form
//	         ↓
//	    [wetland] package (validate + size)
//	         ↓
//	    [render/plan] package (pixel layout)
//	         ↓
//	    [render/sink] or [render/schematic] (output)
//	         ↓
//	    SVG/HTML/PDF/PNG/JSON/DOT output
//
// # Quick Start
//
//	in, err := wetland.ParseInputs(wetland.RawInputs{
//	    Population:    "1000",
//	    PerCapitaFlow: "150",
//	    InfluentConc:  "300",
//	    EffluentConc:  "30",
//	    Regime:        "HF",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	runner := pipeline.NewRunner(nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Inputs:  in,
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("plan.svg", result.Artifacts["svg"], 0o644)
//
// [wetland]: github.com/matzehuels/wetland/pkg/wetland
// [render]: github.com/matzehuels/wetland/pkg/render
// [render/plan]: github.com/matzehuels/wetland/pkg/render/plan
// [render/sink]: github.com/matzehuels/wetland/pkg/render/sink
// [render/schematic]: github.com/matzehuels/wetland/pkg/render/schematic
// [pipeline]: github.com/matzehuels/wetland/pkg/pipeline
// [io]: github.com/matzehuels/wetland/pkg/io
// [server]: github.com/matzehuels/wetland/pkg/server
// [errors]: github.com/matzehuels/wetland/pkg/errors
// [observability]: github.com/matzehuels/wetland/pkg/observability
// [buildinfo]: github.com/matzehuels/wetland/pkg/buildinfo
package pkg
