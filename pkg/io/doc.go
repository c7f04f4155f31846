// Package io reads design briefs and writes sizing results.
//
// # Design Briefs
//
// A design brief names a project and records the five sizing inputs, plus
// optional render settings. Briefs may be written in TOML, YAML or JSON; the
// format is chosen from the file extension. The same brief in TOML:
//
//	name = "Village A"
//	population = 1000
//	per_capita_flow = 150
//	influent_concentration = 300
//	effluent_concentration = 30
//	regime = "HF"
//
//	[render]
//	viz = "plan"
//	style = "labeled"
//	formats = ["svg", "pdf"]
//
// Input values may be numbers or strings. They are carried as
// [wetland.RawInputs] so a brief is validated by the same rules as a form
// submission: every missing, non-numeric or non-positive field is reported.
//
// # Import
//
// Use [ImportDesign] to read a brief from a file path, or [ReadDesign] to read
// from any io.Reader:
//
//	d, err := io.ImportDesign("village.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	in, err := wetland.ParseInputs(d.Inputs)
//
// # Export
//
// [ExportResult] writes a sizing result as indented JSON, and [ExportDesign]
// writes a brief back out in any of the three formats so a design entered on
// the command line can be re-run later.
package io
