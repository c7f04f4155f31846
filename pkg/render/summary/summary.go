// Package summary formats a sizing result as a short textual design report.
//
// The report lists the computed quantities in calculation order, each to two
// decimal places with its unit, followed by the per-section geometry:
//
//	Constructed Wetland Design Summary
//	Daily wastewater flow: 150.00 m³/day
//	Required wetland area: 2302.59 m²
//	Cross-sectional area: 86.81 m²
//	Initial width: 217.01 m
//	Adjusted for 3 parallel sections:
//	Each section area: 767.53 m²
//	Width per section: 15.00 m
//	Length per section: 51.17 m
package summary

import (
	"fmt"
	"strings"

	"github.com/matzehuels/wetland/pkg/wetland"
)

// Title is the report heading.
const Title = "Constructed Wetland Design Summary"

// Units used in the report.
const (
	UnitFlow   = "m³/day"
	UnitArea   = "m²"
	UnitLength = "m"
)

// Line is one labeled quantity.
type Line struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// FormatValue returns the value to two decimals followed by the unit.
func (l Line) FormatValue() string { return fmt.Sprintf("%.2f %s", l.Value, l.Unit) }

// String returns "Label: value unit".
func (l Line) String() string { return l.Label + ": " + l.FormatValue() }

// Summary is the structured report for one result.
type Summary struct {
	Title          string `json:"title"`
	Design         []Line `json:"design"`
	SectionHeading string `json:"section_heading"`
	Sections       []Line `json:"sections"`
}

// Build assembles the report for r.
func Build(r wetland.Result) Summary {
	s := Summary{
		Title: Title,
		Design: []Line{
			{"Daily wastewater flow", r.DailyFlow, UnitFlow},
			{"Required wetland area", r.RequiredArea, UnitArea},
			{"Cross-sectional area", r.CrossSectionalArea, UnitArea},
			{"Initial width", r.InitialWidth, UnitLength},
		},
	}

	if r.Split() {
		s.SectionHeading = fmt.Sprintf("Adjusted for %d parallel sections", r.SectionCount)
		s.Sections = []Line{
			{"Each section area", r.SectionArea, UnitArea},
			{"Width per section", r.SectionWidth, UnitLength},
			{"Length per section", r.SectionLength, UnitLength},
		}
	} else {
		s.SectionHeading = "Single section dimensions"
		s.Sections = []Line{
			{"Width", r.SectionWidth, UnitLength},
			{"Length", r.SectionLength, UnitLength},
		}
	}
	return s
}

// Text renders the report as plain text, one quantity per line.
func (s Summary) Text() string {
	var b strings.Builder
	b.WriteString(s.Title)
	b.WriteByte('\n')
	for _, l := range s.Design {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	b.WriteString(s.SectionHeading)
	b.WriteString(":\n")
	for _, l := range s.Sections {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Text is shorthand for Build(r).Text().
func Text(r wetland.Result) string { return Build(r).Text() }
