package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/wetland/pkg/render/summary"
	"github.com/matzehuels/wetland/pkg/wetland"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleSection = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Design Summary
// =============================================================================

// renderInputs formats the design inputs as key-value lines.
func renderInputs(w io.Writer, in wetland.Inputs) {
	printKeyValue(w, "Population", fmt.Sprintf("%d", in.Population))
	printKeyValue(w, "Flow", fmt.Sprintf("%g L/person/day", in.PerCapitaFlow))
	printKeyValue(w, "BOD in", fmt.Sprintf("%g mg/L", in.InfluentConc))
	printKeyValue(w, "BOD out", fmt.Sprintf("%g mg/L", in.EffluentConc))
	printKeyValue(w, "Regime", fmt.Sprintf("%s (%s)", in.Regime.Name(), in.Regime))
}

// renderSummary draws the design summary as a table: the design quantities
// first, then the section block under its heading.
func renderSummary(s summary.Summary) string {
	rows := make([][]string, 0, len(s.Design)+len(s.Sections)+1)
	for _, l := range s.Design {
		rows = append(rows, []string{l.Label, l.FormatValue()})
	}
	headingRow := len(rows)
	rows = append(rows, []string{s.SectionHeading, ""})
	for _, l := range s.Sections {
		rows = append(rows, []string{"  " + l.Label, l.FormatValue()})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Quantity", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader.Padding(0, 1)
			case row == headingRow:
				return styleSection.Padding(0, 1)
			case col == 1:
				return StyleNumber.Padding(0, 1).Align(lipgloss.Right)
			default:
				return StyleValue.Padding(0, 1)
			}
		})

	var b strings.Builder
	b.WriteString(StyleTitle.Render(s.Title))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}
