package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wetland/pkg/errors"
	"github.com/matzehuels/wetland/pkg/render/summary"
	"github.com/matzehuels/wetland/pkg/wetland"
)

// Form styles
var (
	formLabelStyle    = lipgloss.NewStyle().Foreground(colorGray).Width(30)
	formFocusedStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	formSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	formErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// Field order in the form. The regime selector follows the text inputs.
const (
	fieldPopulation = iota
	fieldFlow
	fieldCi
	fieldCe
	fieldRegime
	fieldCount
)

var formLabels = [...]string{
	fieldPopulation: "Population",
	fieldFlow:       "Wastewater per person (L/day)",
	fieldCi:         "Influent BOD, Ci (mg/L)",
	fieldCe:         "Effluent BOD, Ce (mg/L)",
	fieldRegime:     "Wetland type",
}

// =============================================================================
// formModel - Interactive design entry
// =============================================================================

// sizeFunc sizes validated inputs.
type sizeFunc func(wetland.Inputs) (wetland.Result, error)

type formModel struct {
	inputs []textinput.Model
	regime int // index into wetland.Regimes
	focus  int
	size   sizeFunc

	err      string
	result   *wetland.Result
	quitting bool
}

func newFormModel(size sizeFunc) formModel {
	m := formModel{size: size}
	m.inputs = make([]textinput.Model, fieldRegime)
	placeholders := []string{"1000", "150", "300", "30"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 16
		ti.Width = 16
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab", "down":
			return m.setFocus((m.focus + 1) % fieldCount), nil
		case "shift+tab", "up":
			return m.setFocus((m.focus + fieldCount - 1) % fieldCount), nil
		case "enter":
			return m.submit()
		}

		if m.focus == fieldRegime {
			switch msg.String() {
			case "left", "right", " ", "h", "l":
				m.regime = (m.regime + 1) % len(wetland.Regimes)
			}
			return m, nil
		}
	}

	if m.focus < fieldRegime {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m formModel) setFocus(i int) formModel {
	if m.focus < fieldRegime {
		m.inputs[m.focus].Blur()
	}
	m.focus = i
	if m.focus < fieldRegime {
		m.inputs[m.focus].Focus()
	}
	return m
}

func (m formModel) raw() wetland.RawInputs {
	return wetland.RawInputs{
		Population:    m.inputs[fieldPopulation].Value(),
		PerCapitaFlow: m.inputs[fieldFlow].Value(),
		InfluentConc:  m.inputs[fieldCi].Value(),
		EffluentConc:  m.inputs[fieldCe].Value(),
		Regime:        string(wetland.Regimes[m.regime]),
	}
}

// submit validates and sizes the entered design. Errors keep the form open
// and show the message; a successful result ends the program.
func (m formModel) submit() (tea.Model, tea.Cmd) {
	in, err := wetland.ParseInputs(m.raw())
	if err == nil {
		var res wetland.Result
		res, err = m.size(in)
		if err == nil {
			m.err = ""
			m.result = &res
			return m, tea.Quit
		}
	}
	m.err = errors.UserMessage(err)
	m.result = nil
	return m, nil
}

func (m formModel) View() string {
	if m.quitting || m.result != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Constructed Wetland Design"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("tab/↑/↓ move  ←/→ change type  ⏎ calculate  esc quit"))
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(m.label(i))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString(m.label(fieldRegime))
	for i, r := range wetland.Regimes {
		if i > 0 {
			b.WriteString(StyleDim.Render("  /  "))
		}
		text := fmt.Sprintf("%s %s", r, r.Name())
		if i == m.regime {
			b.WriteString(formSelectedStyle.Render("[" + text + "]"))
		} else {
			b.WriteString(StyleDim.Render(text))
		}
	}
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(styleIconError.Render(iconError) + " " + formErrorStyle.Render(m.err))
		b.WriteString("\n")
	}
	return b.String()
}

func (m formModel) label(i int) string {
	if i == m.focus {
		return formFocusedStyle.Width(30).Render(formLabels[i])
	}
	return formLabelStyle.Render(formLabels[i])
}

// =============================================================================
// form command
// =============================================================================

// formCommand creates the interactive form command.
func (c *CLI) formCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Enter a design interactively",
		Long: `Open an interactive form for the five design inputs. Invalid entries keep
the form open with a message; a valid design prints the summary.

Requires an interactive terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runForm(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (c *CLI) runForm(ctx context.Context, in io.Reader, out io.Writer) error {
	if !isTerminalReader(in) || !isTerminal(out) {
		return errors.New(errors.ErrCodeUnsupported, "the form needs an interactive terminal; use 'wetland size' instead")
	}

	runner := c.newRunner()
	model := newFormModel(func(in wetland.Inputs) (wetland.Result, error) {
		return runner.Size(ctx, in)
	})

	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return err
	}

	fm := final.(formModel)
	if fm.result == nil {
		printInfo(out, "Cancelled")
		return nil
	}
	renderInputs(out, fm.result.Inputs)
	fmt.Fprintln(out)
	fmt.Fprint(out, renderSummary(summary.Build(*fm.result)))
	return nil
}

// isTerminalReader reports whether r is an interactive terminal.
func isTerminalReader(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && isTerminal(f)
}
