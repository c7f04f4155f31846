package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/wetland/pkg/wetland"
)

func typeText(m formModel, s string) formModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(formModel)
}

func press(m formModel, k tea.KeyType) (formModel, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(formModel), cmd
}

func fillForm(m formModel, values ...string) formModel {
	for _, v := range values {
		m = typeText(m, v)
		m, _ = press(m, tea.KeyTab)
	}
	return m
}

func TestFormSubmitValid(t *testing.T) {
	m := fillForm(newFormModel(wetland.Size), "1000", "150", "300", "30")
	if m.focus != fieldRegime {
		t.Fatalf("focus = %d, want regime selector", m.focus)
	}

	m, cmd := press(m, tea.KeyEnter)
	if m.result == nil {
		t.Fatalf("expected a result, got error %q", m.err)
	}
	if cmd == nil {
		t.Error("a valid submission should quit the program")
	}
	if m.result.SectionCount != 3 || m.result.Inputs.Regime != wetland.Horizontal {
		t.Errorf("result = %+v", m.result)
	}
	if m.View() != "" {
		t.Error("view should be cleared once a result is ready")
	}
}

func TestFormRegimeToggle(t *testing.T) {
	m := fillForm(newFormModel(wetland.Size), "1000", "150", "300", "30")
	m, _ = press(m, tea.KeyRight)
	if got := m.raw().Regime; got != string(wetland.Vertical) {
		t.Fatalf("regime = %s, want VF after toggle", got)
	}

	m, _ = press(m, tea.KeyEnter)
	if m.result == nil || m.result.RateConstant != 0.20 {
		t.Errorf("vertical flow should size with K = 0.20, got %+v", m.result)
	}
}

func TestFormSubmitInvalidStaysOpen(t *testing.T) {
	m := fillForm(newFormModel(wetland.Size), "1000", "abc", "300")

	m, cmd := press(m, tea.KeyEnter)
	if m.result != nil {
		t.Fatal("invalid input must not produce a result")
	}
	if cmd != nil {
		t.Error("invalid input should keep the form open")
	}
	if !strings.Contains(m.err, "please enter valid positive numbers for all fields") {
		t.Errorf("err = %q", m.err)
	}
	for _, f := range []string{wetland.FieldPerCapitaFlow, wetland.FieldEffluentConc} {
		if !strings.Contains(m.err, f) {
			t.Errorf("err should name %s: %q", f, m.err)
		}
	}
	if !strings.Contains(m.View(), m.err) {
		t.Error("view should show the error")
	}
}

func TestFormDegenerateShowsError(t *testing.T) {
	m := fillForm(newFormModel(wetland.Size), "1000", "150", "30", "30")
	m, _ = press(m, tea.KeyEnter)
	if m.result != nil || m.err == "" {
		t.Errorf("Ci == Ce should be rejected, got result=%v err=%q", m.result, m.err)
	}
}

func TestFormFocusWraps(t *testing.T) {
	m := newFormModel(wetland.Size)
	m, _ = press(m, tea.KeyShiftTab)
	if m.focus != fieldRegime {
		t.Errorf("shift+tab from first field should wrap to the selector, got %d", m.focus)
	}
	m, _ = press(m, tea.KeyTab)
	if m.focus != fieldPopulation || !m.inputs[fieldPopulation].Focused() {
		t.Errorf("tab from the selector should wrap to population, got %d", m.focus)
	}
}

func TestFormEscQuits(t *testing.T) {
	m, cmd := press(newFormModel(wetland.Size), tea.KeyEsc)
	if !m.quitting || cmd == nil {
		t.Error("esc should quit")
	}
}
