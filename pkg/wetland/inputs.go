package wetland

import (
	"strconv"
	"strings"

	"github.com/matzehuels/wetland/pkg/errors"
)

// Input field names used in validation errors and on the wire.
const (
	FieldPopulation    = "population"
	FieldPerCapitaFlow = "per_capita_flow"
	FieldInfluentConc  = "influent_concentration"
	FieldEffluentConc  = "effluent_concentration"
	FieldRegime        = "regime"
)

// invalidInputMessage is shown to users when any design input is rejected.
const invalidInputMessage = "please enter valid positive numbers for all fields"

// Inputs are the design parameters for one wetland.
type Inputs struct {
	Population    int     `json:"population"`             // people served
	PerCapitaFlow float64 `json:"per_capita_flow"`        // L/person/day
	InfluentConc  float64 `json:"influent_concentration"` // Ci, mg/L BOD
	EffluentConc  float64 `json:"effluent_concentration"` // Ce, mg/L BOD
	Regime        Regime  `json:"regime"`
}

// Validate checks that all inputs are strictly positive and finite and that the
// regime is known. The returned error names every offending field.
func (in Inputs) Validate() error {
	var bad []string
	if in.Population <= 0 {
		bad = append(bad, FieldPopulation)
	}
	if !positive(in.PerCapitaFlow) {
		bad = append(bad, FieldPerCapitaFlow)
	}
	if !positive(in.InfluentConc) {
		bad = append(bad, FieldInfluentConc)
	}
	if !positive(in.EffluentConc) {
		bad = append(bad, FieldEffluentConc)
	}
	if !in.Regime.Valid() {
		bad = append(bad, FieldRegime)
	}
	if len(bad) > 0 {
		return errors.WithFields(errors.ErrCodeInvalidInput, bad, invalidInputMessage)
	}
	return nil
}

// RawInputs carries the design inputs as text, the way a form or a design file
// delivers them. Use [ParseInputs] to convert and validate.
type RawInputs struct {
	Population    string `json:"population" yaml:"population" toml:"population"`
	PerCapitaFlow string `json:"per_capita_flow" yaml:"per_capita_flow" toml:"per_capita_flow"`
	InfluentConc  string `json:"influent_concentration" yaml:"influent_concentration" toml:"influent_concentration"`
	EffluentConc  string `json:"effluent_concentration" yaml:"effluent_concentration" toml:"effluent_concentration"`
	Regime        string `json:"regime" yaml:"regime" toml:"regime"`
}

// ParseInputs converts raw text inputs into validated [Inputs].
// Missing, non-numeric and non-positive values are all reported together.
func ParseInputs(raw RawInputs) (Inputs, error) {
	var (
		in  Inputs
		bad []string
		err error
	)

	if in.Population, err = strconv.Atoi(strings.TrimSpace(raw.Population)); err != nil || in.Population <= 0 {
		bad = append(bad, FieldPopulation)
	}
	if in.PerCapitaFlow, err = parsePositive(raw.PerCapitaFlow); err != nil {
		bad = append(bad, FieldPerCapitaFlow)
	}
	if in.InfluentConc, err = parsePositive(raw.InfluentConc); err != nil {
		bad = append(bad, FieldInfluentConc)
	}
	if in.EffluentConc, err = parsePositive(raw.EffluentConc); err != nil {
		bad = append(bad, FieldEffluentConc)
	}
	if in.Regime, err = ParseRegime(raw.Regime); err != nil {
		bad = append(bad, FieldRegime)
	}

	if len(bad) > 0 {
		return Inputs{}, errors.WithFields(errors.ErrCodeInvalidInput, bad, invalidInputMessage)
	}
	return in, nil
}

// Raw returns the text form of in, suitable for pre-filling a form.
func (in Inputs) Raw() RawInputs {
	return RawInputs{
		Population:    strconv.Itoa(in.Population),
		PerCapitaFlow: strconv.FormatFloat(in.PerCapitaFlow, 'g', -1, 64),
		InfluentConc:  strconv.FormatFloat(in.InfluentConc, 'g', -1, 64),
		EffluentConc:  strconv.FormatFloat(in.EffluentConc, 'g', -1, 64),
		Regime:        in.Regime.String(),
	}
}

func parsePositive(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if !positive(v) {
		return 0, strconv.ErrRange
	}
	return v, nil
}
