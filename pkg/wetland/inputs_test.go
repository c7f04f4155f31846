package wetland

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/wetland/pkg/errors"
)

func TestParseInputs(t *testing.T) {
	in, err := ParseInputs(RawInputs{
		Population:    " 1000 ",
		PerCapitaFlow: "150",
		InfluentConc:  "300",
		EffluentConc:  "30.5",
		Regime:        "vf",
	})
	require.NoError(t, err)
	assert.Equal(t, Inputs{
		Population:    1000,
		PerCapitaFlow: 150,
		InfluentConc:  300,
		EffluentConc:  30.5,
		Regime:        Vertical,
	}, in)
}

func TestParseInputsRejects(t *testing.T) {
	valid := RawInputs{
		Population:    "1000",
		PerCapitaFlow: "150",
		InfluentConc:  "300",
		EffluentConc:  "30",
		Regime:        "HF",
	}

	tests := []struct {
		name   string
		mutate func(*RawInputs)
		fields []string
	}{
		{"zero population", func(r *RawInputs) { r.Population = "0" }, []string{FieldPopulation}},
		{"fractional population", func(r *RawInputs) { r.Population = "12.5" }, []string{FieldPopulation}},
		{"missing population", func(r *RawInputs) { r.Population = "" }, []string{FieldPopulation}},
		{"non-numeric flow", func(r *RawInputs) { r.PerCapitaFlow = "lots" }, []string{FieldPerCapitaFlow}},
		{"NaN flow", func(r *RawInputs) { r.PerCapitaFlow = "NaN" }, []string{FieldPerCapitaFlow}},
		{"negative Ci", func(r *RawInputs) { r.InfluentConc = "-300" }, []string{FieldInfluentConc}},
		{"infinite Ce", func(r *RawInputs) { r.EffluentConc = "+Inf" }, []string{FieldEffluentConc}},
		{"bad regime", func(r *RawInputs) { r.Regime = "diagonal" }, []string{FieldRegime}},
		{"all missing", func(r *RawInputs) { *r = RawInputs{} }, []string{
			FieldPopulation, FieldPerCapitaFlow, FieldInfluentConc, FieldEffluentConc, FieldRegime,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := valid
			tt.mutate(&raw)

			in, err := ParseInputs(raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
			assert.Equal(t, tt.fields, errors.Fields(err))
			assert.Equal(t, Inputs{}, in)
		})
	}
}

func TestInputsRawRoundTrip(t *testing.T) {
	in := village()
	got, err := ParseInputs(in.Raw())
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestParseRegime(t *testing.T) {
	tests := []struct {
		input   string
		want    Regime
		wantErr bool
	}{
		{"HF", Horizontal, false},
		{"hf", Horizontal, false},
		{"Horizontal", Horizontal, false},
		{"VF", Vertical, false},
		{" vertical ", Vertical, false},
		{"", "", true},
		{"SF", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRegime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegimeName(t *testing.T) {
	assert.Equal(t, "Horizontal Flow", Horizontal.Name())
	assert.Equal(t, "Vertical Flow", Vertical.Name())
	assert.Equal(t, "Unknown", Regime("x").Name())
}
