package wetland

import (
	"math"

	"github.com/matzehuels/wetland/pkg/errors"
)

// Constants holds the fixed hydraulic and geometric parameters of the sizing model.
// The value is immutable once handed to a [Sizer].
type Constants struct {
	HydraulicConductivity float64 // Kf, hydraulic conductivity factor
	BedSlope              float64 // bed slope (m/m)
	MaxSectionWidth       float64 // widest feasible single channel (m)
	BedDepth              float64 // bed depth (m)
	RateHorizontal        float64 // first-order rate constant for HF beds (1/day)
	RateVertical          float64 // first-order rate constant for VF beds (1/day)
	ParallelSections      int     // section count used when the bed is split
}

// DefaultConstants returns the design constants used by [Size].
func DefaultConstants() Constants {
	return Constants{
		HydraulicConductivity: 0.002,
		BedSlope:              0.01,
		MaxSectionWidth:       15,
		BedDepth:              0.4,
		RateHorizontal:        0.15,
		RateVertical:          0.20,
		ParallelSections:      3,
	}
}

// RateConstant returns the removal rate constant for the given regime.
func (c Constants) RateConstant(r Regime) float64 {
	if r == Horizontal {
		return c.RateHorizontal
	}
	return c.RateVertical
}

// Validate checks that every constant is finite and strictly positive and that
// splitting produces at least two sections.
func (c Constants) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"hydraulic_conductivity", c.HydraulicConductivity},
		{"bed_slope", c.BedSlope},
		{"max_section_width", c.MaxSectionWidth},
		{"bed_depth", c.BedDepth},
		{"rate_horizontal", c.RateHorizontal},
		{"rate_vertical", c.RateVertical},
	}
	var bad []string
	for _, chk := range checks {
		if !positive(chk.v) {
			bad = append(bad, chk.name)
		}
	}
	if c.ParallelSections < 2 {
		bad = append(bad, "parallel_sections")
	}
	if len(bad) > 0 {
		return errors.WithFields(errors.ErrCodeInvalidInput, bad, "invalid sizing constants")
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
