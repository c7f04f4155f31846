package wetland

import (
	"math"

	"github.com/matzehuels/wetland/pkg/errors"
)

const (
	litersPerCubicMeter = 1000.0
	secondsPerDay       = 86400.0
)

// Result is the computed geometry for one design. It is a plain value and is
// never modified after [Sizer.Size] returns it.
type Result struct {
	Inputs Inputs `json:"inputs"`

	DailyFlow          float64 `json:"daily_flow"`           // Q, m³/day
	FlowPerSecond      float64 `json:"flow_per_second"`      // Qs, m³/s
	RateConstant       float64 `json:"rate_constant"`        // K, 1/day
	RequiredArea       float64 `json:"required_area"`        // m²
	CrossSectionalArea float64 `json:"cross_sectional_area"` // m²
	InitialWidth       float64 `json:"initial_width"`        // m, before any split
	InitialLength      float64 `json:"initial_length"`       // m, before any split

	SectionCount  int     `json:"section_count"`
	SectionArea   float64 `json:"section_area"`   // m² per section
	SectionWidth  float64 `json:"section_width"`  // m per section
	SectionLength float64 `json:"section_length"` // m per section
}

// Split reports whether the bed was divided into parallel sections.
func (r Result) Split() bool { return r.SectionCount > 1 }

// Sizer computes wetland geometry from a fixed set of [Constants].
type Sizer struct {
	c Constants
}

// NewSizer returns a Sizer using c. It fails if any constant is unusable.
func NewSizer(c Constants) (*Sizer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Sizer{c: c}, nil
}

// Constants returns the constants this sizer was built with.
func (s *Sizer) Constants() Constants { return s.c }

var defaultSizer = &Sizer{c: DefaultConstants()}

// Size computes the design for in using [DefaultConstants].
func Size(in Inputs) (Result, error) {
	return defaultSizer.Size(in)
}

// Size computes the design for in.
//
// A bed whose width exceeds MaxSectionWidth is split into ParallelSections
// equal-area sections, each built at exactly MaxSectionWidth. A width equal to
// the maximum is not split.
func (s *Sizer) Size(in Inputs) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	if in.InfluentConc <= in.EffluentConc {
		return Result{}, errors.WithFields(errors.ErrCodeDegenerateResult,
			[]string{FieldInfluentConc, FieldEffluentConc},
			"influent concentration (%g mg/L) must exceed effluent concentration (%g mg/L)",
			in.InfluentConc, in.EffluentConc)
	}

	c := s.c
	r := Result{Inputs: in}

	r.DailyFlow = float64(in.Population) * in.PerCapitaFlow / litersPerCubicMeter
	r.FlowPerSecond = r.DailyFlow / secondsPerDay
	r.RateConstant = c.RateConstant(in.Regime)
	r.RequiredArea = r.DailyFlow * (math.Log(in.InfluentConc) - math.Log(in.EffluentConc)) / r.RateConstant
	r.CrossSectionalArea = r.FlowPerSecond / (c.HydraulicConductivity * c.BedSlope)
	r.InitialWidth = r.CrossSectionalArea / c.BedDepth
	r.InitialLength = r.RequiredArea / r.InitialWidth

	if r.InitialWidth > c.MaxSectionWidth {
		r.SectionCount = c.ParallelSections
		r.SectionArea = r.RequiredArea / float64(r.SectionCount)
		r.SectionWidth = c.MaxSectionWidth
		r.SectionLength = r.SectionArea / r.SectionWidth
	} else {
		r.SectionCount = 1
		r.SectionArea = r.RequiredArea
		r.SectionWidth = r.InitialWidth
		r.SectionLength = r.InitialLength
	}

	if err := r.checkFinite(); err != nil {
		return Result{}, err
	}
	return r, nil
}

// checkFinite rejects designs whose flow or geometry underflowed to zero or
// overflowed to infinity for inputs at the edges of the float64 range.
func (r Result) checkFinite() error {
	for _, v := range []float64{r.DailyFlow, r.FlowPerSecond, r.CrossSectionalArea, r.InitialWidth} {
		if !positive(v) {
			return errors.WithFields(errors.ErrCodeDegenerateResult,
				[]string{FieldPopulation, FieldPerCapitaFlow},
				"daily flow of %g m³/day is outside the range that yields a buildable bed", r.DailyFlow)
		}
	}
	for _, v := range []float64{r.RequiredArea, r.InitialLength, r.SectionArea, r.SectionWidth, r.SectionLength} {
		if !positive(v) {
			return errors.WithFields(errors.ErrCodeDegenerateResult,
				[]string{FieldPopulation, FieldPerCapitaFlow, FieldInfluentConc, FieldEffluentConc},
				"inputs yield a bed of %g m² by %g m, which cannot be built", r.RequiredArea, r.InitialLength)
		}
	}
	return nil
}
