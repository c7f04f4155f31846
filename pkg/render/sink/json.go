package sink

import (
	"encoding/json"

	"github.com/matzehuels/wetland/pkg/render/plan"
	"github.com/matzehuels/wetland/pkg/wetland"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	result *wetland.Result
	style  string
}

// WithJSONResult embeds the sizing result the layout was built from.
func WithJSONResult(r wetland.Result) JSONOption {
	return func(j *jsonRenderer) { j.result = &r }
}

// WithJSONStyle records the style name for round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(j *jsonRenderer) { j.style = s } }

type jsonOutput struct {
	Width    float64         `json:"width"`
	Height   float64         `json:"height"`
	Scale    float64         `json:"scale"`
	Margin   float64         `json:"margin"`
	Style    string          `json:"style,omitempty"`
	Sections []jsonSection   `json:"sections"`
	Result   *wetland.Result `json:"result,omitempty"`
}

type jsonSection struct {
	Index   int     `json:"index"`
	Label   string  `json:"label"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	WidthM  float64 `json:"width_m"`
	LengthM float64 `json:"length_m"`
}

// RenderJSON exports the layout, and optionally the sizing result, as a
// pretty-printed JSON document. It does not modify l.
func RenderJSON(l plan.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:    l.FrameWidth,
		Height:   l.FrameHeight,
		Scale:    l.Scale,
		Margin:   l.Margin,
		Style:    r.style,
		Sections: make([]jsonSection, 0, len(l.Blocks)),
		Result:   r.result,
	}
	for _, b := range l.Blocks {
		out.Sections = append(out.Sections, jsonSection{
			Index:   b.Index,
			Label:   b.Label(),
			X:       b.Left,
			Y:       b.Top,
			Width:   b.Width,
			Height:  b.Height,
			WidthM:  b.WidthM,
			LengthM: b.LengthM,
		})
	}

	return json.MarshalIndent(out, "", "  ")
}
