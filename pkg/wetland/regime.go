package wetland

import (
	"strings"

	"github.com/matzehuels/wetland/pkg/errors"
)

// Regime is the wetland flow type. It selects the first-order removal rate constant.
type Regime string

// Supported flow regimes.
const (
	Horizontal Regime = "HF" // horizontal subsurface flow
	Vertical   Regime = "VF" // vertical flow
)

// Regimes lists the supported regimes in display order.
var Regimes = []Regime{Horizontal, Vertical}

// String returns the short code ("HF" or "VF").
func (r Regime) String() string { return string(r) }

// Name returns a human-readable name for the regime.
func (r Regime) Name() string {
	switch r {
	case Horizontal:
		return "Horizontal Flow"
	case Vertical:
		return "Vertical Flow"
	default:
		return "Unknown"
	}
}

// Valid reports whether r is one of the supported regimes.
func (r Regime) Valid() bool {
	return r == Horizontal || r == Vertical
}

// ParseRegime converts a user-supplied regime name into a Regime.
// It accepts the short codes and the long names, case-insensitively.
func ParseRegime(s string) (Regime, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hf", "horizontal", "horizontal-flow":
		return Horizontal, nil
	case "vf", "vertical", "vertical-flow":
		return Vertical, nil
	}
	return "", errors.WithFields(errors.ErrCodeInvalidInput, []string{FieldRegime},
		"unknown wetland type %q (must be HF or VF)", s)
}
