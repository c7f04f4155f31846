// Package wetland sizes constructed-wetland treatment beds.
//
// The sizing model is the classic first-order plug-flow BOD removal equation
// combined with Darcy-style cross-section sizing:
//
//	Q      = population × perCapitaFlow / 1000          (m³/day)
//	area   = Q × (ln Ci − ln Ce) / K                    (m²)
//	Ac     = (Q / 86400) / (Kf × slope)                 (m²)
//	width  = Ac / depth                                 (m)
//	length = area / width                               (m)
//
// When the resulting width exceeds the maximum single-channel width, the bed is
// split into equal-area parallel sections built at that maximum width.
//
// # Usage
//
//	res, err := wetland.Size(wetland.Inputs{
//	    Population:    1000,
//	    PerCapitaFlow: 150,
//	    InfluentConc:  300,
//	    EffluentConc:  30,
//	    Regime:        wetland.Horizontal,
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d sections of %.2f × %.2f m\n", res.SectionCount, res.SectionWidth, res.SectionLength)
//
// [Size] and [Sizer.Size] are pure: they perform no I/O, hold no state between
// calls and are safe for concurrent use.
//
// # Errors
//
// Inputs that are missing, non-numeric, non-finite or non-positive are rejected
// with an [errors.ErrCodeInvalidInput] error naming every offending field.
// An influent concentration that does not exceed the effluent concentration
// would yield a zero or negative treatment area and is rejected with
// [errors.ErrCodeDegenerateResult].
package wetland
