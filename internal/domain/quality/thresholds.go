package quality

// Thresholds maps every pollutant to its classification boundaries.
type Thresholds map[Pollutant]ThresholdSpec

// DefaultThresholds returns the fixed threshold table used by the dashboard.
func DefaultThresholds() Thresholds {
	return Thresholds{
		PM25:      Scalar(12, 35.4, 55.4, 150.4),
		CO2:       Scalar(700, 1000, 2000, 5000),
		NO2:       Scalar(53, 100, 360, 649),
		Turbidity: Scalar(1, 5, 10, 20),
		PH: Ranged(
			Range{Low: 6.5, High: 8.5},
			Range{Low: 6, High: 9},
			Range{Low: 5, High: 10},
			Range{Low: 0, High: 14},
		),
		Lead: Scalar(5, 10, 15, 50),
	}
}

// Classify looks up the pollutant's spec and classifies value against it.
// Pollutants without a spec classify as good.
func (t Thresholds) Classify(p Pollutant, value float64) Severity {
	spec, ok := t[p]
	if !ok {
		return Good
	}
	return Classify(value, spec)
}

// ByDomain splits the table for presentation.
func (t Thresholds) ByDomain() map[Domain]map[Pollutant]ThresholdSpec {
	out := map[Domain]map[Pollutant]ThresholdSpec{
		Air:   {},
		Water: {},
	}
	for p, spec := range t {
		out[p.Domain()][p] = spec
	}
	return out
}
