package quality

// Range is an inclusive [Low, High] interval.
type Range struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether v lies inside the range, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r.Low && v <= r.High
}

// ThresholdSpec holds the tier boundaries for one pollutant. Scalar specs use
// the ceilings; range specs (pH) set Ranges and leave the ceilings zero.
type ThresholdSpec struct {
	Good     float64 `json:"good,omitempty"`
	Moderate float64 `json:"moderate,omitempty"`
	Poor     float64 `json:"poor,omitempty"`
	Harmful  float64 `json:"harmful,omitempty"`

	Ranges *RangeSpec `json:"ranges,omitempty"`
}

// RangeSpec nests: Poor contains Moderate contains Good.
type RangeSpec struct {
	Good     Range `json:"good"`
	Moderate Range `json:"moderate"`
	Poor     Range `json:"poor"`
	Harmful  Range `json:"harmful"`
}

// Scalar builds a ceiling based spec.
func Scalar(good, moderate, poor, harmful float64) ThresholdSpec {
	return ThresholdSpec{Good: good, Moderate: moderate, Poor: poor, Harmful: harmful}
}

// Ranged builds a containment based spec.
func Ranged(good, moderate, poor, harmful Range) ThresholdSpec {
	return ThresholdSpec{Ranges: &RangeSpec{Good: good, Moderate: moderate, Poor: poor, Harmful: harmful}}
}

// Classify maps a value onto a severity tier. Ceilings are inclusive upper
// bounds; ranges are checked narrowest first. Anything that matches no tier is
// harmful.
func Classify(value float64, spec ThresholdSpec) Severity {
	if r := spec.Ranges; r != nil {
		switch {
		case r.Good.Contains(value):
			return Good
		case r.Moderate.Contains(value):
			return Moderate
		case r.Poor.Contains(value):
			return Poor
		default:
			return Harmful
		}
	}

	switch {
	case value <= spec.Good:
		return Good
	case value <= spec.Moderate:
		return Moderate
	case value <= spec.Poor:
		return Poor
	default:
		return Harmful
	}
}
