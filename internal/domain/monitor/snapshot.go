package monitor

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yanqian/envwatch/internal/domain/fluctuation"
	"github.com/yanqian/envwatch/internal/domain/quality"
)

// round renders v with the pollutant's display precision.
func round(p quality.Pollutant, v float64) float64 {
	return decimal.NewFromFloat(v).Round(p.Precision()).InexactFloat64()
}

// newReading classifies the raw value and rounds it for display.
func newReading(th quality.Thresholds, p quality.Pollutant, raw float64) Reading {
	return Reading{
		Value:  round(p, raw),
		Unit:   p.Unit(),
		Status: th.Classify(p, raw),
	}
}

// newRoundedReading rounds first and classifies the rounded value.
func newRoundedReading(th quality.Thresholds, p quality.Pollutant, raw float64) Reading {
	v := round(p, raw)
	return Reading{
		Value:  v,
		Unit:   p.Unit(),
		Status: th.Classify(p, v),
	}
}

type readingFunc func(th quality.Thresholds, p quality.Pollutant, raw float64) Reading

func buildAir(th quality.Thresholds, values fluctuation.Values, read readingFunc) AirSnapshot {
	air := AirSnapshot{
		PM25: read(th, quality.PM25, values[quality.PM25]),
		CO2:  read(th, quality.CO2, values[quality.CO2]),
		NO2:  read(th, quality.NO2, values[quality.NO2]),
	}
	air.Overall = quality.Worst(air.PM25.Status, air.CO2.Status, air.NO2.Status)
	return air
}

func buildWater(th quality.Thresholds, values fluctuation.Values, read readingFunc) WaterSnapshot {
	water := WaterSnapshot{
		Turbidity: read(th, quality.Turbidity, values[quality.Turbidity]),
		PH:        read(th, quality.PH, values[quality.PH]),
		Lead:      read(th, quality.Lead, values[quality.Lead]),
	}
	water.Overall = quality.Worst(water.Turbidity.Status, water.PH.Status, water.Lead.Status)
	return water
}

// BuildSnapshot classifies a set of walk values into a Snapshot.
func BuildSnapshot(th quality.Thresholds, values fluctuation.Values, now time.Time) Snapshot {
	return Snapshot{
		Timestamp: now,
		Air:       buildAir(th, values, newReading),
		Water:     buildWater(th, values, newReading),
	}
}

// Reading returns the reading for p, if the snapshot carries one.
func (s Snapshot) Reading(p quality.Pollutant) (Reading, bool) {
	switch p {
	case quality.PM25:
		return s.Air.PM25, true
	case quality.CO2:
		return s.Air.CO2, true
	case quality.NO2:
		return s.Air.NO2, true
	case quality.Turbidity:
		return s.Water.Turbidity, true
	case quality.PH:
		return s.Water.PH, true
	case quality.Lead:
		return s.Water.Lead, true
	default:
		return Reading{}, false
	}
}
