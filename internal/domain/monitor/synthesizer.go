package monitor

import (
	"github.com/yanqian/envwatch/internal/domain/fluctuation"
	"github.com/yanqian/envwatch/internal/domain/quality"
)

func siteMultiplier(siteType string) float64 {
	switch siteType {
	case SiteIndustrial:
		return 1.5
	case SiteUrban:
		return 1.3
	case SiteResidential:
		return 0.8
	case SiteWater:
		return 0.9
	default:
		return 0.7
	}
}

// phMultiplier damps pH on heavy sites and lifts it elsewhere.
func phMultiplier(siteMul float64) float64 {
	if siteMul > 1 {
		return 0.9
	}
	return 1.1
}

// Synthesize fabricates per-site readings from the shared walk values. Every
// site gets air data; only water sites get water data. Values are rounded to
// display precision before they are classified.
func Synthesize(th quality.Thresholds, locations []Location, values fluctuation.Values) []SensorSnapshot {
	out := make([]SensorSnapshot, 0, len(locations))
	for _, loc := range locations {
		mul := siteMultiplier(loc.Type)

		scaled := fluctuation.Values{
			quality.PM25: values[quality.PM25] * mul,
			quality.CO2:  values[quality.CO2] * mul,
			quality.NO2:  values[quality.NO2] * mul,
		}
		data := SensorData{Air: buildAir(th, scaled, newRoundedReading)}

		if loc.Type == SiteWater {
			scaled[quality.Turbidity] = values[quality.Turbidity] * mul
			scaled[quality.PH] = values[quality.PH] * phMultiplier(mul)
			scaled[quality.Lead] = values[quality.Lead] * mul
			water := buildWater(th, scaled, newRoundedReading)
			data.Water = &water
		}

		out = append(out, SensorSnapshot{Location: loc, Data: data})
	}
	return out
}
