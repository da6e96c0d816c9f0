package quality

// Domain groups pollutants into air and water.
type Domain string

const (
	Air   Domain = "air"
	Water Domain = "water"
)

// Pollutant identifies a tracked measurement.
type Pollutant string

const (
	PM25      Pollutant = "pm25"
	CO2       Pollutant = "co2"
	NO2       Pollutant = "no2"
	Turbidity Pollutant = "turbidity"
	PH        Pollutant = "ph"
	Lead      Pollutant = "lead"
)

// AirPollutants and WaterPollutants list each domain's members in display order.
var (
	AirPollutants   = []Pollutant{PM25, CO2, NO2}
	WaterPollutants = []Pollutant{Turbidity, PH, Lead}
)

// AllPollutants returns every tracked pollutant, air first.
func AllPollutants() []Pollutant {
	all := make([]Pollutant, 0, len(AirPollutants)+len(WaterPollutants))
	all = append(all, AirPollutants...)
	return append(all, WaterPollutants...)
}

// Domain reports which group the pollutant belongs to.
func (p Pollutant) Domain() Domain {
	switch p {
	case Turbidity, PH, Lead:
		return Water
	default:
		return Air
	}
}

// Unit is the display unit of the pollutant.
func (p Pollutant) Unit() string {
	switch p {
	case PM25:
		return "μg/m³"
	case CO2:
		return "ppm"
	case NO2, Lead:
		return "ppb"
	case Turbidity:
		return "NTU"
	case PH:
		return "pH"
	default:
		return ""
	}
}

// Precision is the number of decimals a reading is rendered with.
func (p Pollutant) Precision() int32 {
	if p == CO2 {
		return 0
	}
	return 1
}
