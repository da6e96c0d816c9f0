package monitor

// Sensor site types. Multipliers skew the shared walk values per site.
const (
	SiteUrban       = "urban"
	SiteIndustrial  = "industrial"
	SiteWater       = "water"
	SiteResidential = "residential"
	SitePark        = "park"
)

var sensorLocations = []Location{
	{ID: "sensor1", Name: "Downtown", Lat: 40.7128, Lng: -74.0060, Type: SiteUrban},
	{ID: "sensor2", Name: "Industrial Zone", Lat: 40.7282, Lng: -73.9942, Type: SiteIndustrial},
	{ID: "sensor3", Name: "Riverside", Lat: 40.7031, Lng: -74.0160, Type: SiteWater},
	{ID: "sensor4", Name: "Residential Area", Lat: 40.7589, Lng: -73.9850, Type: SiteResidential},
	{ID: "sensor5", Name: "Park", Lat: 40.7812, Lng: -73.9665, Type: SitePark},
}

// SensorLocations returns a copy of the static site list.
func SensorLocations() []Location {
	out := make([]Location, len(sensorLocations))
	copy(out, sensorLocations)
	return out
}
