package monitor

import (
	"time"

	"github.com/yanqian/envwatch/internal/domain/quality"
)

// Reading is a single classified measurement. Value is rounded to the
// pollutant's display precision. In the main snapshot Status is classified on
// the unrounded walk value, so a value shown on a tier edge can carry the
// next tier's status. Per-sensor readings classify the rounded Value.
type Reading struct {
	Value  float64          `json:"value"`
	Unit   string           `json:"unit"`
	Status quality.Severity `json:"status"`
}

// AirSnapshot groups the air pollutants of one read.
type AirSnapshot struct {
	PM25    Reading          `json:"pm25"`
	CO2     Reading          `json:"co2"`
	NO2     Reading          `json:"no2"`
	Overall quality.Severity `json:"overall"`
}

// WaterSnapshot groups the water pollutants of one read.
type WaterSnapshot struct {
	Turbidity Reading          `json:"turbidity"`
	PH        Reading          `json:"ph"`
	Lead      Reading          `json:"lead"`
	Overall   quality.Severity `json:"overall"`
}

// Snapshot is the unit passed to every downstream consumer.
type Snapshot struct {
	Timestamp time.Time     `json:"timestamp"`
	Air       AirSnapshot   `json:"air"`
	Water     WaterSnapshot `json:"water"`
}

// AlertType names the domain an alert refers to.
type AlertType string

const (
	AlertAir   AlertType = "air"
	AlertWater AlertType = "water"
)

// AlertSeverity ranks alerts, independent of reading severity.
type AlertSeverity string

const (
	AlertHigh   AlertSeverity = "high"
	AlertMedium AlertSeverity = "medium"
	AlertLow    AlertSeverity = "low"
)

// Alert is derived from a Snapshot on every evaluation and never stored.
type Alert struct {
	ID        string        `json:"id"`
	Type      AlertType     `json:"type"`
	Severity  AlertSeverity `json:"severity"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	Timestamp time.Time     `json:"timestamp"`
}

// Recommendation is a suggested action for one role.
type Recommendation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Location is a fixed sensor site on the map.
type Location struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Type string  `json:"type"`
}

// SensorData holds per-site readings. Water is nil for non-water sites.
type SensorData struct {
	Air   AirSnapshot    `json:"air"`
	Water *WaterSnapshot `json:"water"`
}

// SensorSnapshot is one map marker.
type SensorSnapshot struct {
	Location
	Data SensorData `json:"data"`
}

// Dashboard is the composed view for one role.
type Dashboard struct {
	Role            string           `json:"role"`
	Snapshot        Snapshot         `json:"snapshot"`
	Alerts          []Alert          `json:"alerts"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Sensors         []SensorSnapshot `json:"sensors,omitempty"`
}

// Config wires runtime settings for the monitor domain.
type Config struct {
	PollInterval time.Duration
	DefaultRole  string
}
