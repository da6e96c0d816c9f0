package monitor

import (
	"fmt"
	"time"

	"github.com/yanqian/envwatch/internal/domain/quality"
)

// phAlkalineAbove splits the abnormal pH message into alkaline and acidic.
const phAlkalineAbove = 8.5

type alertText struct {
	title   string
	message func(Reading) string
}

func fixed(msg string) func(Reading) string {
	return func(Reading) string { return msg }
}

// alertRule fires at most once per evaluation. High is checked before medium.
type alertRule struct {
	pollutant quality.Pollutant
	kind      AlertType
	high      *alertText // harmful
	medium    *alertText // poor
}

var alertRules = []alertRule{
	{
		pollutant: quality.PM25,
		kind:      AlertAir,
		high: &alertText{
			title:   "Dangerous PM2.5 Levels",
			message: fixed("PM2.5 particulate matter has reached harmful levels. Limit outdoor activities and wear N95 masks if going outside."),
		},
		medium: &alertText{
			title:   "Elevated PM2.5 Levels",
			message: fixed("PM2.5 levels are elevated. Sensitive groups should reduce outdoor activities."),
		},
	},
	{
		pollutant: quality.CO2,
		kind:      AlertAir,
		high: &alertText{
			title:   "Dangerous CO2 Levels",
			message: fixed("CO2 has reached harmful levels. Improve ventilation immediately and consider evacuation if indoors."),
		},
	},
	{
		pollutant: quality.NO2,
		kind:      AlertAir,
		high:      no2Alert,
		medium:    no2Alert,
	},
	{
		pollutant: quality.Lead,
		kind:      AlertWater,
		high: &alertText{
			title:   "Dangerous Lead Levels",
			message: fixed("Lead levels in water have reached harmful levels. Do not consume tap water and seek alternative sources."),
		},
		medium: &alertText{
			title:   "Elevated Lead Levels",
			message: fixed("Lead levels in water are elevated. Consider using water filters or bottled water."),
		},
	},
	{
		pollutant: quality.PH,
		kind:      AlertWater,
		high:      phAlert,
		medium:    phAlert,
	},
	{
		pollutant: quality.Turbidity,
		kind:      AlertWater,
		high: &alertText{
			title:   "High Water Turbidity",
			message: fixed("Water turbidity is very high. Water may contain harmful contaminants and should not be consumed without treatment."),
		},
	},
}

var no2Alert = &alertText{
	title:   "Elevated NO2 Levels",
	message: fixed("NO2 levels are elevated. Reduce exposure by staying indoors and keeping windows closed."),
}

var phAlert = &alertText{
	title: "Abnormal pH Levels",
	message: func(r Reading) string {
		condition := "too acidic"
		if r.Value > phAlkalineAbove {
			condition = "too alkaline"
		}
		return fmt.Sprintf("Water pH is %s. Not recommended for consumption without treatment.", condition)
	},
}

// GenerateAlerts inspects a snapshot and returns the alerts it warrants. Each
// pollutant contributes at most one alert. The result is never nil.
func GenerateAlerts(s Snapshot, now time.Time) []Alert {
	alerts := make([]Alert, 0, len(alertRules))
	for _, rule := range alertRules {
		reading, ok := s.Reading(rule.pollutant)
		if !ok {
			continue
		}

		var (
			text     *alertText
			severity AlertSeverity
		)
		switch reading.Status {
		case quality.Harmful:
			text, severity = rule.high, AlertHigh
		case quality.Poor:
			text, severity = rule.medium, AlertMedium
		}
		if text == nil {
			continue
		}

		alerts = append(alerts, Alert{
			ID:        fmt.Sprintf("%s-%d", rule.pollutant, now.UnixMilli()),
			Type:      rule.kind,
			Severity:  severity,
			Title:     text.title,
			Message:   text.message(reading),
			Timestamp: now,
		})
	}
	return alerts
}
