package monitor

import "github.com/yanqian/envwatch/internal/domain/quality"

type recommendationRule struct {
	role  string
	when  func(Snapshot) bool
	entry Recommendation
}

func poorOrWorse(s quality.Severity) bool {
	return s.AtLeast(quality.Poor)
}

var recommendationCatalog = []recommendationRule{
	{
		role: RolePublic,
		when: func(s Snapshot) bool { return poorOrWorse(s.Air.Overall) },
		entry: Recommendation{
			ID:          "air-public-1",
			Title:       "Limit Outdoor Exposure",
			Description: "Stay indoors when possible, keep windows closed, and use air purifiers if available.",
		},
	},
	{
		role: RolePublic,
		when: func(s Snapshot) bool { return poorOrWorse(s.Water.Overall) },
		entry: Recommendation{
			ID:          "water-public-1",
			Title:       "Water Consumption Safety",
			Description: "Use filtered or bottled water for drinking and cooking until water quality improves.",
		},
	},
	{
		role: RoleAuthority,
		when: func(s Snapshot) bool { return s.Air.Overall == quality.Harmful },
		entry: Recommendation{
			ID:          "air-authority-1",
			Title:       "Issue Public Health Advisory",
			Description: "Alert residents about harmful air quality conditions and provide guidance for vulnerable populations.",
		},
	},
	{
		role: RoleAuthority,
		when: func(s Snapshot) bool { return poorOrWorse(s.Water.Lead.Status) },
		entry: Recommendation{
			ID:          "water-authority-1",
			Title:       "Immediate Water Testing",
			Description: "Conduct comprehensive water testing at affected areas and consider distributing water filters to residents.",
		},
	},
	{
		role: RoleResearcher,
		when: func(s Snapshot) bool { return poorOrWorse(s.Air.PM25.Status) },
		entry: Recommendation{
			ID:          "air-researcher-1",
			Title:       "PM2.5 Source Analysis",
			Description: "Analyze potential sources of particulate matter in affected areas. Compare with historical data to identify patterns.",
		},
	},
	{
		role: RoleResearcher,
		when: func(s Snapshot) bool { return poorOrWorse(s.Water.Turbidity.Status) },
		entry: Recommendation{
			ID:          "water-researcher-1",
			Title:       "Turbidity Correlation Study",
			Description: "Investigate correlation between increased turbidity and recent precipitation or industrial activities.",
		},
	},
}

// Recommendations filters the catalog by role and snapshot conditions. Unknown
// roles get an empty list.
func Recommendations(s Snapshot, role string) []Recommendation {
	out := make([]Recommendation, 0, 2)
	for _, rule := range recommendationCatalog {
		if rule.role != role || !rule.when(s) {
			continue
		}
		out = append(out, rule.entry)
	}
	return out
}
