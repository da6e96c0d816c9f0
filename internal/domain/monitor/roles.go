package monitor

import "slices"

const (
	RolePublic     = "public"
	RoleAuthority  = "authority"
	RoleResearcher = "researcher"
)

// Feature tags gate dashboard sections.
const (
	FeatureSummary         = "summary"
	FeatureMap             = "map"
	FeatureAlerts          = "alerts"
	FeatureDetailed        = "detailed"
	FeatureRecommendations = "recommendations"
	FeatureRaw             = "raw"
)

// Role is a static permission entry. It is not an identity.
type Role struct {
	Name      string   `json:"name"`
	CanView   []string `json:"canView"`
	CanAccess []string `json:"canAccess"`
}

// CanViewFeature reports whether the role may see a dashboard feature.
func (r Role) CanViewFeature(feature string) bool {
	return slices.Contains(r.CanView, feature)
}

// CanAccessScope reports whether the role may read a data scope.
func (r Role) CanAccessScope(scope string) bool {
	return slices.Contains(r.CanAccess, scope)
}

var userRoles = map[string]Role{
	RolePublic: {
		Name:      "Public",
		CanView:   []string{FeatureSummary, FeatureMap, FeatureAlerts},
		CanAccess: []string{"current"},
	},
	RoleAuthority: {
		Name:      "Authority",
		CanView:   []string{FeatureSummary, FeatureMap, FeatureAlerts, FeatureDetailed, FeatureRecommendations},
		CanAccess: []string{"current", "historical", "forecast"},
	},
	RoleResearcher: {
		Name:      "Researcher",
		CanView:   []string{FeatureSummary, FeatureMap, FeatureAlerts, FeatureDetailed, FeatureRaw},
		CanAccess: []string{"current", "historical", "forecast", "api"},
	},
}

// LookupRole finds a role by key.
func LookupRole(key string) (Role, bool) {
	r, ok := userRoles[key]
	if !ok {
		return Role{}, false
	}
	return r.clone(), true
}

// UserRoles returns a copy of the role table.
func UserRoles() map[string]Role {
	out := make(map[string]Role, len(userRoles))
	for k, r := range userRoles {
		out[k] = r.clone()
	}
	return out
}

func (r Role) clone() Role {
	return Role{Name: r.Name, CanView: slices.Clone(r.CanView), CanAccess: slices.Clone(r.CanAccess)}
}
