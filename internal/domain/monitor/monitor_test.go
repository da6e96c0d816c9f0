package monitor

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/envwatch/internal/domain/fluctuation"
	"github.com/yanqian/envwatch/internal/domain/quality"
	apperrors "github.com/yanqian/envwatch/pkg/errors"
)

var fixedNow = time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

// cleanValues classify as good everywhere.
func cleanValues() fluctuation.Values {
	return fluctuation.Values{
		quality.PM25:      8,
		quality.CO2:       450,
		quality.NO2:       20,
		quality.Turbidity: 0.5,
		quality.PH:        7.2,
		quality.Lead:      2,
	}
}

func withValue(p quality.Pollutant, v float64) fluctuation.Values {
	values := cleanValues()
	values[p] = v
	return values
}

func snapshotOf(values fluctuation.Values) Snapshot {
	return BuildSnapshot(quality.DefaultThresholds(), values, fixedNow)
}

func TestBuildSnapshot(t *testing.T) {
	snap := snapshotOf(fluctuation.Values{
		quality.PM25:      40.04,
		quality.CO2:       1499.6,
		quality.NO2:       20,
		quality.Turbidity: 0.5,
		quality.PH:        7.2,
		quality.Lead:      12.26,
	})

	require.Equal(t, fixedNow, snap.Timestamp)
	require.Equal(t, 40.0, snap.Air.PM25.Value)
	require.Equal(t, "μg/m³", snap.Air.PM25.Unit)
	require.Equal(t, quality.Poor, snap.Air.PM25.Status)
	require.Equal(t, 1500.0, snap.Air.CO2.Value)
	require.Equal(t, quality.Poor, snap.Air.CO2.Status)
	require.Equal(t, quality.Poor, snap.Air.Overall)

	require.Equal(t, 12.3, snap.Water.Lead.Value)
	require.Equal(t, quality.Poor, snap.Water.Lead.Status)
	require.Equal(t, quality.Good, snap.Water.PH.Status)
	require.Equal(t, quality.Poor, snap.Water.Overall)
}

func TestHarmfulPM25RaisesSingleHighAirAlert(t *testing.T) {
	snap := snapshotOf(withValue(quality.PM25, 200))
	require.Equal(t, quality.Harmful, snap.Air.PM25.Status)
	require.Equal(t, quality.Harmful, snap.Air.Overall)
	require.Equal(t, quality.Good, snap.Water.Overall)

	alerts := GenerateAlerts(snap, fixedNow)
	require.Len(t, alerts, 1)
	require.Equal(t, AlertHigh, alerts[0].Severity)
	require.Equal(t, AlertAir, alerts[0].Type)
	require.Equal(t, "Dangerous PM2.5 Levels", alerts[0].Title)
	require.Equal(t, "pm25-1719824400000", alerts[0].ID)
	require.Equal(t, fixedNow, alerts[0].Timestamp)
}

func TestGenerateAlertsRules(t *testing.T) {
	tests := []struct {
		name     string
		values   fluctuation.Values
		want     int
		kind     AlertType
		severity AlertSeverity
		title    string
	}{
		{"clean", cleanValues(), 0, "", "", ""},
		{"pm25 moderate", withValue(quality.PM25, 20), 0, "", "", ""},
		{"pm25 poor", withValue(quality.PM25, 50), 1, AlertAir, AlertMedium, "Elevated PM2.5 Levels"},
		{"co2 poor", withValue(quality.CO2, 1800), 0, "", "", ""},
		{"co2 harmful", withValue(quality.CO2, 6000), 1, AlertAir, AlertHigh, "Dangerous CO2 Levels"},
		{"no2 poor", withValue(quality.NO2, 300), 1, AlertAir, AlertMedium, "Elevated NO2 Levels"},
		{"no2 harmful", withValue(quality.NO2, 700), 1, AlertAir, AlertHigh, "Elevated NO2 Levels"},
		{"lead poor", withValue(quality.Lead, 14), 1, AlertWater, AlertMedium, "Elevated Lead Levels"},
		{"lead harmful", withValue(quality.Lead, 60), 1, AlertWater, AlertHigh, "Dangerous Lead Levels"},
		{"ph poor", withValue(quality.PH, 5.5), 1, AlertWater, AlertMedium, "Abnormal pH Levels"},
		{"ph harmful", withValue(quality.PH, 11), 1, AlertWater, AlertHigh, "Abnormal pH Levels"},
		{"turbidity poor", withValue(quality.Turbidity, 8), 0, "", "", ""},
		{"turbidity harmful", withValue(quality.Turbidity, 30), 1, AlertWater, AlertHigh, "High Water Turbidity"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			alerts := GenerateAlerts(snapshotOf(tc.values), fixedNow)
			require.NotNil(t, alerts)
			require.Len(t, alerts, tc.want)
			if tc.want == 0 {
				return
			}
			require.Equal(t, tc.kind, alerts[0].Type)
			require.Equal(t, tc.severity, alerts[0].Severity)
			require.Equal(t, tc.title, alerts[0].Title)
		})
	}
}

func TestGenerateAlertsPHMessage(t *testing.T) {
	alkaline := GenerateAlerts(snapshotOf(withValue(quality.PH, 9.6)), fixedNow)
	require.Len(t, alkaline, 1)
	require.Contains(t, alkaline[0].Message, "too alkaline")

	acidic := GenerateAlerts(snapshotOf(withValue(quality.PH, 4.2)), fixedNow)
	require.Len(t, acidic, 1)
	require.Contains(t, acidic[0].Message, "too acidic")
}

func TestGenerateAlertsAtMostOnePerPollutant(t *testing.T) {
	snap := snapshotOf(fluctuation.Values{
		quality.PM25:      300,
		quality.CO2:       8000,
		quality.NO2:       900,
		quality.Turbidity: 40,
		quality.PH:        2.5,
		quality.Lead:      90,
	})
	alerts := GenerateAlerts(snap, fixedNow)
	require.Len(t, alerts, 6)

	seen := make(map[string]struct{})
	for _, a := range alerts {
		require.Equal(t, AlertHigh, a.Severity)
		_, dup := seen[a.ID]
		require.False(t, dup, "duplicate alert %s", a.ID)
		seen[a.ID] = struct{}{}
	}
}

func TestRecommendations(t *testing.T) {
	bad := snapshotOf(fluctuation.Values{
		quality.PM25:      200,
		quality.CO2:       450,
		quality.NO2:       20,
		quality.Turbidity: 12,
		quality.PH:        7,
		quality.Lead:      14,
	})

	public := Recommendations(bad, RolePublic)
	require.Equal(t, []string{"air-public-1", "water-public-1"}, ids(public))

	authority := Recommendations(bad, RoleAuthority)
	require.Equal(t, []string{"air-authority-1", "water-authority-1"}, ids(authority))
	require.Equal(t, "Issue Public Health Advisory", authority[0].Title)

	researcher := Recommendations(bad, RoleResearcher)
	require.Equal(t, []string{"air-researcher-1", "water-researcher-1"}, ids(researcher))
}

func TestRecommendationsConditions(t *testing.T) {
	poorAir := snapshotOf(withValue(quality.PM25, 50))
	require.Equal(t, []string{"air-public-1"}, ids(Recommendations(poorAir, RolePublic)))
	require.Empty(t, Recommendations(poorAir, RoleAuthority))
	require.Equal(t, []string{"air-researcher-1"}, ids(Recommendations(poorAir, RoleResearcher)))

	clean := snapshotOf(cleanValues())
	for _, role := range []string{RolePublic, RoleAuthority, RoleResearcher} {
		require.Empty(t, Recommendations(clean, role))
	}
}

func TestRecommendationsUnknownRole(t *testing.T) {
	snap := snapshotOf(withValue(quality.PM25, 300))
	recs := Recommendations(snap, "unknown-role")
	require.NotNil(t, recs)
	require.Empty(t, recs)
}

func TestLookupRole(t *testing.T) {
	r, ok := LookupRole(RoleAuthority)
	require.True(t, ok)
	require.Equal(t, "Authority", r.Name)
	require.True(t, r.CanViewFeature(FeatureRecommendations))
	require.True(t, r.CanAccessScope("forecast"))
	require.False(t, r.CanAccessScope("api"))

	r.CanView[0] = "mutated"
	again, _ := LookupRole(RoleAuthority)
	require.Equal(t, FeatureSummary, again.CanView[0])

	_, ok = LookupRole("admin")
	require.False(t, ok)
	require.Len(t, UserRoles(), 3)
}

func TestSynthesize(t *testing.T) {
	values := fluctuation.Values{
		quality.PM25:      30,
		quality.CO2:       600,
		quality.NO2:       50,
		quality.Turbidity: 4,
		quality.PH:        9,
		quality.Lead:      8,
	}
	sensors := Synthesize(quality.DefaultThresholds(), SensorLocations(), values)
	require.Len(t, sensors, 5)

	byID := make(map[string]SensorSnapshot)
	for _, s := range sensors {
		byID[s.ID] = s
	}

	industrial := byID["sensor2"]
	require.Equal(t, 45.0, industrial.Data.Air.PM25.Value)
	require.Equal(t, quality.Poor, industrial.Data.Air.PM25.Status)
	require.Equal(t, 900.0, industrial.Data.Air.CO2.Value)
	require.Equal(t, 75.0, industrial.Data.Air.NO2.Value)
	require.Equal(t, quality.Poor, industrial.Data.Air.Overall)
	require.Nil(t, industrial.Data.Water)

	park := byID["sensor5"]
	require.Equal(t, 21.0, park.Data.Air.PM25.Value)
	require.Equal(t, quality.Good, park.Data.Air.NO2.Status)
	require.Nil(t, park.Data.Water)

	river := byID["sensor3"]
	require.Equal(t, SiteWater, river.Type)
	require.NotNil(t, river.Data.Water)
	require.Equal(t, 3.6, river.Data.Water.Turbidity.Value)
	require.Equal(t, 9.9, river.Data.Water.PH.Value)
	require.Equal(t, quality.Poor, river.Data.Water.PH.Status)
	require.Equal(t, 7.2, river.Data.Water.Lead.Value)
	require.Equal(t, quality.Poor, river.Data.Water.Overall)
}

func TestSynthesizeClassifiesRoundedValues(t *testing.T) {
	// 15.04 * 0.8 = 12.032 is moderate unrounded but renders as 12.0, which is good.
	values := cleanValues()
	values[quality.PM25] = 15.04
	sensors := Synthesize(quality.DefaultThresholds(), []Location{{ID: "r", Type: SiteResidential}}, values)
	require.Len(t, sensors, 1)
	require.Equal(t, 12.0, sensors[0].Data.Air.PM25.Value)
	require.Equal(t, quality.Good, sensors[0].Data.Air.PM25.Status)
}

func TestSiteMultiplier(t *testing.T) {
	require.Equal(t, 1.5, siteMultiplier(SiteIndustrial))
	require.Equal(t, 1.3, siteMultiplier(SiteUrban))
	require.Equal(t, 0.8, siteMultiplier(SiteResidential))
	require.Equal(t, 0.9, siteMultiplier(SiteWater))
	require.Equal(t, 0.7, siteMultiplier(SitePark))
	require.Equal(t, 0.7, siteMultiplier("riverside"))
	require.Equal(t, 0.9, phMultiplier(1.3))
	require.Equal(t, 1.1, phMultiplier(0.9))
}

type stubWalker struct {
	values   fluctuation.Values
	advances int
}

func (w *stubWalker) AdvanceAll() fluctuation.Values {
	w.advances++
	return w.values
}

func (w *stubWalker) Values() fluctuation.Values {
	return w.values
}

func newTestService(walker Walker) *service {
	svc := NewService(Config{PollInterval: 10 * time.Millisecond}, walker, slog.New(slog.NewTextHandler(io.Discard, nil))).(*service)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestServiceCurrentAdvances(t *testing.T) {
	walker := &stubWalker{values: withValue(quality.Lead, 60)}
	svc := newTestService(walker)

	snap := svc.Current(context.Background())
	require.Equal(t, 1, walker.advances)
	require.Equal(t, quality.Harmful, snap.Water.Lead.Status)

	_ = svc.SensorMap(context.Background())
	require.Equal(t, 1, walker.advances)
}

func TestServiceDashboardGating(t *testing.T) {
	walker := &stubWalker{values: withValue(quality.Lead, 60)}
	svc := newTestService(walker)

	view, err := svc.Dashboard(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, RolePublic, view.Role)
	require.Len(t, view.Alerts, 1)
	require.Nil(t, view.Recommendations)
	require.Len(t, view.Sensors, 5)

	view, err = svc.Dashboard(context.Background(), " Authority ")
	require.NoError(t, err)
	require.Equal(t, RoleAuthority, view.Role)
	require.Equal(t, []string{"water-authority-1"}, ids(view.Recommendations))

	_, err = svc.Dashboard(context.Background(), "admin")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidRole))
}

func TestServiceStream(t *testing.T) {
	walker := &stubWalker{values: cleanValues()}
	svc := newTestService(walker)

	ctx, cancel := context.WithCancel(context.Background())
	stream := svc.Stream(ctx)

	for i := 0; i < 3; i++ {
		select {
		case snap := <-stream:
			require.Equal(t, quality.Good, snap.Air.Overall)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for snapshot")
		}
	}
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-stream:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func ids(recs []Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}
