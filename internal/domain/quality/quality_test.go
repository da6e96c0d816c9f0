package quality

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyScalar(t *testing.T) {
	pm25 := Scalar(12, 35.4, 55.4, 150.4)

	tests := []struct {
		value float64
		want  Severity
	}{
		{10, Good},
		{12, Good},
		{12.1, Moderate},
		{35.4, Moderate},
		{55.4, Poor},
		{150.4, Harmful},
		{200, Harmful},
		{-3, Good},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, Classify(tc.value, pm25), "value %v", tc.value)
	}
}

func TestClassifyScalarMonotonic(t *testing.T) {
	for p, spec := range DefaultThresholds() {
		if spec.Ranges != nil {
			continue
		}
		prev := Good
		for v := 0.0; v <= spec.Harmful*2; v += spec.Harmful / 500 {
			got := Classify(v, spec)
			require.True(t, got.AtLeast(prev), "%s: severity dropped at %v", p, v)
			prev = got
		}
		require.Equal(t, Harmful, prev)
	}
}

func TestClassifyRange(t *testing.T) {
	ph := DefaultThresholds()[PH]

	require.Equal(t, Good, Classify(7.0, ph))
	require.Equal(t, Good, Classify(6.5, ph))
	require.Equal(t, Good, Classify(8.5, ph))
	require.Equal(t, Moderate, Classify(8.8, ph))
	require.Equal(t, Moderate, Classify(6.2, ph))
	require.Equal(t, Poor, Classify(5.5, ph))
	require.Equal(t, Poor, Classify(9.5, ph))
	require.Equal(t, Harmful, Classify(4.9, ph))
	require.Equal(t, Harmful, Classify(11, ph))
}

func TestClassifyRangeGoodBand(t *testing.T) {
	ph := DefaultThresholds()[PH]
	for v := 6.5; v <= 8.5; v += 0.05 {
		require.Equal(t, Good, Classify(v, ph), "value %v", v)
	}
}

func TestWorst(t *testing.T) {
	require.Equal(t, Good, Worst(Good, Good, Good))
	require.Equal(t, Harmful, Worst(Good, Harmful, Moderate))
	require.Equal(t, Harmful, Worst(Moderate, Good, Harmful))
	require.Equal(t, Poor, Worst(Poor, Poor, Moderate, Poor))
	require.Equal(t, Moderate, Worst(Moderate))
	require.Equal(t, Good, Worst())
}

func TestWorstOrderInvariant(t *testing.T) {
	input := []Severity{Moderate, Poor, Good}
	perms := [][]Severity{
		{Moderate, Poor, Good},
		{Poor, Good, Moderate},
		{Good, Moderate, Poor},
		{Poor, Poor, Good, Good, Moderate, Moderate},
	}
	want := Worst(input...)
	for _, p := range perms {
		require.Equal(t, want, Worst(p...))
	}
}

func TestSeverityJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Severity{"status": Poor})
	require.NoError(t, err)
	require.JSONEq(t, `{"status":"poor"}`, string(data))

	var decoded struct {
		Status Severity `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"status":"harmful"}`), &decoded))
	require.Equal(t, Harmful, decoded.Status)

	require.Error(t, json.Unmarshal([]byte(`{"status":"toxic"}`), &decoded))
}

func TestThresholdsByDomain(t *testing.T) {
	split := DefaultThresholds().ByDomain()
	require.Len(t, split[Air], 3)
	require.Len(t, split[Water], 3)
	require.NotNil(t, split[Water][PH].Ranges)
	require.Equal(t, 150.4, split[Air][PM25].Harmful)
}
