package advisory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEstimate(t *testing.T) {
	e, err := parseEstimate(`{"water_min": 4.0, "water_max": 7.5, "interval_days": 3, "time_range": "05:00-07:00"}`)
	require.NoError(t, err)
	assert.Equal(t, 4.0, e.WaterMin)
	assert.Equal(t, 7.5, e.WaterMax)
	assert.Equal(t, 3, e.IntervalDays)
	assert.Equal(t, "05:00-07:00", e.RecommendedTimeRange)
}

func TestParseEstimateCodeFences(t *testing.T) {
	raw := "```json\n{\"water_min\": 3, \"water_max\": 5, \"interval_days\": 2, \"time_range\": \"06:00-08:00\"}\n```"
	e, err := parseEstimate(raw)
	require.NoError(t, err)
	assert.Equal(t, 2, e.IntervalDays)
}

func TestParseEstimateJunk(t *testing.T) {
	_, err := parseEstimate("I think you should water generously in the morning.")
	assert.Error(t, err)
}

func TestSanitizeClamps(t *testing.T) {
	e := sanitize(0.1, 50, 25, "")
	require.NotNil(t, e)
	assert.Equal(t, 0.5, e.WaterMin, "below-range min clamps up")
	assert.Equal(t, 15.0, e.WaterMax, "above-range max clamps down")
	assert.Equal(t, 10, e.IntervalDays, "interval clamps to ten days")

	e = sanitize(4.4, 6.6, 2.6, "")
	require.NotNil(t, e)
	assert.Equal(t, 3, e.IntervalDays, "fractional interval rounds to the nearest day")
}

func TestSanitizeRejects(t *testing.T) {
	assert.Nil(t, sanitize(math.NaN(), 5, 3, ""))
	assert.Nil(t, sanitize(4, math.Inf(1), 3, ""))
	assert.Nil(t, sanitize(-1, 5, 3, ""), "negative water is junk, not clamp material")
	assert.Nil(t, sanitize(4, 5, 0, ""), "zero interval is junk")
	assert.Nil(t, sanitize(10, 2, 3, ""), "inverted range")
}

func TestMockEstimatorDeterministic(t *testing.T) {
	m := NewMock()
	req := Request{Crop: "rice", Soil: "loamy", AvgTemp: 28, AvgHumidity: 60}
	a, err := m.Estimate(req)
	require.NoError(t, err)
	b, err := m.Estimate(req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, a.IntervalDays, 1)
	assert.LessOrEqual(t, a.WaterMin, a.WaterMax)
}
