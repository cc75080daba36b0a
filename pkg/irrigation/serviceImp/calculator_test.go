package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irriga/pkg/advisory"
	"irriga/pkg/agro"
	"irriga/pkg/weather"
)

// neutralProfile keeps every correction factor at 1.0 unless a test moves a
// single input away from the optimum. Base amount is (4+6)/2 = 5.
var neutralProfile = agro.CropProfile{
	Name:            "test",
	WaterMin:        4,
	WaterMax:        6,
	TempOptimal:     20,
	TempMin:         10,
	TempMax:         35,
	HumidityOptimal: 60,
}

// april keeps the seasonal factor at 1.0.
var april = time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC)

func day(temp, hum, rain float64) weather.DaySummary {
	return weather.DaySummary{Date: april, AvgTemp: temp, AvgHumidity: hum, TotalRainMM: rain}
}

func TestComputeDailyNeutral(t *testing.T) {
	res := computeDaily(neutralProfile, nil, 1.0, day(20, 60, 0), april)
	assert.Equal(t, 5.0, res.amount)
	assert.Nil(t, res.note)
	assert.False(t, res.heavyRain)
}

func TestComputeDailyTempFactorCapped(t *testing.T) {
	// 15 degrees over optimum would be factor 2.5 uncapped; cap is 1.5.
	res := computeDaily(neutralProfile, nil, 1.0, day(35, 60, 0), april)
	assert.Equal(t, 7.5, res.amount)

	// 10 degrees under optimum would be 0.5; floor is 0.7.
	res = computeDaily(neutralProfile, nil, 1.0, day(10, 60, 0), april)
	assert.Equal(t, 3.5, res.amount)
}

func TestComputeDailyHumidityFactorCapped(t *testing.T) {
	res := computeDaily(neutralProfile, nil, 1.0, day(20, 10, 0), april)
	assert.Equal(t, 7.0, res.amount, "dry-air boost caps at 1.4")

	res = computeDaily(neutralProfile, nil, 1.0, day(20, 90, 0), april)
	assert.Equal(t, 4.0, res.amount, "humid-air cut floors at 0.8")
}

func TestComputeDailySoilMultiplier(t *testing.T) {
	res := computeDaily(neutralProfile, nil, 1.3, day(20, 60, 0), april)
	assert.Equal(t, 6.5, res.amount)
}

func TestComputeDailyRainTiers(t *testing.T) {
	cases := []struct {
		rain      float64
		want      float64
		heavyRain bool
	}{
		{0, 5.0, false},
		{2, 5.0, false}, // boundary: strictly more than 2mm triggers the tier
		{3, 3.5, false},
		{5, 3.5, false},
		{7, 2.5, false},
		{10, 2.5, false},
		{12, 1.0, false}, // only the 0.2 tier applies, not 0.5 on top
		{15, 1.0, false},
		{20, 0.0, true},
	}
	prev := 5.1
	for _, c := range cases {
		res := computeDaily(neutralProfile, nil, 1.0, day(20, 60, c.rain), april)
		assert.Equal(t, c.want, res.amount, "rain %.0fmm", c.rain)
		assert.Equal(t, c.heavyRain, res.heavyRain, "rain %.0fmm", c.rain)
		assert.LessOrEqual(t, res.amount, prev, "more rain never means more water")
		prev = res.amount
	}
}

func TestComputeDailySeasonFactor(t *testing.T) {
	june := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	res := computeDaily(neutralProfile, nil, 1.0, day(20, 60, 0), june)
	assert.Equal(t, 6.0, res.amount)

	january := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	res = computeDaily(neutralProfile, nil, 1.0, day(20, 60, 0), january)
	assert.Equal(t, 4.0, res.amount)
}

func TestComputeDailyAdvisoryOverridesBase(t *testing.T) {
	est := &advisory.Estimate{WaterMin: 8, WaterMax: 12, IntervalDays: 2}
	res := computeDaily(neutralProfile, est, 1.0, day(20, 60, 0), april)
	assert.Equal(t, 10.0, res.amount, "advisory water range replaces the static base")
}

func TestComputeDailyRoundingAndFloor(t *testing.T) {
	// 5 * 1.5 * 1.4 * 0.85 = 8.925 -> 8.9
	res := computeDaily(neutralProfile, nil, 0.85, day(35, 10, 0), april)
	assert.Equal(t, 8.9, res.amount)
	assert.GreaterOrEqual(t, res.amount, 0.0)
}

func TestSelectNoteOrder(t *testing.T) {
	// Heavy rain wins over everything else.
	res := computeDaily(neutralProfile, nil, 1.0, day(35, 10, 20), april)
	require.NotNil(t, res.note)
	assert.Contains(t, *res.note, "Skip irrigation")

	// Moderate rain beats heat.
	res = computeDaily(neutralProfile, nil, 1.0, day(35, 60, 7), april)
	require.NotNil(t, res.note)
	assert.Contains(t, *res.note, "reduced")

	// Heat beats dry air.
	res = computeDaily(neutralProfile, nil, 1.0, day(30, 10, 0), april)
	require.NotNil(t, res.note)
	assert.Contains(t, *res.note, "heat")

	// Dry air alone.
	res = computeDaily(neutralProfile, nil, 1.0, day(20, 30, 0), april)
	require.NotNil(t, res.note)
	assert.Contains(t, *res.note, "dry air")

	// Cold alone.
	res = computeDaily(neutralProfile, nil, 1.0, day(11, 60, 0), april)
	require.NotNil(t, res.note)
	assert.Contains(t, *res.note, "cold")
}

func TestTimeWindowFor(t *testing.T) {
	assert.Equal(t, "04:30-06:30", timeWindowFor(32, nil))
	assert.Equal(t, "05:00-07:00", timeWindowFor(27, nil))
	assert.Equal(t, "06:00-08:00", timeWindowFor(20, nil))
	assert.Equal(t, "08:00-10:00", timeWindowFor(12, nil))

	est := &advisory.Estimate{RecommendedTimeRange: "06:30-07:30"}
	assert.Equal(t, "06:30-07:30", timeWindowFor(32, est), "advisory range overrides the tier table")

	assert.Equal(t, "04:30-06:30", timeWindowFor(32, &advisory.Estimate{}), "empty advisory range falls through")
}

func TestSeasonFactor(t *testing.T) {
	assert.Equal(t, 1.2, seasonFactor(time.July))
	assert.Equal(t, 0.8, seasonFactor(time.December))
	assert.Equal(t, 0.8, seasonFactor(time.February))
	assert.Equal(t, 1.0, seasonFactor(time.October))
}
