package serviceImp

import (
	"fmt"
	"math"
	"time"

	"irriga/pkg/advisory"
	"irriga/pkg/agro"
	"irriga/pkg/weather"
)

// dayResult is one scheduled day's outcome: the corrected volume, the
// advisory note (nil when nothing is noteworthy) and whether the amount was
// zeroed by the heavy-rain tier.
type dayResult struct {
	amount    float64
	note      *string
	heavyRain bool
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

// computeDaily runs the correction pipeline for one scheduled date, in
// fixed order: base from the (advisory-overridden) water range midpoint,
// temperature and humidity factors, soil multiplier, rain suppression,
// seasonal adjustment, then rounding. Each factor adjusts the running
// amount, never the base independently.
func computeDaily(profile agro.CropProfile, est *advisory.Estimate, soilMult float64, sum weather.DaySummary, date time.Time) dayResult {
	waterMin, waterMax := profile.WaterMin, profile.WaterMax
	if est != nil {
		waterMin, waterMax = est.WaterMin, est.WaterMax
	}
	base := (waterMin + waterMax) / 2

	tempFactor := 1.0
	switch {
	case sum.AvgTemp > profile.TempOptimal:
		tempFactor = 1 + math.Min((sum.AvgTemp-profile.TempOptimal)/10, 0.5)
	case sum.AvgTemp < profile.TempOptimal:
		tempFactor = 1 - math.Min((profile.TempOptimal-sum.AvgTemp)/20, 0.3)
	}

	humFactor := 1.0
	switch {
	case sum.AvgHumidity < profile.HumidityOptimal:
		humFactor = 1 + math.Min((profile.HumidityOptimal-sum.AvgHumidity)/100, 0.4)
	case sum.AvgHumidity > profile.HumidityOptimal:
		humFactor = 1 - math.Min((sum.AvgHumidity-profile.HumidityOptimal)/150, 0.2)
	}

	amount := base * tempFactor * humFactor * soilMult

	// One tier only, most severe first.
	heavyRain := false
	switch {
	case sum.TotalRainMM > 15:
		amount = 0
		heavyRain = true
	case sum.TotalRainMM > 10:
		amount *= 0.2
	case sum.TotalRainMM > 5:
		amount *= 0.5
	case sum.TotalRainMM > 2:
		amount *= 0.7
	}

	amount *= seasonFactor(date.Month())
	amount = math.Max(0, round1(amount))

	return dayResult{
		amount:    amount,
		note:      selectNote(profile, sum, amount, heavyRain),
		heavyRain: heavyRain,
	}
}

// seasonFactor uses northern-hemisphere defaults for the local summer and
// winter ranges.
func seasonFactor(m time.Month) float64 {
	switch m {
	case time.June, time.July, time.August:
		return 1.2
	case time.December, time.January, time.February:
		return 0.8
	}
	return 1.0
}

// selectNote applies the advisory note rules in order; the first match wins
// and most days get no note at all.
func selectNote(profile agro.CropProfile, sum weather.DaySummary, amount float64, heavyRain bool) *string {
	var note string
	switch {
	case heavyRain && amount == 0:
		note = fmt.Sprintf("Skip irrigation: about %.0f mm of rain expected.", sum.TotalRainMM)
	case sum.TotalRainMM > 5:
		note = fmt.Sprintf("Watering reduced: %.0f mm of rain expected.", sum.TotalRainMM)
	case sum.AvgTemp > profile.TempOptimal+5:
		note = fmt.Sprintf("Watering increased for heat: %.0f°C against an optimum of %.0f°C.", sum.AvgTemp, profile.TempOptimal)
	case sum.AvgHumidity < profile.HumidityOptimal-20:
		note = fmt.Sprintf("Watering increased for dry air: humidity %.0f%% against an optimum of %.0f%%.", sum.AvgHumidity, profile.HumidityOptimal)
	case sum.AvgTemp < profile.TempOptimal-8:
		note = fmt.Sprintf("Watering reduced for cold: %.0f°C against an optimum of %.0f°C.", sum.AvgTemp, profile.TempOptimal)
	default:
		return nil
	}
	return &note
}

// timeWindowFor picks the recommended time-of-day window from a fixed
// temperature tier table; hotter days get earlier windows. An advisory
// estimate's range overrides the table wholesale.
func timeWindowFor(avgTemp float64, est *advisory.Estimate) string {
	if est != nil && est.RecommendedTimeRange != "" {
		return est.RecommendedTimeRange
	}
	switch {
	case avgTemp >= 30:
		return "04:30-06:30"
	case avgTemp >= 25:
		return "05:00-07:00"
	case avgTemp >= 18:
		return "06:00-08:00"
	}
	return "08:00-10:00"
}
