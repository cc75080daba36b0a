package advisory

import (
	"math"
	"time"
)

// Request carries everything the external estimator needs: resolved crop and
// soil names, location, target month, and the aggregate short-term forecast.
type Request struct {
	Crop        string
	Soil        string
	Latitude    float64
	Longitude   float64
	Month       time.Month
	AvgTemp     float64
	AvgHumidity float64
	TotalRainMM float64
}

// Estimate is an externally sourced override of the static water range and
// interval. It is transient: validated and clamped for one scheduling run,
// never persisted.
type Estimate struct {
	WaterMin             float64
	WaterMax             float64
	IntervalDays         int
	RecommendedTimeRange string
}

// Estimator is the single seam to the external advisory source. A nil
// estimate or an error both mean "no estimate"; callers proceed with static
// tables and never surface the condition as a failure.
type Estimator interface {
	Estimate(req Request) (*Estimate, error)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// sanitize validates raw numbers from the wire and clamps them into safe
// bounds: waterMin [0.5,12], waterMax [0.8,15], intervalDays [1,10] rounded
// to the nearest day. Non-finite or non-positive values and an inverted
// water range all yield nil, which callers treat as "no estimate".
func sanitize(waterMin, waterMax, intervalDays float64, timeRange string) *Estimate {
	if !finite(waterMin, waterMax, intervalDays) {
		return nil
	}
	if waterMin <= 0 || waterMax <= 0 || math.Round(intervalDays) < 1 {
		return nil
	}
	e := &Estimate{
		WaterMin:             clamp(waterMin, 0.5, 12),
		WaterMax:             clamp(waterMax, 0.8, 15),
		IntervalDays:         int(clamp(math.Round(intervalDays), 1, 10)),
		RecommendedTimeRange: timeRange,
	}
	if e.WaterMin > e.WaterMax {
		return nil
	}
	return e
}
