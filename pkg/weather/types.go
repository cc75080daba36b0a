package weather

import "time"

// Sample is one forecast point from the provider, typically a 3-hour step.
type Sample struct {
	Time      time.Time `json:"time"`
	Temp      float64   `json:"temp"`     // Celsius
	Humidity  float64   `json:"humidity"` // percent
	RainMM    float64   `json:"rain_mm"`  // precipitation over the sample interval
	Condition string    `json:"condition"`
}

// DaySummary aggregates every sample falling on one local calendar date.
type DaySummary struct {
	Date        time.Time `json:"date"`
	AvgTemp     float64   `json:"avg_temp"`
	AvgHumidity float64   `json:"avg_humidity"`
	TotalRainMM float64   `json:"total_rain_mm"`
	Condition   string    `json:"condition"`
}

// Source supplies forecast samples for a coordinate pair. Forecast covers at
// least the next 5 days. Snapshot returns the most recent successfully
// fetched sample for the coordinates, if one exists; the fallback planner
// uses it when the live fetch is unavailable.
type Source interface {
	Forecast(lat, lon float64) ([]Sample, error)
	Snapshot(lat, lon float64) (Sample, bool)
}
