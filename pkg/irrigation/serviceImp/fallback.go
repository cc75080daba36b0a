package serviceImp

import (
	"time"

	"github.com/google/uuid"

	"irriga/entities"
	"irriga/pkg/agro"
)

const fallbackDays = 7

// buildFallback is the AI-free path used when the primary pipeline cannot
// run: one entry per day for a week, simple tier multipliers, no advisory
// notes, no notifications. It works from the last cached weather snapshot
// when one is fresh, otherwise from fixed assumed conditions.
func (e *Engine) buildFallback(f *entities.Field) ([]entities.IrrigationEntry, error) {
	temp, hum, rain := 25.0, 50.0, 0.0
	cond := ""
	if snap, ok := e.weather.Snapshot(f.Latitude, f.Longitude); ok {
		temp, hum, rain, cond = snap.Temp, snap.Humidity, snap.RainMM, snap.Condition
	}

	base := agro.FallbackDailyLitersFor(f.CropType)
	soil := agro.FallbackSoilFactor(f.SoilType)

	amount := base
	switch {
	case temp > 30:
		amount *= 1.3
	case temp > 25:
		amount *= 1.1
	case temp < 15:
		amount *= 0.8
	}
	switch {
	case hum < 40:
		amount *= 1.2
	case hum > 70:
		amount *= 0.8
	}
	amount *= soil
	if rain > 5 {
		amount = 0
	}
	amount = round1(amount)

	today := startOfDay(time.Now())
	batch := uuid.NewString()
	entries := make([]entities.IrrigationEntry, 0, fallbackDays)
	for i := 0; i < fallbackDays; i++ {
		entries = append(entries, entities.IrrigationEntry{
			FieldID:          f.FieldID,
			BatchID:          batch,
			Date:             today.AddDate(0, 0, i),
			RecommendedTime:  timeWindowFor(temp, nil),
			WaterAmount:      amount,
			WeatherTemp:      temp,
			WeatherHumidity:  hum,
			WeatherCondition: cond,
			Status:           entities.IrrigationPending,
		})
	}

	if err := e.sched.ReplacePending(f.FieldID, entries); err != nil {
		return nil, err
	}
	return entries, nil
}
