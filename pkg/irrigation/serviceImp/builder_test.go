package serviceImp

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irriga/entities"
	"irriga/pkg/advisory"
	"irriga/pkg/weather"
)

type stubSource struct {
	samples []weather.Sample
	err     error
	snap    weather.Sample
	snapOK  bool
}

func (s *stubSource) Forecast(lat, lon float64) ([]weather.Sample, error) { return s.samples, s.err }
func (s *stubSource) Snapshot(lat, lon float64) (weather.Sample, bool)    { return s.snap, s.snapOK }

type stubEstimator struct {
	est *advisory.Estimate
	err error
}

func (s *stubEstimator) Estimate(req advisory.Request) (*advisory.Estimate, error) {
	return s.est, s.err
}

type memSchedRepo struct {
	saved   []entities.IrrigationEntry
	replace error
}

func (m *memSchedRepo) ReplacePending(fieldID uint, entries []entities.IrrigationEntry) error {
	if m.replace != nil {
		return m.replace
	}
	m.saved = entries
	return nil
}
func (m *memSchedRepo) List(fieldID uint, from, to string) ([]entities.IrrigationEntry, error) {
	return m.saved, nil
}
func (m *memSchedRepo) FindByID(entryID uint) (*entities.IrrigationEntry, error) {
	return nil, errors.New("not found")
}
func (m *memSchedRepo) MarkCompleted(entryID uint) error { return nil }

type sinkCall struct {
	category string
	title    string
	body     string
}

type memSink struct{ calls []sinkCall }

func (m *memSink) Notify(userID string, fieldID uint, category, title, body string, relevantAt time.Time) {
	m.calls = append(m.calls, sinkCall{category: category, title: title, body: body})
}

// forecastSamples builds three samples per day for the next five days,
// starting today, with the given per-day rain totals split evenly.
func forecastSamples(rainByDay []float64) []weather.Sample {
	now := time.Now()
	var out []weather.Sample
	for d, rain := range rainByDay {
		for _, hour := range []int{6, 12, 18} {
			ts := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location()).AddDate(0, 0, d)
			out = append(out, weather.Sample{Time: ts, Temp: 25, Humidity: 65, RainMM: rain / 3, Condition: "clouds"})
		}
	}
	return out
}

func testField() *entities.Field {
	return &entities.Field{FieldID: 7, UserID: "u1", Name: "back lot", CropType: "unknown", SoilType: "loamy", Latitude: 10.8, Longitude: 106.6}
}

func TestRebuildDefaultInterval(t *testing.T) {
	repo := &memSchedRepo{}
	sink := &memSink{}
	eng := NewEngine(&stubSource{samples: forecastSamples([]float64{0, 0, 0, 0, 0})},
		&stubEstimator{err: errors.New("advisory timeout")}, repo, sink, nil)

	entries, err := eng.Rebuild(testField())
	require.NoError(t, err, "a dead advisory source must not fail the build")
	require.Len(t, entries, 5, "14-day horizon at a 3-day interval")

	batch := entries[0].BatchID
	require.NotEmpty(t, batch)
	for i, en := range entries {
		assert.Equal(t, batch, en.BatchID)
		assert.Equal(t, entities.IrrigationPending, en.Status)
		assert.Equal(t, uint(7), en.FieldID)
		assert.GreaterOrEqual(t, en.WaterAmount, 0.0)
		assert.Equal(t, math.Round(en.WaterAmount*10), en.WaterAmount*10, "one decimal place")
		if i > 0 {
			assert.Equal(t, 3.0, en.Date.Sub(entries[i-1].Date).Hours()/24)
		}
	}
	assert.Equal(t, entries, repo.saved, "returned batch is the persisted batch")
}

func TestRebuildNilEstimatorUsesStaticTables(t *testing.T) {
	repo := &memSchedRepo{}
	eng := NewEngine(&stubSource{samples: forecastSamples([]float64{0, 0, 0, 0, 0})},
		nil, repo, &memSink{}, nil)

	f := testField()
	f.CropType = "rice"
	entries, err := eng.Rebuild(f)
	require.NoError(t, err, "an unconfigured estimator is not a failure")
	require.Len(t, entries, 7, "rice's 2-day table interval over the 14-day horizon")
	for i, en := range entries {
		assert.Greater(t, en.WaterAmount, 0.0)
		if i > 0 {
			assert.Equal(t, 2.0, en.Date.Sub(entries[i-1].Date).Hours()/24)
		}
	}
}

func TestRebuildIgnoresInvalidAdvisoryInterval(t *testing.T) {
	repo := &memSchedRepo{}
	// An estimator that bypasses validation and hands back a zero interval
	// must not stall the horizon loop; the crop table takes over.
	est := &advisory.Estimate{WaterMin: 4, WaterMax: 6, IntervalDays: 0}
	eng := NewEngine(&stubSource{samples: forecastSamples([]float64{0, 0, 0, 0, 0})},
		&stubEstimator{est: est}, repo, &memSink{}, nil)

	entries, err := eng.Rebuild(testField())
	require.NoError(t, err)
	require.Len(t, entries, 5, "unknown crop falls back to the 3-day default")
}

func TestRebuildAdvisoryInterval(t *testing.T) {
	repo := &memSchedRepo{}
	est := &advisory.Estimate{WaterMin: 4, WaterMax: 6, IntervalDays: 7, RecommendedTimeRange: "06:30-07:30"}
	eng := NewEngine(&stubSource{samples: forecastSamples([]float64{0, 0, 0, 0, 0})},
		&stubEstimator{est: est}, repo, &memSink{}, nil)

	entries, err := eng.Rebuild(testField())
	require.NoError(t, err)
	require.Len(t, entries, 2, "days 0 and 7 inside the 14-day horizon")
	for _, en := range entries {
		assert.Equal(t, "06:30-07:30", en.RecommendedTime)
	}
}

func TestRebuildHeavyRainDay(t *testing.T) {
	repo := &memSchedRepo{}
	sink := &memSink{}
	// 20mm on day 3, which is a scheduled day at the default interval.
	eng := NewEngine(&stubSource{samples: forecastSamples([]float64{0, 0, 0, 20, 0})},
		&stubEstimator{err: errors.New("down")}, repo, sink, nil)

	entries, err := eng.Rebuild(testField())
	require.NoError(t, err)
	require.Len(t, entries, 5)

	wet := entries[1]
	assert.Equal(t, 0.0, wet.WaterAmount)
	require.NotNil(t, wet.Note)
	assert.Contains(t, *wet.Note, "rain")

	var reminders, rainAlerts int
	for _, c := range sink.calls {
		switch c.category {
		case entities.NotifyIrrigation:
			reminders++
			assert.NotContains(t, c.body, "0.0 L", "reminders only for days with water to apply")
		case entities.NotifyHeavyRain:
			rainAlerts++
		}
	}
	assert.Equal(t, 3, reminders)
	assert.Equal(t, 1, rainAlerts)
}

func TestRebuildFallbackOnForecastError(t *testing.T) {
	repo := &memSchedRepo{}
	sink := &memSink{}
	eng := NewEngine(&stubSource{err: errors.New("upstream 502")},
		&stubEstimator{}, repo, sink, nil)

	entries, err := eng.Rebuild(testField())
	require.NoError(t, err, "fallback absorbs the forecast failure")
	require.Len(t, entries, 7, "one entry per day for a week")

	for i, en := range entries {
		assert.Equal(t, entities.IrrigationPending, en.Status)
		assert.Nil(t, en.Note, "fallback entries carry no advisory notes")
		// Assumed conditions: 25C / 50% / no rain, flat daily amount.
		assert.Equal(t, 5.0, en.WaterAmount)
		if i > 0 {
			assert.Equal(t, 1.0, en.Date.Sub(entries[i-1].Date).Hours()/24)
		}
	}
	assert.Empty(t, sink.calls, "fallback never notifies")
}

func TestRebuildFallbackUsesSnapshot(t *testing.T) {
	repo := &memSchedRepo{}
	src := &stubSource{
		err:    errors.New("upstream 502"),
		snap:   weather.Sample{Temp: 35, Humidity: 30, RainMM: 0, Condition: "clear sky"},
		snapOK: true,
	}
	eng := NewEngine(src, &stubEstimator{}, repo, &memSink{}, nil)

	entries, err := eng.Rebuild(testField())
	require.NoError(t, err)
	require.Len(t, entries, 7)
	// 5 base * 1.3 (hot) * 1.2 (dry) = 7.8
	assert.Equal(t, 7.8, entries[0].WaterAmount)
	assert.Equal(t, "clear sky", entries[0].WeatherCondition)
	assert.Equal(t, "04:30-06:30", entries[0].RecommendedTime)
}

func TestRebuildFallbackRainSuppression(t *testing.T) {
	repo := &memSchedRepo{}
	src := &stubSource{
		err:    errors.New("upstream 502"),
		snap:   weather.Sample{Temp: 22, Humidity: 55, RainMM: 9},
		snapOK: true,
	}
	eng := NewEngine(src, &stubEstimator{}, repo, &memSink{}, nil)

	entries, err := eng.Rebuild(testField())
	require.NoError(t, err)
	for _, en := range entries {
		assert.Equal(t, 0.0, en.WaterAmount)
	}
}

func TestRebuildFailsWhenNothingPersists(t *testing.T) {
	repo := &memSchedRepo{replace: errors.New("disk full")}
	eng := NewEngine(&stubSource{samples: forecastSamples([]float64{0, 0, 0, 0, 0})},
		&stubEstimator{}, repo, &memSink{}, nil)

	_, err := eng.Rebuild(testField())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schedule could not be computed")
}
