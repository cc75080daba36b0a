package serviceImp

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"irriga/entities"
	"irriga/pkg/advisory"
	"irriga/pkg/agro"
	"irriga/pkg/irrigation/service"
	notify "irriga/pkg/notify/service"
	schedrepo "irriga/pkg/schedule/repository"
	"irriga/pkg/weather"
)

const (
	horizonDays         = 14
	defaultIntervalDays = 3
	reminderCount       = 3
)

// articleFinder is the optional hook into the article library; heavy-rain
// notifications attach related reading when it is wired.
type articleFinder interface {
	RelatedRefs(query string, k int) ([]entities.ArticleRef, error)
}

type Engine struct {
	weather   weather.Source
	estimator advisory.Estimator
	sched     schedrepo.ScheduleRepository
	sink      notify.Sink
	articles  articleFinder

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

// NewEngine wires the schedule builder. estimator, sink and articles may be
// nil; the engine degrades to static tables, no notifications, and plain
// notification bodies respectively.
func NewEngine(w weather.Source, est advisory.Estimator, sched schedrepo.ScheduleRepository, sink notify.Sink, articles articleFinder) *Engine {
	return &Engine{
		weather:   w,
		estimator: est,
		sched:     sched,
		sink:      sink,
		articles:  articles,
		locks:     map[uint]*sync.Mutex{},
	}
}

var _ service.Engine = (*Engine)(nil)

// lockFor serializes concurrent rebuilds of the same field so the
// delete-then-insert sequences cannot interleave. Locks are retained for
// the life of the process: one mutex per field ever rebuilt, which stays
// small at this deployment's field counts.
func (e *Engine) lockFor(fieldID uint) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[fieldID]
	if !ok {
		l = &sync.Mutex{}
		e.locks[fieldID] = l
	}
	return l
}

func (e *Engine) Rebuild(f *entities.Field) ([]entities.IrrigationEntry, error) {
	l := e.lockFor(f.FieldID)
	l.Lock()
	defer l.Unlock()

	entries, err := e.buildPrimary(f)
	if err == nil {
		return entries, nil
	}
	log.Printf("[engine] primary build failed for field %d: %v; trying fallback", f.FieldID, err)

	entries, ferr := e.buildFallback(f)
	if ferr != nil {
		log.Printf("[engine] fallback failed for field %d: %v", f.FieldID, ferr)
		return nil, fmt.Errorf("schedule could not be computed: %w", ferr)
	}
	return entries, nil
}

func (e *Engine) buildPrimary(f *entities.Field) ([]entities.IrrigationEntry, error) {
	samples, err := e.weather.Forecast(f.Latitude, f.Longitude)
	if err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}

	profile := agro.CropProfileFor(f.CropType)
	soilMult := agro.SoilMultiplierFor(f.SoilType)
	est := e.requestEstimate(f, samples)

	// A sanitized estimate always has interval >= 1; guard anyway so a
	// misbehaving estimator cannot stall the horizon loop.
	interval := defaultIntervalDays
	if est != nil && est.IntervalDays >= 1 {
		interval = est.IntervalDays
	} else if d, ok := agro.IrrigationIntervalFor(f.CropType); ok {
		interval = d
	}

	today := startOfDay(time.Now())
	batch := uuid.NewString()
	var entries []entities.IrrigationEntry
	var results []dayResult
	for i := 0; i < horizonDays; i += interval {
		date := today.AddDate(0, 0, i)
		sum, ok := weather.SummaryFor(samples, date)
		if !ok {
			// Beyond forecast coverage: assume the crop's comfort zone.
			sum = weather.DaySummary{Date: date, AvgTemp: profile.TempOptimal, AvgHumidity: profile.HumidityOptimal}
		}
		res := computeDaily(profile, est, soilMult, sum, date)
		entries = append(entries, entities.IrrigationEntry{
			FieldID:          f.FieldID,
			BatchID:          batch,
			Date:             date,
			RecommendedTime:  timeWindowFor(sum.AvgTemp, est),
			WaterAmount:      res.amount,
			WeatherTemp:      sum.AvgTemp,
			WeatherHumidity:  sum.AvgHumidity,
			WeatherCondition: sum.Condition,
			Note:             res.note,
			Status:           entities.IrrigationPending,
		})
		results = append(results, res)
	}

	if err := e.sched.ReplacePending(f.FieldID, entries); err != nil {
		return nil, fmt.Errorf("persist schedule: %w", err)
	}
	e.emitNotifications(f, entries, results)
	return entries, nil
}

// requestEstimate asks the advisory source for a water-range and interval
// suggestion based on the aggregate 5-day outlook. Transport failures,
// timeouts and malformed replies all collapse to nil.
func (e *Engine) requestEstimate(f *entities.Field, samples []weather.Sample) *advisory.Estimate {
	if e.estimator == nil {
		return nil
	}
	days := weather.SummarizeByDay(samples)
	if len(days) == 0 {
		return nil
	}
	if len(days) > 5 {
		days = days[:5]
	}
	var temp, hum, rain float64
	for _, d := range days {
		temp += d.AvgTemp
		hum += d.AvgHumidity
		rain += d.TotalRainMM
	}
	n := float64(len(days))

	est, err := e.estimator.Estimate(advisory.Request{
		Crop:        f.CropType,
		Soil:        f.SoilType,
		Latitude:    f.Latitude,
		Longitude:   f.Longitude,
		Month:       time.Now().Month(),
		AvgTemp:     temp / n,
		AvgHumidity: hum / n,
		TotalRainMM: rain,
	})
	if err != nil {
		log.Printf("[engine] advisory unavailable for field %d: %v", f.FieldID, err)
		return nil
	}
	return est
}

// emitNotifications sends reminders for the first three watering days and
// one heads-up for the first rain-suppressed day. All sends are
// fire-and-forget.
func (e *Engine) emitNotifications(f *entities.Field, entries []entities.IrrigationEntry, results []dayResult) {
	if e.sink == nil {
		return
	}
	sent := 0
	for _, en := range entries {
		if en.WaterAmount <= 0 {
			continue
		}
		body := fmt.Sprintf("Water %.1f L/m² between %s on %s.", en.WaterAmount, en.RecommendedTime, en.Date.Format("2006-01-02"))
		e.sink.Notify(f.UserID, f.FieldID, entities.NotifyIrrigation, "Irrigation due", body, en.Date)
		sent++
		if sent == reminderCount {
			break
		}
	}
	for i, en := range entries {
		if !results[i].heavyRain {
			continue
		}
		body := fmt.Sprintf("Heavy rain expected on %s; irrigation is skipped for that day.", en.Date.Format("2006-01-02"))
		if en.Note != nil {
			body = *en.Note
		}
		if refs := e.relatedReading(f.CropType); refs != "" {
			body += "\nRelated reading:\n" + refs
		}
		e.sink.Notify(f.UserID, f.FieldID, entities.NotifyHeavyRain, "Heavy rain expected", body, en.Date)
		break
	}
}

func (e *Engine) relatedReading(crop string) string {
	if e.articles == nil {
		return ""
	}
	refs, err := e.articles.RelatedRefs("heavy rain drainage "+crop, 3)
	if err != nil || len(refs) == 0 {
		return ""
	}
	lines := make([]string, 0, len(refs))
	for _, r := range refs {
		lines = append(lines, fmt.Sprintf("- %s (%s)", r.Title, r.URL))
	}
	return strings.Join(lines, "\n")
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
