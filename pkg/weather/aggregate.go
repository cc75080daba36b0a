package weather

import (
	"sort"
	"time"
)

const dayKeyLayout = "2006-01-02"

// SummarizeByDay partitions samples by their local calendar date and reduces
// each partition to means of temperature and humidity, summed rain, and the
// condition text of the day's first sample. Output is ordered by date;
// an empty input yields an empty result.
func SummarizeByDay(samples []Sample) []DaySummary {
	byDay := map[string][]Sample{}
	for _, s := range samples {
		k := s.Time.Format(dayKeyLayout)
		byDay[k] = append(byDay[k], s)
	}

	out := make([]DaySummary, 0, len(byDay))
	for k, part := range byDay {
		d, err := time.ParseInLocation(dayKeyLayout, k, part[0].Time.Location())
		if err != nil {
			continue
		}
		var temp, hum, rain float64
		for _, s := range part {
			temp += s.Temp
			hum += s.Humidity
			rain += s.RainMM
		}
		n := float64(len(part))
		out = append(out, DaySummary{
			Date:        d,
			AvgTemp:     temp / n,
			AvgHumidity: hum / n,
			TotalRainMM: rain,
			Condition:   part[0].Condition,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// SummaryFor reduces only the samples matching date's local calendar day.
// ok is false when no sample falls on that day; the caller substitutes
// profile-optimal conditions instead of failing.
func SummaryFor(samples []Sample, date time.Time) (DaySummary, bool) {
	want := date.Format(dayKeyLayout)
	var part []Sample
	for _, s := range samples {
		if s.Time.Format(dayKeyLayout) == want {
			part = append(part, s)
		}
	}
	if len(part) == 0 {
		return DaySummary{}, false
	}
	sums := SummarizeByDay(part)
	return sums[0], true
}
