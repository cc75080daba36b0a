package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const cacheTTL = 30 * time.Minute

type cachedForecast struct {
	samples   []Sample
	fetchedAt time.Time
}

// client fetches an OpenWeather-compatible 5-day/3-hour forecast. Responses
// are cached per coordinate pair for 30 minutes and concurrent fetches for
// the same coordinates are collapsed into one upstream call.
type client struct {
	base  string
	key   string
	httpc *http.Client

	mu    sync.Mutex
	cache map[string]cachedForecast
	group singleflight.Group
}

func NewClient(base, key string) Source {
	return &client{
		base:  strings.TrimRight(base, "/"),
		key:   key,
		httpc: &http.Client{Timeout: 8 * time.Second},
		cache: map[string]cachedForecast{},
	}
}

// coordKey rounds to ~1km so nearby fields share cache entries.
func coordKey(lat, lon float64) string {
	return fmt.Sprintf("%.2f,%.2f", lat, lon)
}

func (c *client) Forecast(lat, lon float64) ([]Sample, error) {
	key := coordKey(lat, lon)

	c.mu.Lock()
	if hit, ok := c.cache[key]; ok && time.Since(hit.fetchedAt) < cacheTTL {
		c.mu.Unlock()
		return hit.samples, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do(key, func() (any, error) {
		samples, err := c.fetch(lat, lon)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.cache[key] = cachedForecast{samples: samples, fetchedAt: time.Now()}
		c.mu.Unlock()
		return samples, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Sample), nil
}

// Snapshot serves the fallback planner: the first sample of the last good
// fetch, as long as it is fresher than the cache window.
func (c *client) Snapshot(lat, lon float64) (Sample, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	hit, ok := c.cache[coordKey(lat, lon)]
	if !ok || len(hit.samples) == 0 || time.Since(hit.fetchedAt) >= cacheTTL {
		return Sample{}, false
	}
	return hit.samples[0], true
}

type forecastResp struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Rain struct {
			ThreeH float64 `json:"3h"`
		} `json:"rain"`
	} `json:"list"`
}

func (c *client) fetch(lat, lon float64) ([]Sample, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	q.Set("appid", c.key)
	q.Set("units", "metric")

	resp, err := c.httpc.Get(c.base + "/data/2.5/forecast?" + q.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast: status %d", resp.StatusCode)
	}

	var out forecastResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.List) == 0 {
		return nil, fmt.Errorf("forecast: empty sample list")
	}

	samples := make([]Sample, 0, len(out.List))
	for _, it := range out.List {
		s := Sample{
			Time:     time.Unix(it.Dt, 0),
			Temp:     it.Main.Temp,
			Humidity: it.Main.Humidity,
			RainMM:   it.Rain.ThreeH,
		}
		if len(it.Weather) > 0 {
			s.Condition = it.Weather[0].Description
		}
		samples = append(samples, s)
	}
	return samples, nil
}
