package advisory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type openAI struct {
	endpoint string
	key      string
	model    string
}

// NewOpenAI talks to any OpenAI-compatible chat endpoint. The call is bounded
// to a few seconds so a slow model degrades to "no estimate" instead of
// stalling the schedule build.
func NewOpenAI(endpoint, key, model string) Estimator {
	return &openAI{endpoint: endpoint, key: key, model: model}
}

func (c *openAI) Estimate(req Request) (*Estimate, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are an irrigation agronomist. Reply ONLY valid JSON."},
			{"role": "user", "content": renderEstimatePrompt(req)},
		},
		"temperature": 0.2,
	}
	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 6 * time.Second}
	httpReq, _ := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	httpReq.Header.Set("Authorization", "Bearer "+c.key)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("no choices")
	}
	return parseEstimate(out.Choices[0].Message.Content)
}

// parseEstimate extracts the structured estimate from a free-form model
// reply. Models occasionally wrap JSON in code fences; strip those before
// decoding. Out-of-range values are clamped, junk yields nil.
func parseEstimate(content string) (*Estimate, error) {
	s := strings.TrimSpace(content)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	var payload struct {
		WaterMin     float64 `json:"water_min"`
		WaterMax     float64 `json:"water_max"`
		IntervalDays float64 `json:"interval_days"`
		TimeRange    string  `json:"time_range"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &payload); err != nil {
		return nil, fmt.Errorf("parse estimate: %v / raw: %s", err, content)
	}
	e := sanitize(payload.WaterMin, payload.WaterMax, payload.IntervalDays, strings.TrimSpace(payload.TimeRange))
	if e == nil {
		return nil, fmt.Errorf("estimate failed validation: %s", content)
	}
	return e, nil
}

func renderEstimatePrompt(req Request) string {
	return fmt.Sprintf(`
Estimate irrigation needs for one field.

CROP: %s
SOIL: %s
LOCATION: %.4f,%.4f
MONTH: %s
FORECAST (next 5 days): avg temp %.1fC, avg humidity %.0f%%, total rain %.1fmm

Reply ONLY JSON:
{"water_min": <liters per m2 per event>, "water_max": <liters per m2 per event>, "interval_days": <days between events>, "time_range": "HH:MM-HH:MM"}
`, req.Crop, req.Soil, req.Latitude, req.Longitude, req.Month, req.AvgTemp, req.AvgHumidity, req.TotalRainMM)
}
