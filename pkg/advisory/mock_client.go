package advisory

type mockClient struct{}

// NewMock returns a deterministic estimator for tests that need a
// predictable advisory path. Production wiring leaves the estimator nil
// when no endpoint is configured.
func NewMock() Estimator { return &mockClient{} }

func (m *mockClient) Estimate(req Request) (*Estimate, error) {
	interval := 3.0
	min, max := 3.0, 6.0
	if req.AvgTemp > 30 {
		min, max = 4.0, 7.5
		interval = 2
	}
	if req.TotalRainMM > 20 {
		min, max = 1.0, 3.0
		interval = 4
	}
	return sanitize(min, max, interval, "05:00-07:00"), nil
}
