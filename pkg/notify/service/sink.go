package service

import "time"

// Sink accepts advisory notifications. Delivery is fire-and-forget: the
// engine never learns about, and is never failed by, a delivery problem.
type Sink interface {
	Notify(userID string, fieldID uint, category, title, body string, relevantAt time.Time)
}
