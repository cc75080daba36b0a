package entities

import "time"

const (
	NotifyIrrigation = "irrigation"
	NotifyHeavyRain  = "heavy_rain"
)

type Notification struct {
	NotifID    uint      `gorm:"primaryKey" json:"notif_id"`
	UserID     string    `gorm:"index" json:"user_id"`
	FieldID    uint      `gorm:"index" json:"field_id"`
	Category   string    `json:"category"` // irrigation|heavy_rain
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	RelevantAt time.Time `json:"relevant_at"`
	CreatedAt  time.Time
}
