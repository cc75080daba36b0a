package serviceImp

import (
	"log"
	"time"

	"irriga/entities"
	"irriga/pkg/notify/repository"
	"irriga/pkg/notify/service"
)

type storeSink struct{ repo repository.NotifyRepository }

// New returns a Sink that records notifications in the store. A write
// failure is logged and swallowed; schedule persistence must not depend on it.
func New(repo repository.NotifyRepository) service.Sink { return &storeSink{repo} }

func (s *storeSink) Notify(userID string, fieldID uint, category, title, body string, relevantAt time.Time) {
	n := &entities.Notification{
		UserID:     userID,
		FieldID:    fieldID,
		Category:   category,
		Title:      title,
		Body:       body,
		RelevantAt: relevantAt,
	}
	if err := s.repo.Create(n); err != nil {
		log.Printf("[notify] drop %s notification for field %d: %v", category, fieldID, err)
	}
}
