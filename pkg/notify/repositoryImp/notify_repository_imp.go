package repositoryImp

import (
	"gorm.io/gorm"

	"irriga/entities"
	"irriga/pkg/notify/repository"
)

type notifyRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.NotifyRepository { return &notifyRepo{db} }

func (r *notifyRepo) Create(n *entities.Notification) error { return r.db.Create(n).Error }

func (r *notifyRepo) ListByUser(userID string, limit int) ([]entities.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entities.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("relevant_at ASC, notif_id ASC").
		Limit(limit).Find(&out).Error
	return out, err
}
