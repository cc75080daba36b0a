package repository

import "irriga/entities"

type NotifyRepository interface {
	Create(n *entities.Notification) error
	ListByUser(userID string, limit int) ([]entities.Notification, error)
}
