package repository

import "github.com/gallinero/henhouse-api/internal/domain/entity"

// WebhookRepository define el puerto de persistencia para Webhook (DIP).
type WebhookRepository interface {
	Create(webhook *entity.Webhook) error
	List() ([]*entity.Webhook, error)
	// ListActiveByCategory devuelve los webhooks activos cuya categoría sea la
	// indicada o el comodín "all".
	ListActiveByCategory(category string) ([]*entity.Webhook, error)
	SetActive(id string, active bool) error
	Delete(id string) error
}
