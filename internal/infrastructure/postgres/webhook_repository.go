package postgres

import (
	"context"
	"fmt"

	"github.com/gallinero/henhouse-api/internal/domain/entity"
	"github.com/gallinero/henhouse-api/internal/domain/repository"
)

var _ repository.WebhookRepository = (*WebhookRepo)(nil)

// WebhookRepo implementación del puerto WebhookRepository sobre PostgreSQL.
type WebhookRepo struct {
	q Querier
}

// NewWebhookRepository construye el adaptador de persistencia para webhooks.
func NewWebhookRepository(q Querier) *WebhookRepo {
	return &WebhookRepo{q: q}
}

// Create registra un destino de notificaciones.
func (r *WebhookRepo) Create(webhook *entity.Webhook) error {
	query := `
		INSERT INTO webhooks (id, url, is_active, event_type, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		webhook.ID, webhook.URL, webhook.IsActive, webhook.EventType, webhook.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook: %w", err)
	}
	return nil
}

// List devuelve todos los webhooks registrados.
func (r *WebhookRepo) List() ([]*entity.Webhook, error) {
	return r.scanMany(`SELECT id, url, is_active, event_type, created_at FROM webhooks ORDER BY created_at`)
}

// ListActiveByCategory devuelve los webhooks activos de la categoría o del comodín "all".
func (r *WebhookRepo) ListActiveByCategory(category string) ([]*entity.Webhook, error) {
	query := `
		SELECT id, url, is_active, event_type, created_at
		FROM webhooks
		WHERE is_active = true AND event_type IN ($1, 'all')`
	return r.scanMany(query, category)
}

// SetActive activa o desactiva un destino.
func (r *WebhookRepo) SetActive(id string, active bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE webhooks SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set webhook active: %w", err)
	}
	return nil
}

// Delete elimina un destino.
func (r *WebhookRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM webhooks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete webhook: %w", err)
	}
	return nil
}

func (r *WebhookRepo) scanMany(query string, args ...any) ([]*entity.Webhook, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list webhooks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Webhook
	for rows.Next() {
		var w entity.Webhook
		if err := rows.Scan(&w.ID, &w.URL, &w.IsActive, &w.EventType, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan webhook: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
