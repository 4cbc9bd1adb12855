package dto

import "time"

// CreateWebhookRequest registra un destino de notificaciones.
type CreateWebhookRequest struct {
	URL       string `json:"url"`
	EventType string `json:"event_type"` // sales, shifts, stock, all
	IsActive  *bool  `json:"is_active"`
}

// WebhookResponse configuración registrada.
type WebhookResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	IsActive  bool      `json:"is_active"`
	EventType string    `json:"event_type"`
	CreatedAt time.Time `json:"created_at"`
}
