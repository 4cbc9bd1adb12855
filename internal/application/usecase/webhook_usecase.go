package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gallinero/henhouse-api/internal/application/dto"
	"github.com/gallinero/henhouse-api/internal/domain"
	"github.com/gallinero/henhouse-api/internal/domain/entity"
	"github.com/gallinero/henhouse-api/internal/domain/repository"
)

// WebhookUseCase administración de destinos de notificación (solo admin).
// Los flujos de negocio solo los leen vía el despachador.
type WebhookUseCase struct {
	repo repository.WebhookRepository
}

// NewWebhookUseCase construye el caso de uso.
func NewWebhookUseCase(repo repository.WebhookRepository) *WebhookUseCase {
	return &WebhookUseCase{repo: repo}
}

// Create registra un webhook. Sin categoría se asume el comodín "all";
// una categoría desconocida → ErrInvalidInput.
func (uc *WebhookUseCase) Create(in dto.CreateWebhookRequest) (*dto.WebhookResponse, error) {
	if in.EventType == "" {
		in.EventType = entity.CategoryAll
	}
	if in.URL == "" || !entity.ValidCategory(in.EventType) {
		return nil, domain.ErrInvalidInput
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	wh := &entity.Webhook{
		ID:        uuid.New().String(),
		URL:       in.URL,
		IsActive:  active,
		EventType: in.EventType,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(wh); err != nil {
		return nil, err
	}
	return toWebhookResponse(wh), nil
}

// List devuelve todos los webhooks registrados.
func (uc *WebhookUseCase) List() ([]dto.WebhookResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.WebhookResponse, 0, len(list))
	for _, wh := range list {
		out = append(out, *toWebhookResponse(wh))
	}
	return out, nil
}

// SetActive activa o desactiva un destino.
func (uc *WebhookUseCase) SetActive(id string, active bool) error {
	return uc.repo.SetActive(id, active)
}

// Delete elimina un destino.
func (uc *WebhookUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toWebhookResponse(w *entity.Webhook) *dto.WebhookResponse {
	return &dto.WebhookResponse{
		ID:        w.ID,
		URL:       w.URL,
		IsActive:  w.IsActive,
		EventType: w.EventType,
		CreatedAt: w.CreatedAt,
	}
}
