package repository

import (
	"github.com/shopspring/decimal"

	"github.com/gallinero/henhouse-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	// SetOnDuty cambia solo la bandera de servicio (la muta el flujo de turnos).
	SetOnDuty(userID string, onDuty bool) error
	// UpdateRate actualiza tarifa por hora y rol (pantalla de staff del admin).
	UpdateRate(userID string, hourlyRate decimal.Decimal, role string) error
	// List devuelve todos los usuarios ordenados por nombre completo.
	List() ([]*entity.User, error)
}
