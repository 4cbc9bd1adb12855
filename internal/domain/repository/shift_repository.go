package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gallinero/henhouse-api/internal/domain/entity"
)

// ShiftRepository define el puerto de persistencia para Shift (DIP).
type ShiftRepository interface {
	Create(shift *entity.Shift) error
	GetByID(id string) (*entity.Shift, error)
	// OpenByUser devuelve los turnos abiertos (end_time IS NULL) del usuario.
	// El invariante dice "a lo sumo uno"; el caso de uso valida el tamaño del
	// resultado y trata más de uno como error de integridad.
	OpenByUser(userID string) ([]*entity.Shift, error)
	// Close escribe fin de turno y horas totales.
	Close(shiftID string, endTime time.Time, totalHours decimal.Decimal) error
	// ClosedByUser devuelve turnos cerrados del usuario, más recientes primero.
	ClosedByUser(userID string, limit int) ([]*entity.Shift, error)
	// SumClosedHours acumula las horas de todos los turnos cerrados del usuario.
	SumClosedHours(userID string) (decimal.Decimal, error)
}
