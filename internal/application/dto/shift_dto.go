package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftResponse representación pública de un turno.
// TotalHours y ElapsedHours van redondeados a 2 decimales para presentación.
type ShiftResponse struct {
	ID           string           `json:"id"`
	UserID       string           `json:"user_id"`
	StartTime    time.Time        `json:"start_time"`
	EndTime      *time.Time       `json:"end_time,omitempty"`
	TotalHours   *decimal.Decimal `json:"total_hours,omitempty"`
	ElapsedHours *decimal.Decimal `json:"elapsed_hours,omitempty"` // solo turnos abiertos
}
