package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift es un turno de trabajo. Un turno con EndTime nulo está "abierto":
// a lo sumo puede existir uno abierto por usuario (lo garantiza la aplicación).
type Shift struct {
	ID         string
	UserID     string
	StartTime  time.Time
	EndTime    *time.Time       // nil mientras el turno está abierto
	TotalHours *decimal.Decimal // (EndTime - StartTime) en horas; nil si abierto
	CreatedAt  time.Time
}

// IsOpen indica si el turno sigue abierto.
func (s *Shift) IsOpen() bool {
	return s.EndTime == nil
}

// Elapsed devuelve las horas transcurridas desde el inicio hasta ref (reloj de pared).
func (s *Shift) Elapsed(ref time.Time) decimal.Decimal {
	return decimal.NewFromFloat(ref.Sub(s.StartTime).Hours())
}
