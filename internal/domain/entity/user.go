package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User representa un empleado del punto de venta.
// IsOnDuty lo muta únicamente el flujo de turnos (clock-in / clock-out).
type User struct {
	ID              string
	Username        string // único
	PasswordHash    string // bcrypt hash, nunca plano en dominio después de persistir
	FullName        string
	Role            string          // admin, employee
	HourlyRate      decimal.Decimal // tarifa por hora, >= 0
	IsOnDuty        bool
	FivemIdentifier *string // identificador externo opcional
	CreatedAt       time.Time
}

// IsAdmin indica si el usuario tiene rol de administrador.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
