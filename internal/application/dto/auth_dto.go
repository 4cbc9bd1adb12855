package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoginRequest credenciales de ingreso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse representación pública de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID              string          `json:"id"`
	Username        string          `json:"username"`
	FullName        string          `json:"full_name"`
	Role            string          `json:"role"`
	HourlyRate      decimal.Decimal `json:"hourly_rate"`
	IsOnDuty        bool            `json:"is_on_duty"`
	FivemIdentifier *string         `json:"fivem_identifier,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// LoginResponse token de sesión + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
