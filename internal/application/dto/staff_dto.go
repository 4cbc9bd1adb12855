package dto

import "github.com/shopspring/decimal"

// CreateEmployeeRequest alta de empleado (solo admin, fuera de banda del POS).
type CreateEmployeeRequest struct {
	Username        string          `json:"username"`
	Password        string          `json:"password"`
	FullName        string          `json:"full_name"`
	Role            string          `json:"role"` // admin, employee (default employee)
	HourlyRate      decimal.Decimal `json:"hourly_rate"`
	FivemIdentifier *string         `json:"fivem_identifier"`
}

// UpdateStaffRequest edición de tarifa y rol desde la pantalla de staff.
type UpdateStaffRequest struct {
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
	Role       *string          `json:"role"`
}

// StaffMemberResponse usuario + acumulado de horas cerradas y turno abierto (si hay).
type StaffMemberResponse struct {
	UserResponse
	TotalHours   decimal.Decimal `json:"total_hours"`
	CurrentShift *ShiftResponse  `json:"current_shift,omitempty"`
}
