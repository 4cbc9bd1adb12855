// Package shift implementa el ciclo de vida de los turnos de trabajo:
// entrada (clock-in), salida (clock-out) e historial.
package shift

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gallinero/henhouse-api/internal/application/dto"
	"github.com/gallinero/henhouse-api/internal/application/ports"
	"github.com/gallinero/henhouse-api/internal/domain"
	"github.com/gallinero/henhouse-api/internal/domain/entity"
	"github.com/gallinero/henhouse-api/internal/domain/repository"
)

// defaultRecentLimit cuántos turnos cerrados muestra el historial de fichaje.
const defaultRecentLimit = 10

// ShiftUseCase casos de uso del flujo de turnos.
//
// Invariante que protege: a lo sumo un turno abierto por usuario. La UI evita la
// doble entrada, pero el caso de uso valida igual por si se invoca directo.
type ShiftUseCase struct {
	shifts   repository.ShiftRepository
	users    repository.UserRepository
	notifier ports.Notifier
	now      func() time.Time // inyectable en tests
}

// NewShiftUseCase construye el caso de uso.
func NewShiftUseCase(shifts repository.ShiftRepository, users repository.UserRepository, notifier ports.Notifier) *ShiftUseCase {
	return &ShiftUseCase{shifts: shifts, users: users, notifier: notifier, now: time.Now}
}

// WithClock reemplaza la fuente de tiempo (para tests).
func (uc *ShiftUseCase) WithClock(now func() time.Time) *ShiftUseCase {
	uc.now = now
	return uc
}

// ClockIn abre un turno para el usuario: start = ahora, end = null, y marca al
// usuario en servicio. Rechaza con ErrShiftAlreadyOpen si ya hay uno abierto.
func (uc *ShiftUseCase) ClockIn(userID string) (*dto.ShiftResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	open, err := uc.shifts.OpenByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(open) > 0 {
		return nil, domain.ErrShiftAlreadyOpen
	}

	now := uc.now()
	shift := &entity.Shift{
		ID:        uuid.New().String(),
		UserID:    userID,
		StartTime: now,
		CreatedAt: now,
	}
	if err := uc.shifts.Create(shift); err != nil {
		return nil, err
	}
	if err := uc.users.SetOnDuty(userID, true); err != nil {
		return nil, err
	}

	uc.notifier.NotifyClockIn(user.FullName)
	return toShiftResponse(shift, now), nil
}

// ClockOut cierra el turno: calcula las horas de reloj de pared transcurridas,
// escribe fin + total y marca al usuario fuera de servicio.
// Requiere que el turno siga abierto (ErrShiftClosed si no).
func (uc *ShiftUseCase) ClockOut(shiftID string) (*dto.ShiftResponse, error) {
	shift, err := uc.shifts.GetByID(shiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, domain.ErrNotFound
	}
	if !shift.IsOpen() {
		return nil, domain.ErrShiftClosed
	}

	end := uc.now()
	totalHours := decimal.NewFromFloat(end.Sub(shift.StartTime).Hours())

	if err := uc.shifts.Close(shift.ID, end, totalHours); err != nil {
		return nil, err
	}
	if err := uc.users.SetOnDuty(shift.UserID, false); err != nil {
		return nil, err
	}

	shift.EndTime = &end
	shift.TotalHours = &totalHours

	if user, err := uc.users.GetByID(shift.UserID); err == nil && user != nil {
		uc.notifier.NotifyClockOut(user.FullName, totalHours)
	}
	return toShiftResponse(shift, end), nil
}

// CurrentOpenShift devuelve el turno abierto del usuario, o nil si no hay.
// Más de un turno abierto viola el invariante: se reporta como ErrDataIntegrity,
// nunca se elige uno en silencio.
func (uc *ShiftUseCase) CurrentOpenShift(userID string) (*dto.ShiftResponse, error) {
	open, err := uc.shifts.OpenByUser(userID)
	if err != nil {
		return nil, err
	}
	switch len(open) {
	case 0:
		return nil, nil
	case 1:
		return toShiftResponse(open[0], uc.now()), nil
	default:
		return nil, domain.ErrDataIntegrity
	}
}

// RecentClosedShifts devuelve los turnos cerrados del usuario, más recientes primero.
func (uc *ShiftUseCase) RecentClosedShifts(userID string, limit int) ([]dto.ShiftResponse, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	shifts, err := uc.shifts.ClosedByUser(userID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, *toShiftResponse(s, uc.now()))
	}
	return out, nil
}

// toShiftResponse arma el DTO; redondea horas a 2 decimales para presentación.
func toShiftResponse(s *entity.Shift, ref time.Time) *dto.ShiftResponse {
	resp := &dto.ShiftResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
	if s.TotalHours != nil {
		rounded := s.TotalHours.Round(2)
		resp.TotalHours = &rounded
	}
	if s.IsOpen() {
		elapsed := s.Elapsed(ref).Round(2)
		resp.ElapsedHours = &elapsed
	}
	return resp
}
