package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gallinero/henhouse-api/internal/application/auth"
	"github.com/gallinero/henhouse-api/internal/application/dto"
	"github.com/gallinero/henhouse-api/internal/domain"
	"github.com/gallinero/henhouse-api/internal/domain/entity"
	"github.com/gallinero/henhouse-api/internal/domain/repository"
)

// StaffUseCase pantalla de staff del admin: alta de empleados, edición de
// tarifa/rol y listado con horas acumuladas + turno en curso.
type StaffUseCase struct {
	users  repository.UserRepository
	shifts repository.ShiftRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(users repository.UserRepository, shifts repository.ShiftRepository) *StaffUseCase {
	return &StaffUseCase{users: users, shifts: shifts}
}

// CreateEmployee crea un empleado con la contraseña hasheada con bcrypt.
// Username duplicado → ErrDuplicate.
func (uc *StaffUseCase) CreateEmployee(in dto.CreateEmployeeRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" || in.HourlyRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	if role != entity.RoleAdmin && role != entity.RoleEmployee {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	fullName := in.FullName
	if fullName == "" {
		fullName = in.Username
	}
	user := &entity.User{
		ID:              uuid.New().String(),
		Username:        in.Username,
		PasswordHash:    string(hash),
		FullName:        fullName,
		Role:            role,
		HourlyRate:      in.HourlyRate,
		FivemIdentifier: in.FivemIdentifier,
		CreatedAt:       time.Now(),
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// UpdateStaff edita tarifa por hora y/o rol de un usuario.
func (uc *StaffUseCase) UpdateStaff(userID string, in dto.UpdateStaffRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	rate := user.HourlyRate
	if in.HourlyRate != nil {
		if in.HourlyRate.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		rate = *in.HourlyRate
	}
	role := user.Role
	if in.Role != nil {
		if *in.Role != entity.RoleAdmin && *in.Role != entity.RoleEmployee {
			return nil, domain.ErrInvalidInput
		}
		role = *in.Role
	}
	if err := uc.users.UpdateRate(userID, rate, role); err != nil {
		return nil, err
	}
	user.HourlyRate = rate
	user.Role = role
	return auth.ToUserResponse(user), nil
}

// List arma la vista de staff: cada usuario con su acumulado de horas cerradas
// y su turno abierto si lo tiene.
func (uc *StaffUseCase) List() ([]dto.StaffMemberResponse, error) {
	users, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]dto.StaffMemberResponse, 0, len(users))
	for _, u := range users {
		total, err := uc.shifts.SumClosedHours(u.ID)
		if err != nil {
			return nil, err
		}
		member := dto.StaffMemberResponse{
			UserResponse: *auth.ToUserResponse(u),
			TotalHours:   total.Round(2),
		}
		open, err := uc.shifts.OpenByUser(u.ID)
		if err != nil {
			return nil, err
		}
		if len(open) > 1 {
			return nil, domain.ErrDataIntegrity
		}
		if len(open) == 1 {
			s := open[0]
			elapsed := s.Elapsed(now).Round(2)
			member.CurrentShift = &dto.ShiftResponse{
				ID:           s.ID,
				UserID:       s.UserID,
				StartTime:    s.StartTime,
				ElapsedHours: &elapsed,
			}
		}
		out = append(out, member)
	}
	return out, nil
}
