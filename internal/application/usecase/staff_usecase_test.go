package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gallinero/henhouse-api/internal/application/dto"
	"github.com/gallinero/henhouse-api/internal/domain"
	"github.com/gallinero/henhouse-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo(us ...*entity.User) *memUserRepo {
	r := &memUserRepo{users: make(map[string]*entity.User)}
	for _, u := range us {
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }

func (r *memUserRepo) SetOnDuty(userID string, onDuty bool) error {
	if u, ok := r.users[userID]; ok {
		u.IsOnDuty = onDuty
	}
	return nil
}

func (r *memUserRepo) UpdateRate(userID string, rate decimal.Decimal, role string) error {
	if u, ok := r.users[userID]; ok {
		u.HourlyRate = rate
		u.Role = role
	}
	return nil
}

func (r *memUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

type memShiftRepo struct {
	open   map[string][]*entity.Shift
	closed map[string]decimal.Decimal
}

func newMemShiftRepo() *memShiftRepo {
	return &memShiftRepo{
		open:   make(map[string][]*entity.Shift),
		closed: make(map[string]decimal.Decimal),
	}
}

func (r *memShiftRepo) Create(s *entity.Shift) error { r.open[s.UserID] = append(r.open[s.UserID], s); return nil }
func (r *memShiftRepo) GetByID(string) (*entity.Shift, error) { return nil, nil }
func (r *memShiftRepo) OpenByUser(userID string) ([]*entity.Shift, error) {
	return r.open[userID], nil
}
func (r *memShiftRepo) Close(string, time.Time, decimal.Decimal) error { return nil }
func (r *memShiftRepo) ClosedByUser(string, int) ([]*entity.Shift, error) {
	return nil, nil
}
func (r *memShiftRepo) SumClosedHours(userID string) (decimal.Decimal, error) {
	return r.closed[userID], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateEmployee
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateEmployee_HasheaConBcrypt(t *testing.T) {
	users := newMemUserRepo()
	uc := NewStaffUseCase(users, newMemShiftRepo())

	out, err := uc.CreateEmployee(dto.CreateEmployeeRequest{
		Username:   "nueva",
		Password:   "secreta-muy-larga",
		FullName:   "Nueva Empleada",
		HourlyRate: decimal.RequireFromString("15.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleEmployee, out.Role, "sin rol explícito se asigna employee")

	stored, _ := users.GetByUsername("nueva")
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta-muy-larga", stored.PasswordHash,
		"la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("secreta-muy-larga")),
		"el hash almacenado debe verificar contra la contraseña original")
}

func TestCreateEmployee_UsernameDuplicado(t *testing.T) {
	users := newMemUserRepo(&entity.User{ID: "u1", Username: "repetida"})
	uc := NewStaffUseCase(users, newMemShiftRepo())

	_, err := uc.CreateEmployee(dto.CreateEmployeeRequest{
		Username: "repetida",
		Password: "cualquiera123",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateEmployee_RolDesconocidoRechazado(t *testing.T) {
	uc := NewStaffUseCase(newMemUserRepo(), newMemShiftRepo())

	_, err := uc.CreateEmployee(dto.CreateEmployeeRequest{
		Username: "alguien",
		Password: "cualquiera123",
		Role:     "gerente",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateEmployee_TarifaNegativaRechazada(t *testing.T) {
	uc := NewStaffUseCase(newMemUserRepo(), newMemShiftRepo())

	_, err := uc.CreateEmployee(dto.CreateEmployeeRequest{
		Username:   "alguien",
		Password:   "cualquiera123",
		HourlyRate: decimal.RequireFromString("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStaff
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStaff_CambiaTarifaYRol(t *testing.T) {
	users := newMemUserRepo(&entity.User{
		ID: "u1", Username: "emp", Role: entity.RoleEmployee,
		HourlyRate: decimal.RequireFromString("10.00"),
	})
	uc := NewStaffUseCase(users, newMemShiftRepo())

	newRate := decimal.RequireFromString("18.50")
	newRole := entity.RoleAdmin
	out, err := uc.UpdateStaff("u1", dto.UpdateStaffRequest{
		HourlyRate: &newRate,
		Role:       &newRole,
	})
	require.NoError(t, err)

	assert.True(t, out.HourlyRate.Equal(newRate))
	assert.Equal(t, entity.RoleAdmin, out.Role)

	stored, _ := users.GetByID("u1")
	assert.True(t, stored.HourlyRate.Equal(newRate), "la tarifa debe persistirse")
}

func TestUpdateStaff_UsuarioInexistente(t *testing.T) {
	uc := NewStaffUseCase(newMemUserRepo(), newMemShiftRepo())
	rate := decimal.RequireFromString("12.00")
	_, err := uc.UpdateStaff("fantasma", dto.UpdateStaffRequest{HourlyRate: &rate})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestStaffList_IncluyeHorasYTurnoAbierto(t *testing.T) {
	users := newMemUserRepo(
		&entity.User{ID: "u1", Username: "activa", FullName: "Activa", Role: entity.RoleEmployee},
		&entity.User{ID: "u2", Username: "libre", FullName: "Libre", Role: entity.RoleEmployee},
	)
	shifts := newMemShiftRepo()
	shifts.closed["u1"] = decimal.RequireFromString("42.25")
	shifts.open["u1"] = []*entity.Shift{{
		ID: "s1", UserID: "u1", StartTime: time.Now().Add(-30 * time.Minute),
	}}
	uc := NewStaffUseCase(users, shifts)

	out, err := uc.List()
	require.NoError(t, err)
	require.Len(t, out, 2)

	byUsername := make(map[string]dto.StaffMemberResponse, len(out))
	for _, m := range out {
		byUsername[m.Username] = m
	}

	activa := byUsername["activa"]
	assert.True(t, activa.TotalHours.Equal(decimal.RequireFromString("42.25")))
	require.NotNil(t, activa.CurrentShift, "el turno abierto debe venir en la respuesta")
	assert.NotNil(t, activa.CurrentShift.ElapsedHours)

	libre := byUsername["libre"]
	assert.True(t, libre.TotalHours.Equal(decimal.Zero))
	assert.Nil(t, libre.CurrentShift)
}

func TestStaffList_DosTurnosAbiertosEsErrorDeIntegridad(t *testing.T) {
	users := newMemUserRepo(&entity.User{ID: "u1", Username: "rota", Role: entity.RoleEmployee})
	shifts := newMemShiftRepo()
	now := time.Now()
	shifts.open["u1"] = []*entity.Shift{
		{ID: "s1", UserID: "u1", StartTime: now},
		{ID: "s2", UserID: "u1", StartTime: now},
	}
	uc := NewStaffUseCase(users, shifts)

	_, err := uc.List()
	assert.ErrorIs(t, err, domain.ErrDataIntegrity)
}
