package shift

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gallinero/henhouse-api/internal/domain"
	"github.com/gallinero/henhouse-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeShiftRepo struct {
	shifts map[string]*entity.Shift
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]*entity.Shift)}
}

func (r *fakeShiftRepo) Create(s *entity.Shift) error { r.shifts[s.ID] = s; return nil }
func (r *fakeShiftRepo) GetByID(id string) (*entity.Shift, error) {
	s, ok := r.shifts[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}
func (r *fakeShiftRepo) OpenByUser(userID string) ([]*entity.Shift, error) {
	var out []*entity.Shift
	for _, s := range r.shifts {
		if s.UserID == userID && s.IsOpen() {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *fakeShiftRepo) Close(shiftID string, endTime time.Time, totalHours decimal.Decimal) error {
	s := r.shifts[shiftID]
	s.EndTime = &endTime
	s.TotalHours = &totalHours
	return nil
}
func (r *fakeShiftRepo) ClosedByUser(userID string, limit int) ([]*entity.Shift, error) {
	var out []*entity.Shift
	for _, s := range r.shifts {
		if s.UserID == userID && !s.IsOpen() {
			out = append(out, s)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
func (r *fakeShiftRepo) SumClosedHours(userID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, s := range r.shifts {
		if s.UserID == userID && s.TotalHours != nil {
			sum = sum.Add(*s.TotalHours)
		}
	}
	return sum, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}
func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) SetOnDuty(userID string, onDuty bool) error {
	if u, ok := r.users[userID]; ok {
		u.IsOnDuty = onDuty
	}
	return nil
}
func (r *fakeUserRepo) UpdateRate(userID string, rate decimal.Decimal, role string) error {
	if u, ok := r.users[userID]; ok {
		u.HourlyRate = rate
		u.Role = role
	}
	return nil
}
func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

type notifierCall struct {
	kind  string
	name  string
	hours decimal.Decimal
}

type fakeNotifier struct {
	calls []notifierCall
}

func (n *fakeNotifier) NotifySale(string, decimal.Decimal, string) {}
func (n *fakeNotifier) NotifyLowStock(string, int)                 {}
func (n *fakeNotifier) NotifyClockIn(userName string) {
	n.calls = append(n.calls, notifierCall{kind: "clock_in", name: userName})
}
func (n *fakeNotifier) NotifyClockOut(userName string, hours decimal.Decimal) {
	n.calls = append(n.calls, notifierCall{kind: "clock_out", name: userName, hours: hours})
}

func fixture(t *testing.T) (*ShiftUseCase, *fakeShiftRepo, *fakeUserRepo, *fakeNotifier) {
	t.Helper()
	shifts := newFakeShiftRepo()
	users := &fakeUserRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", Username: "empleado", FullName: "Empleado Uno", Role: entity.RoleEmployee},
	}}
	notifier := &fakeNotifier{}
	uc := NewShiftUseCase(shifts, users, notifier)
	return uc, shifts, users, notifier
}

// ──────────────────────────────────────────────────────────────────────────────
// ClockIn
// ──────────────────────────────────────────────────────────────────────────────

func TestClockIn_AbreTurnoYMarcaEnServicio(t *testing.T) {
	uc, shifts, users, notifier := fixture(t)
	start := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	uc.WithClock(func() time.Time { return start })

	out, err := uc.ClockIn("u1")
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "u1", out.UserID)
	assert.Equal(t, start, out.StartTime)
	assert.Nil(t, out.EndTime, "un turno recién abierto no tiene fin")
	assert.Nil(t, out.TotalHours)

	u, _ := users.GetByID("u1")
	assert.True(t, u.IsOnDuty, "el usuario debe quedar en servicio")
	assert.Len(t, shifts.shifts, 1)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "clock_in", notifier.calls[0].kind)
	assert.Equal(t, "Empleado Uno", notifier.calls[0].name)
}

func TestClockIn_DobleEntradaRechazada(t *testing.T) {
	uc, shifts, _, _ := fixture(t)

	_, err := uc.ClockIn("u1")
	require.NoError(t, err)

	_, err = uc.ClockIn("u1")
	assert.ErrorIs(t, err, domain.ErrShiftAlreadyOpen, "no puede haber dos turnos abiertos del mismo usuario")
	assert.Len(t, shifts.shifts, 1, "el segundo intento no debe crear turno")
}

func TestClockIn_UsuarioDesconocido(t *testing.T) {
	uc, _, _, _ := fixture(t)
	_, err := uc.ClockIn("fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ClockOut
// ──────────────────────────────────────────────────────────────────────────────

func TestClockOut_CalculaHorasDeReloj(t *testing.T) {
	uc, _, users, notifier := fixture(t)

	// Turno de 09:00 a 17:30 → 8.50 horas
	start := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 10, 17, 30, 0, 0, time.UTC)

	uc.WithClock(func() time.Time { return start })
	opened, err := uc.ClockIn("u1")
	require.NoError(t, err)

	uc.WithClock(func() time.Time { return end })
	closed, err := uc.ClockOut(opened.ID)
	require.NoError(t, err)

	require.NotNil(t, closed.TotalHours)
	assert.True(t, closed.TotalHours.Equal(decimal.RequireFromString("8.5")),
		"de 09:00 a 17:30 son 8.50 horas, obtenido %s", closed.TotalHours)
	require.NotNil(t, closed.EndTime)
	assert.Equal(t, end, *closed.EndTime)

	u, _ := users.GetByID("u1")
	assert.False(t, u.IsOnDuty, "el usuario debe quedar fuera de servicio")

	last := notifier.calls[len(notifier.calls)-1]
	assert.Equal(t, "clock_out", last.kind)
	assert.True(t, last.hours.Round(2).Equal(decimal.RequireFromString("8.5")))
}

func TestClockOut_TurnoYaCerrado(t *testing.T) {
	uc, _, _, _ := fixture(t)

	opened, err := uc.ClockIn("u1")
	require.NoError(t, err)
	_, err = uc.ClockOut(opened.ID)
	require.NoError(t, err)

	_, err = uc.ClockOut(opened.ID)
	assert.ErrorIs(t, err, domain.ErrShiftClosed, "cerrar dos veces el mismo turno debe rechazarse")
}

func TestClockOut_TurnoInexistente(t *testing.T) {
	uc, _, _, _ := fixture(t)
	_, err := uc.ClockOut("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// CurrentOpenShift
// ──────────────────────────────────────────────────────────────────────────────

func TestCurrentOpenShift_SinTurnoDevuelveNil(t *testing.T) {
	uc, _, _, _ := fixture(t)
	out, err := uc.CurrentOpenShift("u1")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestCurrentOpenShift_ConTurnoAbiertoCalculaTranscurrido(t *testing.T) {
	uc, _, _, _ := fixture(t)
	start := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	uc.WithClock(func() time.Time { return start })
	_, err := uc.ClockIn("u1")
	require.NoError(t, err)

	uc.WithClock(func() time.Time { return start.Add(90 * time.Minute) })
	out, err := uc.CurrentOpenShift("u1")
	require.NoError(t, err)
	require.NotNil(t, out)
	require.NotNil(t, out.ElapsedHours)
	assert.True(t, out.ElapsedHours.Equal(decimal.RequireFromString("1.5")),
		"90 minutos son 1.50 horas transcurridas, obtenido %s", out.ElapsedHours)
}

func TestCurrentOpenShift_MasDeUnoEsErrorDeIntegridad(t *testing.T) {
	uc, shifts, _, _ := fixture(t)
	now := time.Now()
	shifts.shifts["s1"] = &entity.Shift{ID: "s1", UserID: "u1", StartTime: now}
	shifts.shifts["s2"] = &entity.Shift{ID: "s2", UserID: "u1", StartTime: now}

	_, err := uc.CurrentOpenShift("u1")
	assert.ErrorIs(t, err, domain.ErrDataIntegrity,
		"dos turnos abiertos violan el invariante y no debe elegirse uno en silencio")
}
