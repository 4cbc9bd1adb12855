package auth

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gallinero/henhouse-api/internal/application/dto"
	"github.com/gallinero/henhouse-api/internal/domain"
	"github.com/gallinero/henhouse-api/internal/domain/entity"
	pkgjwt "github.com/gallinero/henhouse-api/pkg/jwt"
)

type memUserRepo struct {
	users map[string]*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
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
func (r *memUserRepo) Update(u *entity.User) error                            { r.users[u.ID] = u; return nil }
func (r *memUserRepo) SetOnDuty(string, bool) error                           { return nil }
func (r *memUserRepo) UpdateRate(string, decimal.Decimal, string) error       { return nil }
func (r *memUserRepo) List() ([]*entity.User, error)                          { return nil, nil }

const testSecret = "secreto-de-pruebas-unitarias"

func fixture(t *testing.T, password string) (*AuthUseCase, *entity.User) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &entity.User{
		ID:           "u1",
		Username:     "cajera",
		PasswordHash: string(hash),
		FullName:     "Cajera Uno",
		Role:         entity.RoleEmployee,
	}
	repo := &memUserRepo{users: map[string]*entity.User{"u1": user}}
	uc := NewAuthUseCase(repo, JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "hen-house-test",
	})
	return uc, user
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, _ := fixture(t, "contraseña-valida")

	out, err := uc.Login(dto.LoginRequest{Username: "cajera", Password: "contraseña-valida"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "cajera", out.User.Username)
	assert.Equal(t, entity.RoleEmployee, out.User.Role)

	// El token debe ser verificable y llevar id y rol del usuario
	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err, "el token emitido debe validar contra el mismo secreto")
	assert.Equal(t, "u1", userID)
	assert.Equal(t, entity.RoleEmployee, role)
}

func TestLogin_FalloOpaco(t *testing.T) {
	uc, _ := fixture(t, "contraseña-valida")

	// Contraseña incorrecta y usuario inexistente devuelven el mismo error:
	// el login no revela qué usernames existen.
	_, errBadPass := uc.Login(dto.LoginRequest{Username: "cajera", Password: "incorrecta"})
	_, errNoUser := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "incorrecta"})

	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
	assert.Equal(t, errBadPass, errNoUser, "ambos fallos deben ser indistinguibles")
}

func TestLogin_NoExponeElHash(t *testing.T) {
	uc, user := fixture(t, "contraseña-valida")

	out, err := uc.Login(dto.LoginRequest{Username: "cajera", Password: "contraseña-valida"})
	require.NoError(t, err)
	assert.NotContains(t, out.Token, user.PasswordHash)
}

func TestRestoreSession_ReleeElRegistro(t *testing.T) {
	uc, _ := fixture(t, "contraseña-valida")

	out, err := uc.RestoreSession("u1")
	require.NoError(t, err)
	assert.Equal(t, "cajera", out.Username)
}

func TestRestoreSession_CuentaEliminada(t *testing.T) {
	uc, _ := fixture(t, "contraseña-valida")

	_, err := uc.RestoreSession("borrado")
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"si el registro ya no existe la sesión no debe restaurarse")
}
