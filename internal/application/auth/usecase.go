package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/gallinero/henhouse-api/internal/application/dto"
	"github.com/gallinero/henhouse-api/internal/domain"
	"github.com/gallinero/henhouse-api/internal/domain/entity"
	"github.com/gallinero/henhouse-api/internal/domain/repository"
	"github.com/gallinero/henhouse-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y restauración de sesión.
//
// El fallo de login es opaco: usuario inexistente y contraseña incorrecta
// retornan ambos ErrUnauthorized, para no revelar qué usernames existen.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password contra el hash bcrypt, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// RestoreSession relee el registro del usuario a partir del id guardado en el
// token. La sesión es válida mientras el registro exista; no hay expiración
// adicional del lado del servidor.
func (uc *AuthUseCase) RestoreSession(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return ToUserResponse(user), nil
}

// ToUserResponse convierte la entidad a su representación pública (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:              u.ID,
		Username:        u.Username,
		FullName:        u.FullName,
		Role:            u.Role,
		HourlyRate:      u.HourlyRate,
		IsOnDuty:        u.IsOnDuty,
		FivemIdentifier: u.FivemIdentifier,
		CreatedAt:       u.CreatedAt,
	}
}
