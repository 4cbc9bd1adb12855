package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gallinero/henhouse-api/internal/domain"
	"github.com/gallinero/henhouse-api/internal/domain/entity"
	"github.com/gallinero/henhouse-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, username, password_hash, full_name, role, hourly_rate, is_on_duty, fivem_identifier, created_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, full_name, role, hourly_rate, is_on_duty, fivem_identifier, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Username, user.PasswordHash, user.FullName, user.Role,
		user.HourlyRate, user.IsOnDuty, user.FivemIdentifier, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByUsername obtiene un usuario por username (único).
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanOne(query, username)
}

// Update actualiza los campos editables del usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET full_name = $2, role = $3, hourly_rate = $4, is_on_duty = $5, fivem_identifier = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.FullName, user.Role, user.HourlyRate, user.IsOnDuty, user.FivemIdentifier,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// SetOnDuty cambia solo la bandera de servicio.
func (r *UserRepo) SetOnDuty(userID string, onDuty bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET is_on_duty = $2 WHERE id = $1`, userID, onDuty)
	if err != nil {
		return fmt.Errorf("set on duty: %w", err)
	}
	return nil
}

// UpdateRate actualiza tarifa por hora y rol.
func (r *UserRepo) UpdateRate(userID string, hourlyRate decimal.Decimal, role string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET hourly_rate = $2, role = $3 WHERE id = $1`, userID, hourlyRate, role)
	if err != nil {
		return fmt.Errorf("update rate: %w", err)
	}
	return nil
}

// List devuelve todos los usuarios ordenados por nombre completo.
func (r *UserRepo) List() ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY full_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *UserRepo) scanOne(query string, args ...any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// scanUser funciona tanto con pgx.Row como con pgx.Rows.
func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.Role,
		&u.HourlyRate, &u.IsOnDuty, &u.FivemIdentifier, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
