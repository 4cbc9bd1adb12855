package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gallinero/henhouse-api/internal/domain/entity"
	"github.com/gallinero/henhouse-api/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo implementación del puerto ShiftRepository sobre PostgreSQL.
type ShiftRepo struct {
	q Querier
}

// NewShiftRepository construye el adaptador de persistencia para turnos.
func NewShiftRepository(q Querier) *ShiftRepo {
	return &ShiftRepo{q: q}
}

const shiftColumns = `id, user_id, start_time, end_time, total_hours, created_at`

// Create persiste un turno recién abierto (end_time NULL).
func (r *ShiftRepo) Create(shift *entity.Shift) error {
	query := `
		INSERT INTO shifts (id, user_id, start_time, end_time, total_hours, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		shift.ID, shift.UserID, shift.StartTime, shift.EndTime, shift.TotalHours, shift.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert shift: %w", err)
	}
	return nil
}

// GetByID obtiene un turno por ID.
func (r *ShiftRepo) GetByID(id string) (*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`
	var s entity.Shift
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.UserID, &s.StartTime, &s.EndTime, &s.TotalHours, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shift: %w", err)
	}
	return &s, nil
}

// OpenByUser devuelve los turnos abiertos del usuario. El invariante dice "a lo
// sumo uno"; con LIMIT 2 alcanza para que el caso de uso detecte la violación.
func (r *ShiftRepo) OpenByUser(userID string) ([]*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts
		WHERE user_id = $1 AND end_time IS NULL
		ORDER BY start_time DESC LIMIT 2`
	return r.scanMany(query, userID)
}

// Close escribe fin de turno y horas totales.
func (r *ShiftRepo) Close(shiftID string, endTime time.Time, totalHours decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE shifts SET end_time = $2, total_hours = $3 WHERE id = $1`,
		shiftID, endTime, totalHours,
	)
	if err != nil {
		return fmt.Errorf("close shift: %w", err)
	}
	return nil
}

// ClosedByUser devuelve turnos cerrados del usuario, más recientes primero.
func (r *ShiftRepo) ClosedByUser(userID string, limit int) ([]*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts
		WHERE user_id = $1 AND end_time IS NOT NULL
		ORDER BY created_at DESC LIMIT $2`
	return r.scanMany(query, userID, limit)
}

// SumClosedHours acumula las horas de todos los turnos cerrados del usuario.
func (r *ShiftRepo) SumClosedHours(userID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(total_hours), 0) FROM shifts WHERE user_id = $1 AND end_time IS NOT NULL`,
		userID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum closed hours: %w", err)
	}
	return total, nil
}

func (r *ShiftRepo) scanMany(query string, args ...any) ([]*entity.Shift, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shift
	for rows.Next() {
		var s entity.Shift
		if err := rows.Scan(&s.ID, &s.UserID, &s.StartTime, &s.EndTime, &s.TotalHours, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
