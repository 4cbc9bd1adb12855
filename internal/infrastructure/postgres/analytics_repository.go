package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gallinero/henhouse-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// DailyRevenue agrupa ventas completadas por día calendario. Se apoya en
// generate_series para que los días sin ventas salgan con ingreso cero.
func (r *AnalyticsRepo) DailyRevenue(ctx context.Context, days int) ([]repository.DailyRevenueRow, error) {
	query := `
		SELECT d::date AS day, COALESCE(SUM(s.total), 0) AS revenue
		FROM generate_series(CURRENT_DATE - ($1::int - 1), CURRENT_DATE, '1 day'::interval) AS d
		LEFT JOIN sales s ON s.created_at::date = d::date AND s.status = 'completed'
		GROUP BY d::date
		ORDER BY d::date`
	rows, err := r.q.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("daily revenue: %w", err)
	}
	defer rows.Close()

	var out []repository.DailyRevenueRow
	for rows.Next() {
		var row repository.DailyRevenueRow
		if err := rows.Scan(&row.Day, &row.Revenue); err != nil {
			return nil, fmt.Errorf("scan daily revenue: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// TopProducts acumula líneas de venta por nombre de producto.
func (r *AnalyticsRepo) TopProducts(ctx context.Context, limit int) ([]repository.TopProductRow, error) {
	query := `
		SELECT COALESCE(p.name, 'Desconocido') AS name,
		       SUM(si.quantity) AS quantity,
		       SUM(si.subtotal) AS revenue
		FROM sale_items si
		LEFT JOIN products p ON p.id = si.product_id
		GROUP BY p.name
		ORDER BY quantity DESC, name ASC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()

	var out []repository.TopProductRow
	for rows.Next() {
		var row repository.TopProductRow
		if err := rows.Scan(&row.Name, &row.Quantity, &row.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// CompletedTotals ingreso y cantidad de ventas completadas del histórico.
func (r *AnalyticsRepo) CompletedTotals(ctx context.Context) (decimal.Decimal, int64, error) {
	var revenue decimal.Decimal
	var count int64
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0), COUNT(*) FROM sales WHERE status = 'completed'`,
	).Scan(&revenue, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("completed totals: %w", err)
	}
	return revenue, count, nil
}

// CountLowStock productos activos en o por debajo del umbral.
func (r *AnalyticsRepo) CountLowStock(ctx context.Context, threshold int) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE is_active = true AND stock <= $1`, threshold,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return n, nil
}

// CountOnDuty usuarios actualmente en servicio.
func (r *AnalyticsRepo) CountOnDuty(ctx context.Context) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE is_on_duty = true`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count on duty: %w", err)
	}
	return n, nil
}
