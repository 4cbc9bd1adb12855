package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailyRevenueRow es un bucket de ingresos por fecha calendario.
type DailyRevenueRow struct {
	Day     time.Time
	Revenue decimal.Decimal
}

// TopProductRow es el acumulado histórico de un producto en las líneas de venta.
type TopProductRow struct {
	Name     string
	Quantity int64
	Revenue  decimal.Decimal
}

// AnalyticsRepository define consultas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	// DailyRevenue agrupa las ventas completadas de los últimos `days` días
	// (incluyendo hoy) por fecha calendario, de la más antigua a la más reciente.
	// Los días sin ventas aparecen con ingreso cero, nunca ausentes.
	DailyRevenue(ctx context.Context, days int) ([]DailyRevenueRow, error)
	// TopProducts acumula todas las líneas de venta por nombre de producto y
	// ordena por cantidad descendente (desempate: nombre ascendente).
	TopProducts(ctx context.Context, limit int) ([]TopProductRow, error)
	// CompletedTotals devuelve ingreso y cantidad de ventas completadas (histórico).
	CompletedTotals(ctx context.Context) (revenue decimal.Decimal, count int64, err error)
	// CountLowStock cuenta productos con stock <= threshold.
	CountLowStock(ctx context.Context, threshold int) (int64, error)
	// CountOnDuty cuenta usuarios actualmente en servicio.
	CountOnDuty(ctx context.Context) (int64, error)
}
