// Package analytics contiene los casos de uso del dashboard de ventas del admin.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gallinero/henhouse-api/internal/application/dto"
	"github.com/gallinero/henhouse-api/internal/domain/repository"
)

const (
	defaultRevenueDays  = 7 // ventana de la serie de ingresos diarios
	defaultTopProducts  = 5 // productos en el ranking del dashboard
	lowStockThresholdUI = 10
)

// DashboardUseCase genera la serie de ingresos, el ranking de productos y las
// tarjetas de resumen del dashboard.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No toca las tablas de ventas directamente; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// DailyRevenue devuelve la serie de ingresos de los últimos `days` días
// (7 por defecto), de la fecha más antigua a la más reciente. Los días sin
// ventas vienen con ingreso 0 (el repositorio rellena con generate_series).
func (uc *DashboardUseCase) DailyRevenue(ctx context.Context, days int) ([]dto.DailyRevenueDTO, error) {
	if days <= 0 {
		days = defaultRevenueDays
	}
	rows, err := uc.analyticsRepo.DailyRevenue(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("dashboard: ingresos diarios: %w", err)
	}
	out := make([]dto.DailyRevenueDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DailyRevenueDTO{
			Date:    r.Day.Format("2006-01-02"),
			Revenue: r.Revenue.Round(2),
		})
	}
	return out, nil
}

// TopProducts devuelve el ranking histórico por cantidad vendida (no por
// ingreso), 5 por defecto. Desempate por nombre ascendente, resuelto en SQL.
func (uc *DashboardUseCase) TopProducts(ctx context.Context, limit int) ([]dto.TopProductDTO, error) {
	if limit <= 0 {
		limit = defaultTopProducts
	}
	rows, err := uc.analyticsRepo.TopProducts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", err)
	}
	out := make([]dto.TopProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductDTO{
			Name:     r.Name,
			Quantity: r.Quantity,
			Revenue:  r.Revenue.Round(2),
		})
	}
	return out, nil
}

// SummaryStats arma las tarjetas del dashboard: ingreso y conteo históricos de
// ventas completadas, productos en stock bajo y empleados en servicio.
//
// Las tres consultas son independientes y se lanzan en paralelo.
func (uc *DashboardUseCase) SummaryStats(ctx context.Context) (*dto.SummaryStatsDTO, error) {
	type totalsResult struct {
		revenue decimal.Decimal
		count   int64
		err     error
	}
	type countResult struct {
		n   int64
		err error
	}

	totalsCh := make(chan totalsResult, 1)
	lowStockCh := make(chan countResult, 1)
	onDutyCh := make(chan countResult, 1)

	go func() {
		rev, count, err := uc.analyticsRepo.CompletedTotals(ctx)
		totalsCh <- totalsResult{rev, count, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountLowStock(ctx, lowStockThresholdUI)
		lowStockCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountOnDuty(ctx)
		onDutyCh <- countResult{n, err}
	}()

	totals := <-totalsCh
	lowStock := <-lowStockCh
	onDuty := <-onDutyCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales de ventas: %w", totals.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}
	if onDuty.err != nil {
		return nil, fmt.Errorf("dashboard: en servicio: %w", onDuty.err)
	}

	return &dto.SummaryStatsDTO{
		TotalRevenue:    totals.revenue.Round(2),
		TotalSales:      totals.count,
		LowStock:        lowStock.n,
		ActiveEmployees: onDuty.n,
	}, nil
}
