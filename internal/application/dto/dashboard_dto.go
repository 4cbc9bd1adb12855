package dto

import "github.com/shopspring/decimal"

// DailyRevenueDTO un bucket de la serie de ingresos diarios.
type DailyRevenueDTO struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Revenue decimal.Decimal `json:"revenue"`
}

// TopProductDTO acumulado histórico de un producto, rankeado por cantidad.
type TopProductDTO struct {
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// SummaryStatsDTO tarjetas del dashboard.
type SummaryStatsDTO struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalSales      int64           `json:"total_sales"`
	LowStock        int64           `json:"low_stock"`
	ActiveEmployees int64           `json:"active_employees"`
}
