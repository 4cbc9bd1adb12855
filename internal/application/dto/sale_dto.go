package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutItem una línea del carrito enviada al cobrar: producto + cantidad.
type CheckoutItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest cuerpo de POST /api/sales/checkout.
type CheckoutRequest struct {
	PaymentMethod string         `json:"payment_method"` // cash, card, banking
	Items         []CheckoutItem `json:"items"`
}

// SaleItemResponse línea de venta persistida, con precio foto y subtotal.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta completada con sus líneas y el stock resultante por producto.
type SaleResponse struct {
	ID             string             `json:"id"`
	UserID         string             `json:"user_id"`
	Total          decimal.Decimal    `json:"total"`
	Status         string             `json:"status"`
	PaymentMethod  string             `json:"payment_method"`
	CreatedAt      time.Time          `json:"created_at"`
	Items          []SaleItemResponse `json:"items"`
	ResultingStock map[string]int     `json:"resulting_stock"` // product_id -> stock tras la venta
}
