package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. Los flujos actuales solo producen "completed".
const (
	SaleStatusCompleted = "completed"
	SaleStatusPending   = "pending"
	SaleStatusCancelled = "cancelled"
)

// Métodos de pago. El método es solo una etiqueta: no hay pasarela de pagos.
const (
	PaymentCash    = "cash"
	PaymentCard    = "card"
	PaymentBanking = "banking"
)

// PaymentLabel devuelve la etiqueta legible de un método de pago.
func PaymentLabel(method string) string {
	switch method {
	case PaymentCash:
		return "Efectivo"
	case PaymentCard:
		return "Tarjeta"
	case PaymentBanking:
		return "Banco"
	default:
		return method
	}
}

// ValidPaymentMethod indica si el método de pago es uno de los soportados.
func ValidPaymentMethod(method string) bool {
	return method == PaymentCash || method == PaymentCard || method == PaymentBanking
}

// Sale es la cabecera de una venta. Inmutable una vez creada.
// Invariante: Total = suma de los subtotales de sus SaleItems.
type Sale struct {
	ID            string
	UserID        string
	Total         decimal.Decimal
	Status        string // completed, pending, cancelled
	PaymentMethod string // cash, card, banking
	CreatedAt     time.Time
}

// SaleItem es una línea de venta. UnitPrice es una foto del precio del producto
// al momento de la venta, no una referencia viva.
// Invariante: Subtotal = UnitPrice × Quantity, con Quantity > 0.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
	CreatedAt time.Time
}
