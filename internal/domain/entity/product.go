package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock solo lo decrementa el checkout (nunca por debajo de cero) o lo fija
// en absoluto una edición de administrador.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, >= 0
	Cost        decimal.Decimal // costo, >= 0
	Stock       int             // unidades disponibles, >= 0
	ImageURL    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
