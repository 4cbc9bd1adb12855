// Package pos contiene el flujo de caja registradora: carrito en memoria y
// cobro (checkout) transaccional de una venta.
package pos

import (
	"github.com/shopspring/decimal"

	"github.com/gallinero/henhouse-api/internal/domain"
	"github.com/gallinero/henhouse-api/internal/domain/entity"
)

// Line es una línea del carrito: foto del producto + cantidad.
// La foto congela precio y stock al momento de la mutación; el precio nunca se
// relee del catálogo durante la sesión de cobro.
type Line struct {
	Product  entity.Product
	Quantity int
}

// Subtotal devuelve precio foto × cantidad.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart es el carrito transitorio de una sesión de cobro. Mantiene el orden de
// inserción de las líneas y garantiza que ninguna cantidad supere el stock
// conocido al momento de la mutación.
//
// No es seguro para uso concurrente: cada sesión de cobro usa su propio carrito.
type Cart struct {
	lines []Line
}

// NewCart construye un carrito vacío.
func NewCart() *Cart {
	return &Cart{}
}

// AddLine agrega una unidad del producto. Si ya está en el carrito incrementa
// la cantidad en 1. Rechaza con ErrInsufficientStock si el producto no tiene
// stock o si el incremento superaría el stock conocido.
func (c *Cart) AddLine(p entity.Product) error {
	if p.Stock <= 0 {
		return domain.ErrInsufficientStock
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			if c.lines[i].Quantity >= p.Stock {
				return domain.ErrInsufficientStock
			}
			c.lines[i].Quantity++
			return nil
		}
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
	return nil
}

// AdjustQuantity suma delta a la cantidad de la línea del producto.
// No hace nada si el producto no está en el carrito. Si la cantidad resultante
// es <= 0 elimina la línea. Si supera el stock conocido rechaza con
// ErrInsufficientStock y deja la cantidad intacta.
func (c *Cart) AdjustQuantity(productID string, delta int) error {
	for i := range c.lines {
		if c.lines[i].Product.ID != productID {
			continue
		}
		newQty := c.lines[i].Quantity + delta
		if newQty <= 0 {
			c.RemoveLine(productID)
			return nil
		}
		if newQty > c.lines[i].Product.Stock {
			return domain.ErrInsufficientStock
		}
		c.lines[i].Quantity = newQty
		return nil
	}
	return nil
}

// RemoveLine elimina la línea del producto, sin condiciones.
func (c *Cart) RemoveLine(productID string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Total suma precio foto × cantidad de todas las líneas.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Lines devuelve las líneas en orden de inserción.
func (c *Cart) Lines() []Line {
	return c.lines
}

// IsEmpty indica si el carrito no tiene líneas.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Quantity devuelve la cantidad actual del producto, 0 si no está en el carrito.
func (c *Cart) Quantity(productID string) int {
	for _, l := range c.lines {
		if l.Product.ID == productID {
			return l.Quantity
		}
	}
	return 0
}
