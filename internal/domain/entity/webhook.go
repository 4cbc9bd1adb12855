package entity

import "time"

// Categorías de evento para los webhooks registrados.
// "all" actúa como comodín: recibe los eventos de todas las categorías.
const (
	CategorySales  = "sales"
	CategoryShifts = "shifts"
	CategoryStock  = "stock"
	CategoryAll    = "all"
)

// ValidCategory indica si la categoría es una de las soportadas.
func ValidCategory(c string) bool {
	return c == CategorySales || c == CategoryShifts || c == CategoryStock || c == CategoryAll
}

// Webhook es la configuración de un destino de notificaciones (chat externo).
// De solo lectura para los flujos de negocio; lo administra el panel de admin.
type Webhook struct {
	ID        string
	URL       string
	IsActive  bool
	EventType string // sales, shifts, stock, all
	CreatedAt time.Time
}
