package repository

import "github.com/gallinero/henhouse-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// Delete desactiva el producto (las ventas históricas lo referencian).
	// Retorna domain.ErrNotFound si no existe.
	Delete(id string) error
	// List devuelve productos ordenados por nombre. Con onlyActive filtra is_active = true.
	List(onlyActive bool) ([]*entity.Product, error)
	// DecrementStock descuenta qty unidades de forma atómica con piso en cero:
	// si el stock almacenado es menor que qty no modifica nada y retorna
	// domain.ErrInsufficientStock. Devuelve el stock resultante.
	DecrementStock(productID string, qty int) (int, error)
}
