package repository

import "github.com/gallinero/henhouse-api/internal/domain/entity"

// SaleItemDetail es una línea de venta con el nombre del producto denormalizado
// (único join que usa el sistema: sale_items -> products.name).
type SaleItemDetail struct {
	entity.SaleItem
	ProductName string
}

// SaleRepository define el puerto de persistencia para Sale y sus líneas (DIP).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItems(items []*entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	// ItemsBySale devuelve las líneas de una venta con nombre de producto.
	ItemsBySale(saleID string) ([]SaleItemDetail, error)
}
