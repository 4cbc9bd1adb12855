package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gallinero/henhouse-api/internal/domain/entity"
	"github.com/gallinero/henhouse-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de una venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, user_id, total, status, payment_method, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.UserID, sale.Total, sale.Status, sale.PaymentMethod, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItems persiste las líneas de una venta en un solo batch.
func (r *SaleRepo) CreateItems(items []*entity.SaleItem) error {
	if len(items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price, subtotal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, it := range items {
		batch.Queue(query, it.ID, it.SaleID, it.ProductID, it.Quantity, it.UnitPrice, it.Subtotal, it.CreatedAt)
	}
	results := r.q.SendBatch(context.Background(), batch)
	defer results.Close()
	for range items {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la cabecera de una venta.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, user_id, total, status, payment_method, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.UserID, &s.Total, &s.Status, &s.PaymentMethod, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// ItemsBySale devuelve las líneas de una venta con el nombre del producto
// denormalizado (único join del sistema).
func (r *SaleRepo) ItemsBySale(saleID string) ([]repository.SaleItemDetail, error) {
	query := `
		SELECT i.id, i.sale_id, i.product_id, i.quantity, i.unit_price, i.subtotal, i.created_at,
		       COALESCE(p.name, 'Desconocido')
		FROM sale_items i
		LEFT JOIN products p ON p.id = i.product_id
		WHERE i.sale_id = $1
		ORDER BY i.created_at`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var list []repository.SaleItemDetail
	for rows.Next() {
		var d repository.SaleItemDetail
		if err := rows.Scan(&d.ID, &d.SaleID, &d.ProductID, &d.Quantity, &d.UnitPrice,
			&d.Subtotal, &d.CreatedAt, &d.ProductName); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
