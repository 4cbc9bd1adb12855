package pos

import (
	"context"

	"github.com/gallinero/henhouse-api/internal/domain"
	"github.com/gallinero/henhouse-api/internal/domain/entity"
	"github.com/gallinero/henhouse-api/internal/domain/repository"
)

// ReceiptPDFGenerator es el puerto de generación del ticket de venta en PDF.
// Lo implementa pdf.MarotoReceiptGenerator.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, seller *entity.User, items []repository.SaleItemDetail) ([]byte, error)
}

// ReceiptUseCase arma el ticket (representación gráfica) de una venta ya cobrada.
type ReceiptUseCase struct {
	sales     repository.SaleRepository
	users     repository.UserRepository
	generator ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(sales repository.SaleRepository, users repository.UserRepository, generator ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{sales: sales, users: users, generator: generator}
}

// Generate devuelve los bytes del PDF del ticket de la venta.
func (uc *ReceiptUseCase) Generate(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.sales.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.sales.ItemsBySale(saleID)
	if err != nil {
		return nil, err
	}
	seller, err := uc.users.GetByID(sale.UserID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateReceiptPDF(ctx, sale, seller, items)
}
