package pos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gallinero/henhouse-api/internal/application/dto"
	"github.com/gallinero/henhouse-api/internal/application/ports"
	"github.com/gallinero/henhouse-api/internal/domain"
	"github.com/gallinero/henhouse-api/internal/domain/entity"
	"github.com/gallinero/henhouse-api/internal/domain/repository"
)

// TxRunner ejecuta el callback dentro de una transacción, con repos atados a la tx.
// Lo implementa postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// CheckoutUseCase orquesta el cobro de una venta: reconstruye el carrito contra
// el catálogo vivo, persiste cabecera + líneas + decrementos de stock en UNA
// transacción y dispara las notificaciones en segundo plano.
//
// El decremento de stock lleva piso en el propio UPDATE (stock >= qty), así dos
// cajas cobrando el mismo producto a la vez no pueden dejar stock negativo: la
// segunda recibe ErrInsufficientStock y la venta completa se revierte.
type CheckoutUseCase struct {
	tx                TxRunner
	products          repository.ProductRepository
	users             repository.UserRepository
	notifier          ports.Notifier
	lowStockThreshold int
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(
	tx TxRunner,
	products repository.ProductRepository,
	users repository.UserRepository,
	notifier ports.Notifier,
	lowStockThreshold int,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		tx:                tx,
		products:          products,
		users:             users,
		notifier:          notifier,
		lowStockThreshold: lowStockThreshold,
	}
}

// Checkout cobra el carrito del usuario con el método de pago indicado.
//
// Reglas:
//   - carrito vacío → ErrEmptyCart, no se crea ningún registro;
//   - método de pago desconocido → ErrInvalidInput;
//   - producto inexistente o inactivo → ErrNotFound;
//   - cantidad que supera el stock (al armar el carrito o al decrementar) →
//     ErrInsufficientStock y rollback completo.
//
// El precio unitario persistido es la foto del carrito, no una relectura.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, userID, paymentMethod string, items []dto.CheckoutItem) (*dto.SaleResponse, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if !entity.ValidPaymentMethod(paymentMethod) {
		return nil, domain.ErrInvalidInput
	}

	seller, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrUnauthorized
	}

	cart, err := uc.buildCart(items)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		UserID:        seller.ID,
		Total:         cart.Total(),
		Status:        entity.SaleStatusCompleted,
		PaymentMethod: paymentMethod,
		CreatedAt:     now,
	}

	lines := cart.Lines()
	saleItems := make([]*entity.SaleItem, 0, len(lines))
	for _, l := range lines {
		saleItems = append(saleItems, &entity.SaleItem{
			ID:        uuid.New().String(),
			SaleID:    sale.ID,
			ProductID: l.Product.ID,
			Quantity:  l.Quantity,
			UnitPrice: l.Product.Price,
			Subtotal:  l.Subtotal(),
			CreatedAt: now,
		})
	}

	resultingStock := make(map[string]int, len(lines))
	err = uc.tx.Run(ctx, func(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) error {
		if err := saleRepo.Create(sale); err != nil {
			return fmt.Errorf("crear venta: %w", err)
		}
		if err := saleRepo.CreateItems(saleItems); err != nil {
			return fmt.Errorf("crear líneas de venta: %w", err)
		}
		for _, l := range lines {
			newStock, err := productRepo.DecrementStock(l.Product.ID, l.Quantity)
			if err != nil {
				return err
			}
			resultingStock[l.Product.ID] = newStock
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Notificaciones post-commit: nunca bloquean ni fallan el cobro.
	for _, l := range lines {
		if stock, ok := resultingStock[l.Product.ID]; ok && stock <= uc.lowStockThreshold {
			uc.notifier.NotifyLowStock(l.Product.Name, stock)
		}
	}
	uc.notifier.NotifySale(seller.FullName, sale.Total, entity.PaymentLabel(paymentMethod))

	return toSaleResponse(sale, saleItems, lines, resultingStock), nil
}

// buildCart reconstruye el carrito contra el catálogo vivo, aplicando las mismas
// reglas de stock que la pantalla de caja (AddLine + AdjustQuantity).
// Ítems repetidos del mismo producto se consolidan en una sola línea.
func (uc *CheckoutUseCase) buildCart(items []dto.CheckoutItem) (*Cart, error) {
	cart := NewCart()
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		p, err := uc.products.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil || !p.IsActive {
			return nil, domain.ErrNotFound
		}
		if cart.Quantity(p.ID) == 0 {
			if err := cart.AddLine(*p); err != nil {
				return nil, err
			}
			if it.Quantity > 1 {
				if err := cart.AdjustQuantity(p.ID, it.Quantity-1); err != nil {
					return nil, err
				}
			}
		} else if err := cart.AdjustQuantity(p.ID, it.Quantity); err != nil {
			return nil, err
		}
	}
	return cart, nil
}

func toSaleResponse(sale *entity.Sale, items []*entity.SaleItem, lines []Line, resultingStock map[string]int) *dto.SaleResponse {
	names := make(map[string]string, len(lines))
	for _, l := range lines {
		names[l.Product.ID] = l.Product.Name
	}
	out := &dto.SaleResponse{
		ID:             sale.ID,
		UserID:         sale.UserID,
		Total:          sale.Total,
		Status:         sale.Status,
		PaymentMethod:  sale.PaymentMethod,
		CreatedAt:      sale.CreatedAt,
		Items:          make([]dto.SaleItemResponse, 0, len(items)),
		ResultingStock: resultingStock,
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: names[it.ProductID],
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return out
}
