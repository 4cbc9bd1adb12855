package pos

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gallinero/henhouse-api/internal/application/dto"
	"github.com/gallinero/henhouse-api/internal/domain"
	"github.com/gallinero/henhouse-api/internal/domain/entity"
	"github.com/gallinero/henhouse-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(ps ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range ps {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(onlyActive bool) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if onlyActive && !p.IsActive {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) DecrementStock(productID string, qty int) (int, error) {
	p, ok := r.products[productID]
	if !ok || p.Stock < qty {
		return 0, domain.ErrInsufficientStock
	}
	p.Stock -= qty
	return p.Stock, nil
}

func (r *fakeProductRepo) snapshot() map[string]entity.Product {
	s := make(map[string]entity.Product, len(r.products))
	for id, p := range r.products {
		s[id] = *p
	}
	return s
}

func (r *fakeProductRepo) restore(s map[string]entity.Product) {
	r.products = make(map[string]*entity.Product, len(s))
	for id, p := range s {
		cp := p
		r.products[id] = &cp
	}
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(us ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range us {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}
func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) SetOnDuty(userID string, onDuty bool) error {
	if u, ok := r.users[userID]; ok {
		u.IsOnDuty = onDuty
	}
	return nil
}
func (r *fakeUserRepo) UpdateRate(userID string, rate decimal.Decimal, role string) error {
	if u, ok := r.users[userID]; ok {
		u.HourlyRate = rate
		u.Role = role
	}
	return nil
}
func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
	items []*entity.SaleItem
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]*entity.Sale)}
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error { r.sales[s.ID] = s; return nil }
func (r *fakeSaleRepo) CreateItems(items []*entity.SaleItem) error {
	r.items = append(r.items, items...)
	return nil
}
func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}
func (r *fakeSaleRepo) ItemsBySale(saleID string) ([]repository.SaleItemDetail, error) {
	var out []repository.SaleItemDetail
	for _, it := range r.items {
		if it.SaleID == saleID {
			out = append(out, repository.SaleItemDetail{SaleItem: *it})
		}
	}
	return out, nil
}

// fakeTxRunner imita la semántica transaccional: si el callback falla se
// restauran productos y ventas al estado previo.
type fakeTxRunner struct {
	sales    *fakeSaleRepo
	products *fakeProductRepo
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.SaleRepository, repository.ProductRepository) error) error {
	productSnap := t.products.snapshot()
	saleSnap := make(map[string]*entity.Sale, len(t.sales.sales))
	for id, s := range t.sales.sales {
		saleSnap[id] = s
	}
	itemsSnap := append([]*entity.SaleItem(nil), t.sales.items...)

	if err := fn(t.sales, t.products); err != nil {
		t.products.restore(productSnap)
		t.sales.sales = saleSnap
		t.sales.items = itemsSnap
		return err
	}
	return nil
}

type notifierCall struct {
	kind    string
	name    string
	stock   int
	total   decimal.Decimal
	payment string
}

type fakeNotifier struct {
	calls []notifierCall
}

func (n *fakeNotifier) NotifySale(sellerName string, total decimal.Decimal, paymentLabel string) {
	n.calls = append(n.calls, notifierCall{kind: "sale", name: sellerName, total: total, payment: paymentLabel})
}
func (n *fakeNotifier) NotifyLowStock(productName string, stock int) {
	n.calls = append(n.calls, notifierCall{kind: "low_stock", name: productName, stock: stock})
}
func (n *fakeNotifier) NotifyClockIn(userName string) {
	n.calls = append(n.calls, notifierCall{kind: "clock_in", name: userName})
}
func (n *fakeNotifier) NotifyClockOut(userName string, hours decimal.Decimal) {
	n.calls = append(n.calls, notifierCall{kind: "clock_out", name: userName, total: hours})
}

func (n *fakeNotifier) byKind(kind string) []notifierCall {
	var out []notifierCall
	for _, c := range n.calls {
		if c.kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario base
// ──────────────────────────────────────────────────────────────────────────────

func checkoutFixture(t *testing.T, ps ...*entity.Product) (*CheckoutUseCase, *fakeProductRepo, *fakeSaleRepo, *fakeNotifier) {
	t.Helper()
	products := newFakeProductRepo(ps...)
	sales := newFakeSaleRepo()
	users := newFakeUserRepo(&entity.User{
		ID:       "u1",
		Username: "cajera",
		FullName: "Cajera Uno",
		Role:     entity.RoleEmployee,
	})
	notifier := &fakeNotifier{}
	tx := &fakeTxRunner{sales: sales, products: products}
	uc := NewCheckoutUseCase(tx, products, users, notifier, 10)
	return uc, products, sales, notifier
}

func activeProduct(id, name, price string, stock int) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:        id,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Stock:     stock,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCheckout_VentaCompletaConAlertasDeStock(t *testing.T) {
	// A: precio 5.00, stock 3, se venden 2. B: precio 10.00, stock 1, se vende 1.
	uc, products, sales, notifier := checkoutFixture(t,
		activeProduct("a", "Producto A", "5.00", 3),
		activeProduct("b", "Producto B", "10.00", 1),
	)

	out, err := uc.Checkout(context.Background(), "u1", entity.PaymentCash, []dto.CheckoutItem{
		{ProductID: "a", Quantity: 2},
		{ProductID: "b", Quantity: 1},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.Total.Equal(decimal.RequireFromString("20.00")),
		"total = 2×5.00 + 1×10.00 = 20.00, obtenido %s", out.Total)
	assert.Equal(t, entity.SaleStatusCompleted, out.Status)
	assert.Len(t, out.Items, 2)

	// Stock decrementado en almacenamiento
	a, _ := products.GetByID("a")
	b, _ := products.GetByID("b")
	assert.Equal(t, 1, a.Stock, "stock de A debe quedar en 1")
	assert.Equal(t, 0, b.Stock, "stock de B debe quedar en 0")
	assert.Equal(t, 1, out.ResultingStock["a"])
	assert.Equal(t, 0, out.ResultingStock["b"])

	// Persistencia: una cabecera y dos líneas
	assert.Len(t, sales.sales, 1)
	assert.Len(t, sales.items, 2)

	// Notificaciones: dos de stock bajo (1 y 0 <= umbral 10) y una de venta
	lowStock := notifier.byKind("low_stock")
	require.Len(t, lowStock, 2, "ambos productos quedan bajo el umbral")
	saleCalls := notifier.byKind("sale")
	require.Len(t, saleCalls, 1)
	assert.Equal(t, "Cajera Uno", saleCalls[0].name)
	assert.Equal(t, "Efectivo", saleCalls[0].payment)
	assert.True(t, saleCalls[0].total.Equal(decimal.RequireFromString("20.00")))
}

func TestCheckout_CarritoVacioNoCreaNada(t *testing.T) {
	uc, _, sales, notifier := checkoutFixture(t, activeProduct("a", "Producto A", "5.00", 3))

	out, err := uc.Checkout(context.Background(), "u1", entity.PaymentCash, nil)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Nil(t, out)
	assert.Empty(t, sales.sales, "carrito vacío no debe persistir ventas")
	assert.Empty(t, notifier.calls, "carrito vacío no debe notificar")
}

func TestCheckout_MetodoDePagoInvalido(t *testing.T) {
	uc, _, _, _ := checkoutFixture(t, activeProduct("a", "Producto A", "5.00", 3))

	_, err := uc.Checkout(context.Background(), "u1", "cripto", []dto.CheckoutItem{
		{ProductID: "a", Quantity: 1},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckout_ProductoInactivoRechazado(t *testing.T) {
	inactive := activeProduct("a", "Retirado", "5.00", 3)
	inactive.IsActive = false
	uc, _, sales, _ := checkoutFixture(t, inactive)

	_, err := uc.Checkout(context.Background(), "u1", entity.PaymentCard, []dto.CheckoutItem{
		{ProductID: "a", Quantity: 1},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, sales.sales)
}

func TestCheckout_StockInsuficienteRevierteTodo(t *testing.T) {
	uc, products, sales, notifier := checkoutFixture(t,
		activeProduct("a", "Producto A", "5.00", 5),
	)

	_, err := uc.Checkout(context.Background(), "u1", entity.PaymentCash, []dto.CheckoutItem{
		{ProductID: "a", Quantity: 6},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	a, _ := products.GetByID("a")
	assert.Equal(t, 5, a.Stock, "el stock debe quedar intacto tras el rechazo")
	assert.Empty(t, sales.sales, "no debe persistir cabecera")
	assert.Empty(t, sales.items, "no debe persistir líneas")
	assert.Empty(t, notifier.calls, "una venta fallida no debe notificar")
}

func TestCheckout_ItemsRepetidosSeConsolidan(t *testing.T) {
	uc, _, sales, _ := checkoutFixture(t, activeProduct("a", "Producto A", "5.00", 10))

	out, err := uc.Checkout(context.Background(), "u1", entity.PaymentBanking, []dto.CheckoutItem{
		{ProductID: "a", Quantity: 2},
		{ProductID: "a", Quantity: 3},
	})
	require.NoError(t, err)

	require.Len(t, out.Items, 1, "ítems repetidos del mismo producto se consolidan")
	assert.Equal(t, 5, out.Items[0].Quantity)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("25.00")))
	assert.Len(t, sales.items, 1)
}

func TestCheckout_VendedorDesconocido(t *testing.T) {
	uc, _, _, _ := checkoutFixture(t, activeProduct("a", "Producto A", "5.00", 3))

	_, err := uc.Checkout(context.Background(), "fantasma", entity.PaymentCash, []dto.CheckoutItem{
		{ProductID: "a", Quantity: 1},
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
