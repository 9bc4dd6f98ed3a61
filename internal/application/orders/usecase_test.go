package orders_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CalinaBorzan/Orders-Management/internal/application/dto"
	"github.com/CalinaBorzan/Orders-Management/internal/application/orders"
	"github.com/CalinaBorzan/Orders-Management/internal/domain"
	"github.com/CalinaBorzan/Orders-Management/internal/domain/entity"
	"github.com/CalinaBorzan/Orders-Management/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los cuatro repositorios más un TxRunner que simula el
// rollback: toma un snapshot de los mapas antes de ejecutar el callback y lo
// restaura si este devuelve error. Así los tests verifican el contrato de
// atomicidad (todo o nada) sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

type fakeClientRepo struct {
	clients map[int64]*entity.Client
}

func (r *fakeClientRepo) FindAll(context.Context) ([]*entity.Client, error) {
	list := make([]*entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		cp := *c
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeClientRepo) FindByID(_ context.Context, id int64) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) Insert(_ context.Context, c *entity.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id int64) (bool, error) {
	_, ok := r.clients[id]
	delete(r.clients, id)
	return ok, nil
}

type fakeProductRepo struct {
	products map[int64]*entity.Product
	// lockedQuantity simula un pedido concurrente: si no es nil,
	// FindByIDForUpdate reporta este stock en lugar del visible.
	lockedQuantity *int
	failUpdate     error
}

func (r *fakeProductRepo) FindAll(context.Context) ([]*entity.Product, error) {
	list := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := r.FindByID(ctx, id)
	if p != nil && r.lockedQuantity != nil {
		p.Quantity = *r.lockedQuantity
	}
	return p, err
}

func (r *fakeProductRepo) Insert(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if r.failUpdate != nil {
		return r.failUpdate
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) (bool, error) {
	_, ok := r.products[id]
	delete(r.products, id)
	return ok, nil
}

type fakeOrderRepo struct {
	orders     map[int64]*entity.Order
	failInsert error
}

func (r *fakeOrderRepo) FindAll(context.Context) ([]*entity.Order, error) {
	list := make([]*entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		cp := *o
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id int64) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) Insert(_ context.Context, o *entity.Order) error {
	if r.failInsert != nil {
		return r.failInsert
	}
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

type fakeBillRepo struct {
	bills      map[int64]*entity.Bill
	nextID     int64
	failInsert error
}

func (r *fakeBillRepo) FindAll(context.Context) ([]*entity.Bill, error) {
	list := make([]*entity.Bill, 0, len(r.bills))
	for _, b := range r.bills {
		cp := *b
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeBillRepo) FindByID(_ context.Context, id int64) (*entity.Bill, error) {
	b, ok := r.bills[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBillRepo) Insert(_ context.Context, b *entity.Bill) error {
	if r.failInsert != nil {
		return r.failInsert
	}
	r.nextID++
	b.ID = r.nextID
	cp := *b
	r.bills[b.ID] = &cp
	return nil
}

// fakeTxRunner ejecuta el callback sobre los mismos fakes y restaura el
// snapshot si falla, imitando el rollback de la transacción real.
type fakeTxRunner struct {
	products *fakeProductRepo
	orders   *fakeOrderRepo
	bills    *fakeBillRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	billRepo repository.BillRepository,
) error) error {
	productSnap := snapshot(r.products.products)
	orderSnap := snapshot(r.orders.orders)
	billSnap := snapshot(r.bills.bills)

	if err := fn(r.products, r.orders, r.bills); err != nil {
		r.products.products = productSnap
		r.orders.orders = orderSnap
		r.bills.bills = billSnap
		return err
	}
	return nil
}

func snapshot[E any](m map[int64]*E) map[int64]*E {
	out := make(map[int64]*E, len(m))
	for k, v := range m {
		cp := *v
		out[k] = &cp
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc       *orders.OrderUseCase
	clients  *fakeClientRepo
	products *fakeProductRepo
	orders   *fakeOrderRepo
	bills    *fakeBillRepo
}

func newFixture() *fixture {
	clients := &fakeClientRepo{clients: map[int64]*entity.Client{
		1: {ID: 1, LastName: "Pop", FirstName: "Ana", Email: "ana@example.com", Age: 30, Address: "Calle 1"},
	}}
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		2: {ID: 2, Name: "Teclado mecánico", Quantity: 10, Price: decimal.RequireFromString("25.50")},
	}}
	orderRepo := &fakeOrderRepo{orders: map[int64]*entity.Order{}}
	billRepo := &fakeBillRepo{bills: map[int64]*entity.Bill{}}

	tx := &fakeTxRunner{products: products, orders: orderRepo, bills: billRepo}
	return &fixture{
		uc:       orders.NewOrderUseCase(tx, clients, products, orderRepo, billRepo),
		clients:  clients,
		products: products,
		orders:   orderRepo,
		bills:    billRepo,
	}
}

func validRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{OrderID: 5001, ClientID: 1, ProductID: 2, Quantity: 3}
}

func TestCreateOrder_Exitoso(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.CreateOrder(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, int64(5001), resp.OrderID)
	assert.Equal(t, 3, resp.Quantity)
	require.NotNil(t, resp.Bill, "la respuesta de creación incluye la factura")
	assert.True(t, resp.Bill.Amount.Equal(decimal.RequireFromString("76.50")),
		"importe = 3 × 25.50 con el precio previo al descuento")
	assert.Equal(t, resp.OrderID, resp.Bill.OrderID)
	assert.Equal(t, resp.Date, resp.Bill.Date, "pedido y factura comparten la fecha de creación")

	assert.Equal(t, 7, f.products.products[2].Quantity, "stock descontado: 10 - 3")
	assert.Len(t, f.orders.orders, 1)
	assert.Len(t, f.bills.bills, 1)
}

func TestCreateOrder_ClienteInexistente(t *testing.T) {
	f := newFixture()
	in := validRequest()
	in.ClientID = 99

	_, err := f.uc.CreateOrder(context.Background(), in)
	requireValidation(t, err, "el cliente no existe")
	assertSinEfectos(t, f)
}

func TestCreateOrder_ProductoInexistente(t *testing.T) {
	f := newFixture()
	in := validRequest()
	in.ProductID = 99

	_, err := f.uc.CreateOrder(context.Background(), in)
	requireValidation(t, err, "el producto no existe")
	assertSinEfectos(t, f)
}

func TestCreateOrder_StockInsuficiente(t *testing.T) {
	f := newFixture()
	f.products.products[2].Quantity = 2
	in := validRequest()
	in.Quantity = 5

	_, err := f.uc.CreateOrder(context.Background(), in)
	requireValidation(t, err, "cantidad insuficiente de producto")
	assert.Equal(t, 2, f.products.products[2].Quantity, "el stock no se toca")
	assert.Empty(t, f.orders.orders)
	assert.Empty(t, f.bills.bills)
}

func TestCreateOrder_CantidadNoPositiva(t *testing.T) {
	f := newFixture()

	for _, qty := range []int{0, -4} {
		in := validRequest()
		in.Quantity = qty
		_, err := f.uc.CreateOrder(context.Background(), in)
		requireValidation(t, err, "la cantidad debe ser mayor que cero")
	}
	assertSinEfectos(t, f)
}

func TestCreateOrder_IDDePedidoDuplicado(t *testing.T) {
	f := newFixture()
	f.orders.orders[5001] = &entity.Order{ID: 5001, ClientID: 1, ProductID: 2, Quantity: 1}

	_, err := f.uc.CreateOrder(context.Background(), validRequest())
	requireValidation(t, err, "el id de pedido ya está en uso")
	assert.Equal(t, 10, f.products.products[2].Quantity)
	assert.Empty(t, f.bills.bills)
}

// El stock visto en la validación puede quedar obsoleto por un pedido
// concurrente; la re-verificación bajo el candado de fila debe rechazar la
// operación como validación (corregible), no como fallo de transacción.
func TestCreateOrder_CarreraDeStock(t *testing.T) {
	f := newFixture()
	locked := 1
	f.products.lockedQuantity = &locked

	_, err := f.uc.CreateOrder(context.Background(), validRequest())
	requireValidation(t, err, "cantidad insuficiente de producto")
	assertSinEfectos(t, f)
}

func TestCreateOrder_FalloAlInsertarFactura(t *testing.T) {
	f := newFixture()
	f.bills.failInsert = errors.New("disco lleno")

	_, err := f.uc.CreateOrder(context.Background(), validRequest())

	var tErr *domain.TransactionError
	require.ErrorAs(t, err, &tErr, "un fallo de escritura se reporta como TransactionError")

	// Rollback: ni stock descontado, ni pedido, ni factura.
	assert.Equal(t, 10, f.products.products[2].Quantity)
	assert.Empty(t, f.orders.orders)
	assert.Empty(t, f.bills.bills)
}

func TestCreateOrder_FalloAlDescontarStock(t *testing.T) {
	f := newFixture()
	f.products.failUpdate = errors.New("deadlock detected")

	_, err := f.uc.CreateOrder(context.Background(), validRequest())

	var tErr *domain.TransactionError
	require.ErrorAs(t, err, &tErr)
	assertSinEfectos(t, f)
}

func TestListAllOrders_YFindOrderByID(t *testing.T) {
	f := newFixture()
	_, err := f.uc.CreateOrder(context.Background(), validRequest())
	require.NoError(t, err)

	list, err := f.uc.ListAllOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Bill, "la factura solo viaja en la respuesta de creación")

	found, err := f.uc.FindOrderByID(context.Background(), 5001)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, int64(5001), found.OrderID)

	missing, err := f.uc.FindOrderByID(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListAllBills(t *testing.T) {
	f := newFixture()
	_, err := f.uc.CreateOrder(context.Background(), validRequest())
	require.NoError(t, err)

	bills, err := f.uc.ListAllBills(context.Background())
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, int64(5001), bills[0].OrderID)
}

func requireValidation(t *testing.T, err error, reason string) {
	t.Helper()
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, reason, vErr.Reason)
}

func assertSinEfectos(t *testing.T, f *fixture) {
	t.Helper()
	assert.Equal(t, 10, f.products.products[2].Quantity)
	assert.Empty(t, f.orders.orders)
	assert.Empty(t, f.bills.bills)
}
