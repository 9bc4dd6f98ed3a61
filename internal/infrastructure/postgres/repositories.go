package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/CalinaBorzan/Orders-Management/internal/domain"
	"github.com/CalinaBorzan/Orders-Management/internal/domain/entity"
	"github.com/CalinaBorzan/Orders-Management/internal/domain/repository"
)

var (
	_ repository.ClientRepository  = (*ClientRepository)(nil)
	_ repository.ProductRepository = (*ProductRepository)(nil)
	_ repository.OrderRepository   = (*OrderRepository)(nil)
	_ repository.BillRepository    = (*BillRepository)(nil)
)

// ClientRepository adaptador de persistencia para clientes. Pasar pool o tx (Querier).
type ClientRepository struct {
	*Mapper[entity.Client]
}

// NewClientRepository construye el repositorio sobre el descriptor de Client.
func NewClientRepository(q Querier) *ClientRepository {
	return &ClientRepository{Mapper: NewMapper(q, clientMapping())}
}

// ProductRepository adaptador de persistencia para productos.
type ProductRepository struct {
	*Mapper[entity.Product]
	q Querier
}

// NewProductRepository construye el repositorio sobre el descriptor de Product.
func NewProductRepository(q Querier) *ProductRepository {
	return &ProductRepository{Mapper: NewMapper(q, productMapping()), q: q}
}

// FindByIDForUpdate bloquea la fila del producto (SELECT ... FOR UPDATE) para
// serializar el descuento de stock de pedidos concurrentes sobre el mismo
// producto. Solo tiene sentido dentro de una transacción.
func (r *ProductRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	const query = `SELECT "productId", "productName", "quantity", "price" FROM "product" WHERE "productId" = $1 FOR UPDATE`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Quantity, &p.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, &domain.PersistenceError{Op: "findByIdForUpdate product", Err: err}
	}
	return &p, nil
}

// OrderRepository adaptador de persistencia para pedidos (inmutables: el
// puerto no expone Update ni Delete aunque el mapper los implemente).
type OrderRepository struct {
	*Mapper[entity.Order]
}

// NewOrderRepository construye el repositorio sobre el descriptor de Order.
func NewOrderRepository(q Querier) *OrderRepository {
	return &OrderRepository{Mapper: NewMapper(q, orderMapping())}
}

// BillRepository adaptador de persistencia para facturas (inmutables).
type BillRepository struct {
	*Mapper[entity.Bill]
}

// NewBillRepository construye el repositorio sobre el descriptor de Bill.
func NewBillRepository(q Querier) *BillRepository {
	return &BillRepository{Mapper: NewMapper(q, billMapping())}
}
