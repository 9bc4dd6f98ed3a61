package orders

import (
	"context"

	"github.com/CalinaBorzan/Orders-Management/internal/domain/entity"
	"github.com/CalinaBorzan/Orders-Management/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad de la secuencia
// {descontar stock, insertar pedido, insertar factura}.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
		billRepo repository.BillRepository,
	) error) error
}

// Finders mínimos que consumen los validadores: cada validador recibe solo
// la capacidad de búsqueda que necesita, sin referencia de vuelta al
// orquestador que lo compone.

// ClientFinder capacidad "buscar cliente por id".
type ClientFinder interface {
	FindByID(ctx context.Context, id int64) (*entity.Client, error)
}

// ProductFinder capacidad "buscar producto por id".
type ProductFinder interface {
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
}

// OrderFinder capacidad "buscar pedido por id".
type OrderFinder interface {
	FindByID(ctx context.Context, id int64) (*entity.Order, error)
}
