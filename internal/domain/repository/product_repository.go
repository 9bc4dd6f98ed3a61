package repository

import (
	"context"

	"github.com/CalinaBorzan/Orders-Management/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
// FindByIDForUpdate bloquea la fila (SELECT ... FOR UPDATE) para serializar
// el descuento de stock dentro de una transacción.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]*entity.Product, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	Insert(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) (bool, error)
}
