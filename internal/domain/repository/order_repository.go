package repository

import (
	"context"

	"github.com/CalinaBorzan/Orders-Management/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order.
// Sin Update ni Delete: los pedidos son inmutables una vez creados.
type OrderRepository interface {
	FindAll(ctx context.Context) ([]*entity.Order, error)
	FindByID(ctx context.Context, id int64) (*entity.Order, error)
	Insert(ctx context.Context, order *entity.Order) error
}
