package repository

import (
	"context"

	"github.com/CalinaBorzan/Orders-Management/internal/domain/entity"
)

// BillRepository define el puerto de persistencia para Bill.
// Las facturas se crean solo dentro de la transacción de pedido y nunca
// se modifican después.
type BillRepository interface {
	FindAll(ctx context.Context) ([]*entity.Bill, error)
	FindByID(ctx context.Context, id int64) (*entity.Bill, error)
	Insert(ctx context.Context, bill *entity.Bill) error
}
