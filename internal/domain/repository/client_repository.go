package repository

import (
	"context"

	"github.com/CalinaBorzan/Orders-Management/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
// FindByID devuelve (nil, nil) cuando el cliente no existe.
type ClientRepository interface {
	FindAll(ctx context.Context) ([]*entity.Client, error)
	FindByID(ctx context.Context, id int64) (*entity.Client, error)
	Insert(ctx context.Context, client *entity.Client) error
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id int64) (bool, error)
}
