package orders

import (
	"context"

	"github.com/CalinaBorzan/Orders-Management/internal/domain"
)

// Cadena de validación previa a la creación de un pedido. Cada validador es
// un predicado independiente y sin estado por llamada: devuelve un
// ValidationError con su motivo concreto, o nil. El orquestador los compone
// en secuencia; no se fusionan para que cada uno sea sustituible y
// verificable por separado.

// ClientValidator comprueba que el cliente referenciado exista.
type ClientValidator struct {
	clients ClientFinder
}

// NewClientValidator construye el validador con su finder.
func NewClientValidator(clients ClientFinder) *ClientValidator {
	return &ClientValidator{clients: clients}
}

// Validate falla si el id de cliente no resuelve a un cliente existente.
func (v *ClientValidator) Validate(ctx context.Context, clientID int64) error {
	client, err := v.clients.FindByID(ctx, clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.NewValidationError("el cliente no existe")
	}
	return nil
}

// ProductValidator comprueba que el producto exista y que el stock alcance
// para la cantidad solicitada.
type ProductValidator struct {
	products ProductFinder
}

// NewProductValidator construye el validador con su finder.
func NewProductValidator(products ProductFinder) *ProductValidator {
	return &ProductValidator{products: products}
}

// Validate falla si el producto no existe o si la cantidad solicitada
// excede el stock disponible en este momento.
func (v *ProductValidator) Validate(ctx context.Context, productID int64, quantity int) error {
	product, err := v.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.NewValidationError("el producto no existe")
	}
	if product.Quantity < quantity {
		return domain.NewValidationError("cantidad insuficiente de producto")
	}
	return nil
}

// QuantityValidator comprueba que la cantidad pedida sea positiva.
type QuantityValidator struct{}

// Validate falla si la cantidad es cero o negativa.
func (QuantityValidator) Validate(quantity int) error {
	if quantity <= 0 {
		return domain.NewValidationError("la cantidad debe ser mayor que cero")
	}
	return nil
}

// OrderIDValidator comprueba que el id de pedido aportado no esté en uso.
type OrderIDValidator struct {
	orders OrderFinder
}

// NewOrderIDValidator construye el validador con su finder.
func NewOrderIDValidator(orders OrderFinder) *OrderIDValidator {
	return &OrderIDValidator{orders: orders}
}

// Validate falla si ya existe un pedido con ese id.
func (v *OrderIDValidator) Validate(ctx context.Context, orderID int64) error {
	order, err := v.orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order != nil {
		return domain.NewValidationError("el id de pedido ya está en uso")
	}
	return nil
}
