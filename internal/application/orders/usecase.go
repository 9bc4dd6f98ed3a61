package orders

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/CalinaBorzan/Orders-Management/internal/application/dto"
	"github.com/CalinaBorzan/Orders-Management/internal/domain"
	"github.com/CalinaBorzan/Orders-Management/internal/domain/entity"
	"github.com/CalinaBorzan/Orders-Management/internal/domain/repository"
)

// OrderUseCase orquesta la creación de pedidos: cadena de validación y
// después una única transacción {descontar stock, insertar pedido,
// insertar factura}. Los pedidos y facturas nunca se editan ni se borran.
type OrderUseCase struct {
	txRunner TxRunner
	orders   repository.OrderRepository
	bills    repository.BillRepository

	clientValidator   *ClientValidator
	productValidator  *ProductValidator
	quantityValidator QuantityValidator
	orderIDValidator  *OrderIDValidator
}

// NewOrderUseCase construye el orquestador; los validadores se arman aquí
// con los finders mínimos de cada repositorio.
func NewOrderUseCase(
	txRunner TxRunner,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	billRepo repository.BillRepository,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:         txRunner,
		orders:           orderRepo,
		bills:            billRepo,
		clientValidator:  NewClientValidator(clientRepo),
		productValidator: NewProductValidator(productRepo),
		orderIDValidator: NewOrderIDValidator(orderRepo),
	}
}

// CreateOrder valida la entrada y crea pedido y factura de forma atómica.
//
// Fase de validación: {cliente, producto+stock, cantidad positiva, unicidad
// del id de pedido} en ese orden; el primer fallo aborta la operación con su
// motivo y sin tocar estado alguno.
//
// Fase de escritura (una transacción): se bloquea la fila del producto
// (SELECT FOR UPDATE), se re-verifica el stock contra pedidos concurrentes,
// se descuenta la cantidad, se inserta el pedido con el id aportado y se
// inserta la factura con importe = cantidad × precio capturado antes del
// descuento. Cualquier fallo hace rollback de los tres pasos y se reporta
// como TransactionError: el caller nunca observa stock descontado sin
// pedido, ni pedido sin factura.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := uc.clientValidator.Validate(ctx, in.ClientID); err != nil {
		return nil, err
	}
	if err := uc.productValidator.Validate(ctx, in.ProductID, in.Quantity); err != nil {
		return nil, err
	}
	if err := uc.quantityValidator.Validate(in.Quantity); err != nil {
		return nil, err
	}
	if err := uc.orderIDValidator.Validate(ctx, in.OrderID); err != nil {
		return nil, err
	}

	now := time.Now()
	var order *entity.Order
	var bill *entity.Bill

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
		billRepo repository.BillRepository,
	) error {
		product, err := productRepo.FindByIDForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		// Re-verificación bajo el candado de fila: otro pedido pudo haber
		// descontado stock entre la validación y esta transacción.
		if product.Quantity < in.Quantity {
			return domain.NewValidationError("cantidad insuficiente de producto")
		}

		unitPrice := product.Price // precio antes del descuento
		product.Quantity -= in.Quantity
		if err := productRepo.Update(ctx, product); err != nil {
			return err
		}

		order = &entity.Order{
			ID:        in.OrderID,
			ClientID:  in.ClientID,
			ProductID: in.ProductID,
			Date:      now,
			Quantity:  in.Quantity,
		}
		if err := orderRepo.Insert(ctx, order); err != nil {
			return err
		}

		bill = &entity.Bill{
			Amount:  unitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
			Date:    now,
			OrderID: order.ID,
		}
		return billRepo.Insert(ctx, bill)
	})
	if err != nil {
		// El fallo de stock re-verificado sigue siendo corregible por el
		// caller; el resto es fallo de la fase de escritura.
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return nil, err
		}
		return nil, &domain.TransactionError{Err: err}
	}

	resp := toOrderResponse(order)
	resp.Bill = toBillResponse(bill)
	return resp, nil
}

// ListAllOrders lista todos los pedidos.
func (uc *OrderUseCase) ListAllOrders(ctx context.Context) ([]*dto.OrderResponse, error) {
	orders, err := uc.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		list = append(list, toOrderResponse(o))
	}
	return list, nil
}

// FindOrderByID obtiene un pedido por id; (nil, nil) si no existe.
func (uc *OrderUseCase) FindOrderByID(ctx context.Context, orderID int64) (*dto.OrderResponse, error) {
	order, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// ListAllBills lista todas las facturas.
func (uc *OrderUseCase) ListAllBills(ctx context.Context) ([]*dto.BillResponse, error) {
	bills, err := uc.bills.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.BillResponse, 0, len(bills))
	for _, b := range bills {
		list = append(list, toBillResponse(b))
	}
	return list, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		OrderID:   o.ID,
		ClientID:  o.ClientID,
		ProductID: o.ProductID,
		Date:      o.Date,
		Quantity:  o.Quantity,
	}
}

func toBillResponse(b *entity.Bill) *dto.BillResponse {
	return &dto.BillResponse{
		BillID:  b.ID,
		Amount:  b.Amount,
		Date:    b.Date,
		OrderID: b.OrderID,
	}
}
