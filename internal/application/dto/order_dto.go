package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para crear un pedido. OrderID lo aporta el
// caller y debe ser único entre los pedidos existentes.
type CreateOrderRequest struct {
	OrderID   int64 `json:"order_id"`
	ClientID  int64 `json:"client_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// OrderResponse pedido creado o consultado; Bill solo viene poblado en la
// respuesta de creación (se genera en la misma transacción).
type OrderResponse struct {
	OrderID   int64         `json:"order_id"`
	ClientID  int64         `json:"client_id"`
	ProductID int64         `json:"product_id"`
	Date      time.Time     `json:"date"`
	Quantity  int           `json:"quantity"`
	Bill      *BillResponse `json:"bill,omitempty"`
}

// BillResponse representación de salida de una factura.
type BillResponse struct {
	BillID  int64           `json:"bill_id"`
	Amount  decimal.Decimal `json:"amount"`
	Date    time.Time       `json:"date"`
	OrderID int64           `json:"order_id"`
}
