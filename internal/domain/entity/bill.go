package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill representa la factura generada al crear un pedido.
// Amount = cantidad × precio del producto al momento del pedido.
// Se crea atómicamente junto con su Order (exactamente una por pedido).
type Bill struct {
	ID      int64
	Amount  decimal.Decimal
	Date    time.Time
	OrderID int64
}
