package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario.
// Quantity es el stock disponible; nunca debe quedar negativo tras una escritura.
type Product struct {
	ID       int64
	Name     string
	Quantity int
	Price    decimal.Decimal // precio de venta unitario
}
